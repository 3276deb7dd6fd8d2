package domain

// AnswerResult is the graded outcome for a single question.
type AnswerResult struct {
	QuestionID      string   `json:"questionId"`
	SelectedOptions []string `json:"selectedOptions"`
	CorrectOptions  []string `json:"correctOptions"`
	IsCorrect       bool     `json:"isCorrect"`
}

// GradedQuiz aggregates per-question results into a score.
type GradedQuiz struct {
	Score          int
	MaxScore       int
	Percentage     float64
	CorrectCount   int
	IncorrectCount int
	IsPerfect      bool
	Results        []AnswerResult
}

// GradeSubmission grades selected option ids against the quiz questions. A
// question is correct only when the selected set equals the correct set
// exactly; subsets and supersets score nothing.
func GradeSubmission(questions []Question, answers map[string][]string) GradedQuiz {
	graded := GradedQuiz{Results: make([]AnswerResult, 0, len(questions))}

	for _, question := range questions {
		correctIDs := question.CorrectOptionIDs()
		selected := answers[question.ID]

		correct := sameIDSet(selected, correctIDs)
		if correct {
			graded.CorrectCount++
			graded.Score += question.Points
		} else {
			graded.IncorrectCount++
		}
		graded.MaxScore += question.Points

		if selected == nil {
			selected = []string{}
		}
		graded.Results = append(graded.Results, AnswerResult{
			QuestionID:      question.ID,
			SelectedOptions: selected,
			CorrectOptions:  correctIDs,
			IsCorrect:       correct,
		})
	}

	if graded.MaxScore > 0 {
		graded.Percentage = float64(graded.Score) / float64(graded.MaxScore) * 100
	}
	graded.IsPerfect = graded.CorrectCount == len(questions)
	return graded
}

// sameIDSet reports whether both slices contain exactly the same ids,
// ignoring order and duplicates.
func sameIDSet(a, b []string) bool {
	setA := make(map[string]struct{}, len(a))
	for _, id := range a {
		setA[id] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, id := range b {
		setB[id] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for id := range setA {
		if _, ok := setB[id]; !ok {
			return false
		}
	}
	return true
}

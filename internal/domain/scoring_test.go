package domain

import "testing"

func twoQuestionQuiz() []Question {
	return []Question{
		{
			ID:     "q1",
			Points: 10,
			Options: []Option{
				{ID: "a", IsCorrect: true},
				{ID: "b"},
				{ID: "c"},
			},
			Position: 1,
		},
		{
			ID:     "q2",
			Points: 20,
			Options: []Option{
				{ID: "d", IsCorrect: true},
				{ID: "e", IsCorrect: true},
				{ID: "f"},
			},
			Position: 2,
		},
	}
}

func TestGradeSubmission_AllCorrect(t *testing.T) {
	graded := GradeSubmission(twoQuestionQuiz(), map[string][]string{
		"q1": {"a"},
		"q2": {"e", "d"}, // order must not matter
	})

	if graded.Score != 30 || graded.MaxScore != 30 {
		t.Errorf("score = %d/%d, want 30/30", graded.Score, graded.MaxScore)
	}
	if graded.Percentage != 100 {
		t.Errorf("percentage = %v, want 100", graded.Percentage)
	}
	if !graded.IsPerfect {
		t.Error("expected perfect grade")
	}
	if graded.CorrectCount != 2 || graded.IncorrectCount != 0 {
		t.Errorf("counts = %d/%d, want 2/0", graded.CorrectCount, graded.IncorrectCount)
	}
}

// Subset and superset selections must grade incorrect; only an exact set
// match counts.
func TestGradeSubmission_ExactSetMatchOnly(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
	}{
		{"subset", []string{"d"}},
		{"superset", []string{"d", "e", "f"}},
		{"disjoint", []string{"f"}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graded := GradeSubmission(twoQuestionQuiz(), map[string][]string{
				"q1": {"a"},
				"q2": tt.selected,
			})
			if graded.CorrectCount != 1 {
				t.Errorf("correctCount = %d, want 1", graded.CorrectCount)
			}
			if graded.Score != 10 {
				t.Errorf("score = %d, want 10", graded.Score)
			}
			if graded.IsPerfect {
				t.Error("should not be perfect")
			}
		})
	}
}

func TestGradeSubmission_DuplicateSelectionsCollapse(t *testing.T) {
	graded := GradeSubmission(twoQuestionQuiz(), map[string][]string{
		"q1": {"a", "a"},
		"q2": {"d", "e"},
	})
	if !graded.IsPerfect {
		t.Error("duplicate ids of a correct selection should still match")
	}
}

func TestGradeSubmission_UnansweredQuestion(t *testing.T) {
	graded := GradeSubmission(twoQuestionQuiz(), map[string][]string{"q1": {"a"}})

	if graded.IncorrectCount != 1 {
		t.Errorf("incorrectCount = %d, want 1", graded.IncorrectCount)
	}
	// Result rows exist for every question, with an empty selection for the
	// unanswered one.
	if len(graded.Results) != 2 {
		t.Fatalf("results = %d rows, want 2", len(graded.Results))
	}
	if graded.Results[1].SelectedOptions == nil || len(graded.Results[1].SelectedOptions) != 0 {
		t.Errorf("unanswered selection = %v, want empty slice", graded.Results[1].SelectedOptions)
	}
	if graded.Results[1].IsCorrect {
		t.Error("unanswered question graded correct")
	}
}

func TestGradeSubmission_NoQuestions(t *testing.T) {
	graded := GradeSubmission(nil, map[string][]string{"q1": {"a"}})
	if graded.Percentage != 0 {
		t.Errorf("percentage = %v, want 0 when maxScore is 0", graded.Percentage)
	}
	if graded.Score != 0 || graded.MaxScore != 0 {
		t.Errorf("score = %d/%d, want 0/0", graded.Score, graded.MaxScore)
	}
}

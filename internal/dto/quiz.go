package dto

// QuizOption is an option as shown to a client before grading. Correctness is
// never exposed here.
type QuizOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizQuestion is a question as shown to a client before grading.
type QuizQuestion struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Options  []QuizOption `json:"options"`
	Points   int          `json:"points"`
	Position int          `json:"position"`
}

// QuizResponse is a full quiz ready to be taken.
// @Description Response body for a single quiz
type QuizResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	XPReward    int            `json:"xpReward"`
	CoinReward  int            `json:"coinReward"`
	Questions   []QuizQuestion `json:"questions"`
}

// QuizSummary is a catalog entry without question bodies.
type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	XPReward      int    `json:"xpReward"`
	CoinReward    int    `json:"coinReward"`
	QuestionCount int    `json:"questionCount,omitempty"`
}

// QuizListResponse is a paginated page of the quiz catalog.
type QuizListResponse struct {
	Quizzes    []QuizSummary `json:"quizzes"`
	TotalCount int           `json:"totalCount"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// Pagination defines parameters for paginated requests.
// These are typically query parameters.
type Pagination struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

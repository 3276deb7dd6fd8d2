package dto

import "time"

// SubmitQuizRequest is the body of a quiz submission. Keys of Answers are
// question ids; values are the selected option ids.
// @Description Request body for submitting quiz answers
type SubmitQuizRequest struct {
	Answers   map[string][]string `json:"answers"`
	TimeSpent int                 `json:"timeSpent"` // seconds, clamped server-side
}

// AttemptSummary describes the graded outcome of one submission.
type AttemptSummary struct {
	Score          int     `json:"score"`
	MaxScore       int     `json:"maxScore"`
	Percentage     float64 `json:"percentage"`
	CorrectCount   int     `json:"correctCount"`
	IncorrectCount int     `json:"incorrectCount"`
	IsPerfect      bool    `json:"isPerfect"`
	TimeSpent      int     `json:"timeSpent"`
}

// QuestionResult is the per-question grading detail returned to the client.
type QuestionResult struct {
	QuestionID      string   `json:"questionId"`
	SelectedOptions []string `json:"selectedOptions"`
	CorrectOptions  []string `json:"correctOptions"`
	IsCorrect       bool     `json:"isCorrect"`
	Explanation     string   `json:"explanation,omitempty"`
}

// XPBreakdown itemizes the XP earned by a submission.
type XPBreakdown struct {
	Base    int `json:"base"`
	Streak  int `json:"streak"`
	Speed   int `json:"speed"`
	Perfect int `json:"perfect"`
	Total   int `json:"total"`
}

// UnlockedAchievement is one achievement newly unlocked by a submission.
type UnlockedAchievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
	XPReward    int    `json:"xpReward"`
	CoinReward  int    `json:"coinReward"`
}

// ProgressionSnapshot is the user's progression state after a submission.
type ProgressionSnapshot struct {
	Level          int `json:"level"`
	CurrentXP      int `json:"currentXp"`
	NextLevelXP    int `json:"nextLevelXp"`
	TotalXP        int `json:"totalXp"`
	Coins          int `json:"coins"`
	Streak         int `json:"streak"`
	LongestStreak  int `json:"longestStreak"`
	TotalQuizzes   int `json:"totalQuizzes"`
	TotalCorrect   int `json:"totalCorrect"`
	TotalAnswered  int `json:"totalAnswered"`
	PerfectQuizzes int `json:"perfectQuizzes"`
}

// SubmitQuizResponse is the full result of a graded submission.
// @Description Response body for a graded quiz submission
type SubmitQuizResponse struct {
	Attempt           AttemptSummary        `json:"attempt"`
	Results           []QuestionResult      `json:"results"`
	XP                XPBreakdown           `json:"xp"`
	Coins             int                   `json:"coins"`
	LeveledUp         bool                  `json:"leveledUp"`
	NewLevel          int                   `json:"newLevel"`
	Streak            int                   `json:"streak"`
	StreakIncremented bool                  `json:"streakIncremented"`
	Achievements      []UnlockedAchievement `json:"achievements"`
	User              ProgressionSnapshot   `json:"user"`
}

// AttemptResponse is one historical attempt in a user's attempt list.
type AttemptResponse struct {
	ID          string    `json:"id"`
	QuizID      string    `json:"quizId"`
	Score       int       `json:"score"`
	MaxScore    int       `json:"maxScore"`
	Percentage  float64   `json:"percentage"`
	IsPerfect   bool      `json:"isPerfect"`
	XPEarned    int       `json:"xpEarned"`
	CoinsEarned int       `json:"coinsEarned"`
	TimeSpent   int       `json:"timeSpent"`
	CompletedAt time.Time `json:"completedAt"`
}

// AttemptListResponse is a paginated page of attempts.
type AttemptListResponse struct {
	Attempts   []AttemptResponse `json:"attempts"`
	TotalCount int               `json:"totalCount"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

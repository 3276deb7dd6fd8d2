package models

import (
	"database/sql"
	"time"
)

// User represents a user row with denormalized progression state.
type User struct {
	ID                string         `db:"ID"` // ULID
	GoogleID          string         `db:"GOOGLE_ID"`
	Email             string         `db:"EMAIL"`
	Name              sql.NullString `db:"NAME"`
	ProfilePictureURL sql.NullString `db:"PROFILE_PICTURE_URL"`
	UserLevel         int            `db:"USER_LEVEL"` // LEVEL is reserved in Oracle
	XP                int            `db:"XP"`
	TotalXP           int            `db:"TOTAL_XP"`
	Coins             int            `db:"COINS"`
	Streak            int            `db:"STREAK"`
	LongestStreak     int            `db:"LONGEST_STREAK"`
	TotalQuizzes      int            `db:"TOTAL_QUIZZES"`
	TotalCorrect      int            `db:"TOTAL_CORRECT"`
	TotalAnswered     int            `db:"TOTAL_ANSWERED"`
	PerfectQuizzes    int            `db:"PERFECT_QUIZZES"`
	CreatedAt         time.Time      `db:"CREATED_AT"`
	UpdatedAt         time.Time      `db:"UPDATED_AT"`
	DeletedAt         sql.NullTime   `db:"DELETED_AT"`
}

// Quiz is a quiz catalog row.
type Quiz struct {
	ID          string         `db:"ID"`
	Title       string         `db:"TITLE"`
	Description sql.NullString `db:"DESCRIPTION"`
	XPReward    int            `db:"XP_REWARD"`
	CoinReward  int            `db:"COIN_REWARD"`
	CreatedAt   time.Time      `db:"CREATED_AT"`
	UpdatedAt   time.Time      `db:"UPDATED_AT"`
	DeletedAt   sql.NullTime   `db:"DELETED_AT"`
}

// Question is a question row; options are stored as a JSON document.
type Question struct {
	ID          string         `db:"ID"`
	QuizID      string         `db:"QUIZ_ID"`
	Text        string         `db:"TEXT"`
	Options     OptionSlice    `db:"OPTIONS"` // JSON CLOB
	Explanation sql.NullString `db:"EXPLANATION"`
	Points      int            `db:"POINTS"`
	Position    int            `db:"POSITION"`
}

// QuizAttempt is the immutable record of one graded submission. ATTEMPT_DAY
// is the local calendar day of COMPLETED_AT; a unique index over
// (USER_ID, QUIZ_ID, ATTEMPT_DAY) enforces the one-attempt-per-day rule.
type QuizAttempt struct {
	ID             string            `db:"ID"` // ULID
	UserID         string            `db:"USER_ID"`
	QuizID         string            `db:"QUIZ_ID"`
	Score          int               `db:"SCORE"`
	MaxScore       int               `db:"MAX_SCORE"`
	Percentage     float64           `db:"PERCENTAGE"`
	CorrectCount   int               `db:"CORRECT_COUNT"`
	IncorrectCount int               `db:"INCORRECT_COUNT"`
	TimeSpent      int               `db:"TIME_SPENT"`
	IsPerfect      bool              `db:"IS_PERFECT"`
	XPEarned       int               `db:"XP_EARNED"`
	BaseXP         int               `db:"BASE_XP"`
	StreakBonusXP  int               `db:"STREAK_BONUS_XP"`
	SpeedBonusXP   int               `db:"SPEED_BONUS_XP"`
	PerfectBonusXP int               `db:"PERFECT_BONUS_XP"`
	CoinsEarned    int               `db:"COINS_EARNED"`
	Results        AnswerResultSlice `db:"RESULTS"` // JSON CLOB
	AttemptDay     time.Time         `db:"ATTEMPT_DAY"`
	CompletedAt    time.Time         `db:"COMPLETED_AT"`
	CreatedAt      time.Time         `db:"CREATED_AT"`
}

// DailyProgress is the per-user, per-day activity rollup. Unique over
// (USER_ID, PROGRESS_DATE).
type DailyProgress struct {
	UserID            string    `db:"USER_ID"`
	ProgressDate      time.Time `db:"PROGRESS_DATE"`
	QuizzesCompleted  int       `db:"QUIZZES_COMPLETED"`
	QuestionsAnswered int       `db:"QUESTIONS_ANSWERED"`
	CorrectAnswers    int       `db:"CORRECT_ANSWERS"`
	XPEarned          int       `db:"XP_EARNED"`
	TimeSpent         int       `db:"TIME_SPENT"`
	StreakMaintained  bool      `db:"STREAK_MAINTAINED"`
	UpdatedAt         time.Time `db:"UPDATED_AT"`
}

// Achievement is one static catalog row.
type Achievement struct {
	ID                   string `db:"ID"`
	Name                 string `db:"NAME"`
	Description          string `db:"DESCRIPTION"`
	Rarity               string `db:"RARITY"`
	XPReward             int    `db:"XP_REWARD"`
	CoinReward           int    `db:"COIN_REWARD"`
	RequirementType      string `db:"REQUIREMENT_TYPE"`
	RequirementThreshold int    `db:"REQUIREMENT_THRESHOLD"`
}

// UserAchievement records an unlock, unique per (USER_ID, ACHIEVEMENT_ID).
type UserAchievement struct {
	UserID        string    `db:"USER_ID"`
	AchievementID string    `db:"ACHIEVEMENT_ID"`
	UnlockedAt    time.Time `db:"UNLOCKED_AT"`
}

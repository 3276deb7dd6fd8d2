package domain

import (
	"context"
	"time"
)

// MaxTimeSpentSeconds caps the reported completion time of a single attempt.
const MaxTimeSpentSeconds = 3600

// ClampTimeSpent clamps a client-reported completion time to [0, 3600].
func ClampTimeSpent(seconds int) int {
	if seconds < 0 {
		return 0
	}
	if seconds > MaxTimeSpentSeconds {
		return MaxTimeSpentSeconds
	}
	return seconds
}

// QuizAttempt is the immutable record of one graded submission. Exactly one
// attempt may exist per (user, quiz, calendar day).
type QuizAttempt struct {
	ID             string
	UserID         string
	QuizID         string
	Score          int
	MaxScore       int
	Percentage     float64
	CorrectCount   int
	IncorrectCount int
	TimeSpent      int
	IsPerfect      bool
	XPEarned       int
	BaseXP         int
	StreakBonusXP  int
	SpeedBonusXP   int
	PerfectBonusXP int
	CoinsEarned    int
	Results        []AnswerResult
	CompletedAt    time.Time
}

// DailyProgress is the per-user, per-calendar-day activity rollup that gates
// the one-attempt-per-day rule and streak continuation.
type DailyProgress struct {
	UserID            string
	Date              time.Time
	QuizzesCompleted  int
	QuestionsAnswered int
	CorrectAnswers    int
	XPEarned          int
	TimeSpent         int
	StreakMaintained  bool
}

// QuizAttemptRepository persists graded attempts.
type QuizAttemptRepository interface {
	// CreateAttempt inserts the attempt. When an attempt for the same
	// (user, quiz, day) already exists it returns AlreadyCompletedError;
	// the storage layer enforces this with a unique constraint so two
	// concurrent submissions cannot both land.
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error

	// HasAttemptOnDay reports whether a graded attempt exists for the
	// user and quiz on the given calendar day.
	HasAttemptOnDay(ctx context.Context, userID, quizID string, day time.Time) (bool, error)

	// GetAttemptsByUserID returns a page of the user's attempts, newest
	// first, along with the total count.
	GetAttemptsByUserID(ctx context.Context, userID string, limit, offset int) ([]QuizAttempt, int, error)
}

// DailyProgressRepository persists the per-day rollups.
type DailyProgressRepository interface {
	// GetByDate returns the rollup for the day, or nil when absent.
	GetByDate(ctx context.Context, userID string, day time.Time) (*DailyProgress, error)

	// Apply upserts the rollup for delta.Date, incrementing the counters
	// by the delta values and OR-ing StreakMaintained.
	Apply(ctx context.Context, delta *DailyProgress) error
}

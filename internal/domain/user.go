package domain

import (
	"context"
	"time"
)

// User represents a domain user object with their progression state. Level is
// always derivable from TotalXP via LevelFromTotalXP; XP is the share accrued
// within the current level and stays below the next level threshold.
type User struct {
	ID                string
	GoogleID          string
	Email             string
	Name              string
	ProfilePictureURL string

	Level          int
	XP             int
	TotalXP        int
	Coins          int
	Streak         int
	LongestStreak  int
	TotalQuizzes   int
	TotalCorrect   int
	TotalAnswered  int
	PerfectQuizzes int

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewUser creates a new User instance at the bottom of the curve.
func NewUser(googleID, email string) *User {
	now := time.Now()
	return &User{
		GoogleID:  googleID,
		Email:     email,
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.GoogleID == "" {
		return NewInvalidInputError("google_id is required")
	}
	if u.Email == "" {
		return NewInvalidInputError("email is required")
	}
	return nil
}

// ProgressDelta is the set of stat changes produced by one graded submission
// (or one achievement unlock), applied to a user in a single update.
type ProgressDelta struct {
	XPEarned       int
	CoinsEarned    int
	Streak         int
	LongestStreak  int
	QuizCompleted  bool
	CorrectAnswers int
	TotalAnswers   int
	Perfect        bool
}

// Apply folds the delta into the user's progression state, rederiving the
// level from the new lifetime XP so the level/XP invariant holds.
func (u *User) Apply(delta ProgressDelta) {
	u.TotalXP += delta.XPEarned
	u.Coins += delta.CoinsEarned
	lp := LevelFromTotalXP(u.TotalXP)
	u.Level = lp.Level
	u.XP = lp.CurrentXP

	u.Streak = delta.Streak
	if delta.LongestStreak > u.LongestStreak {
		u.LongestStreak = delta.LongestStreak
	}
	if delta.QuizCompleted {
		u.TotalQuizzes++
	}
	u.TotalCorrect += delta.CorrectAnswers
	u.TotalAnswered += delta.TotalAnswers
	if delta.Perfect {
		u.PerfectQuizzes++
	}
	u.UpdatedAt = time.Now()
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error

	// UpdateProgression writes only the progression columns of the user.
	UpdateProgression(ctx context.Context, user *User) error
}

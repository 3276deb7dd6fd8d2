package domain

import (
	"context"
	"time"
)

// RequirementType selects which updated stat a requirement is checked
// against.
type RequirementType string

const (
	RequirementTotalQuizzes   RequirementType = "total_quizzes"
	RequirementPerfectQuizzes RequirementType = "perfect_quizzes"
	RequirementStreak         RequirementType = "streak"
	RequirementTotalCorrect   RequirementType = "total_correct"
	RequirementLevel          RequirementType = "level"
	RequirementTotalXP        RequirementType = "total_xp"
)

// Requirement is a typed unlock condition. A single evaluator loop checks
// requirements against the post-submission stats instead of growing a per-
// achievement if/else chain.
type Requirement struct {
	Type      RequirementType
	Threshold int
}

// Achievement is one entry of the static catalog. Unlocking grants its own
// XP/coin reward exactly once.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Rarity      string
	XPReward    int
	CoinReward  int
	Requirement Requirement
}

// Satisfied checks the requirement against the user's updated stats.
func (a *Achievement) Satisfied(u *User) bool {
	var value int
	switch a.Requirement.Type {
	case RequirementTotalQuizzes:
		value = u.TotalQuizzes
	case RequirementPerfectQuizzes:
		value = u.PerfectQuizzes
	case RequirementStreak:
		value = u.Streak
	case RequirementTotalCorrect:
		value = u.TotalCorrect
	case RequirementLevel:
		value = u.Level
	case RequirementTotalXP:
		value = u.TotalXP
	default:
		return false
	}
	return value >= a.Requirement.Threshold
}

// UserAchievement records an unlock, unique per (user, achievement).
type UserAchievement struct {
	UserID        string
	AchievementID string
	UnlockedAt    time.Time
}

// AchievementRepository persists the catalog and unlock records.
type AchievementRepository interface {
	// GetAll returns the full static catalog.
	GetAll(ctx context.Context) ([]Achievement, error)

	// GetUnlockedIDs returns the ids of achievements the user already
	// holds.
	GetUnlockedIDs(ctx context.Context, userID string) (map[string]bool, error)

	// Unlock records the unlock if absent. It reports whether a new row
	// was written; re-triggering an already-held achievement must return
	// false without error.
	Unlock(ctx context.Context, userID, achievementID string, unlockedAt time.Time) (bool, error)

	// GetUserAchievements lists the user's unlocks, newest first.
	GetUserAchievements(ctx context.Context, userID string) ([]UserAchievement, error)

	// SaveAchievement upserts a catalog entry (used by seeding).
	SaveAchievement(ctx context.Context, achievement *Achievement) error
}

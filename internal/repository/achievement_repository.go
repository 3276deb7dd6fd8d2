package repository

import (
	"context"
	"fmt"
	"time"

	"quizquest/internal/domain"
	"quizquest/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxAchievementRepository implements domain.AchievementRepository using sqlx.
type sqlxAchievementRepository struct {
	db *sqlx.DB
}

// NewSQLXAchievementRepository creates a new instance of sqlxAchievementRepository.
func NewSQLXAchievementRepository(db *sqlx.DB) domain.AchievementRepository {
	return &sqlxAchievementRepository{db: db}
}

func toDomainAchievement(m *models.Achievement) *domain.Achievement {
	if m == nil {
		return nil
	}
	return &domain.Achievement{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Rarity:      m.Rarity,
		XPReward:    m.XPReward,
		CoinReward:  m.CoinReward,
		Requirement: domain.Requirement{
			Type:      domain.RequirementType(m.RequirementType),
			Threshold: m.RequirementThreshold,
		},
	}
}

const achievementColumns = `ID, NAME, DESCRIPTION, RARITY, XP_REWARD, COIN_REWARD, REQUIREMENT_TYPE, REQUIREMENT_THRESHOLD`

// GetAll returns the full static catalog.
func (r *sqlxAchievementRepository) GetAll(ctx context.Context) ([]domain.Achievement, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.Achievement
	query := `SELECT ` + achievementColumns + ` FROM achievements ORDER BY REQUIREMENT_TYPE, REQUIREMENT_THRESHOLD`
	if err := executor.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	achievements := make([]domain.Achievement, len(rows))
	for i := range rows {
		achievements[i] = *toDomainAchievement(&rows[i])
	}
	return achievements, nil
}

// GetUnlockedIDs returns the set of achievement ids the user already holds.
func (r *sqlxAchievementRepository) GetUnlockedIDs(ctx context.Context, userID string) (map[string]bool, error) {
	executor := GetExecutor(ctx, r.db)

	var ids []string
	query := `SELECT ACHIEVEMENT_ID FROM user_achievements WHERE USER_ID = :1`
	if err := executor.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get unlocked achievements: %w", err)
	}

	unlocked := make(map[string]bool, len(ids))
	for _, id := range ids {
		unlocked[id] = true
	}
	return unlocked, nil
}

// Unlock inserts the unlock row if absent. A MERGE with only a
// WHEN NOT MATCHED branch makes re-triggering a no-op: zero rows affected
// means the achievement was already held.
func (r *sqlxAchievementRepository) Unlock(ctx context.Context, userID, achievementID string, unlockedAt time.Time) (bool, error) {
	executor := GetExecutor(ctx, r.db)

	query := `MERGE INTO user_achievements ua
	          USING (SELECT :1 AS USER_ID, :2 AS ACHIEVEMENT_ID FROM dual) src
	          ON (ua.USER_ID = src.USER_ID AND ua.ACHIEVEMENT_ID = src.ACHIEVEMENT_ID)
	          WHEN NOT MATCHED THEN INSERT (USER_ID, ACHIEVEMENT_ID, UNLOCKED_AT)
	              VALUES (:3, :4, :5)`
	result, err := executor.ExecContext(ctx, query, userID, achievementID, userID, achievementID, unlockedAt)
	if err != nil {
		return false, fmt.Errorf("failed to unlock achievement %s: %w", achievementID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read unlock result: %w", err)
	}
	return affected == 1, nil
}

// GetUserAchievements lists the user's unlocks, newest first.
func (r *sqlxAchievementRepository) GetUserAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	executor := GetExecutor(ctx, r.db)

	var rows []models.UserAchievement
	query := `SELECT USER_ID, ACHIEVEMENT_ID, UNLOCKED_AT FROM user_achievements
	          WHERE USER_ID = :1 ORDER BY UNLOCKED_AT DESC`
	if err := executor.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user achievements: %w", err)
	}

	unlocks := make([]domain.UserAchievement, len(rows))
	for i, row := range rows {
		unlocks[i] = domain.UserAchievement{
			UserID:        row.UserID,
			AchievementID: row.AchievementID,
			UnlockedAt:    row.UnlockedAt,
		}
	}
	return unlocks, nil
}

// SaveAchievement upserts a catalog entry.
func (r *sqlxAchievementRepository) SaveAchievement(ctx context.Context, achievement *domain.Achievement) error {
	executor := GetExecutor(ctx, r.db)

	query := `MERGE INTO achievements a
	          USING (SELECT :1 AS ID FROM dual) src ON (a.ID = src.ID)
	          WHEN MATCHED THEN UPDATE SET
	              a.NAME = :2, a.DESCRIPTION = :3, a.RARITY = :4, a.XP_REWARD = :5, a.COIN_REWARD = :6,
	              a.REQUIREMENT_TYPE = :7, a.REQUIREMENT_THRESHOLD = :8
	          WHEN NOT MATCHED THEN INSERT (` + achievementColumns + `)
	              VALUES (:9, :10, :11, :12, :13, :14, :15, :16)`
	_, err := executor.ExecContext(ctx, query,
		achievement.ID,
		achievement.Name, achievement.Description, achievement.Rarity, achievement.XPReward, achievement.CoinReward,
		string(achievement.Requirement.Type), achievement.Requirement.Threshold,
		achievement.ID, achievement.Name, achievement.Description, achievement.Rarity,
		achievement.XPReward, achievement.CoinReward,
		string(achievement.Requirement.Type), achievement.Requirement.Threshold,
	)
	if err != nil {
		return fmt.Errorf("failed to save achievement %s: %w", achievement.ID, err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"quizquest/internal/domain"
	"quizquest/internal/dto"
	"quizquest/internal/logger"

	"go.uber.org/zap"
)

// AchievementService evaluates the achievement catalog against a user's
// updated stats and records unlocks.
type AchievementService interface {
	// EvaluateForUser checks every catalog entry against the user's
	// current stats and unlocks the ones newly satisfied. It returns the
	// achievements unlocked by this call; re-triggering an already-held
	// achievement grants nothing.
	EvaluateForUser(ctx context.Context, user *domain.User) ([]domain.Achievement, error)

	// GetUserAchievements lists the user's unlocks with catalog details.
	GetUserAchievements(ctx context.Context, userID string) (*dto.UserAchievementListResponse, error)
}

type achievementServiceImpl struct {
	achievementRepo domain.AchievementRepository
	userRepo        domain.UserRepository
}

// NewAchievementService creates a new instance of AchievementService.
func NewAchievementService(achievementRepo domain.AchievementRepository, userRepo domain.UserRepository) AchievementService {
	return &achievementServiceImpl{
		achievementRepo: achievementRepo,
		userRepo:        userRepo,
	}
}

// EvaluateForUser walks the catalog once. The catalog is data: adding a new
// achievement is a seed row, not a code change. Unlock rewards are folded
// into the user's stats and persisted through UpdateProgression; the repo's
// idempotent unlock guarantees a reward is granted at most once even when
// two submissions race.
func (s *achievementServiceImpl) EvaluateForUser(ctx context.Context, user *domain.User) ([]domain.Achievement, error) {
	appLogger := logger.Get()

	catalog, err := s.achievementRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, nil
	}

	unlocked, err := s.achievementRepo.GetUnlockedIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}

	var newlyUnlocked []domain.Achievement
	var rewardXP, rewardCoins int
	now := time.Now()

	for _, achievement := range catalog {
		if unlocked[achievement.ID] {
			continue
		}
		if !achievement.Satisfied(user) {
			continue
		}

		inserted, err := s.achievementRepo.Unlock(ctx, user.ID, achievement.ID, now)
		if err != nil {
			appLogger.Error("Failed to unlock achievement",
				zap.String("userID", user.ID),
				zap.String("achievementID", achievement.ID),
				zap.Error(err))
			continue
		}
		if !inserted {
			continue
		}

		newlyUnlocked = append(newlyUnlocked, achievement)
		rewardXP += achievement.XPReward
		rewardCoins += achievement.CoinReward
		appLogger.Info("Achievement unlocked",
			zap.String("userID", user.ID),
			zap.String("achievementID", achievement.ID),
			zap.String("name", achievement.Name))
	}

	if rewardXP > 0 || rewardCoins > 0 {
		user.Apply(domain.ProgressDelta{
			XPEarned:      rewardXP,
			CoinsEarned:   rewardCoins,
			Streak:        user.Streak,
			LongestStreak: user.LongestStreak,
		})
		if err := s.userRepo.UpdateProgression(ctx, user); err != nil {
			return newlyUnlocked, fmt.Errorf("failed to apply achievement rewards: %w", err)
		}
	}

	return newlyUnlocked, nil
}

func (s *achievementServiceImpl) GetUserAchievements(ctx context.Context, userID string) (*dto.UserAchievementListResponse, error) {
	catalog, err := s.achievementRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement catalog: %w", err)
	}
	byID := make(map[string]domain.Achievement, len(catalog))
	for _, achievement := range catalog {
		byID[achievement.ID] = achievement
	}

	unlocks, err := s.achievementRepo.GetUserAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user achievements: %w", err)
	}

	resp := &dto.UserAchievementListResponse{
		Achievements: make([]dto.UserAchievementResponse, 0, len(unlocks)),
		TotalCount:   len(unlocks),
		CatalogSize:  len(catalog),
	}
	for _, unlock := range unlocks {
		entry, ok := byID[unlock.AchievementID]
		if !ok {
			continue
		}
		resp.Achievements = append(resp.Achievements, dto.UserAchievementResponse{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			Rarity:      entry.Rarity,
			UnlockedAt:  unlock.UnlockedAt,
		})
	}
	return resp, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"quizquest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func achievementCatalog() []domain.Achievement {
	return []domain.Achievement{
		{
			ID: "first-completion", Name: "First Steps", Rarity: "common", XPReward: 50, CoinReward: 10,
			Requirement: domain.Requirement{Type: domain.RequirementTotalQuizzes, Threshold: 1},
		},
		{
			ID: "perfect-score", Name: "Flawless", Rarity: "rare", XPReward: 100, CoinReward: 25,
			Requirement: domain.Requirement{Type: domain.RequirementPerfectQuizzes, Threshold: 1},
		},
		{
			ID: "week-streak", Name: "Seven Days", Rarity: "epic", XPReward: 200, CoinReward: 50,
			Requirement: domain.Requirement{Type: domain.RequirementStreak, Threshold: 7},
		},
	}
}

func TestEvaluateForUser_UnlocksSatisfied(t *testing.T) {
	achievementRepo := new(MockAchievementRepository)
	userRepo := new(MockUserRepository)
	svc := NewAchievementService(achievementRepo, userRepo)

	user := &domain.User{ID: "user1", Level: 1, TotalQuizzes: 1, PerfectQuizzes: 1, Streak: 1}

	achievementRepo.On("GetAll", mock.Anything).Return(achievementCatalog(), nil)
	achievementRepo.On("GetUnlockedIDs", mock.Anything, "user1").Return(map[string]bool{}, nil)
	achievementRepo.On("Unlock", mock.Anything, "user1", "first-completion", mock.AnythingOfType("time.Time")).Return(true, nil)
	achievementRepo.On("Unlock", mock.Anything, "user1", "perfect-score", mock.AnythingOfType("time.Time")).Return(true, nil)
	userRepo.On("UpdateProgression", mock.Anything, user).Return(nil)

	unlocked, err := svc.EvaluateForUser(context.Background(), user)
	assert.NoError(t, err)
	assert.Len(t, unlocked, 2)

	// 150 bonus XP and 35 coins folded into the user's stats.
	assert.Equal(t, 150, user.TotalXP)
	assert.Equal(t, 35, user.Coins)

	achievementRepo.AssertNotCalled(t, "Unlock", mock.Anything, "user1", "week-streak", mock.Anything)
	achievementRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestEvaluateForUser_SkipsAlreadyUnlocked(t *testing.T) {
	achievementRepo := new(MockAchievementRepository)
	userRepo := new(MockUserRepository)
	svc := NewAchievementService(achievementRepo, userRepo)

	user := &domain.User{ID: "user1", Level: 1, TotalQuizzes: 5, PerfectQuizzes: 2, Streak: 2}

	achievementRepo.On("GetAll", mock.Anything).Return(achievementCatalog(), nil)
	achievementRepo.On("GetUnlockedIDs", mock.Anything, "user1").
		Return(map[string]bool{"first-completion": true, "perfect-score": true}, nil)

	unlocked, err := svc.EvaluateForUser(context.Background(), user)
	assert.NoError(t, err)
	assert.Empty(t, unlocked)

	achievementRepo.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "UpdateProgression", mock.Anything, mock.Anything)
}

func TestEvaluateForUser_ConcurrentUnlockLostRace(t *testing.T) {
	achievementRepo := new(MockAchievementRepository)
	userRepo := new(MockUserRepository)
	svc := NewAchievementService(achievementRepo, userRepo)

	user := &domain.User{ID: "user1", Level: 1, TotalQuizzes: 1}

	achievementRepo.On("GetAll", mock.Anything).Return(achievementCatalog(), nil)
	achievementRepo.On("GetUnlockedIDs", mock.Anything, "user1").Return(map[string]bool{}, nil)
	// Another request inserted the row first; no reward may be granted here.
	achievementRepo.On("Unlock", mock.Anything, "user1", "first-completion", mock.AnythingOfType("time.Time")).Return(false, nil)

	unlocked, err := svc.EvaluateForUser(context.Background(), user)
	assert.NoError(t, err)
	assert.Empty(t, unlocked)
	assert.Equal(t, 0, user.TotalXP)
	userRepo.AssertNotCalled(t, "UpdateProgression", mock.Anything, mock.Anything)
}

func TestGetUserAchievements(t *testing.T) {
	achievementRepo := new(MockAchievementRepository)
	userRepo := new(MockUserRepository)
	svc := NewAchievementService(achievementRepo, userRepo)

	now := time.Now()
	achievementRepo.On("GetAll", mock.Anything).Return(achievementCatalog(), nil)
	achievementRepo.On("GetUserAchievements", mock.Anything, "user1").Return([]domain.UserAchievement{
		{UserID: "user1", AchievementID: "perfect-score", UnlockedAt: now},
	}, nil)

	resp, err := svc.GetUserAchievements(context.Background(), "user1")
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, 3, resp.CatalogSize)
	assert.Len(t, resp.Achievements, 1)
	assert.Equal(t, "Flawless", resp.Achievements[0].Name)
}

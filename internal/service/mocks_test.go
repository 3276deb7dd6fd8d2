package service

import (
	"context"
	"time"

	"quizquest/internal/domain"
	"quizquest/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProgression(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListQuizzes(ctx context.Context, limit, offset int) ([]domain.Quiz, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Quiz), args.Int(1), args.Error(2)
}

func (m *MockQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

// --- MockQuizAttemptRepository ---
type MockQuizAttemptRepository struct {
	mock.Mock
}

func (m *MockQuizAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockQuizAttemptRepository) HasAttemptOnDay(ctx context.Context, userID, quizID string, day time.Time) (bool, error) {
	args := m.Called(ctx, userID, quizID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuizAttemptRepository) GetAttemptsByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.QuizAttempt, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.QuizAttempt), args.Int(1), args.Error(2)
}

// --- MockDailyProgressRepository ---
type MockDailyProgressRepository struct {
	mock.Mock
}

func (m *MockDailyProgressRepository) GetByDate(ctx context.Context, userID string, day time.Time) (*domain.DailyProgress, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyProgress), args.Error(1)
}

func (m *MockDailyProgressRepository) Apply(ctx context.Context, delta *domain.DailyProgress) error {
	args := m.Called(ctx, delta)
	return args.Error(0)
}

// --- MockAchievementRepository ---
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) GetAll(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) GetUnlockedIDs(ctx context.Context, userID string) (map[string]bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockAchievementRepository) Unlock(ctx context.Context, userID, achievementID string, unlockedAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, achievementID, unlockedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockAchievementRepository) GetUserAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAchievement), args.Error(1)
}

func (m *MockAchievementRepository) SaveAchievement(ctx context.Context, achievement *domain.Achievement) error {
	args := m.Called(ctx, achievement)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockTransactionManager ---
// passthroughTxManager runs the function directly; service tests exercise
// the sequencing, not the storage transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- MockQuizContentService ---
type MockQuizContentService struct {
	mock.Mock
}

func (m *MockQuizContentService) GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizContentService) GetQuizForClient(ctx context.Context, quizID string) (*dto.QuizResponse, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResponse), args.Error(1)
}

func (m *MockQuizContentService) ListQuizzes(ctx context.Context, pagination dto.Pagination) (*dto.QuizListResponse, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizListResponse), args.Error(1)
}

func (m *MockQuizContentService) InvalidateQuiz(ctx context.Context, quizID string) error {
	args := m.Called(ctx, quizID)
	return args.Error(0)
}

// --- MockAchievementService ---
type MockAchievementService struct {
	mock.Mock
}

func (m *MockAchievementService) EvaluateForUser(ctx context.Context, user *domain.User) ([]domain.Achievement, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockAchievementService) GetUserAchievements(ctx context.Context, userID string) (*dto.UserAchievementListResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserAchievementListResponse), args.Error(1)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quizquest/internal/cache"
	"quizquest/internal/domain"
	"quizquest/internal/dto"
	"quizquest/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizContentService serves quiz content for reads: full quizzes for the
// submission path and sanitized views for clients.
type QuizContentService interface {
	// GetQuiz returns the full quiz with correctness flags, for grading.
	GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error)

	// GetQuizForClient returns the quiz with correctness stripped.
	GetQuizForClient(ctx context.Context, quizID string) (*dto.QuizResponse, error)

	// ListQuizzes returns a catalog page.
	ListQuizzes(ctx context.Context, pagination dto.Pagination) (*dto.QuizListResponse, error)

	// InvalidateQuiz drops the cached copy after a content change.
	InvalidateQuiz(ctx context.Context, quizID string) error
}

type quizContentServiceImpl struct {
	quizRepo domain.QuizRepository
	cache    domain.Cache
	quizTTL  time.Duration
	group    singleflight.Group
}

// NewQuizContentService creates a new instance of QuizContentService.
func NewQuizContentService(quizRepo domain.QuizRepository, cacheClient domain.Cache, quizTTL time.Duration) QuizContentService {
	return &quizContentServiceImpl{
		quizRepo: quizRepo,
		cache:    cacheClient,
		quizTTL:  quizTTL,
	}
}

func quizCacheKey(quizID string) string {
	return cache.GenerateCacheKey("content", "quiz", quizID)
}

// GetQuiz reads through the cache. Concurrent misses for the same quiz are
// collapsed into one database load via singleflight.
func (s *quizContentServiceImpl) GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	appLogger := logger.Get()
	key := quizCacheKey(quizID)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var quiz domain.Quiz
		if err := json.Unmarshal([]byte(cached), &quiz); err == nil {
			return &quiz, nil
		}
		appLogger.Warn("Failed to decode cached quiz, falling back to DB",
			zap.String("quizID", quizID))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		appLogger.Warn("Quiz cache read failed", zap.String("quizID", quizID), zap.Error(err))
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
		if err != nil {
			return nil, fmt.Errorf("failed to load quiz %s: %w", quizID, err)
		}
		if quiz == nil {
			return nil, domain.NewQuizNotFoundError(quizID)
		}

		if encoded, err := json.Marshal(quiz); err == nil {
			if err := s.cache.Set(ctx, key, string(encoded), s.quizTTL); err != nil {
				appLogger.Warn("Failed to cache quiz", zap.String("quizID", quizID), zap.Error(err))
			}
		}
		return quiz, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Quiz), nil
}

// GetQuizForClient strips option correctness and explanations before the
// quiz leaves the server.
func (s *quizContentServiceImpl) GetQuizForClient(ctx context.Context, quizID string) (*dto.QuizResponse, error) {
	quiz, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	resp := &dto.QuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		XPReward:    quiz.XPReward,
		CoinReward:  quiz.CoinReward,
		Questions:   make([]dto.QuizQuestion, 0, len(quiz.Questions)),
	}
	for _, question := range quiz.Questions {
		options := make([]dto.QuizOption, 0, len(question.Options))
		for _, option := range question.Options {
			options = append(options, dto.QuizOption{ID: option.ID, Text: option.Text})
		}
		resp.Questions = append(resp.Questions, dto.QuizQuestion{
			ID:       question.ID,
			Text:     question.Text,
			Options:  options,
			Points:   question.Points,
			Position: question.Position,
		})
	}
	return resp, nil
}

func (s *quizContentServiceImpl) ListQuizzes(ctx context.Context, pagination dto.Pagination) (*dto.QuizListResponse, error) {
	quizzes, total, err := s.quizRepo.ListQuizzes(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	resp := &dto.QuizListResponse{
		Quizzes:    make([]dto.QuizSummary, 0, len(quizzes)),
		TotalCount: total,
		Limit:      pagination.Limit,
		Offset:     pagination.Offset,
	}
	for _, quiz := range quizzes {
		resp.Quizzes = append(resp.Quizzes, dto.QuizSummary{
			ID:          quiz.ID,
			Title:       quiz.Title,
			Description: quiz.Description,
			XPReward:    quiz.XPReward,
			CoinReward:  quiz.CoinReward,
		})
	}
	return resp, nil
}

func (s *quizContentServiceImpl) InvalidateQuiz(ctx context.Context, quizID string) error {
	return s.cache.Delete(ctx, quizCacheKey(quizID))
}

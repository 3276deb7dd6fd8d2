package service

import (
	"context"
	"fmt"

	"quizquest/internal/domain"
	"quizquest/internal/dto"
)

// UserService serves the authenticated user's profile, progression and
// attempt history.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	GetAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.AttemptListResponse, error)
}

type userServiceImpl struct {
	userRepo    domain.UserRepository
	attemptRepo domain.QuizAttemptRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository, attemptRepo domain.QuizAttemptRepository) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	return &dto.UserProfileResponse{
		ID:                user.ID,
		Email:             user.Email,
		Name:              user.Name,
		ProfilePictureURL: user.ProfilePictureURL,
		Progression:       BuildProgressionSnapshot(user),
	}, nil
}

func (s *userServiceImpl) GetAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.AttemptListResponse, error) {
	attempts, total, err := s.attemptRepo.GetAttemptsByUserID(ctx, userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts for user %s: %w", userID, err)
	}

	resp := &dto.AttemptListResponse{
		Attempts:   make([]dto.AttemptResponse, 0, len(attempts)),
		TotalCount: total,
		Limit:      pagination.Limit,
		Offset:     pagination.Offset,
	}
	for _, attempt := range attempts {
		resp.Attempts = append(resp.Attempts, dto.AttemptResponse{
			ID:          attempt.ID,
			QuizID:      attempt.QuizID,
			Score:       attempt.Score,
			MaxScore:    attempt.MaxScore,
			Percentage:  attempt.Percentage,
			IsPerfect:   attempt.IsPerfect,
			XPEarned:    attempt.XPEarned,
			CoinsEarned: attempt.CoinsEarned,
			TimeSpent:   attempt.TimeSpent,
			CompletedAt: attempt.CompletedAt,
		})
	}
	return resp, nil
}

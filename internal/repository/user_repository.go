package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizquest/internal/domain"
	"quizquest/internal/repository/models"
	"quizquest/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &domain.User{
		ID:                m.ID,
		GoogleID:          m.GoogleID,
		Email:             m.Email,
		Name:              m.Name.String,
		ProfilePictureURL: m.ProfilePictureURL.String,
		Level:             m.UserLevel,
		XP:                m.XP,
		TotalXP:           m.TotalXP,
		Coins:             m.Coins,
		Streak:            m.Streak,
		LongestStreak:     m.LongestStreak,
		TotalQuizzes:      m.TotalQuizzes,
		TotalCorrect:      m.TotalCorrect,
		TotalAnswered:     m.TotalAnswered,
		PerfectQuizzes:    m.PerfectQuizzes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

const userColumns = `ID, GOOGLE_ID, EMAIL, NAME, PROFILE_PICTURE_URL, USER_LEVEL, XP, TOTAL_XP, COINS,
	STREAK, LONGEST_STREAK, TOTAL_QUIZZES, TOTAL_CORRECT, TOTAL_ANSWERED, PERFECT_QUIZZES,
	CREATED_AT, UPDATED_AT, DELETED_AT`

// CreateUser inserts a new user starting at level 1 with empty progression.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	executor := GetExecutor(ctx, r.db)

	if user.ID == "" {
		user.ID = util.NewULID()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	if user.Level < 1 {
		user.Level = 1
	}

	query := `INSERT INTO users (` + userColumns + `)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12, :13, :14, :15, :16, :17, NULL)`

	_, err := executor.ExecContext(ctx, query,
		user.ID,
		user.GoogleID,
		user.Email,
		util.StringToNullString(user.Name),
		util.StringToNullString(user.ProfilePictureURL),
		user.Level,
		user.XP,
		user.TotalXP,
		user.Coins,
		user.Streak,
		user.LongestStreak,
		user.TotalQuizzes,
		user.TotalCorrect,
		user.TotalAnswered,
		user.PerfectQuizzes,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID returns the user, or (nil, nil) when no row exists.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	executor := GetExecutor(ctx, r.db)

	var m models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE ID = :1 AND DELETED_AT IS NULL`
	if err := executor.GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&m), nil
}

// GetUserByGoogleID returns the user, or (nil, nil) when no row exists.
func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	executor := GetExecutor(ctx, r.db)

	var m models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE GOOGLE_ID = :1 AND DELETED_AT IS NULL`
	if err := executor.GetContext(ctx, &m, query, googleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by google id: %w", err)
	}
	return toDomainUser(&m), nil
}

// UpdateUser writes the profile fields.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	executor := GetExecutor(ctx, r.db)

	user.UpdatedAt = time.Now()
	query := `UPDATE users
	          SET EMAIL = :1, NAME = :2, PROFILE_PICTURE_URL = :3, UPDATED_AT = :4
	          WHERE ID = :5`
	_, err := executor.ExecContext(ctx, query,
		user.Email,
		util.StringToNullString(user.Name),
		util.StringToNullString(user.ProfilePictureURL),
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateProgression writes only the progression columns.
func (r *sqlxUserRepository) UpdateProgression(ctx context.Context, user *domain.User) error {
	executor := GetExecutor(ctx, r.db)

	user.UpdatedAt = time.Now()
	query := `UPDATE users
	          SET USER_LEVEL = :1, XP = :2, TOTAL_XP = :3, COINS = :4,
	              STREAK = :5, LONGEST_STREAK = :6, TOTAL_QUIZZES = :7,
	              TOTAL_CORRECT = :8, TOTAL_ANSWERED = :9, PERFECT_QUIZZES = :10,
	              UPDATED_AT = :11
	          WHERE ID = :12`
	_, err := executor.ExecContext(ctx, query,
		user.Level,
		user.XP,
		user.TotalXP,
		user.Coins,
		user.Streak,
		user.LongestStreak,
		user.TotalQuizzes,
		user.TotalCorrect,
		user.TotalAnswered,
		user.PerfectQuizzes,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user progression: %w", err)
	}
	return nil
}

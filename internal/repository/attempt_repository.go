package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"quizquest/internal/domain"
	"quizquest/internal/repository/models"
	"quizquest/internal/util"

	"github.com/jmoiron/sqlx"
)

// isUniqueViolation reports whether the driver error represents a unique
// constraint violation (ORA-00001).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "ORA-00001") || strings.Contains(strings.ToLower(msg), "unique constraint")
}

// sqlxQuizAttemptRepository implements domain.QuizAttemptRepository using sqlx.
type sqlxQuizAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizAttemptRepository creates a new instance of sqlxQuizAttemptRepository.
func NewSQLXQuizAttemptRepository(db *sqlx.DB) domain.QuizAttemptRepository {
	return &sqlxQuizAttemptRepository{db: db}
}

func toModelResults(results []domain.AnswerResult) models.AnswerResultSlice {
	out := make(models.AnswerResultSlice, len(results))
	for i, r := range results {
		out[i] = models.AnswerResult{
			QuestionID:      r.QuestionID,
			SelectedOptions: r.SelectedOptions,
			CorrectOptions:  r.CorrectOptions,
			IsCorrect:       r.IsCorrect,
		}
	}
	return out
}

func toDomainResults(results models.AnswerResultSlice) []domain.AnswerResult {
	out := make([]domain.AnswerResult, len(results))
	for i, r := range results {
		out[i] = domain.AnswerResult{
			QuestionID:      r.QuestionID,
			SelectedOptions: r.SelectedOptions,
			CorrectOptions:  r.CorrectOptions,
			IsCorrect:       r.IsCorrect,
		}
	}
	return out
}

func toDomainAttempt(m *models.QuizAttempt) *domain.QuizAttempt {
	if m == nil {
		return nil
	}
	return &domain.QuizAttempt{
		ID:             m.ID,
		UserID:         m.UserID,
		QuizID:         m.QuizID,
		Score:          m.Score,
		MaxScore:       m.MaxScore,
		Percentage:     m.Percentage,
		CorrectCount:   m.CorrectCount,
		IncorrectCount: m.IncorrectCount,
		TimeSpent:      m.TimeSpent,
		IsPerfect:      m.IsPerfect,
		XPEarned:       m.XPEarned,
		BaseXP:         m.BaseXP,
		StreakBonusXP:  m.StreakBonusXP,
		SpeedBonusXP:   m.SpeedBonusXP,
		PerfectBonusXP: m.PerfectBonusXP,
		CoinsEarned:    m.CoinsEarned,
		Results:        toDomainResults(m.Results),
		CompletedAt:    m.CompletedAt,
	}
}

const attemptColumns = `ID, USER_ID, QUIZ_ID, SCORE, MAX_SCORE, PERCENTAGE, CORRECT_COUNT, INCORRECT_COUNT,
	TIME_SPENT, IS_PERFECT, XP_EARNED, BASE_XP, STREAK_BONUS_XP, SPEED_BONUS_XP, PERFECT_BONUS_XP,
	COINS_EARNED, RESULTS, ATTEMPT_DAY, COMPLETED_AT, CREATED_AT`

// CreateAttempt inserts the attempt row. The unique index over
// (USER_ID, QUIZ_ID, ATTEMPT_DAY) closes the race between concurrent
// submissions; a violation surfaces as AlreadyCompletedError.
func (r *sqlxQuizAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	executor := GetExecutor(ctx, r.db)

	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.CompletedAt.IsZero() {
		attempt.CompletedAt = time.Now()
	}

	resultsValue, err := toModelResults(attempt.Results).Value()
	if err != nil {
		return fmt.Errorf("failed to encode answer results: %w", err)
	}

	query := `INSERT INTO quiz_attempts (` + attemptColumns + `)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12, :13, :14, :15, :16, :17, :18, :19, :20)`
	_, err = executor.ExecContext(ctx, query,
		attempt.ID, attempt.UserID, attempt.QuizID,
		attempt.Score, attempt.MaxScore, attempt.Percentage,
		attempt.CorrectCount, attempt.IncorrectCount,
		attempt.TimeSpent, attempt.IsPerfect,
		attempt.XPEarned, attempt.BaseXP, attempt.StreakBonusXP, attempt.SpeedBonusXP, attempt.PerfectBonusXP,
		attempt.CoinsEarned, resultsValue,
		util.DateOf(attempt.CompletedAt), attempt.CompletedAt, time.Now(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewAlreadyCompletedError(attempt.QuizID)
		}
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

// HasAttemptOnDay reports whether an attempt exists for the user and quiz on
// the given calendar day.
func (r *sqlxQuizAttemptRepository) HasAttemptOnDay(ctx context.Context, userID, quizID string, day time.Time) (bool, error) {
	executor := GetExecutor(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM quiz_attempts WHERE USER_ID = :1 AND QUIZ_ID = :2 AND ATTEMPT_DAY = :3`
	if err := executor.GetContext(ctx, &count, query, userID, quizID, util.DateOf(day)); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check attempts for quiz %s: %w", quizID, err)
	}
	return count > 0, nil
}

// GetAttemptsByUserID returns a page of the user's attempts, newest first.
func (r *sqlxQuizAttemptRepository) GetAttemptsByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.QuizAttempt, int, error) {
	executor := GetExecutor(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []models.QuizAttempt
	query := `SELECT ` + attemptColumns + ` FROM (
	              SELECT a.*, ROW_NUMBER() OVER (ORDER BY a.COMPLETED_AT DESC) AS rn
	              FROM quiz_attempts a WHERE a.USER_ID = :1
	          ) WHERE rn > :2 AND rn <= :3`
	if err := executor.SelectContext(ctx, &rows, query, userID, offset, offset+limit); err != nil {
		return nil, 0, fmt.Errorf("failed to list attempts for user %s: %w", userID, err)
	}

	attempts := make([]domain.QuizAttempt, len(rows))
	for i := range rows {
		attempts[i] = *toDomainAttempt(&rows[i])
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM quiz_attempts WHERE USER_ID = :1`
	if err := executor.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count attempts for user %s: %w", userID, err)
	}

	return attempts, total, nil
}

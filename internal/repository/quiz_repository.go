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

// sqlxQuizRepository implements domain.QuizRepository using sqlx.
type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository.
func NewSQLXQuizRepository(db *sqlx.DB) domain.QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func toDomainQuiz(m *models.Quiz, questions []models.Question) *domain.Quiz {
	if m == nil {
		return nil
	}
	quiz := &domain.Quiz{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description.String,
		XPReward:    m.XPReward,
		CoinReward:  m.CoinReward,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, q := range questions {
		options := make([]domain.Option, len(q.Options))
		for i, o := range q.Options {
			options[i] = domain.Option{ID: o.ID, Text: o.Text, IsCorrect: o.IsCorrect}
		}
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:          q.ID,
			QuizID:      q.QuizID,
			Text:        q.Text,
			Options:     options,
			Explanation: q.Explanation.String,
			Points:      q.Points,
			Position:    q.Position,
		})
	}
	return quiz
}

// GetQuizByID returns the quiz with its ordered questions, or (nil, nil)
// when no row exists.
func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	executor := GetExecutor(ctx, r.db)

	var quiz models.Quiz
	query := `SELECT ID, TITLE, DESCRIPTION, XP_REWARD, COIN_REWARD, CREATED_AT, UPDATED_AT, DELETED_AT
	          FROM quizzes WHERE ID = :1 AND DELETED_AT IS NULL`
	if err := executor.GetContext(ctx, &quiz, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	var questions []models.Question
	questionQuery := `SELECT ID, QUIZ_ID, TEXT, OPTIONS, EXPLANATION, POINTS, POSITION
	                  FROM questions WHERE QUIZ_ID = :1 ORDER BY POSITION ASC`
	if err := executor.SelectContext(ctx, &questions, questionQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", id, err)
	}

	return toDomainQuiz(&quiz, questions), nil
}

// ListQuizzes returns a catalog page without question bodies.
func (r *sqlxQuizRepository) ListQuizzes(ctx context.Context, limit, offset int) ([]domain.Quiz, int, error) {
	executor := GetExecutor(ctx, r.db)

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var rows []models.Quiz
	query := `SELECT ID, TITLE, DESCRIPTION, XP_REWARD, COIN_REWARD, CREATED_AT, UPDATED_AT, DELETED_AT FROM (
	              SELECT q.*, ROW_NUMBER() OVER (ORDER BY q.CREATED_AT DESC) AS rn
	              FROM quizzes q WHERE q.DELETED_AT IS NULL
	          ) WHERE rn > :1 AND rn <= :2`
	if err := executor.SelectContext(ctx, &rows, query, offset, offset+limit); err != nil {
		return nil, 0, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]domain.Quiz, len(rows))
	for i := range rows {
		quizzes[i] = *toDomainQuiz(&rows[i], nil)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM quizzes WHERE DELETED_AT IS NULL`
	if err := executor.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("failed to count quizzes: %w", err)
	}

	return quizzes, total, nil
}

// SaveQuiz persists a quiz and its questions, replacing existing question
// rows. Used by seeding and content management.
func (r *sqlxQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	executor := GetExecutor(ctx, r.db)

	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	now := time.Now()
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = now
	}
	quiz.UpdatedAt = now

	mergeQuery := `MERGE INTO quizzes q
	               USING (SELECT :1 AS ID FROM dual) src ON (q.ID = src.ID)
	               WHEN MATCHED THEN UPDATE SET
	                   q.TITLE = :2, q.DESCRIPTION = :3, q.XP_REWARD = :4, q.COIN_REWARD = :5, q.UPDATED_AT = :6
	               WHEN NOT MATCHED THEN INSERT (ID, TITLE, DESCRIPTION, XP_REWARD, COIN_REWARD, CREATED_AT, UPDATED_AT)
	                   VALUES (:7, :8, :9, :10, :11, :12, :13)`
	_, err := executor.ExecContext(ctx, mergeQuery,
		quiz.ID,
		quiz.Title, util.StringToNullString(quiz.Description), quiz.XPReward, quiz.CoinReward, quiz.UpdatedAt,
		quiz.ID, quiz.Title, util.StringToNullString(quiz.Description), quiz.XPReward, quiz.CoinReward, quiz.CreatedAt, quiz.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	if _, err := executor.ExecContext(ctx, `DELETE FROM questions WHERE QUIZ_ID = :1`, quiz.ID); err != nil {
		return fmt.Errorf("failed to clear questions for quiz %s: %w", quiz.ID, err)
	}

	insertQuestion := `INSERT INTO questions (ID, QUIZ_ID, TEXT, OPTIONS, EXPLANATION, POINTS, POSITION)
	                   VALUES (:1, :2, :3, :4, :5, :6, :7)`
	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		if question.ID == "" {
			question.ID = util.NewULID()
		}
		question.QuizID = quiz.ID

		options := make(models.OptionSlice, len(question.Options))
		for j, o := range question.Options {
			options[j] = models.Option{ID: o.ID, Text: o.Text, IsCorrect: o.IsCorrect}
		}
		optionsValue, err := options.Value()
		if err != nil {
			return fmt.Errorf("failed to encode options: %w", err)
		}

		if _, err := executor.ExecContext(ctx, insertQuestion,
			question.ID, question.QuizID, question.Text, optionsValue,
			util.StringToNullString(question.Explanation), question.Points, question.Position,
		); err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}
	}

	return nil
}

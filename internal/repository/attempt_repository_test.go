package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"quizquest/internal/domain"
	"quizquest/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupAttemptTestDB creates a new sqlx.DB instance and sqlmock for attempt repository testing.
func setupAttemptTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestToDomainAttempt(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	modelAttempt := &models.QuizAttempt{
		ID:             "attempt1",
		UserID:         "user1",
		QuizID:         "quiz1",
		Score:          8,
		MaxScore:       10,
		Percentage:     80,
		CorrectCount:   4,
		IncorrectCount: 1,
		TimeSpent:      120,
		IsPerfect:      false,
		XPEarned:       88,
		BaseXP:         80,
		StreakBonusXP:  8,
		CoinsEarned:    16,
		Results: models.AnswerResultSlice{
			{QuestionID: "q1", SelectedOptions: []string{"a"}, CorrectOptions: []string{"a"}, IsCorrect: true},
		},
		AttemptDay:  now,
		CompletedAt: now,
	}

	domainAttempt := toDomainAttempt(modelAttempt)
	assert.NotNil(t, domainAttempt)
	assert.Equal(t, modelAttempt.ID, domainAttempt.ID)
	assert.Equal(t, modelAttempt.XPEarned, domainAttempt.XPEarned)
	assert.Equal(t, modelAttempt.StreakBonusXP, domainAttempt.StreakBonusXP)
	assert.Len(t, domainAttempt.Results, 1)
	assert.Equal(t, "q1", domainAttempt.Results[0].QuestionID)
	assert.True(t, domainAttempt.Results[0].IsCorrect)

	assert.Nil(t, toDomainAttempt(nil))
}

func TestSQLXQuizAttemptRepository_CreateAttempt_Success(t *testing.T) {
	db, mock := setupAttemptTestDB(t)
	repo := NewSQLXQuizAttemptRepository(db)
	defer db.Close()

	attempt := &domain.QuizAttempt{
		ID:          "attempt-id-123",
		UserID:      "user-id-456",
		QuizID:      "quiz-id-789",
		Score:       10,
		MaxScore:    10,
		Percentage:  100,
		IsPerfect:   true,
		CompletedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quiz_attempts`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateAttempt(context.Background(), attempt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizAttemptRepository_CreateAttempt_UniqueViolation(t *testing.T) {
	db, mock := setupAttemptTestDB(t)
	repo := NewSQLXQuizAttemptRepository(db)
	defer db.Close()

	attempt := &domain.QuizAttempt{
		ID:          "attempt-id-123",
		UserID:      "user-id-456",
		QuizID:      "quiz-id-789",
		CompletedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quiz_attempts`)).
		WillReturnError(errors.New("ORA-00001: unique constraint (QUIZQUEST.UQ_ATTEMPT_USER_QUIZ_DAY) violated"))

	err := repo.CreateAttempt(context.Background(), attempt)
	assert.Error(t, err)

	var domainErr *domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeAlreadyCompleted, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizAttemptRepository_HasAttemptOnDay(t *testing.T) {
	db, mock := setupAttemptTestDB(t)
	repo := NewSQLXQuizAttemptRepository(db)
	defer db.Close()

	day := time.Date(2025, 3, 10, 15, 4, 5, 0, time.Local)

	countRows := sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM quiz_attempts WHERE USER_ID = :1 AND QUIZ_ID = :2 AND ATTEMPT_DAY = :3`)).
		WithArgs("user1", "quiz1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)).
		WillReturnRows(countRows)

	exists, err := repo.HasAttemptOnDay(context.Background(), "user1", "quiz1", day)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizAttemptRepository_GetAttemptsByUserID_Success(t *testing.T) {
	db, mock := setupAttemptTestDB(t)
	repo := NewSQLXQuizAttemptRepository(db)
	defer db.Close()

	userID := "user-test-id"
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"ID", "USER_ID", "QUIZ_ID", "SCORE", "MAX_SCORE", "PERCENTAGE", "CORRECT_COUNT", "INCORRECT_COUNT",
		"TIME_SPENT", "IS_PERFECT", "XP_EARNED", "BASE_XP", "STREAK_BONUS_XP", "SPEED_BONUS_XP", "PERFECT_BONUS_XP",
		"COINS_EARNED", "RESULTS", "ATTEMPT_DAY", "COMPLETED_AT", "CREATED_AT",
	}).
		AddRow("attempt2", userID, "q2", 10, 10, 100.0, 5, 0, 45, true, 170, 100, 0, 20, 50, 20, `[]`, now, now, now).
		AddRow("attempt1", userID, "q1", 6, 10, 60.0, 3, 2, 200, false, 60, 60, 0, 0, 0, 12, `[]`, now, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM quiz_attempts a WHERE a.USER_ID = :1`)).
		WithArgs(userID, 0, 20).
		WillReturnRows(rows)

	countRows := sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM quiz_attempts WHERE USER_ID = :1`)).
		WithArgs(userID).
		WillReturnRows(countRows)

	attempts, total, err := repo.GetAttemptsByUserID(context.Background(), userID, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, attempts, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, "attempt2", attempts[0].ID)
	assert.True(t, attempts[0].IsPerfect)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("ORA-12154: TNS could not resolve")))
	assert.True(t, isUniqueViolation(errors.New("ORA-00001: unique constraint violated")))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: quiz_attempts")))
}

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

// sqlxDailyProgressRepository implements domain.DailyProgressRepository using sqlx.
type sqlxDailyProgressRepository struct {
	db *sqlx.DB
}

// NewSQLXDailyProgressRepository creates a new instance of sqlxDailyProgressRepository.
func NewSQLXDailyProgressRepository(db *sqlx.DB) domain.DailyProgressRepository {
	return &sqlxDailyProgressRepository{db: db}
}

func toDomainDailyProgress(m *models.DailyProgress) *domain.DailyProgress {
	if m == nil {
		return nil
	}
	return &domain.DailyProgress{
		UserID:            m.UserID,
		Date:              m.ProgressDate,
		QuizzesCompleted:  m.QuizzesCompleted,
		QuestionsAnswered: m.QuestionsAnswered,
		CorrectAnswers:    m.CorrectAnswers,
		XPEarned:          m.XPEarned,
		TimeSpent:         m.TimeSpent,
		StreakMaintained:  m.StreakMaintained,
	}
}

// GetByDate returns the rollup for the calendar day, or (nil, nil) when the
// user has no activity on that day.
func (r *sqlxDailyProgressRepository) GetByDate(ctx context.Context, userID string, day time.Time) (*domain.DailyProgress, error) {
	executor := GetExecutor(ctx, r.db)

	var progress models.DailyProgress
	query := `SELECT USER_ID, PROGRESS_DATE, QUIZZES_COMPLETED, QUESTIONS_ANSWERED, CORRECT_ANSWERS,
	                 XP_EARNED, TIME_SPENT, STREAK_MAINTAINED, UPDATED_AT
	          FROM daily_progress WHERE USER_ID = :1 AND PROGRESS_DATE = :2`
	if err := executor.GetContext(ctx, &progress, query, userID, util.DateOf(day)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily progress: %w", err)
	}
	return toDomainDailyProgress(&progress), nil
}

// Apply upserts the rollup for delta.Date in a single MERGE so concurrent
// submissions on the same day accumulate instead of clobbering each other.
func (r *sqlxDailyProgressRepository) Apply(ctx context.Context, delta *domain.DailyProgress) error {
	executor := GetExecutor(ctx, r.db)

	streakFlag := 0
	if delta.StreakMaintained {
		streakFlag = 1
	}
	now := time.Now()

	query := `MERGE INTO daily_progress dp
	          USING (SELECT :1 AS USER_ID, :2 AS PROGRESS_DATE FROM dual) src
	          ON (dp.USER_ID = src.USER_ID AND dp.PROGRESS_DATE = src.PROGRESS_DATE)
	          WHEN MATCHED THEN UPDATE SET
	              dp.QUIZZES_COMPLETED = dp.QUIZZES_COMPLETED + :3,
	              dp.QUESTIONS_ANSWERED = dp.QUESTIONS_ANSWERED + :4,
	              dp.CORRECT_ANSWERS = dp.CORRECT_ANSWERS + :5,
	              dp.XP_EARNED = dp.XP_EARNED + :6,
	              dp.TIME_SPENT = dp.TIME_SPENT + :7,
	              dp.STREAK_MAINTAINED = GREATEST(dp.STREAK_MAINTAINED, :8),
	              dp.UPDATED_AT = :9
	          WHEN NOT MATCHED THEN INSERT
	              (USER_ID, PROGRESS_DATE, QUIZZES_COMPLETED, QUESTIONS_ANSWERED, CORRECT_ANSWERS,
	               XP_EARNED, TIME_SPENT, STREAK_MAINTAINED, UPDATED_AT)
	              VALUES (:10, :11, :12, :13, :14, :15, :16, :17, :18)`
	_, err := executor.ExecContext(ctx, query,
		delta.UserID, util.DateOf(delta.Date),
		delta.QuizzesCompleted, delta.QuestionsAnswered, delta.CorrectAnswers,
		delta.XPEarned, delta.TimeSpent, streakFlag, now,
		delta.UserID, util.DateOf(delta.Date),
		delta.QuizzesCompleted, delta.QuestionsAnswered, delta.CorrectAnswers,
		delta.XPEarned, delta.TimeSpent, streakFlag, now,
	)
	if err != nil {
		return fmt.Errorf("failed to apply daily progress: %w", err)
	}
	return nil
}

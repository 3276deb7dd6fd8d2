package service

import (
	"context"
	"fmt"
	"time"

	"quizquest/internal/domain"
	"quizquest/internal/dto"
	"quizquest/internal/logger"
	"quizquest/internal/util"
	"quizquest/internal/validation"

	"go.uber.org/zap"
)

// SubmissionService grades quiz submissions and applies their rewards.
type SubmissionService interface {
	// Submit grades the answers, applies XP/coin/streak updates atomically
	// and evaluates achievements. One graded attempt is allowed per
	// (user, quiz, calendar day).
	Submit(ctx context.Context, userID, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

type submissionServiceImpl struct {
	userRepo     domain.UserRepository
	attemptRepo  domain.QuizAttemptRepository
	dailyRepo    domain.DailyProgressRepository
	quizContent  QuizContentService
	achievements AchievementService
	txManager    domain.TransactionManager
	validator    *validation.Validator
}

// NewSubmissionService creates a new instance of SubmissionService.
func NewSubmissionService(
	userRepo domain.UserRepository,
	attemptRepo domain.QuizAttemptRepository,
	dailyRepo domain.DailyProgressRepository,
	quizContent QuizContentService,
	achievements AchievementService,
	txManager domain.TransactionManager,
	validator *validation.Validator,
) SubmissionService {
	return &submissionServiceImpl{
		userRepo:     userRepo,
		attemptRepo:  attemptRepo,
		dailyRepo:    dailyRepo,
		quizContent:  quizContent,
		achievements: achievements,
		txManager:    txManager,
		validator:    validator,
	}
}

func (s *submissionServiceImpl) Submit(ctx context.Context, userID, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	appLogger := logger.Get()

	if validationErrors := s.validator.ValidateSubmitRequest(quizID, req); len(validationErrors) > 0 {
		return nil, validationErrors
	}
	timeSpent := domain.ClampTimeSpent(req.TimeSpent)

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	quiz, err := s.quizContent.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Fast-path rejection for repeat submissions. The unique index on the
	// attempt table is the real guard against two concurrent requests.
	alreadyDone, err := s.attemptRepo.HasAttemptOnDay(ctx, userID, quizID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to check today's attempts: %w", err)
	}
	if alreadyDone {
		return nil, domain.NewAlreadyCompletedError(quizID)
	}

	graded := domain.GradeSubmission(quiz.Questions, req.Answers)

	// The streak bonus pays out on the streak the user walked in with; the
	// new streak value from this submission applies from the next one.
	reward := domain.CalculateReward(quiz.XPReward, quiz.CoinReward, graded.Percentage, user.Streak, timeSpent, graded.IsPerfect)

	today, err := s.dailyRepo.GetByDate(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's progress: %w", err)
	}
	yesterday, err := s.dailyRepo.GetByDate(ctx, userID, now.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to load yesterday's progress: %w", err)
	}
	quizzesToday, quizzesYesterday := 0, 0
	if today != nil {
		quizzesToday = today.QuizzesCompleted
	}
	if yesterday != nil {
		quizzesYesterday = yesterday.QuizzesCompleted
	}
	streak := domain.ResolveStreak(user.Streak, user.LongestStreak, quizzesToday, quizzesYesterday)

	previousLevel := user.Level

	attempt := &domain.QuizAttempt{
		ID:             util.NewULID(),
		UserID:         userID,
		QuizID:         quizID,
		Score:          graded.Score,
		MaxScore:       graded.MaxScore,
		Percentage:     graded.Percentage,
		CorrectCount:   graded.CorrectCount,
		IncorrectCount: graded.IncorrectCount,
		TimeSpent:      timeSpent,
		IsPerfect:      graded.IsPerfect,
		XPEarned:       reward.TotalXP,
		BaseXP:         reward.BaseXP,
		StreakBonusXP:  reward.StreakBonus,
		SpeedBonusXP:   reward.SpeedBonus,
		PerfectBonusXP: reward.PerfectBonus,
		CoinsEarned:    reward.Coins,
		Results:        graded.Results,
		CompletedAt:    now,
	}

	delta := domain.ProgressDelta{
		XPEarned:       reward.TotalXP,
		CoinsEarned:    reward.Coins,
		Streak:         streak.Streak,
		LongestStreak:  streak.LongestStreak,
		QuizCompleted:  true,
		CorrectAnswers: graded.CorrectCount,
		TotalAnswers:   len(quiz.Questions),
		Perfect:        graded.IsPerfect,
	}

	// Attempt, daily rollup and user stats land in one transaction so a
	// crash mid-sequence cannot leave a reward half applied.
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attemptRepo.CreateAttempt(txCtx, attempt); err != nil {
			return err
		}

		rollup := &domain.DailyProgress{
			UserID:            userID,
			Date:              now,
			QuizzesCompleted:  1,
			QuestionsAnswered: len(quiz.Questions),
			CorrectAnswers:    graded.CorrectCount,
			XPEarned:          reward.TotalXP,
			TimeSpent:         timeSpent,
			StreakMaintained:  streak.FirstOfDay,
		}
		if err := s.dailyRepo.Apply(txCtx, rollup); err != nil {
			return err
		}

		user.Apply(delta)
		return s.userRepo.UpdateProgression(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	// Achievements run after the commit against the updated stats. A
	// failure here must not fail the submission; the next one re-evaluates
	// the same conditions.
	unlocked, err := s.achievements.EvaluateForUser(ctx, user)
	if err != nil {
		appLogger.Error("Achievement evaluation failed",
			zap.String("userID", userID),
			zap.String("quizID", quizID),
			zap.Error(err))
		unlocked = nil
	}

	appLogger.Info("Quiz submission graded",
		zap.String("userID", userID),
		zap.String("quizID", quizID),
		zap.Int("score", graded.Score),
		zap.Int("xpEarned", reward.TotalXP),
		zap.Int("streak", streak.Streak),
		zap.Bool("perfect", graded.IsPerfect))

	return s.buildResponse(quiz, attempt, reward, streak, user, previousLevel, unlocked), nil
}

func (s *submissionServiceImpl) buildResponse(
	quiz *domain.Quiz,
	attempt *domain.QuizAttempt,
	reward domain.RewardBreakdown,
	streak domain.StreakUpdate,
	user *domain.User,
	previousLevel int,
	unlocked []domain.Achievement,
) *dto.SubmitQuizResponse {
	explanations := make(map[string]string, len(quiz.Questions))
	for _, question := range quiz.Questions {
		explanations[question.ID] = question.Explanation
	}

	results := make([]dto.QuestionResult, 0, len(attempt.Results))
	for _, r := range attempt.Results {
		results = append(results, dto.QuestionResult{
			QuestionID:      r.QuestionID,
			SelectedOptions: r.SelectedOptions,
			CorrectOptions:  r.CorrectOptions,
			IsCorrect:       r.IsCorrect,
			Explanation:     explanations[r.QuestionID],
		})
	}

	achievements := make([]dto.UnlockedAchievement, 0, len(unlocked))
	for _, a := range unlocked {
		achievements = append(achievements, dto.UnlockedAchievement{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Rarity:      a.Rarity,
			XPReward:    a.XPReward,
			CoinReward:  a.CoinReward,
		})
	}

	return &dto.SubmitQuizResponse{
		Attempt: dto.AttemptSummary{
			Score:          attempt.Score,
			MaxScore:       attempt.MaxScore,
			Percentage:     attempt.Percentage,
			CorrectCount:   attempt.CorrectCount,
			IncorrectCount: attempt.IncorrectCount,
			IsPerfect:      attempt.IsPerfect,
			TimeSpent:      attempt.TimeSpent,
		},
		Results: results,
		XP: dto.XPBreakdown{
			Base:    reward.BaseXP,
			Streak:  reward.StreakBonus,
			Speed:   reward.SpeedBonus,
			Perfect: reward.PerfectBonus,
			Total:   reward.TotalXP,
		},
		Coins:             reward.Coins,
		LeveledUp:         user.Level > previousLevel,
		NewLevel:          user.Level,
		Streak:            streak.Streak,
		StreakIncremented: streak.Incremented,
		Achievements:      achievements,
		User:              BuildProgressionSnapshot(user),
	}
}

// BuildProgressionSnapshot projects a user's progression state into its
// response form.
func BuildProgressionSnapshot(user *domain.User) dto.ProgressionSnapshot {
	return dto.ProgressionSnapshot{
		Level:          user.Level,
		CurrentXP:      user.XP,
		NextLevelXP:    domain.XPForLevel(user.Level),
		TotalXP:        user.TotalXP,
		Coins:          user.Coins,
		Streak:         user.Streak,
		LongestStreak:  user.LongestStreak,
		TotalQuizzes:   user.TotalQuizzes,
		TotalCorrect:   user.TotalCorrect,
		TotalAnswered:  user.TotalAnswered,
		PerfectQuizzes: user.PerfectQuizzes,
	}
}

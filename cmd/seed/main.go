package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"quizquest/internal/config"
	"quizquest/internal/database"
	"quizquest/internal/domain"
	"quizquest/internal/logger"
	"quizquest/internal/repository"
	"quizquest/internal/util"

	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/initial_quizzes.json"

// achievementCatalog is the static unlock catalog. Requirements are data;
// adding an entry here is the whole change.
var achievementCatalog = []domain.Achievement{
	{
		ID: "first-completion", Name: "First Steps",
		Description: "Complete your first quiz.", Rarity: "common",
		XPReward: 50, CoinReward: 10,
		Requirement: domain.Requirement{Type: domain.RequirementTotalQuizzes, Threshold: 1},
	},
	{
		ID: "perfect-score", Name: "Flawless",
		Description: "Answer every question of a quiz correctly.", Rarity: "rare",
		XPReward: 100, CoinReward: 25,
		Requirement: domain.Requirement{Type: domain.RequirementPerfectQuizzes, Threshold: 1},
	},
	{
		ID: "week-streak", Name: "Seven Days",
		Description: "Keep a daily streak for a week.", Rarity: "epic",
		XPReward: 200, CoinReward: 50,
		Requirement: domain.Requirement{Type: domain.RequirementStreak, Threshold: 7},
	},
	{
		ID: "month-streak", Name: "Habit Formed",
		Description: "Keep a daily streak for thirty days.", Rarity: "legendary",
		XPReward: 1000, CoinReward: 250,
		Requirement: domain.Requirement{Type: domain.RequirementStreak, Threshold: 30},
	},
	{
		ID: "fifty-quizzes", Name: "Half Century",
		Description: "Complete fifty quizzes.", Rarity: "rare",
		XPReward: 300, CoinReward: 75,
		Requirement: domain.Requirement{Type: domain.RequirementTotalQuizzes, Threshold: 50},
	},
	{
		ID: "level-five", Name: "Climbing",
		Description: "Reach level five.", Rarity: "rare",
		XPReward: 150, CoinReward: 40,
		Requirement: domain.Requirement{Type: domain.RequirementLevel, Threshold: 5},
	},
	{
		ID: "hundred-correct", Name: "Sharp Mind",
		Description: "Answer one hundred questions correctly.", Rarity: "epic",
		XPReward: 250, CoinReward: 60,
		Requirement: domain.Requirement{Type: domain.RequirementTotalCorrect, Threshold: 100},
	},
}

// seedOption mirrors one option entry in the seed file.
type seedOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type seedQuestion struct {
	Text        string       `json:"text"`
	Options     []seedOption `json:"options"`
	Explanation string       `json:"explanation"`
	Points      int          `json:"points"`
}

type seedQuiz struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	XPReward    int            `json:"xpReward"`
	CoinReward  int            `json:"coinReward"`
	Questions   []seedQuestion `json:"questions"`
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	achievementRepo := repository.NewSQLXAchievementRepository(db)
	quizRepo := repository.NewSQLXQuizRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	err = txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range achievementCatalog {
			if err := achievementRepo.SaveAchievement(txCtx, &achievementCatalog[i]); err != nil {
				return fmt.Errorf("failed to seed achievement %s: %w", achievementCatalog[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Achievement seeding failed", zap.Error(err))
	}
	log.Info("Achievement catalog seeded", zap.Int("count", len(achievementCatalog)))

	quizzes, err := loadSeedQuizzes(seedFilePath)
	if err != nil {
		log.Fatal("Failed to load quiz seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	err = txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, quiz := range quizzes {
			if err := quizRepo.SaveQuiz(txCtx, quiz); err != nil {
				return fmt.Errorf("failed to seed quiz %q: %w", quiz.Title, err)
			}
			log.Info("Quiz seeded", zap.String("title", quiz.Title), zap.Int("questions", len(quiz.Questions)))
		}
		return nil
	})
	if err != nil {
		log.Fatal("Quiz seeding failed", zap.Error(err))
	}

	log.Info("Initial data seeding process completed.", zap.Int("quizzes", len(quizzes)))
}

func loadSeedQuizzes(path string) ([]*domain.Quiz, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seeds []seedQuiz
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(seeds))
	for _, seed := range seeds {
		quiz := &domain.Quiz{
			ID:          util.NewULID(),
			Title:       seed.Title,
			Description: seed.Description,
			XPReward:    seed.XPReward,
			CoinReward:  seed.CoinReward,
		}
		for i, sq := range seed.Questions {
			question := domain.Question{
				ID:          util.NewULID(),
				QuizID:      quiz.ID,
				Text:        sq.Text,
				Explanation: sq.Explanation,
				Points:      sq.Points,
				Position:    i + 1,
			}
			if question.Points <= 0 {
				question.Points = 5
			}
			for _, so := range sq.Options {
				question.Options = append(question.Options, domain.Option{
					ID:        util.NewULID(),
					Text:      so.Text,
					IsCorrect: so.IsCorrect,
				})
			}
			quiz.Questions = append(quiz.Questions, question)
		}
		if err := quiz.Validate(); err != nil {
			return nil, fmt.Errorf("seed quiz %q is invalid: %w", quiz.Title, err)
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

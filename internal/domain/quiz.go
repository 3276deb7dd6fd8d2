package domain

import (
	"context"
	"time"
)

// Option is a single selectable answer for a question. IsCorrect must never
// be serialized to a client before grading.
type Option struct {
	ID        string
	Text      string
	IsCorrect bool
}

// Question represents a multiple-choice question within a quiz. Options keep
// the authoring order; Position orders questions within the quiz.
type Question struct {
	ID          string
	QuizID      string
	Text        string
	Options     []Option
	Explanation string
	Points      int
	Position    int
}

// CorrectOptionIDs returns the ids of all options marked correct.
func (q *Question) CorrectOptionIDs() []string {
	var ids []string
	for _, o := range q.Options {
		if o.IsCorrect {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Quiz represents a quiz in the domain. Read-only to the submission engine.
type Quiz struct {
	ID          string
	Title       string
	Description string
	XPReward    int
	CoinReward  int
	Questions   []Question
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return NewInvalidInputError("title is required")
	}
	if q.XPReward < 0 || q.CoinReward < 0 {
		return NewInvalidInputError("rewards must not be negative")
	}
	if len(q.Questions) == 0 {
		return NewInvalidInputError("at least one question is required")
	}
	for _, question := range q.Questions {
		if len(question.CorrectOptionIDs()) == 0 {
			return NewInvalidInputError("every question needs a correct option")
		}
	}
	return nil
}

// QuizRepository defines the interface for quiz content persistence.
type QuizRepository interface {
	// GetQuizByID retrieves a quiz with its ordered questions and options.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// ListQuizzes returns the quiz catalog without question bodies.
	ListQuizzes(ctx context.Context, limit, offset int) ([]Quiz, int, error)

	// SaveQuiz persists a quiz with its questions and options.
	SaveQuiz(ctx context.Context, quiz *Quiz) error
}

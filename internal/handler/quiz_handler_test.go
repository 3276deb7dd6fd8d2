package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"quizquest/internal/domain"
	"quizquest/internal/dto"
	"quizquest/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, userID, quizID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	args := m.Called(ctx, userID, quizID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitQuizResponse), args.Error(1)
}

type MockQuizContentService struct {
	mock.Mock
}

func (m *MockQuizContentService) GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizContentService) GetQuizForClient(ctx context.Context, quizID string) (*dto.QuizResponse, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResponse), args.Error(1)
}

func (m *MockQuizContentService) ListQuizzes(ctx context.Context, pagination dto.Pagination) (*dto.QuizListResponse, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizListResponse), args.Error(1)
}

func (m *MockQuizContentService) InvalidateQuiz(ctx context.Context, quizID string) error {
	args := m.Called(ctx, quizID)
	return args.Error(0)
}

func newQuizTestApp(h *QuizHandler, userID string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals(middleware.UserIDKey, userID)
		}
		return c.Next()
	})
	app.Get("/api/quizzes/:id", h.GetQuiz)
	app.Post("/api/quizzes/:id/submit", h.SubmitQuiz)
	return app
}

func TestSubmitQuiz_Success(t *testing.T) {
	submission := new(MockSubmissionService)
	quizContent := new(MockQuizContentService)
	h := NewQuizHandler(quizContent, submission)
	app := newQuizTestApp(h, "user1")

	expected := &dto.SubmitQuizResponse{
		Attempt:  dto.AttemptSummary{Score: 10, MaxScore: 10, Percentage: 100, IsPerfect: true},
		XP:       dto.XPBreakdown{Base: 100, Speed: 20, Perfect: 50, Total: 170},
		Coins:    20,
		NewLevel: 2,
		Streak:   1,
	}
	submission.On("Submit", mock.Anything, "user1", "quiz1", mock.AnythingOfType("*dto.SubmitQuizRequest")).
		Return(expected, nil)

	body := `{"answers":{"q1":["a"]},"timeSpent":30}`
	req := httptest.NewRequest("POST", "/api/quizzes/quiz1/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var got dto.SubmitQuizResponse
	assert.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 170, got.XP.Total)
	assert.Equal(t, 2, got.NewLevel)
	submission.AssertExpectations(t)
}

func TestSubmitQuiz_AlreadyCompletedMapsToConflict(t *testing.T) {
	submission := new(MockSubmissionService)
	quizContent := new(MockQuizContentService)
	h := NewQuizHandler(quizContent, submission)
	app := newQuizTestApp(h, "user1")

	submission.On("Submit", mock.Anything, "user1", "quiz1", mock.AnythingOfType("*dto.SubmitQuizRequest")).
		Return(nil, domain.NewAlreadyCompletedError("quiz1"))

	body := `{"answers":{"q1":["a"]}}`
	req := httptest.NewRequest("POST", "/api/quizzes/quiz1/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSubmitQuiz_Unauthenticated(t *testing.T) {
	submission := new(MockSubmissionService)
	quizContent := new(MockQuizContentService)
	h := NewQuizHandler(quizContent, submission)
	app := newQuizTestApp(h, "")

	body := `{"answers":{}}`
	req := httptest.NewRequest("POST", "/api/quizzes/quiz1/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	submission.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetQuiz_NotFoundMapsTo404(t *testing.T) {
	submission := new(MockSubmissionService)
	quizContent := new(MockQuizContentService)
	h := NewQuizHandler(quizContent, submission)
	app := newQuizTestApp(h, "")

	quizContent.On("GetQuizForClient", mock.Anything, "missing").
		Return(nil, domain.NewQuizNotFoundError("missing"))

	req := httptest.NewRequest("GET", "/api/quizzes/missing", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

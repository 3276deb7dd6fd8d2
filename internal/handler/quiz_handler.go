package handler

import (
	"strconv"

	"quizquest/internal/dto"
	"quizquest/internal/logger"
	"quizquest/internal/middleware"
	"quizquest/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler serves quiz content and submissions.
type QuizHandler struct {
	quizContent service.QuizContentService
	submission  service.SubmissionService
}

func NewQuizHandler(quizContent service.QuizContentService, submission service.SubmissionService) *QuizHandler {
	return &QuizHandler{
		quizContent: quizContent,
		submission:  submission,
	}
}

func parsePagination(c *fiber.Ctx) dto.Pagination {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	return dto.Pagination{Limit: limit, Offset: (page - 1) * limit}
}

// ListQuizzes returns a page of the quiz catalog.
// @Summary List Quizzes
// @Description Returns a paginated page of the quiz catalog without question bodies.
// @Tags quizzes
// @Produce json
// @Param limit query int false "Items per page" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuizListResponse
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	resp, err := h.quizContent.ListQuizzes(c.Context(), parsePagination(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz returns one quiz with its questions, correctness stripped.
// @Summary Get Quiz
// @Description Returns a quiz ready to be taken. Option correctness and explanations are never included.
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse "Quiz not found"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")
	resp, err := h.quizContent.GetQuizForClient(c.Context(), quizID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitQuiz grades a submission and applies its rewards.
// @Summary Submit Quiz
// @Description Grades the submitted answers, awards XP/coins, updates the daily streak and evaluates achievements. One graded attempt is allowed per quiz per calendar day.
// @Tags quizzes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.SubmitQuizRequest true "Answers and completion time"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid submission"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "Quiz or user not found"
// @Failure 409 {object} middleware.ErrorResponse "Already completed today"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	appLogger := logger.Get()

	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		appLogger.Warn("User ID not found in context for SubmitQuiz", zap.String("path", c.Path()))
		return c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}

	quizID := c.Params("id")

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		appLogger.Warn("Failed to parse submission body",
			zap.String("userID", userID),
			zap.String("quizID", quizID),
			zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(middleware.ErrorResponse{
			Code: "INVALID_BODY", Message: "Request body must be valid JSON", Status: fiber.StatusBadRequest,
		})
	}

	resp, err := h.submission.Submit(c.Context(), userID, quizID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

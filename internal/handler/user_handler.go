package handler

import (
	"quizquest/internal/logger"
	"quizquest/internal/middleware"
	"quizquest/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService        service.UserService
	achievementService service.AchievementService
}

func NewUserHandler(userService service.UserService, achievementService service.AchievementService) *UserHandler {
	return &UserHandler{
		userService:        userService,
		achievementService: achievementService,
	}
}

func requireUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		logger.Get().Warn("User ID not found in context", zap.String("path", c.Path()))
		return "", c.Status(fiber.StatusUnauthorized).JSON(middleware.ErrorResponse{
			Code: "INVALID_USER_CONTEXT", Message: "User ID not found in context", Status: fiber.StatusUnauthorized,
		})
	}
	return userID, nil
}

// GetMyProfile retrieves the profile of the currently authenticated user.
// @Summary Get My Profile
// @Description Retrieves the profile and progression state of the logged-in user.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil || userID == "" {
		return err
	}

	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GetMyAttempts lists the authenticated user's past attempts, newest first.
// @Summary Get My Attempts
// @Description Returns a paginated list of the user's graded attempts.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Items per page" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.AttemptListResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/me/attempts [get]
func (h *UserHandler) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil || userID == "" {
		return err
	}

	resp, err := h.userService.GetAttempts(c.Context(), userID, parsePagination(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMyAchievements lists the authenticated user's unlocked achievements.
// @Summary Get My Achievements
// @Description Returns the user's unlocked achievements with catalog details.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserAchievementListResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/me/achievements [get]
func (h *UserHandler) GetMyAchievements(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil || userID == "" {
		return err
	}

	resp, err := h.achievementService.GetUserAchievements(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

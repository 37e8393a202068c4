package handler

import (
	"study-buddy/internal/middleware"
	"study-buddy/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProgressHandler serves the gamification and analytics views.
type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetProgress godoc
// @Summary Progress overview
// @Description Level, XP, streak, achievements and milestone ratios.
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ProgressResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /progress [get]
func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	resp, err := h.progressService.GetProgress(c.UserContext(), middleware.WorkspaceID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RecordStudy godoc
// @Summary Log a study block
// @Description Credits study minutes and XP without running the agents.
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.RewardResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /progress/study [post]
func (h *ProgressHandler) RecordStudy(c *fiber.Ctx) error {
	resp, err := h.progressService.RecordStudy(c.UserContext(), middleware.WorkspaceID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAnalytics godoc
// @Summary Study analytics
// @Description Sessions per day and the distribution of difficulties and levels.
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /analytics [get]
func (h *ProgressHandler) GetAnalytics(c *fiber.Ctx) error {
	resp, err := h.progressService.GetAnalytics(c.UserContext(), middleware.WorkspaceID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

package handler

import (
	"study-buddy/internal/middleware"
	"study-buddy/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	historyService service.HistoryService
}

func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func sessionIDParam(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.ValidatedSessionIDKey).(string); ok {
		return id
	}
	return c.Params("id")
}

// ListHistory godoc
// @Summary List past sessions
// @Description Returns the workspace's sessions, newest first, with a preview of each explanation.
// @Tags history
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /history [get]
func (h *HistoryHandler) ListHistory(c *fiber.Ctx) error {
	resp, err := h.historyService.List(c.UserContext(), middleware.WorkspaceID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSession godoc
// @Summary Get one session
// @Tags history
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /history/{id} [get]
func (h *HistoryHandler) GetSession(c *fiber.Ctx) error {
	resp, err := h.historyService.Get(c.UserContext(), middleware.WorkspaceID(c), sessionIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ReviewSession godoc
// @Summary Review a session
// @Description Loads a past session back into the editor and the current results.
// @Tags history
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /history/{id}/review [post]
func (h *HistoryHandler) ReviewSession(c *fiber.Ctx) error {
	resp, err := h.historyService.Review(c.UserContext(), middleware.WorkspaceID(c), sessionIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteSession godoc
// @Summary Delete one session
// @Tags history
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /history/{id} [delete]
func (h *HistoryHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.historyService.Delete(c.UserContext(), middleware.WorkspaceID(c), sessionIDParam(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearHistory godoc
// @Summary Clear history
// @Description Removes every session and resets the quiz counter.
// @Tags history
// @Security ApiKeyAuth
// @Success 204
// @Failure 401 {object} middleware.ErrorResponse
// @Router /history [delete]
func (h *HistoryHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.historyService.Clear(c.UserContext(), middleware.WorkspaceID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

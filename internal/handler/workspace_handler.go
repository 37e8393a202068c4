package handler

import (
	"study-buddy/internal/logger"
	"study-buddy/internal/middleware"
	"study-buddy/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WorkspaceHandler opens and closes anonymous study workspaces.
type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// CreateWorkspace godoc
// @Summary Open a study workspace
// @Description Creates an empty workspace and returns the bearer token that addresses it.
// @Tags workspace
// @Produce json
// @Success 201 {object} dto.CreateWorkspaceResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *fiber.Ctx) error {
	resp, err := h.workspaceService.CreateWorkspace(c.UserContext())
	if err != nil {
		return err
	}
	logger.Get().Info("Workspace created", zap.String("workspaceID", resp.WorkspaceID))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteWorkspace godoc
// @Summary End the study session
// @Description Discards the workspace, its results and its history.
// @Tags workspace
// @Security ApiKeyAuth
// @Success 204
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /workspaces/current [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *fiber.Ctx) error {
	workspaceID := middleware.WorkspaceID(c)
	if err := h.workspaceService.DeleteWorkspace(c.UserContext(), workspaceID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

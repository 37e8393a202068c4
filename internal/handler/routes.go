package handler

import (
	"study-buddy/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler mounted under /api.
type Handlers struct {
	Workspace *WorkspaceHandler
	Study     *StudyHandler
	History   *HistoryHandler
	Progress  *ProgressHandler
	Normalize *NormalizeHandler
}

// RegisterRoutes mounts the API on router. Every route except workspace creation,
// normalization and health requires a workspace token.
func RegisterRoutes(router fiber.Router, h Handlers, tokens middleware.TokenValidator) {
	validationMiddleware := middleware.NewValidationMiddleware()
	requireWorkspace := middleware.RequireWorkspace(tokens)

	router.Get("/health", Health)
	router.Post("/normalize", h.Normalize.Normalize)

	router.Post("/workspaces", h.Workspace.CreateWorkspace)
	router.Delete("/workspaces/current", requireWorkspace, h.Workspace.DeleteWorkspace)

	study := router.Group("/study", requireWorkspace)
	study.Post("/generate", h.Study.Generate)
	study.Post("/explain", h.Study.Explain)
	study.Post("/quiz", h.Study.Quiz)
	study.Get("/results", h.Study.Results)
	study.Delete("/results", h.Study.ResetResults)
	study.Put("/draft", h.Study.SaveDraft)
	study.Get("/export", validationMiddleware.ValidateExportSessionID(), h.Study.Export)

	history := router.Group("/history", requireWorkspace)
	history.Get("/", h.History.ListHistory)
	history.Delete("/", h.History.ClearHistory)
	history.Get("/:id", validationMiddleware.ValidateSessionID(), h.History.GetSession)
	history.Delete("/:id", validationMiddleware.ValidateSessionID(), h.History.DeleteSession)
	history.Post("/:id/review", validationMiddleware.ValidateSessionID(), h.History.ReviewSession)

	router.Get("/progress", requireWorkspace, h.Progress.GetProgress)
	router.Post("/progress/study", requireWorkspace, h.Progress.RecordStudy)
	router.Get("/analytics", requireWorkspace, h.Progress.GetAnalytics)
}

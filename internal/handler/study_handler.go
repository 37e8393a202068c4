package handler

import (
	"fmt"
	"strings"

	"study-buddy/internal/domain"
	"study-buddy/internal/dto"
	"study-buddy/internal/logger"
	"study-buddy/internal/middleware"
	"study-buddy/internal/quizfmt"
	"study-buddy/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StudyHandler serves the explain and quiz pipelines of the current workspace.
type StudyHandler struct {
	studyService  service.StudyService
	exportService service.ExportService
}

func NewStudyHandler(studyService service.StudyService, exportService service.ExportService) *StudyHandler {
	return &StudyHandler{
		studyService:  studyService,
		exportService: exportService,
	}
}

func parseStudyRequest(c *fiber.Ctx) (*dto.StudyRequest, error) {
	var req dto.StudyRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse study request", zap.Error(err))
		return nil, domain.NewInvalidInputError("request body must be a JSON object")
	}
	return &req, nil
}

// Generate godoc
// @Summary Explain and quiz a text
// @Description Runs the explanation agent, then the quiz agent on its output, and records the session in history.
// @Tags study
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.StudyRequest true "Study text and settings"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /study/generate [post]
func (h *StudyHandler) Generate(c *fiber.Ctx) error {
	req, err := parseStudyRequest(c)
	if err != nil {
		return err
	}
	resp, err := h.studyService.GenerateAll(c.UserContext(), middleware.WorkspaceID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Explain godoc
// @Summary Explain a text
// @Description Runs only the explanation agent. Nothing is added to history.
// @Tags study
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.StudyRequest true "Study text and settings"
// @Success 200 {object} dto.ExplainResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /study/explain [post]
func (h *StudyHandler) Explain(c *fiber.Ctx) error {
	req, err := parseStudyRequest(c)
	if err != nil {
		return err
	}
	resp, err := h.studyService.ExplainOnly(c.UserContext(), middleware.WorkspaceID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Quiz godoc
// @Summary Quiz the current explanation
// @Description Runs the quiz agent on the current explanation, generating one first when none exists.
// @Tags study
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.StudyRequest true "Study text and settings"
// @Success 200 {object} dto.QuizOnlyResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /study/quiz [post]
func (h *StudyHandler) Quiz(c *fiber.Ctx) error {
	req, err := parseStudyRequest(c)
	if err != nil {
		return err
	}
	resp, err := h.studyService.QuizOnly(c.UserContext(), middleware.WorkspaceID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Results godoc
// @Summary Current results
// @Description Returns the current explanation and the normalized quiz.
// @Tags study
// @Security ApiKeyAuth
// @Produce json
// @Param style query string false "Quiz layout: bullets (default) or headings"
// @Param format query string false "markdown (default) or html"
// @Success 200 {object} dto.ResultsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /study/results [get]
func (h *StudyHandler) Results(c *fiber.Ctx) error {
	style, err := quizfmt.ParseStyle(c.Query("style"))
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("style", c.Query("style"))}
	}

	var withHTML bool
	switch format := strings.ToLower(c.Query("format")); format {
	case "", "markdown":
	case "html":
		withHTML = true
	default:
		return domain.ValidationErrors{domain.NewInvalidFormatError("format", format)}
	}

	resp, err := h.studyService.Results(c.UserContext(), middleware.WorkspaceID(c), style, withHTML)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ResetResults godoc
// @Summary Clear current results
// @Description Empties the current explanation and quiz. History is kept.
// @Tags study
// @Security ApiKeyAuth
// @Success 204
// @Failure 401 {object} middleware.ErrorResponse
// @Router /study/results [delete]
func (h *StudyHandler) ResetResults(c *fiber.Ctx) error {
	if err := h.studyService.ResetResults(c.UserContext(), middleware.WorkspaceID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SaveDraft godoc
// @Summary Save the editor text
// @Tags study
// @Security ApiKeyAuth
// @Accept json
// @Param request body dto.DraftRequest true "Draft text"
// @Success 204
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /study/draft [put]
func (h *StudyHandler) SaveDraft(c *fiber.Ctx) error {
	var req dto.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be a JSON object")
	}
	if err := h.studyService.SaveDraft(c.UserContext(), middleware.WorkspaceID(c), req.Text); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary Download a study document
// @Description Renders the current results, or a history session, as plain text or PDF.
// @Tags study
// @Security ApiKeyAuth
// @Produce plain
// @Produce application/pdf
// @Param format query string false "txt (default) or pdf"
// @Param session_id query string false "History session to export instead of the current results"
// @Success 200 {file} file
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /study/export [get]
func (h *StudyHandler) Export(c *fiber.Ctx) error {
	sessionID, _ := c.Locals(middleware.ValidatedSessionIDKey).(string)

	file, err := h.exportService.Export(c.UserContext(), middleware.WorkspaceID(c), sessionID, c.Query("format"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}

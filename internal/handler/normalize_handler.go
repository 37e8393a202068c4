package handler

import (
	"study-buddy/internal/domain"
	"study-buddy/internal/dto"
	"study-buddy/internal/quizfmt"
	"study-buddy/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// NormalizeHandler exposes the quiz normalizer without touching any workspace.
type NormalizeHandler struct {
	validator *validation.Validator
}

func NewNormalizeHandler() *NormalizeHandler {
	return &NormalizeHandler{validator: validation.NewValidator()}
}

// Normalize godoc
// @Summary Normalize quiz text
// @Description Classifies each non-blank line of a generated quiz and renders it as Markdown.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.NormalizeRequest true "Quiz text and style (bullets or headings)"
// @Success 200 {object} dto.NormalizeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /normalize [post]
func (h *NormalizeHandler) Normalize(c *fiber.Ctx) error {
	var req dto.NormalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be a JSON object")
	}

	style, errs := h.validator.ValidateNormalizeRequest(&req)
	if len(errs) > 0 {
		return errs
	}

	lines := quizfmt.Classify(req.Text)
	return c.JSON(dto.NormalizeResponse{
		Lines:    lines,
		Markdown: quizfmt.Render(lines, style),
	})
}

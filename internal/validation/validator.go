package validation

import (
	"strings"
	"unicode/utf8"

	"study-buddy/internal/domain"
	"study-buddy/internal/dto"
	"study-buddy/internal/quizfmt"
	"study-buddy/internal/util"
)

const (
	MinTextLength = 50
	MaxTextLength = 50000

	MinQuestions        = 3
	MaxQuestions        = 20
	DefaultNumQuestions = 7

	MaxLabelLength = 32

	DefaultLevel      = "Intermediate"
	DefaultDifficulty = "Medium"
	DefaultMode       = "Active Recall"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStudyRequest fills in defaults for empty settings, then checks every field.
// Text length is measured in characters after trimming.
func (v *Validator) ValidateStudyRequest(req *dto.StudyRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	req.Level = defaultLabel(req.Level, DefaultLevel)
	req.Difficulty = defaultLabel(req.Difficulty, DefaultDifficulty)
	req.Mode = defaultLabel(req.Mode, DefaultMode)
	if req.NumQuestions == 0 {
		req.NumQuestions = DefaultNumQuestions
	}

	trimmed := strings.TrimSpace(req.Text)
	if trimmed == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	} else if n := utf8.RuneCountInString(trimmed); n < MinTextLength || n > MaxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("text", n, MinTextLength, MaxTextLength))
	}

	if req.NumQuestions < MinQuestions || req.NumQuestions > MaxQuestions {
		errors = append(errors, domain.NewOutOfRangeError("num_questions", req.NumQuestions, MinQuestions, MaxQuestions))
	}

	labels := []struct{ field, value string }{
		{"level", req.Level},
		{"difficulty", req.Difficulty},
		{"mode", req.Mode},
	}
	for _, label := range labels {
		if n := utf8.RuneCountInString(label.value); n > MaxLabelLength {
			errors = append(errors, domain.NewOutOfRangeError(label.field, n, 1, MaxLabelLength))
		}
	}

	return errors
}

// ValidateDraft only bounds the size; drafts may be shorter than a study text.
func (v *Validator) ValidateDraft(text string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("text", n, 0, MaxTextLength))
	}
	return errors
}

// ValidateNormalizeRequest checks the stateless normalize body and resolves its style.
func (v *Validator) ValidateNormalizeRequest(req *dto.NormalizeRequest) (quizfmt.Style, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	if n := utf8.RuneCountInString(req.Text); n > MaxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("text", n, 0, MaxTextLength))
	}
	style, err := quizfmt.ParseStyle(req.Style)
	if err != nil {
		errors = append(errors, domain.NewInvalidFormatError("style", req.Style))
	}
	return style, errors
}

// ValidateSessionID checks a history session id path parameter.
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !util.IsValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}
	return errors
}

func defaultLabel(value, fallback string) string {
	if s := strings.TrimSpace(value); s != "" {
		return s
	}
	return fallback
}

package service

import (
	"context"
	"strings"

	"study-buddy/internal/adapter/export"
	"study-buddy/internal/domain"
	"study-buddy/internal/dto"
	"study-buddy/internal/quizfmt"
	"study-buddy/internal/validation"
)

const (
	ExportFormatText = "txt"
	ExportFormatPDF  = "pdf"
)

// ExportService renders the current results, or one history session, as a download.
type ExportService interface {
	// Export uses the workspace's current results when sessionID is empty.
	Export(ctx context.Context, workspaceID, sessionID, format string) (*dto.ExportFile, error)
}

type exportServiceImpl struct {
	workspace         *WorkspaceAccessor
	pdf               *export.PDFRenderer
	originalTextLimit int
}

func NewExportService(workspace *WorkspaceAccessor, pdf *export.PDFRenderer, originalTextLimit int) ExportService {
	return &exportServiceImpl{
		workspace:         workspace,
		pdf:               pdf,
		originalTextLimit: originalTextLimit,
	}
}

func (s *exportServiceImpl) Export(ctx context.Context, workspaceID, sessionID, format string) (*dto.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatText
	}
	if format != ExportFormatText && format != ExportFormatPDF {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("format", format)}
	}

	ws, err := s.workspace.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	var doc export.Document
	if sessionID != "" {
		session, ok := ws.FindSession(sessionID)
		if !ok {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		doc = export.Document{
			Level:        session.ExplanationLevel,
			Difficulty:   session.QuizDifficulty,
			Mode:         session.LearningMode,
			OriginalText: session.Text,
			Explanation:  session.Explanation,
			Quiz:         session.Quiz,
		}
	} else {
		if ws.LastExplanation == "" {
			return nil, domain.NewNoResultsError()
		}
		doc = export.Document{
			Level:        orDefault(ws.LastSettings.Level, validation.DefaultLevel),
			Difficulty:   orDefault(ws.LastSettings.Difficulty, validation.DefaultDifficulty),
			Mode:         orDefault(ws.LastSettings.Mode, validation.DefaultMode),
			OriginalText: ws.DraftText,
			Explanation:  ws.LastExplanation,
			Quiz:         ws.LastQuiz,
		}
	}
	doc.GeneratedAt = s.workspace.now()
	doc.OriginalText = export.TruncateText(doc.OriginalText, s.originalTextLimit)
	doc.Quiz = quizfmt.Normalize(doc.Quiz)

	if format == ExportFormatPDF {
		data, err := s.pdf.Render(doc)
		if err != nil {
			return nil, domain.NewInternalError("Failed to render PDF export", err)
		}
		return &dto.ExportFile{Filename: doc.Filename(ExportFormatPDF), ContentType: export.ContentTypePDF, Data: data}, nil
	}
	return &dto.ExportFile{Filename: doc.Filename(ExportFormatText), ContentType: export.ContentTypeText, Data: export.RenderText(doc)}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

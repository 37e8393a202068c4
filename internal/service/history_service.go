package service

import (
	"context"
	"strings"

	"study-buddy/internal/adapter/export"
	"study-buddy/internal/domain"
	"study-buddy/internal/dto"
	"study-buddy/internal/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	previewLength   = 400
	keyInsightLines = 4
)

// HistoryService exposes the ordered list of study sessions of a workspace.
type HistoryService interface {
	List(ctx context.Context, workspaceID string) (*dto.HistoryResponse, error)
	Get(ctx context.Context, workspaceID, sessionID string) (*dto.SessionResponse, error)
	// Review loads a past session back into the editor and the current results.
	Review(ctx context.Context, workspaceID, sessionID string) (*dto.SessionResponse, error)
	Delete(ctx context.Context, workspaceID, sessionID string) error
	Clear(ctx context.Context, workspaceID string) error
}

type historyServiceImpl struct {
	workspace *WorkspaceAccessor
}

func NewHistoryService(workspace *WorkspaceAccessor) HistoryService {
	return &historyServiceImpl{workspace: workspace}
}

// List returns sessions newest first.
func (s *historyServiceImpl) List(ctx context.Context, workspaceID string) (*dto.HistoryResponse, error) {
	ws, err := s.workspace.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.SessionSummary, 0, len(ws.History))
	for i := len(ws.History) - 1; i >= 0; i-- {
		summaries = append(summaries, toSessionSummary(ws.History[i]))
	}
	return &dto.HistoryResponse{Sessions: summaries, Total: len(summaries)}, nil
}

func (s *historyServiceImpl) Get(ctx context.Context, workspaceID, sessionID string) (*dto.SessionResponse, error) {
	ws, err := s.workspace.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	session, ok := ws.FindSession(sessionID)
	if !ok {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	resp := toSessionResponse(*session)
	return &resp, nil
}

func (s *historyServiceImpl) Review(ctx context.Context, workspaceID, sessionID string) (*dto.SessionResponse, error) {
	var resp dto.SessionResponse
	err := s.workspace.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		session, ok := ws.FindSession(sessionID)
		if !ok {
			return domain.NewSessionNotFoundError(sessionID)
		}
		ws.DraftText = session.Text
		ws.LastExplanation = session.Explanation
		ws.LastQuiz = session.Quiz
		ws.LastSessionID = session.ID
		ws.LastSettings = domain.StudySettings{
			Level:        session.ExplanationLevel,
			Difficulty:   session.QuizDifficulty,
			Mode:         session.LearningMode,
			NumQuestions: session.NumQuestions,
		}
		resp = toSessionResponse(*session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *historyServiceImpl) Delete(ctx context.Context, workspaceID, sessionID string) error {
	err := s.workspace.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		if !ws.DeleteSession(sessionID) {
			return domain.NewSessionNotFoundError(sessionID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Get().Info("Study session deleted", zap.String("workspace_id", workspaceID), zap.String("session_id", sessionID))
	return nil
}

func (s *historyServiceImpl) Clear(ctx context.Context, workspaceID string) error {
	return s.workspace.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		ws.ClearHistory()
		return nil
	})
}

func toSessionSummary(s domain.StudySession) dto.SessionSummary {
	return dto.SessionSummary{
		ID:           s.ID,
		Date:         s.Date(),
		CreatedAt:    s.CreatedAt,
		Level:        s.ExplanationLevel,
		Difficulty:   s.QuizDifficulty,
		Mode:         s.LearningMode,
		NumQuestions: s.NumQuestions,
		Characters:   len([]rune(s.Text)),
		Preview:      export.TruncateText(s.Text, previewLength),
		KeyInsights:  keyInsights(s.Explanation),
		Degraded:     s.Degraded,
	}
}

func keyInsights(explanation string) []string {
	lines := lo.FilterMap(strings.Split(explanation, "\n"), func(line string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(line)
		return trimmed, trimmed != ""
	})
	if len(lines) > keyInsightLines {
		lines = lines[:keyInsightLines]
	}
	return lines
}


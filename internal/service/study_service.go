package service

import (
	"context"

	"study-buddy/internal/domain"
	"study-buddy/internal/dto"
	"study-buddy/internal/logger"
	"study-buddy/internal/quizfmt"
	"study-buddy/internal/util"
	"study-buddy/internal/validation"

	"go.uber.org/zap"
)

// StudyService runs the explain and quiz agents for a workspace and keeps its results.
type StudyService interface {
	GenerateAll(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.GenerateResponse, error)
	ExplainOnly(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.ExplainResponse, error)
	QuizOnly(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.QuizOnlyResponse, error)
	Results(ctx context.Context, workspaceID string, style quizfmt.Style, withHTML bool) (*dto.ResultsResponse, error)
	ResetResults(ctx context.Context, workspaceID string) error
	SaveDraft(ctx context.Context, workspaceID, text string) error
}

type studyServiceImpl struct {
	agents    domain.StudyAgents
	workspace *WorkspaceAccessor
	validator *validation.Validator
}

func NewStudyService(agents domain.StudyAgents, workspace *WorkspaceAccessor) StudyService {
	return &studyServiceImpl{
		agents:    agents,
		workspace: workspace,
		validator: validation.NewValidator(),
	}
}

// GenerateAll appends a session, then runs the explainer and feeds its output to the quiz agent.
func (s *studyServiceImpl) GenerateAll(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.GenerateResponse, error) {
	if errs := s.validator.ValidateStudyRequest(req); len(errs) > 0 {
		return nil, errs
	}

	var resp *dto.GenerateResponse
	err := s.workspace.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		sessionID := util.NewULID()
		ws.DraftText = req.Text
		ws.LastSettings = settingsFrom(req)
		ws.AppendSession(domain.StudySession{
			ID:               sessionID,
			Text:             req.Text,
			ExplanationLevel: req.Level,
			QuizDifficulty:   req.Difficulty,
			LearningMode:     req.Mode,
			NumQuestions:     req.NumQuestions,
			CreatedAt:        s.workspace.now(),
		})

		explanation := s.agents.Explain(ctx, req.Text, req.Level)
		quiz := s.agents.Quiz(ctx, explanation.Text, req.Difficulty, req.NumQuestions)

		session, ok := ws.FindSession(sessionID)
		if !ok {
			return domain.NewInternalError("Study session disappeared during generation", nil)
		}
		session.Explanation = explanation.Text
		session.Quiz = quiz.Text
		session.Degraded = explanation.Degraded || quiz.Degraded

		ws.LastExplanation = explanation.Text
		ws.LastQuiz = quiz.Text
		ws.QuizzesGenerated++
		reward := applyReward(ws, domain.XPGenerateAll, domain.MinutesGenerateAll)

		resp = &dto.GenerateResponse{
			Session:             toSessionResponse(*session),
			ExplanationDegraded: explanation.Degraded,
			QuizDegraded:        quiz.Degraded,
			Reward:              reward,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Study session generated",
		zap.String("workspace_id", workspaceID),
		zap.String("session_id", resp.Session.ID),
		zap.Bool("degraded", resp.Session.Degraded),
		zap.Int("levels_gained", resp.Reward.LevelsGained))
	return resp, nil
}

// ExplainOnly refreshes the current explanation without recording a session.
func (s *studyServiceImpl) ExplainOnly(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.ExplainResponse, error) {
	if errs := s.validator.ValidateStudyRequest(req); len(errs) > 0 {
		return nil, errs
	}

	var resp *dto.ExplainResponse
	err := s.workspace.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		explanation := s.agents.Explain(ctx, req.Text, req.Level)

		ws.DraftText = req.Text
		ws.LastSettings = settingsFrom(req)
		ws.LastExplanation = explanation.Text
		resp = &dto.ExplainResponse{
			Explanation: explanation.Text,
			Degraded:    explanation.Degraded,
			Reward:      applyReward(ws, domain.XPExplainOnly, 0),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// QuizOnly builds a quiz from the current explanation, creating one first when there is none.
func (s *studyServiceImpl) QuizOnly(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.QuizOnlyResponse, error) {
	if errs := s.validator.ValidateStudyRequest(req); len(errs) > 0 {
		return nil, errs
	}

	var resp *dto.QuizOnlyResponse
	err := s.workspace.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		resp = &dto.QuizOnlyResponse{}
		if ws.LastExplanation == "" {
			explanation := s.agents.Explain(ctx, req.Text, req.Level)
			ws.LastExplanation = explanation.Text
			resp.ExplanationGenerated = true
			resp.Degraded = explanation.Degraded
		}

		quiz := s.agents.Quiz(ctx, ws.LastExplanation, req.Difficulty, req.NumQuestions)

		ws.DraftText = req.Text
		ws.LastSettings = settingsFrom(req)
		ws.LastQuiz = quiz.Text
		ws.QuizzesGenerated++

		resp.Explanation = ws.LastExplanation
		resp.RawQuiz = quiz.Text
		resp.Quiz = quizfmt.Normalize(quiz.Text)
		resp.Degraded = resp.Degraded || quiz.Degraded
		resp.Reward = applyReward(ws, domain.XPQuizOnly, 0)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *studyServiceImpl) Results(ctx context.Context, workspaceID string, style quizfmt.Style, withHTML bool) (*dto.ResultsResponse, error) {
	ws, err := s.workspace.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws.LastExplanation == "" && ws.LastQuiz == "" {
		return nil, domain.NewNoResultsError()
	}

	resp := &dto.ResultsResponse{
		Explanation:   ws.LastExplanation,
		Quiz:          quizfmt.Render(quizfmt.Classify(ws.LastQuiz), style),
		Style:         style,
		LastSessionID: ws.LastSessionID,
	}
	if withHTML {
		if resp.ExplanationHTML, err = quizfmt.ToHTML(resp.Explanation); err != nil {
			return nil, domain.NewInternalError("Failed to render explanation", err)
		}
		if resp.QuizHTML, err = quizfmt.ToHTML(resp.Quiz); err != nil {
			return nil, domain.NewInternalError("Failed to render quiz", err)
		}
	}
	return resp, nil
}

// ResetResults starts a new session in the editor. History and progress are kept.
func (s *studyServiceImpl) ResetResults(ctx context.Context, workspaceID string) error {
	return s.workspace.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		ws.ResetResults()
		return nil
	})
}

func (s *studyServiceImpl) SaveDraft(ctx context.Context, workspaceID, text string) error {
	if errs := s.validator.ValidateDraft(text); len(errs) > 0 {
		return errs
	}
	return s.workspace.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		ws.DraftText = text
		return nil
	})
}

func settingsFrom(req *dto.StudyRequest) domain.StudySettings {
	return domain.StudySettings{
		Level:        req.Level,
		Difficulty:   req.Difficulty,
		Mode:         req.Mode,
		NumQuestions: req.NumQuestions,
	}
}

func applyReward(ws *domain.Workspace, xp, minutes int) dto.RewardResponse {
	levels := ws.AwardXP(xp)
	ws.AddStudyMinutes(minutes)
	return dto.RewardResponse{
		XPAwarded:    xp,
		MinutesAdded: minutes,
		LevelsGained: levels,
		XP:           ws.XP,
		Level:        ws.Level,
	}
}

func toSessionResponse(s domain.StudySession) dto.SessionResponse {
	return dto.SessionResponse{
		ID:           s.ID,
		Text:         s.Text,
		Explanation:  s.Explanation,
		Quiz:         quizfmt.Normalize(s.Quiz),
		RawQuiz:      s.Quiz,
		Level:        s.ExplanationLevel,
		Difficulty:   s.QuizDifficulty,
		Mode:         s.LearningMode,
		NumQuestions: s.NumQuestions,
		Degraded:     s.Degraded,
		Date:         s.Date(),
		CreatedAt:    s.CreatedAt,
	}
}

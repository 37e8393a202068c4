package handler_test

import (
	"context"

	"study-buddy/internal/dto"
	"study-buddy/internal/quizfmt"
)

// --- Manual Mocks ---

type MockWorkspaceService struct {
	CreateWorkspaceFunc func(ctx context.Context) (*dto.CreateWorkspaceResponse, error)
	ValidateTokenFunc   func(ctx context.Context, tokenString string) (*dto.WorkspaceClaims, error)
	DeleteWorkspaceFunc func(ctx context.Context, workspaceID string) error
}

func (m *MockWorkspaceService) CreateWorkspace(ctx context.Context) (*dto.CreateWorkspaceResponse, error) {
	if m.CreateWorkspaceFunc != nil {
		return m.CreateWorkspaceFunc(ctx)
	}
	panic("MockWorkspaceService.CreateWorkspaceFunc not implemented")
}
func (m *MockWorkspaceService) ValidateToken(ctx context.Context, tokenString string) (*dto.WorkspaceClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	panic("MockWorkspaceService.ValidateTokenFunc not implemented")
}
func (m *MockWorkspaceService) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	if m.DeleteWorkspaceFunc != nil {
		return m.DeleteWorkspaceFunc(ctx, workspaceID)
	}
	panic("MockWorkspaceService.DeleteWorkspaceFunc not implemented")
}

type MockStudyService struct {
	GenerateAllFunc  func(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.GenerateResponse, error)
	ExplainOnlyFunc  func(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.ExplainResponse, error)
	QuizOnlyFunc     func(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.QuizOnlyResponse, error)
	ResultsFunc      func(ctx context.Context, workspaceID string, style quizfmt.Style, withHTML bool) (*dto.ResultsResponse, error)
	ResetResultsFunc func(ctx context.Context, workspaceID string) error
	SaveDraftFunc    func(ctx context.Context, workspaceID, text string) error
}

func (m *MockStudyService) GenerateAll(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.GenerateResponse, error) {
	if m.GenerateAllFunc != nil {
		return m.GenerateAllFunc(ctx, workspaceID, req)
	}
	panic("MockStudyService.GenerateAllFunc not implemented")
}
func (m *MockStudyService) ExplainOnly(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.ExplainResponse, error) {
	if m.ExplainOnlyFunc != nil {
		return m.ExplainOnlyFunc(ctx, workspaceID, req)
	}
	panic("MockStudyService.ExplainOnlyFunc not implemented")
}
func (m *MockStudyService) QuizOnly(ctx context.Context, workspaceID string, req *dto.StudyRequest) (*dto.QuizOnlyResponse, error) {
	if m.QuizOnlyFunc != nil {
		return m.QuizOnlyFunc(ctx, workspaceID, req)
	}
	panic("MockStudyService.QuizOnlyFunc not implemented")
}
func (m *MockStudyService) Results(ctx context.Context, workspaceID string, style quizfmt.Style, withHTML bool) (*dto.ResultsResponse, error) {
	if m.ResultsFunc != nil {
		return m.ResultsFunc(ctx, workspaceID, style, withHTML)
	}
	panic("MockStudyService.ResultsFunc not implemented")
}
func (m *MockStudyService) ResetResults(ctx context.Context, workspaceID string) error {
	if m.ResetResultsFunc != nil {
		return m.ResetResultsFunc(ctx, workspaceID)
	}
	panic("MockStudyService.ResetResultsFunc not implemented")
}
func (m *MockStudyService) SaveDraft(ctx context.Context, workspaceID, text string) error {
	if m.SaveDraftFunc != nil {
		return m.SaveDraftFunc(ctx, workspaceID, text)
	}
	panic("MockStudyService.SaveDraftFunc not implemented")
}

type MockExportService struct {
	ExportFunc func(ctx context.Context, workspaceID, sessionID, format string) (*dto.ExportFile, error)
}

func (m *MockExportService) Export(ctx context.Context, workspaceID, sessionID, format string) (*dto.ExportFile, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, workspaceID, sessionID, format)
	}
	panic("MockExportService.ExportFunc not implemented")
}

type MockHistoryService struct {
	ListFunc   func(ctx context.Context, workspaceID string) (*dto.HistoryResponse, error)
	GetFunc    func(ctx context.Context, workspaceID, sessionID string) (*dto.SessionResponse, error)
	ReviewFunc func(ctx context.Context, workspaceID, sessionID string) (*dto.SessionResponse, error)
	DeleteFunc func(ctx context.Context, workspaceID, sessionID string) error
	ClearFunc  func(ctx context.Context, workspaceID string) error
}

func (m *MockHistoryService) List(ctx context.Context, workspaceID string) (*dto.HistoryResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, workspaceID)
	}
	panic("MockHistoryService.ListFunc not implemented")
}
func (m *MockHistoryService) Get(ctx context.Context, workspaceID, sessionID string) (*dto.SessionResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, workspaceID, sessionID)
	}
	panic("MockHistoryService.GetFunc not implemented")
}
func (m *MockHistoryService) Review(ctx context.Context, workspaceID, sessionID string) (*dto.SessionResponse, error) {
	if m.ReviewFunc != nil {
		return m.ReviewFunc(ctx, workspaceID, sessionID)
	}
	panic("MockHistoryService.ReviewFunc not implemented")
}
func (m *MockHistoryService) Delete(ctx context.Context, workspaceID, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, workspaceID, sessionID)
	}
	panic("MockHistoryService.DeleteFunc not implemented")
}
func (m *MockHistoryService) Clear(ctx context.Context, workspaceID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, workspaceID)
	}
	panic("MockHistoryService.ClearFunc not implemented")
}

type MockProgressService struct {
	GetProgressFunc  func(ctx context.Context, workspaceID string) (*dto.ProgressResponse, error)
	GetAnalyticsFunc func(ctx context.Context, workspaceID string) (*dto.AnalyticsResponse, error)
	RecordStudyFunc  func(ctx context.Context, workspaceID string) (*dto.RewardResponse, error)
}

func (m *MockProgressService) GetProgress(ctx context.Context, workspaceID string) (*dto.ProgressResponse, error) {
	if m.GetProgressFunc != nil {
		return m.GetProgressFunc(ctx, workspaceID)
	}
	panic("MockProgressService.GetProgressFunc not implemented")
}
func (m *MockProgressService) GetAnalytics(ctx context.Context, workspaceID string) (*dto.AnalyticsResponse, error) {
	if m.GetAnalyticsFunc != nil {
		return m.GetAnalyticsFunc(ctx, workspaceID)
	}
	panic("MockProgressService.GetAnalyticsFunc not implemented")
}
func (m *MockProgressService) RecordStudy(ctx context.Context, workspaceID string) (*dto.RewardResponse, error) {
	if m.RecordStudyFunc != nil {
		return m.RecordStudyFunc(ctx, workspaceID)
	}
	panic("MockProgressService.RecordStudyFunc not implemented")
}

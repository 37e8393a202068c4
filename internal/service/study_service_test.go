package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"study-buddy/internal/domain"
	"study-buddy/internal/dto"
	"study-buddy/internal/quizfmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWorkspaceID = "01HZY5D5T1V7W4K1ZP3Q9F6C2M"

var studyText = strings.Repeat("Photosynthesis turns light, water and carbon dioxide into sugar. ", 2)

func TestStudyService_GenerateAll(t *testing.T) {
	ctx := context.Background()
	accessor, st := newTestAccessor(testWorkspaceID)
	agents := &stubAgents{}
	svc := NewStudyService(agents, accessor)

	resp, err := svc.GenerateAll(ctx, testWorkspaceID, &dto.StudyRequest{Text: studyText, Level: "Beginner", Difficulty: "Easy", NumQuestions: 3})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Session.ID)
	assert.Equal(t, "Beginner", resp.Session.Level)
	assert.Equal(t, "Easy", resp.Session.Difficulty)
	assert.Equal(t, "Active Recall", resp.Session.Mode)
	assert.Equal(t, "2025-06-10", resp.Session.Date)
	assert.Contains(t, resp.Session.Quiz, "- What is it?\n    - A. This")
	assert.False(t, resp.Session.Degraded)
	assert.Equal(t, dto.RewardResponse{XPAwarded: 15, MinutesAdded: 10, XP: 15, Level: 1}, resp.Reward)

	require.Len(t, agents.explainCalls, 1)
	require.Len(t, agents.quizCalls, 1)
	assert.Equal(t, "Summary: Beginner explanation.\nKey Points:\n1) one\n2) two\n3) three", agents.quizCalls[0],
		"quiz is generated from the explanation")

	ws, err := st.Get(ctx, testWorkspaceID)
	require.NoError(t, err)
	require.Len(t, ws.History, 1)
	assert.Equal(t, resp.Session.ID, ws.LastSessionID)
	assert.Equal(t, ws.History[0].Explanation, ws.LastExplanation)
	assert.Equal(t, ws.History[0].Quiz, ws.LastQuiz)
	assert.Equal(t, studyText, ws.DraftText)
	assert.Equal(t, 10, ws.StudyMinutes)
	assert.Equal(t, 1, ws.QuizzesGenerated)
	assert.Equal(t, domain.StudySettings{Level: "Beginner", Difficulty: "Easy", Mode: "Active Recall", NumQuestions: 3}, ws.LastSettings)
}

func TestStudyService_GenerateAll_LevelsUp(t *testing.T) {
	ctx := context.Background()
	accessor, st := newTestAccessor(testWorkspaceID)
	svc := NewStudyService(&stubAgents{}, accessor)

	var last *dto.GenerateResponse
	for i := 0; i < 7; i++ {
		resp, err := svc.GenerateAll(ctx, testWorkspaceID, &dto.StudyRequest{Text: studyText})
		require.NoError(t, err)
		last = resp
	}

	assert.Equal(t, 1, last.Reward.LevelsGained)
	assert.Equal(t, 2, last.Reward.Level)
	assert.Equal(t, 5, last.Reward.XP)

	ws, err := st.Get(ctx, testWorkspaceID)
	require.NoError(t, err)
	assert.Len(t, ws.History, 7)
}

func TestStudyService_GenerateAll_DegradedWhenProviderDown(t *testing.T) {
	ctx := context.Background()
	accessor, _ := newTestAccessor(testWorkspaceID)
	gen := new(MockTextGenerator)
	gen.On("Generate", anyArgs()...).Return("", errors.New("no route to host"))
	svc := NewStudyService(NewLLMGateway(gen, time.Second), accessor)

	resp, err := svc.GenerateAll(ctx, testWorkspaceID, &dto.StudyRequest{Text: studyText})
	require.NoError(t, err, "provider failures never surface as errors")

	assert.True(t, resp.ExplanationDegraded)
	assert.True(t, resp.QuizDegraded)
	assert.True(t, resp.Session.Degraded)
	assert.Equal(t, FallbackText, resp.Session.Explanation)
}

func TestStudyService_GenerateAll_Validation(t *testing.T) {
	ctx := context.Background()
	accessor, st := newTestAccessor(testWorkspaceID)
	agents := &stubAgents{}
	svc := NewStudyService(agents, accessor)

	_, err := svc.GenerateAll(ctx, testWorkspaceID, &dto.StudyRequest{Text: "   too short   "})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "text", verrs[0].Field)

	assert.Empty(t, agents.explainCalls)
	ws, err := st.Get(ctx, testWorkspaceID)
	require.NoError(t, err)
	assert.Empty(t, ws.History)
}

func TestStudyService_UnknownWorkspace(t *testing.T) {
	accessor, _ := newTestAccessor(testWorkspaceID)
	svc := NewStudyService(&stubAgents{}, accessor)

	_, err := svc.GenerateAll(context.Background(), "01HZY5D5T1V7W4K1ZP3Q9F6C2X", &dto.StudyRequest{Text: studyText})
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.CodeWorkspaceNotFound, derr.Code)
}

func TestStudyService_ExplainOnly(t *testing.T) {
	ctx := context.Background()
	accessor, st := newTestAccessor(testWorkspaceID)
	agents := &stubAgents{}
	svc := NewStudyService(agents, accessor)

	resp, err := svc.ExplainOnly(ctx, testWorkspaceID, &dto.StudyRequest{Text: studyText, Level: "Expert"})
	require.NoError(t, err)
	assert.Contains(t, resp.Explanation, "Expert explanation")
	assert.Equal(t, 5, resp.Reward.XP)
	assert.Empty(t, agents.quizCalls)

	ws, err := st.Get(ctx, testWorkspaceID)
	require.NoError(t, err)
	assert.Empty(t, ws.History, "explain only does not record a session")
	assert.Equal(t, resp.Explanation, ws.LastExplanation)
	assert.Zero(t, ws.StudyMinutes)
}

func TestStudyService_QuizOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("generates missing explanation first", func(t *testing.T) {
		accessor, st := newTestAccessor(testWorkspaceID)
		agents := &stubAgents{}
		svc := NewStudyService(agents, accessor)

		resp, err := svc.QuizOnly(ctx, testWorkspaceID, &dto.StudyRequest{Text: studyText})
		require.NoError(t, err)

		assert.True(t, resp.ExplanationGenerated)
		assert.Len(t, agents.explainCalls, 1)
		assert.Equal(t, resp.Explanation, agents.quizCalls[0])
		assert.Equal(t, quizfmt.Normalize(resp.RawQuiz), resp.Quiz)
		assert.Equal(t, 8, resp.Reward.XP)

		ws, err := st.Get(ctx, testWorkspaceID)
		require.NoError(t, err)
		assert.Equal(t, 1, ws.QuizzesGenerated)
		assert.Equal(t, resp.RawQuiz, ws.LastQuiz)
	})

	t.Run("reuses current explanation", func(t *testing.T) {
		accessor, _ := newTestAccessor(testWorkspaceID)
		agents := &stubAgents{}
		svc := NewStudyService(agents, accessor)

		_, err := svc.ExplainOnly(ctx, testWorkspaceID, &dto.StudyRequest{Text: studyText})
		require.NoError(t, err)
		resp, err := svc.QuizOnly(ctx, testWorkspaceID, &dto.StudyRequest{Text: studyText})
		require.NoError(t, err)

		assert.False(t, resp.ExplanationGenerated)
		assert.Len(t, agents.explainCalls, 1)
		assert.Equal(t, 13, resp.Reward.XP)
	})
}

func TestStudyService_Results(t *testing.T) {
	ctx := context.Background()
	accessor, _ := newTestAccessor(testWorkspaceID)
	svc := NewStudyService(&stubAgents{}, accessor)

	_, err := svc.Results(ctx, testWorkspaceID, quizfmt.StyleBullets, false)
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.CodeNoResults, derr.Code)

	gen, err := svc.GenerateAll(ctx, testWorkspaceID, &dto.StudyRequest{Text: studyText})
	require.NoError(t, err)

	res, err := svc.Results(ctx, testWorkspaceID, quizfmt.StyleHeadings, true)
	require.NoError(t, err)
	assert.Equal(t, gen.Session.ID, res.LastSessionID)
	assert.True(t, strings.HasPrefix(res.Quiz, "### What is it?\n• **A.** This"))
	assert.Contains(t, res.ExplanationHTML, "<p>")
	assert.NotEmpty(t, res.QuizHTML)

	res, err = svc.Results(ctx, testWorkspaceID, quizfmt.StyleBullets, false)
	require.NoError(t, err)
	assert.Equal(t, gen.Session.Quiz, res.Quiz)
	assert.Empty(t, res.QuizHTML)
}

func TestStudyService_ResetAndDraft(t *testing.T) {
	ctx := context.Background()
	accessor, st := newTestAccessor(testWorkspaceID)
	svc := NewStudyService(&stubAgents{}, accessor)

	_, err := svc.GenerateAll(ctx, testWorkspaceID, &dto.StudyRequest{Text: studyText})
	require.NoError(t, err)

	require.NoError(t, svc.ResetResults(ctx, testWorkspaceID))
	ws, err := st.Get(ctx, testWorkspaceID)
	require.NoError(t, err)
	assert.Empty(t, ws.LastExplanation)
	assert.Empty(t, ws.LastQuiz)
	assert.Empty(t, ws.DraftText)
	assert.Len(t, ws.History, 1)
	assert.Equal(t, 15, ws.XP)

	require.NoError(t, svc.SaveDraft(ctx, testWorkspaceID, "half-written notes"))
	ws, err = st.Get(ctx, testWorkspaceID)
	require.NoError(t, err)
	assert.Equal(t, "half-written notes", ws.DraftText)

	err = svc.SaveDraft(ctx, testWorkspaceID, strings.Repeat("a", 50001))
	var verrs domain.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

package service

import (
	"context"
	"strings"
	"testing"

	"study-buddy/internal/domain"
	"study-buddy/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSessions(t *testing.T, svc StudyService, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		resp, err := svc.GenerateAll(context.Background(), testWorkspaceID, &dto.StudyRequest{Text: studyText})
		require.NoError(t, err)
		ids = append(ids, resp.Session.ID)
	}
	return ids
}

func TestHistoryService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	accessor, _ := newTestAccessor(testWorkspaceID)
	ids := seedSessions(t, NewStudyService(&stubAgents{}, accessor), 3)
	svc := NewHistoryService(accessor)

	resp, err := svc.List(ctx, testWorkspaceID)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, ids[2], resp.Sessions[0].ID)
	assert.Equal(t, ids[0], resp.Sessions[2].ID)

	first := resp.Sessions[0]
	assert.Equal(t, len(studyText), first.Characters)
	assert.Equal(t, studyText, first.Preview)
	assert.Equal(t, []string{"Summary: Intermediate explanation.", "Key Points:", "1) one", "2) two"}, first.KeyInsights)
}

func TestHistoryService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	accessor, st := newTestAccessor(testWorkspaceID)
	ids := seedSessions(t, NewStudyService(&stubAgents{}, accessor), 3)
	svc := NewHistoryService(accessor)

	got, err := svc.Get(ctx, testWorkspaceID, ids[1])
	require.NoError(t, err)
	assert.Equal(t, ids[1], got.ID)

	require.NoError(t, svc.Delete(ctx, testWorkspaceID, ids[1]))

	_, err = svc.Get(ctx, testWorkspaceID, ids[1])
	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.CodeSessionNotFound, derr.Code)

	err = svc.Delete(ctx, testWorkspaceID, ids[1])
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.CodeSessionNotFound, derr.Code)

	ws, err := st.Get(ctx, testWorkspaceID)
	require.NoError(t, err)
	require.Len(t, ws.History, 2)
	assert.Equal(t, ids[0], ws.History[0].ID)
	assert.Equal(t, ids[2], ws.History[1].ID)
}

func TestHistoryService_Review(t *testing.T) {
	ctx := context.Background()
	accessor, st := newTestAccessor(testWorkspaceID)
	studySvc := NewStudyService(&stubAgents{}, accessor)
	ids := seedSessions(t, studySvc, 1)
	require.NoError(t, studySvc.ResetResults(ctx, testWorkspaceID))

	svc := NewHistoryService(accessor)
	resp, err := svc.Review(ctx, testWorkspaceID, ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], resp.ID)

	ws, err := st.Get(ctx, testWorkspaceID)
	require.NoError(t, err)
	assert.Equal(t, studyText, ws.DraftText)
	assert.Equal(t, ws.History[0].Explanation, ws.LastExplanation)
	assert.Equal(t, ws.History[0].Quiz, ws.LastQuiz)
}

func TestHistoryService_Clear(t *testing.T) {
	ctx := context.Background()
	accessor, st := newTestAccessor(testWorkspaceID)
	seedSessions(t, NewStudyService(&stubAgents{}, accessor), 2)
	svc := NewHistoryService(accessor)

	require.NoError(t, svc.Clear(ctx, testWorkspaceID))

	resp, err := svc.List(ctx, testWorkspaceID)
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.NotNil(t, resp.Sessions)

	ws, err := st.Get(ctx, testWorkspaceID)
	require.NoError(t, err)
	assert.Equal(t, 30, ws.XP, "clearing history keeps earned XP")
	assert.Zero(t, ws.QuizzesGenerated)
}

func TestToSessionSummary_Truncates(t *testing.T) {
	s := toSessionSummary(domain.StudySession{Text: strings.Repeat("x", 450)})
	assert.Equal(t, strings.Repeat("x", 400)+"...", s.Preview)
	assert.Equal(t, 450, s.Characters)
	assert.Empty(t, s.KeyInsights)
}

func TestToSessionSummary_PreviewCountsCharacters(t *testing.T) {
	s := toSessionSummary(domain.StudySession{Text: strings.Repeat("ü", 401)})
	assert.Equal(t, strings.Repeat("ü", 400)+"...", s.Preview)

	s = toSessionSummary(domain.StudySession{Text: strings.Repeat("ü", 400)})
	assert.Equal(t, strings.Repeat("ü", 400), s.Preview)
}

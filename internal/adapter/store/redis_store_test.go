package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"study-buddy/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "studybuddy:workspace:state:ws1"

func testWorkspace(t *testing.T) (*domain.Workspace, string) {
	t.Helper()
	ws := domain.NewWorkspace("ws1", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	ws.AppendSession(domain.StudySession{ID: "s1", Text: "some text", CreatedAt: ws.CreatedAt})
	data, err := json.Marshal(ws)
	require.NoError(t, err)
	return ws, string(data)
}

func TestRedisWorkspaceStore_Create(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisWorkspaceStore(db, time.Hour)
	ctx := context.Background()
	ws, data := testWorkspace(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectSetNX(testKey, data, time.Hour).SetVal(true)
		assert.NoError(t, s.Create(ctx, ws))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		mock.ExpectSetNX(testKey, data, time.Hour).SetVal(false)
		err := s.Create(ctx, ws)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisWorkspaceStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisWorkspaceStore(db, time.Hour)
	ctx := context.Background()
	ws, data := testWorkspace(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(testKey).SetVal(data)
		got, err := s.Get(ctx, "ws1")
		require.NoError(t, err)
		assert.Equal(t, ws.ID, got.ID)
		require.Len(t, got.History, 1)
		assert.Equal(t, "some text", got.History[0].Text)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectGet(testKey).SetErr(redis.Nil)
		_, err := s.Get(ctx, "ws1")
		assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectGet(testKey).SetErr(redisErr)
		_, err := s.Get(ctx, "ws1")
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CorruptValue", func(t *testing.T) {
		mock.ExpectGet(testKey).SetVal("{not json")
		_, err := s.Get(ctx, "ws1")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisWorkspaceStore_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisWorkspaceStore(db, time.Hour)
	ctx := context.Background()
	ws, data := testWorkspace(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectSetXX(testKey, data, time.Hour).SetVal(true)
		assert.NoError(t, s.Save(ctx, ws))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Expired", func(t *testing.T) {
		mock.ExpectSetXX(testKey, data, time.Hour).SetVal(false)
		assert.ErrorIs(t, s.Save(ctx, ws), domain.ErrWorkspaceNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisWorkspaceStore_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisWorkspaceStore(db, time.Hour)
	ctx := context.Background()

	mock.ExpectDel(testKey).SetVal(1)
	assert.NoError(t, s.Delete(ctx, "ws1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"study-buddy/internal/cache"
	"study-buddy/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisWorkspaceStore keeps each workspace as one JSON value with an idle TTL that is
// refreshed on every write.
type RedisWorkspaceStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.WorkspaceStore = (*RedisWorkspaceStore)(nil)

// NewRedisWorkspaceStore expects a connected *redis.Client.
func NewRedisWorkspaceStore(client *redis.Client, ttl time.Duration) *RedisWorkspaceStore {
	return &RedisWorkspaceStore{client: client, ttl: ttl}
}

func (s *RedisWorkspaceStore) Create(ctx context.Context, ws *domain.Workspace) error {
	data, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}
	created, err := s.client.SetNX(ctx, cache.WorkspaceKey(ws.ID), string(data), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create workspace %s: %w", ws.ID, err)
	}
	if !created {
		return fmt.Errorf("workspace %s already exists", ws.ID)
	}
	return nil
}

// Get translates redis.Nil to domain.ErrWorkspaceNotFound.
func (s *RedisWorkspaceStore) Get(ctx context.Context, id string) (*domain.Workspace, error) {
	val, err := s.client.Get(ctx, cache.WorkspaceKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to load workspace %s: %w", id, err)
	}

	var ws domain.Workspace
	if err := json.Unmarshal([]byte(val), &ws); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workspace %s: %w", id, err)
	}
	if ws.History == nil {
		ws.History = []domain.StudySession{}
	}
	return &ws, nil
}

// Save only overwrites an existing key so an expired workspace is not resurrected.
func (s *RedisWorkspaceStore) Save(ctx context.Context, ws *domain.Workspace) error {
	data, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}
	updated, err := s.client.SetXX(ctx, cache.WorkspaceKey(ws.ID), string(data), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to save workspace %s: %w", ws.ID, err)
	}
	if !updated {
		return domain.ErrWorkspaceNotFound
	}
	return nil
}

func (s *RedisWorkspaceStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, cache.WorkspaceKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete workspace %s: %w", id, err)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"study-buddy/internal/domain"
)

// keyedMutex serializes work per workspace id. Entries are dropped once nobody holds
// or waits for them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// WorkspaceAccessor loads and updates workspaces. Updates to one workspace run one at a
// time, so a study pipeline never interleaves with another request on the same workspace.
type WorkspaceAccessor struct {
	store domain.WorkspaceStore
	locks *keyedMutex
	now   func() time.Time
}

func NewWorkspaceAccessor(store domain.WorkspaceStore) *WorkspaceAccessor {
	return &WorkspaceAccessor{
		store: store,
		locks: newKeyedMutex(),
		now:   time.Now,
	}
}

// Load returns a snapshot of the workspace.
func (a *WorkspaceAccessor) Load(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	ws, err := a.store.Get(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			return nil, domain.NewWorkspaceNotFoundError(workspaceID)
		}
		return nil, domain.NewInternalError("Failed to load workspace", err)
	}
	return ws, nil
}

// Update runs fn on the current state and saves the result unless fn fails.
func (a *WorkspaceAccessor) Update(ctx context.Context, workspaceID string, fn func(ws *domain.Workspace) error) error {
	unlock := a.locks.Lock(workspaceID)
	defer unlock()

	ws, err := a.Load(ctx, workspaceID)
	if err != nil {
		return err
	}
	if err := fn(ws); err != nil {
		return err
	}
	ws.UpdatedAt = a.now()

	if err := a.store.Save(ctx, ws); err != nil {
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			return domain.NewWorkspaceNotFoundError(workspaceID)
		}
		return domain.NewInternalError("Failed to save workspace", err)
	}
	return nil
}

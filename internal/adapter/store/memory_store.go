package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"study-buddy/internal/domain"
)

type memoryEntry struct {
	workspace *domain.Workspace
	expiresAt time.Time
}

// MemoryWorkspaceStore keeps workspaces in process memory. Entries idle for longer than
// ttl are dropped lazily on access; a zero ttl keeps them until Delete.
type MemoryWorkspaceStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

var _ domain.WorkspaceStore = (*MemoryWorkspaceStore)(nil)

func NewMemoryWorkspaceStore(ttl time.Duration) *MemoryWorkspaceStore {
	return &MemoryWorkspaceStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryWorkspaceStore) expiry() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(s.ttl)
}

func (s *MemoryWorkspaceStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}

func (s *MemoryWorkspaceStore) Create(ctx context.Context, ws *domain.Workspace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[ws.ID]; ok && !s.expired(e) {
		return fmt.Errorf("workspace %s already exists", ws.ID)
	}
	s.entries[ws.ID] = memoryEntry{workspace: ws.Clone(), expiresAt: s.expiry()}
	return nil
}

// Get returns a copy; changes are only visible to other callers after Save.
func (s *MemoryWorkspaceStore) Get(ctx context.Context, id string) (*domain.Workspace, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrWorkspaceNotFound
	}
	if s.expired(e) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, domain.ErrWorkspaceNotFound
	}
	return e.workspace.Clone(), nil
}

func (s *MemoryWorkspaceStore) Save(ctx context.Context, ws *domain.Workspace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[ws.ID]
	if !ok || s.expired(e) {
		delete(s.entries, ws.ID)
		return domain.ErrWorkspaceNotFound
	}
	s.entries[ws.ID] = memoryEntry{workspace: ws.Clone(), expiresAt: s.expiry()}
	return nil
}

func (s *MemoryWorkspaceStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

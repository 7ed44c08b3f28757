package memory

import (
	"context"
	"sync"

	"github.com/fitforge/fitforge-api/internal/storage"
)

// MemoryStorage is the in-memory Storage implementation. It is the
// default when no database is configured and everything is lost on
// restart.
type MemoryStorage struct {
	mu       sync.RWMutex
	plans    map[string]storage.PlanRecord    // key: owner_user_id
	profiles map[string]storage.ProfileRecord // key: owner_user_id
}

func New() *MemoryStorage {
	return &MemoryStorage{
		plans:    make(map[string]storage.PlanRecord),
		profiles: make(map[string]storage.ProfileRecord),
	}
}

func (m *MemoryStorage) SaveLastPlan(ctx context.Context, rec storage.PlanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.plans[rec.OwnerUserID] = rec
	return nil
}

func (m *MemoryStorage) GetLastPlan(ctx context.Context, ownerUserID string) (storage.PlanRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.plans[ownerUserID]
	if !ok {
		return storage.PlanRecord{}, storage.ErrNotFound
	}
	return rec, nil
}

func (m *MemoryStorage) DeleteLastPlan(ctx context.Context, ownerUserID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.plans[ownerUserID]; !ok {
		return storage.ErrNotFound
	}
	delete(m.plans, ownerUserID)
	return nil
}

func (m *MemoryStorage) SaveLastProfile(ctx context.Context, rec storage.ProfileRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profiles[rec.OwnerUserID] = rec
	return nil
}

func (m *MemoryStorage) GetLastProfile(ctx context.Context, ownerUserID string) (storage.ProfileRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.profiles[ownerUserID]
	if !ok {
		return storage.ProfileRecord{}, storage.ErrNotFound
	}
	return rec, nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

package cache

import (
	"context"
	"sync"
	"time"

	"geotrack/internal/domain"

	"github.com/google/uuid"
)

// MemoryLayer is the in-process tier: fastest, smallest, bounded capacity.
// Overflow evicts the record with the oldest timestamp.
type MemoryLayer struct {
	mu       sync.RWMutex
	records  map[uuid.UUID]*domain.LocationRecord
	capacity int
}

func NewMemoryLayer(capacity int) *MemoryLayer {
	if capacity <= 0 {
		capacity = 10000
	}
	return &MemoryLayer{
		records:  make(map[uuid.UUID]*domain.LocationRecord),
		capacity: capacity,
	}
}

func (m *MemoryLayer) Name() string { return "memory" }

func (m *MemoryLayer) Get(_ context.Context, entityID uuid.UUID) (*domain.LocationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[entityID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *MemoryLayer) Set(_ context.Context, rec *domain.LocationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[rec.EntityID]; !exists && len(m.records) >= m.capacity {
		m.evictOldestLocked()
	}
	cp := *rec
	m.records[rec.EntityID] = &cp
	return nil
}

func (m *MemoryLayer) Delete(_ context.Context, entityID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, entityID)
	return nil
}

// Search serves only explicit-entity lookups; spatial predicates fall
// through to slower layers.
func (m *MemoryLayer) Search(_ context.Context, q domain.LocationQuery) ([]domain.LocationRecord, error) {
	if len(q.EntityIDs) == 0 || q.Bounds != nil || q.Center != nil {
		return nil, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.LocationRecord, 0, len(q.EntityIDs))
	for _, id := range q.EntityIDs {
		rec, ok := m.records[id]
		if !ok {
			return nil, nil // partial answers would hide fresher data below
		}
		if q.EntityType != "" && rec.EntityType != q.EntityType {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (m *MemoryLayer) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func (m *MemoryLayer) evictOldestLocked() {
	var (
		oldestID uuid.UUID
		oldestTS time.Time
		found    bool
	)
	for id, rec := range m.records {
		if !found || rec.Timestamp.Before(oldestTS) {
			oldestID, oldestTS, found = id, rec.Timestamp, true
		}
	}
	if found {
		delete(m.records, oldestID)
	}
}

package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/kasihagustinusT/Buku-Tabungan/internal/models"
)

// MemoryStore is an in-memory implementation of both stores with the same
// contracts as the Postgres repositories. It backs tests and local runs
// without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[int64]models.RecordSet
	targets map[int64]models.TargetConfig
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[int64]models.RecordSet),
		targets: make(map[int64]models.TargetConfig),
	}
}

func (m *MemoryStore) Records(_ context.Context, userID int64) (models.RecordSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(models.RecordSet, len(m.records[userID]))
	for d, rec := range m.records[userID] {
		out[d] = rec
	}
	return out, nil
}

func (m *MemoryStore) SetRecord(_ context.Context, userID int64, rec models.DailyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.Date = models.Day(rec.Date)
	if m.records[userID] == nil {
		m.records[userID] = make(models.RecordSet)
	}
	m.records[userID][rec.Date] = rec
	return nil
}

func (m *MemoryStore) DeleteRecords(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, userID)
	return nil
}

func (m *MemoryStore) ListUsers(_ context.Context) ([]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[int64]struct{})
	for id := range m.records {
		seen[id] = struct{}{}
	}
	for id := range m.targets {
		seen[id] = struct{}{}
	}

	users := make([]int64, 0, len(seen))
	for id := range seen {
		users = append(users, id)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	return users, nil
}

func (m *MemoryStore) Target(_ context.Context, userID int64) (*models.TargetConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg, ok := m.targets[userID]
	if !ok {
		return nil, ErrNoTarget
	}
	return &cfg, nil
}

func (m *MemoryStore) SetTarget(_ context.Context, userID int64, cfg models.TargetConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg.StartDate = models.Day(cfg.StartDate)
	m.targets[userID] = cfg
	return nil
}

func (m *MemoryStore) DeleteTarget(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.targets[userID]; !ok {
		return ErrNoTarget
	}
	delete(m.targets, userID)
	return nil
}

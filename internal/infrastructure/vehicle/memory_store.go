package vehicle

import (
	"context"
	"sync"

	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"
)

const DefaultCacheSize = 1000

// MemoryStore is a bounded in-process cache with first-in-first-out
// eviction: once full, the oldest inserted plate is dropped. Overwriting a
// plate keeps its original position.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]entities.VehicleInfo
	order    []string
}

var _ interfaces.IVehicleStore = (*MemoryStore)(nil)

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &MemoryStore{
		capacity: capacity,
		entries:  make(map[string]entities.VehicleInfo, capacity),
		order:    make([]string, 0, capacity),
	}
}

func (s *MemoryStore) Get(_ context.Context, plate string) (entities.VehicleInfo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.entries[plate]
	return info, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, plate string, info entities.VehicleInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[plate]; ok {
		s.entries[plate] = info
		return nil
	}
	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}
	s.entries[plate] = info
	s.order = append(s.order, plate)
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

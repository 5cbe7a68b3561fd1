package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mkigikm/director-api/internal/domains/director"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development. Records are stored serialized so reads hand back copies, the
// same way the Redis implementation does.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[string][]byte),
	}
}

func (r *InMemoryRepository) FindByID(ctx context.Context, livestreamID string) (*director.Director, error) {
	r.mu.RLock()
	raw, ok := r.records[livestreamID]
	r.mu.RUnlock()

	if !ok {
		return nil, director.ErrDirectorNotFound
	}

	var d director.Director
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, d *director.Director) error {
	d.EnsureDefaults()

	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.records[d.LivestreamID] = raw
	r.mu.Unlock()
	return nil
}

func (r *InMemoryRepository) All(ctx context.Context) ([]*director.Director, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	directors := make([]*director.Director, 0, len(r.records))
	for _, raw := range r.records {
		var d director.Director
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		directors = append(directors, &d)
	}
	return directors, nil
}

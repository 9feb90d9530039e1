package jobs

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]JobDescription
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]JobDescription)}
}

// Create stores a job description.
func (r *MemoryRepo) Create(ctx context.Context, jd JobDescription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[jd.ID] = jd
	return nil
}

// GetByID returns a job description by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (JobDescription, error) {
	if err := ctx.Err(); err != nil {
		return JobDescription{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	jd, ok := r.data[id]
	if !ok {
		return JobDescription{}, ErrNotFound
	}
	return jd, nil
}

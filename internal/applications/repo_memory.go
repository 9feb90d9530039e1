package applications

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	apps   map[string]Application
	notes  map[string][]Note
	events map[string][]TimelineEvent
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		apps:   make(map[string]Application),
		notes:  make(map[string][]Note),
		events: make(map[string][]TimelineEvent),
	}
}

// Create stores an application.
func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app.Notes = nil
	app.Timeline = nil
	r.apps[app.ID] = app
	return nil
}

// GetByID returns an application with notes and timeline.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.apps[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return r.withRelations(app), nil
}

// List returns applications matching the filter, newest first.
func (r *MemoryRepo) List(ctx context.Context, filter Filter) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := []Application{}
	for _, app := range r.apps {
		if filter.Status != "" && app.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(app.Company), search) &&
			!strings.Contains(strings.ToLower(app.Role), search) {
			continue
		}
		out = append(out, r.withRelations(app))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces a stored application's fields.
func (r *MemoryRepo) Update(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.ID]; !ok {
		return ErrNotFound
	}
	app.Notes = nil
	app.Timeline = nil
	r.apps[app.ID] = app
	return nil
}

// AddNote appends a note to an application.
func (r *MemoryRepo) AddNote(ctx context.Context, note Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[note.ApplicationID]; !ok {
		return ErrNotFound
	}
	r.notes[note.ApplicationID] = append(r.notes[note.ApplicationID], note)
	return nil
}

// AddEvent appends a timeline event to an application.
func (r *MemoryRepo) AddEvent(ctx context.Context, event TimelineEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[event.ApplicationID]; !ok {
		return ErrNotFound
	}
	r.events[event.ApplicationID] = append(r.events[event.ApplicationID], event)
	return nil
}

func (r *MemoryRepo) withRelations(app Application) Application {
	app.Notes = append([]Note{}, r.notes[app.ID]...)
	app.Timeline = append([]TimelineEvent{}, r.events[app.ID]...)
	return app
}

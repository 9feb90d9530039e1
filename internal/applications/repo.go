package applications

import "context"

// Filter narrows a List call. Zero value lists everything.
type Filter struct {
	Search string
	Status Status
}

// Repo defines persistence operations for applications, their notes and
// timeline events. GetByID and List return applications with notes and
// timeline populated.
type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, filter Filter) ([]Application, error)
	Update(ctx context.Context, app Application) error
	AddNote(ctx context.Context, note Note) error
	AddEvent(ctx context.Context, event TimelineEvent) error
}

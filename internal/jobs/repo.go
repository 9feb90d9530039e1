package jobs

import "context"

// Repo defines persistence operations for job descriptions.
type Repo interface {
	Create(ctx context.Context, jd JobDescription) error
	GetByID(ctx context.Context, id string) (JobDescription, error)
}

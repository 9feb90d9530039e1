package resumes

import "context"

// Repo defines persistence operations for resumes and their child entities.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
}

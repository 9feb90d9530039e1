package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an application.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO job_applications (id, company, role, job_link, resume_id, status, application_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		app.ID, app.Company, app.Role, app.JobLink, app.ResumeID,
		string(app.Status), app.ApplicationDate, app.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID loads an application with its notes and timeline.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Application, error) {
	const query = `
SELECT id, company, role, job_link, resume_id, status, application_date, created_at
FROM job_applications
WHERE id = $1`
	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	if err := r.loadRelations(ctx, &app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// List returns applications matching the filter, newest first.
func (r *PGRepo) List(ctx context.Context, filter Filter) ([]Application, error) {
	query := `
SELECT id, company, role, job_link, resume_id, status, application_date, created_at
FROM job_applications`
	var conds []string
	var args []any
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		conds = append(conds, fmt.Sprintf("(LOWER(company) LIKE $%d OR LOWER(role) LIKE $%d)", len(args), len(args)))
	}
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY created_at DESC, id"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.loadRelations(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update persists status and application date changes.
func (r *PGRepo) Update(ctx context.Context, app Application) error {
	const query = `
UPDATE job_applications
SET status = $2, application_date = $3
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, app.ID, string(app.Status), app.ApplicationDate)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddNote inserts a note.
func (r *PGRepo) AddNote(ctx context.Context, note Note) error {
	const query = `
INSERT INTO application_notes (id, application_id, content, created_at)
VALUES ($1, $2, $3, $4)`
	if _, err := r.DB.ExecContext(ctx, query, note.ID, note.ApplicationID, note.Content, note.CreatedAt); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// AddEvent inserts a timeline event.
func (r *PGRepo) AddEvent(ctx context.Context, event TimelineEvent) error {
	const query = `
INSERT INTO timeline_events (id, application_id, type, title, description, event_date)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.DB.ExecContext(ctx, query,
		event.ID, event.ApplicationID, string(event.Type), event.Title, event.Description, event.Date,
	); err != nil {
		return fmt.Errorf("insert timeline event: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (Application, error) {
	var app Application
	var status string
	var appDate sql.NullTime
	err := row.Scan(&app.ID, &app.Company, &app.Role, &app.JobLink, &app.ResumeID, &status, &appDate, &app.CreatedAt)
	if err != nil {
		return Application{}, err
	}
	app.Status = Status(status)
	if appDate.Valid {
		t := appDate.Time
		app.ApplicationDate = &t
	}
	return app, nil
}

func (r *PGRepo) loadRelations(ctx context.Context, app *Application) error {
	const notesQuery = `
SELECT id, application_id, content, created_at
FROM application_notes
WHERE application_id = $1
ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, notesQuery, app.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	app.Notes = []Note{}
	for rows.Next() {
		var note Note
		if err := rows.Scan(&note.ID, &note.ApplicationID, &note.Content, &note.CreatedAt); err != nil {
			return err
		}
		app.Notes = append(app.Notes, note)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	const eventsQuery = `
SELECT id, application_id, type, title, description, event_date
FROM timeline_events
WHERE application_id = $1
ORDER BY event_date, id`
	eventRows, err := r.DB.QueryContext(ctx, eventsQuery, app.ID)
	if err != nil {
		return err
	}
	defer eventRows.Close()
	app.Timeline = []TimelineEvent{}
	for eventRows.Next() {
		var event TimelineEvent
		var eventType string
		if err := eventRows.Scan(&event.ID, &event.ApplicationID, &eventType, &event.Title, &event.Description, &event.Date); err != nil {
			return err
		}
		event.Type = EventType(eventType)
		app.Timeline = append(app.Timeline, event)
	}
	return eventRows.Err()
}

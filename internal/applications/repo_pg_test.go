package applications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	app := Application{
		ID:        "app-1",
		Company:   "Initech",
		Role:      "Backend Engineer",
		JobLink:   "https://jobs.example.com/1",
		ResumeID:  "resume-1",
		Status:    StatusNotApplied,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO job_applications").
		WithArgs(app.ID, app.Company, app.Role, app.JobLink, app.ResumeID, "NOT_APPLIED", nil, app.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), app); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateMissingReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE job_applications").
		WithArgs("missing", "APPLIED", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	now := time.Now().UTC()
	err = repo.Update(context.Background(), Application{ID: "missing", Status: StatusApplied, ApplicationDate: &now})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListWithFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()
	appColumns := []string{"id", "company", "role", "job_link", "resume_id", "status", "application_date", "created_at"}

	mock.ExpectQuery("FROM job_applications").
		WithArgs("APPLIED", "%initech%").
		WillReturnRows(sqlmock.NewRows(appColumns).
			AddRow("app-1", "Initech", "Backend Engineer", "", "resume-1", "APPLIED", created, created))
	mock.ExpectQuery("FROM application_notes").
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "application_id", "content", "created_at"}))
	mock.ExpectQuery("FROM timeline_events").
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "application_id", "type", "title", "description", "event_date"}).
			AddRow("ev-1", "app-1", "STATUS_CHANGE", "Status changed to applied", "Application status updated", created))

	apps, err := repo.List(context.Background(), Filter{Search: "Initech", Status: StatusApplied})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
	if apps[0].Status != StatusApplied || apps[0].ApplicationDate == nil {
		t.Errorf("unexpected application: %+v", apps[0])
	}
	if len(apps[0].Timeline) != 1 || apps[0].Timeline[0].Type != EventStatusChange {
		t.Errorf("timeline: got %+v", apps[0].Timeline)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateInsertsResumeWithChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := Resume{
		ID:      "resume-1",
		Name:    "resume.pdf",
		Version: "1.0",
		Summary: "Backend engineer with five years of experience.",
		Skills:  []string{"Java", "SQL"},
		Experiences: []Experience{
			{ID: "exp-1", ResumeID: "resume-1", Role: "Engineer", Company: "Initech", Duration: "2019 - 2022", Bullets: []string{"Built services"}},
		},
		Projects: []Project{
			{ID: "proj-1", ResumeID: "resume-1", Name: "Inventory Tracker", Description: "Warehouse tool", Technologies: []string{"React"}},
		},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(resume.ID, resume.Name, resume.Version, resume.Summary, `["Java","SQL"]`, resume.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO resume_experiences").
		WithArgs("exp-1", resume.ID, 0, "Engineer", "Initech", "2019 - 2022", `["Built services"]`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO resume_projects").
		WithArgs("proj-1", resume.ID, 0, "Inventory Tracker", "Warehouse tool", `["React"]`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateEncodesEmptyListsAsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := Resume{
		ID:        "resume-2",
		Name:      "empty.pdf",
		Version:   "1.0",
		Summary:   DefaultSummary,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(resume.ID, resume.Name, resume.Version, resume.Summary, "[]", resume.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDReassemblesAggregate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()

	mock.ExpectQuery("SELECT id, name, version, summary, skills_json, created_at").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "version", "summary", "skills_json", "created_at"}).
			AddRow("resume-1", "resume.pdf", "1.0", "Summary text here.", `["Go","SQL"]`, created))
	mock.ExpectQuery("FROM resume_experiences").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "resume_id", "role", "company", "duration", "bullets_json"}).
			AddRow("exp-1", "resume-1", "Engineer", "Initech", "2019 - 2022", `["Shipped things"]`).
			AddRow("exp-2", "resume-1", "Developer", "Hooli", "2017 - 2019", `[]`))
	mock.ExpectQuery("FROM resume_projects").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "resume_id", "name", "description", "technologies_json"}).
			AddRow("proj-1", "resume-1", "Tracker", "Warehouse tool", `["React","Node"]`))

	resume, err := repo.GetByID(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(resume.Skills) != 2 || resume.Skills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", resume.Skills)
	}
	if len(resume.Experiences) != 2 {
		t.Fatalf("expected 2 experiences, got %d", len(resume.Experiences))
	}
	if resume.Experiences[1].Role != "Developer" {
		t.Fatalf("experience order not preserved: %v", resume.Experiences)
	}
	if len(resume.Experiences[1].Bullets) != 0 {
		t.Fatalf("expected empty bullets, got %v", resume.Experiences[1].Bullets)
	}
	if len(resume.Projects) != 1 || resume.Projects[0].Technologies[1] != "Node" {
		t.Fatalf("unexpected projects: %v", resume.Projects)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMissingReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, name, version, summary, skills_json, created_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "version", "summary", "skills_json", "created_at"}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

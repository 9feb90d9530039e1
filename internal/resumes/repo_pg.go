package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a resume with its experiences and projects in one transaction.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	skillsJSON, err := marshalList(resume.Skills)
	if err != nil {
		return err
	}

	const insertResume = `
INSERT INTO resumes (id, name, version, summary, skills_json, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, insertResume,
		resume.ID, resume.Name, resume.Version, resume.Summary, skillsJSON, resume.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}

	const insertExperience = `
INSERT INTO resume_experiences (id, resume_id, position, role, company, duration, bullets_json)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, exp := range resume.Experiences {
		bulletsJSON, err := marshalList(exp.Bullets)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertExperience,
			exp.ID, resume.ID, i, exp.Role, exp.Company, exp.Duration, bulletsJSON,
		); err != nil {
			return fmt.Errorf("insert experience: %w", err)
		}
	}

	const insertProject = `
INSERT INTO resume_projects (id, resume_id, position, name, description, technologies_json)
VALUES ($1, $2, $3, $4, $5, $6)`
	for i, proj := range resume.Projects {
		techsJSON, err := marshalList(proj.Technologies)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertProject,
			proj.ID, resume.ID, i, proj.Name, proj.Description, techsJSON,
		); err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
	}

	return tx.Commit()
}

// GetByID loads a resume with its experiences and projects.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT id, name, version, summary, skills_json, created_at
FROM resumes
WHERE id = $1`
	var resume Resume
	var skillsJSON string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&resume.ID, &resume.Name, &resume.Version, &resume.Summary, &skillsJSON, &resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if resume.Skills, err = unmarshalList(skillsJSON); err != nil {
		return Resume{}, err
	}

	if resume.Experiences, err = r.experiencesByResume(ctx, id); err != nil {
		return Resume{}, err
	}
	if resume.Projects, err = r.projectsByResume(ctx, id); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

func (r *PGRepo) experiencesByResume(ctx context.Context, resumeID string) ([]Experience, error) {
	const query = `
SELECT id, resume_id, role, company, duration, bullets_json
FROM resume_experiences
WHERE resume_id = $1
ORDER BY position`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Experience
	for rows.Next() {
		var exp Experience
		var bulletsJSON string
		if err := rows.Scan(&exp.ID, &exp.ResumeID, &exp.Role, &exp.Company, &exp.Duration, &bulletsJSON); err != nil {
			return nil, err
		}
		if exp.Bullets, err = unmarshalList(bulletsJSON); err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}

func (r *PGRepo) projectsByResume(ctx context.Context, resumeID string) ([]Project, error) {
	const query = `
SELECT id, resume_id, name, description, technologies_json
FROM resume_projects
WHERE resume_id = $1
ORDER BY position`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var proj Project
		var techsJSON string
		if err := rows.Scan(&proj.ID, &proj.ResumeID, &proj.Name, &proj.Description, &techsJSON); err != nil {
			return nil, err
		}
		if proj.Technologies, err = unmarshalList(techsJSON); err != nil {
			return nil, err
		}
		out = append(out, proj)
	}
	return out, rows.Err()
}

func marshalList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return string(data), nil
}

func unmarshalList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("unmarshal list: %w", err)
	}
	return items, nil
}

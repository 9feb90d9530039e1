package jobs

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

// Create inserts a job description with its classified lists as JSON columns.
func (r *PGRepo) Create(ctx context.Context, jd JobDescription) error {
	lists := make([]string, 0, 5)
	for _, items := range [][]string{jd.RequiredSkills, jd.Keywords, jd.Technologies, jd.SoftSkills, jd.Responsibilities} {
		encoded, err := encodeList(items)
		if err != nil {
			return err
		}
		lists = append(lists, encoded)
	}

	const query = `
INSERT INTO job_descriptions (id, url, title, company, description, source,
	required_skills_json, keywords_json, technologies_json, soft_skills_json,
	responsibilities_json, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.DB.ExecContext(ctx, query,
		jd.ID, jd.URL, jd.Title, jd.Company, jd.Description, string(jd.Source),
		lists[0], lists[1], lists[2], lists[3], lists[4], jd.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job description: %w", err)
	}
	return nil
}

// GetByID loads a job description.
func (r *PGRepo) GetByID(ctx context.Context, id string) (JobDescription, error) {
	const query = `
SELECT id, url, title, company, description, source,
	required_skills_json, keywords_json, technologies_json, soft_skills_json,
	responsibilities_json, created_at
FROM job_descriptions
WHERE id = $1`
	var jd JobDescription
	var source string
	var skillsJSON, keywordsJSON, techsJSON, softJSON, respJSON string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&jd.ID, &jd.URL, &jd.Title, &jd.Company, &jd.Description, &source,
		&skillsJSON, &keywordsJSON, &techsJSON, &softJSON, &respJSON, &jd.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobDescription{}, ErrNotFound
		}
		return JobDescription{}, err
	}
	jd.Source = Source(source)

	for _, column := range []struct {
		raw  string
		dest *[]string
	}{
		{skillsJSON, &jd.RequiredSkills},
		{keywordsJSON, &jd.Keywords},
		{techsJSON, &jd.Technologies},
		{softJSON, &jd.SoftSkills},
		{respJSON, &jd.Responsibilities},
	} {
		if *column.dest, err = decodeList(column.raw); err != nil {
			return JobDescription{}, err
		}
	}
	return jd, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return string(data), nil
}

func decodeList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("unmarshal list: %w", err)
	}
	return items, nil
}

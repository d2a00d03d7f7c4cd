package database

import (
	"context"
	"errors"
	"fmt"
	"powerdash/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

const (
	columnTitle        = "title"
	columnDescription  = "description"
	columnCategory     = "category"
	columnStatus       = "status"
	columnClient       = "client"
	columnStartDate    = "start_date"
	columnEndDate      = "end_date"
	columnBudget       = "budget"
	columnProgress     = "progress"
	columnTechnologies = "technologies"
	columnImageURL     = "image_url"
	columnLiveURL      = "live_url"
	columnGithubURL    = "github_url"
)

const projectColumns = `
	id, title, description, category, status, client,
	start_date, end_date, budget, progress, technologies,
	image_url, live_url, github_url, created_at, updated_at
`

// ListProjects returns all projects ordered by updated_at descending,
// the listing sort key the dashboard relies on.
func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		ORDER BY updated_at DESC
	`, projectColumns)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE id = $1
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// CreateProject inserts a new row and re-reads it by the generated id so
// the caller gets the canonical representation, including the
// store-computed id and timestamps.
func (db *DB) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	query := `
		INSERT INTO projects
			(title, description, category, status, client, start_date, end_date,
			 budget, progress, technologies, image_url, live_url, github_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	technologies := req.Technologies
	if technologies == nil {
		technologies = models.Technologies{}
	}

	var endDate interface{}
	if req.EndDate != nil {
		endDate = *req.EndDate
	}

	var projectID uuid.UUID
	err := db.Pool.QueryRow(ctx, query,
		req.Title, req.Description, req.Category, req.Status, req.Client,
		req.StartDate, endDate, *req.Budget, *req.Progress, technologies,
		req.ImageURL, req.LiveURL, req.GithubURL,
	).Scan(&projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Info().Str("project_id", projectID.String()).Str("title", req.Title).Msg("project created")
	return db.GetProject(ctx, projectID)
}

// UpdateProject applies only the fields present in the request and always
// refreshes updated_at. Returns ErrNotFound if the id matches no row.
func (db *DB) UpdateProject(ctx context.Context, projectID uuid.UUID, req models.UpdateProjectRequest) (*models.Project, error) {
	ub := NewUpdateBuilder()

	if req.Title != nil {
		ub.Set(columnTitle, *req.Title)
	}
	if req.Description != nil {
		ub.Set(columnDescription, *req.Description)
	}
	if req.Category != nil {
		ub.Set(columnCategory, *req.Category)
	}
	if req.Status != nil {
		ub.Set(columnStatus, *req.Status)
	}
	if req.Client != nil {
		ub.Set(columnClient, *req.Client)
	}
	if req.StartDate != nil {
		ub.Set(columnStartDate, *req.StartDate)
	}
	if req.EndDate != nil {
		ub.Set(columnEndDate, *req.EndDate)
	}
	if req.Budget != nil {
		ub.Set(columnBudget, *req.Budget)
	}
	if req.Progress != nil {
		ub.Set(columnProgress, *req.Progress)
	}
	if req.Technologies != nil {
		ub.Set(columnTechnologies, *req.Technologies)
	}
	if req.ImageURL != nil {
		ub.Set(columnImageURL, *req.ImageURL)
	}
	if req.LiveURL != nil {
		ub.Set(columnLiveURL, *req.LiveURL)
	}
	if req.GithubURL != nil {
		ub.Set(columnGithubURL, *req.GithubURL)
	}
	ub.SetRaw("updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE projects
		%s
		WHERE id = $%d
	`, ub.SetClause(), ub.NextArgNum())

	args := append(ub.Args(), projectID)

	result, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return db.GetProject(ctx, projectID)
}

func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	log.Info().Str("project_id", projectID.String()).Msg("project deleted")
	return nil
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Category,
		&project.Status,
		&project.Client,
		&project.StartDate,
		&project.EndDate,
		&project.Budget,
		&project.Progress,
		&project.Technologies,
		&project.ImageURL,
		&project.LiveURL,
		&project.GithubURL,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

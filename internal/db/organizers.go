package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"rideboard/internal/models"
)

// CreateOrganizer inserts a new organizer. There is no public write path;
// this is used by seed tooling and tests.
func (d *DB) CreateOrganizer(ctx context.Context, org *models.Organizer) error {
	query := `
		INSERT INTO organizers (name, slug, description, website)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := d.Pool.QueryRow(ctx, query, org.Name, org.Slug, org.Description, org.Website).
		Scan(&org.ID, &org.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateOrganizer
		}
		return err
	}
	return nil
}

// GetOrganizerBySlug retrieves an organizer by its slug.
func (d *DB) GetOrganizerBySlug(ctx context.Context, slug string) (*models.Organizer, error) {
	query := `
		SELECT id, name, slug, description, website, created_at
		FROM organizers WHERE slug = $1
	`

	var org models.Organizer
	err := d.Pool.QueryRow(ctx, query, slug).Scan(
		&org.ID, &org.Name, &org.Slug, &org.Description, &org.Website, &org.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrganizerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}

// GetAllOrganizers retrieves all organizers, alphabetically.
func (d *DB) GetAllOrganizers(ctx context.Context) ([]models.Organizer, error) {
	query := `
		SELECT id, name, slug, description, website, created_at
		FROM organizers ORDER BY name ASC
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []models.Organizer
	for rows.Next() {
		var org models.Organizer
		if err := rows.Scan(&org.ID, &org.Name, &org.Slug, &org.Description, &org.Website, &org.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

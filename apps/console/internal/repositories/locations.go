package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"admin.townguide.app/apps/console/internal/models"
)

type LocationRepository struct {
	db postgres.DB
}

func (repo *LocationRepository) GetAll(
	ctx context.Context,
) ([]models.Location, error) {
	query := `
		SELECT id, name, slug, description, address, website_url,
			sort_order, created_at, updated_at
		FROM console.locations
		ORDER BY sort_order ASC, name ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		location := models.Location{}

		err = rows.Scan(
			&location.ID,
			&location.Name,
			&location.Slug,
			&location.Description,
			&location.Address,
			&location.WebsiteURL,
			&location.SortOrder,
			&location.CreatedAt,
			&location.UpdatedAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return locations, nil
}

func (repo *LocationRepository) GetByID(
	ctx context.Context,
	id int64,
) (*models.Location, error) {
	query := `
		SELECT name, slug, description, address, website_url,
			sort_order, created_at, updated_at
		FROM console.locations
		WHERE id = $1
	`

	//nolint:exhaustruct //other fields are scanned below
	location := models.Location{
		ID: id,
	}
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&location.Name,
		&location.Slug,
		&location.Description,
		&location.Address,
		&location.WebsiteURL,
		&location.SortOrder,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &location, nil
}

func (repo *LocationRepository) Create(
	ctx context.Context,
	location *models.Location,
) error {
	query := `
		INSERT INTO console.locations (name, slug, description, address,
			website_url, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := repo.db.QueryRow(
		ctx,
		query,
		location.Name,
		location.Slug,
		location.Description,
		location.Address,
		location.WebsiteURL,
		location.SortOrder,
	).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *LocationRepository) Update(
	ctx context.Context,
	location *models.Location,
) error {
	query := `
		UPDATE console.locations
		SET name = $2, slug = $3, description = $4, address = $5,
			website_url = $6, sort_order = $7, updated_at = now()
		WHERE id = $1
	`

	result, err := repo.db.Exec(
		ctx,
		query,
		location.ID,
		location.Name,
		location.Slug,
		location.Description,
		location.Address,
		location.WebsiteURL,
		location.SortOrder,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *LocationRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM console.locations
		WHERE id = $1
	`

	result, err := repo.db.Exec(ctx, query, id)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *LocationRepository) UpsertManyBySlug(
	ctx context.Context,
	locations []models.Location,
) error {
	if len(locations) == 0 {
		return nil
	}

	const fieldsPerRow = 6

	valueRows := make([]string, 0, len(locations))
	args := make([]any, 0, len(locations)*fieldsPerRow)
	for i, location := range locations {
		placeholders := make([]string, fieldsPerRow)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", i*fieldsPerRow+j+1)
		}
		valueRows = append(
			valueRows,
			fmt.Sprintf("(%s)", strings.Join(placeholders, ", ")),
		)

		args = append(args,
			location.Name,
			location.Slug,
			location.Description,
			location.Address,
			location.WebsiteURL,
			location.SortOrder,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO console.locations (name, slug, description, address,
			website_url, sort_order)
		VALUES %s
		ON CONFLICT (slug)
		DO UPDATE SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			address = EXCLUDED.address,
			website_url = EXCLUDED.website_url,
			sort_order = EXCLUDED.sort_order,
			updated_at = now()
	`, strings.Join(valueRows, ", "))

	_, err := repo.db.Exec(ctx, query, args...)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

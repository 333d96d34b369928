package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"admin.townguide.app/apps/console/internal/models"
)

type RouteRepository struct {
	db postgres.DB
}

func (repo *RouteRepository) GetAll(ctx context.Context) ([]models.Route, error) {
	query := `
		SELECT id, name, slug, description, duration_minutes,
			sort_order, created_at, updated_at
		FROM console.routes
		ORDER BY sort_order ASC, name ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	routes := []models.Route{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		route := models.Route{}

		err = rows.Scan(
			&route.ID,
			&route.Name,
			&route.Slug,
			&route.Description,
			&route.Duration,
			&route.SortOrder,
			&route.CreatedAt,
			&route.UpdatedAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		routes = append(routes, route)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return routes, nil
}

func (repo *RouteRepository) GetByID(
	ctx context.Context,
	id int64,
) (*models.Route, error) {
	query := `
		SELECT name, slug, description, duration_minutes,
			sort_order, created_at, updated_at
		FROM console.routes
		WHERE id = $1
	`

	//nolint:exhaustruct //other fields are scanned below
	route := models.Route{
		ID: id,
	}
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&route.Name,
		&route.Slug,
		&route.Description,
		&route.Duration,
		&route.SortOrder,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &route, nil
}

func (repo *RouteRepository) Create(
	ctx context.Context,
	route *models.Route,
) error {
	query := `
		INSERT INTO console.routes (name, slug, description,
			duration_minutes, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := repo.db.QueryRow(
		ctx,
		query,
		route.Name,
		route.Slug,
		route.Description,
		route.Duration,
		route.SortOrder,
	).Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *RouteRepository) Update(
	ctx context.Context,
	route *models.Route,
) error {
	query := `
		UPDATE console.routes
		SET name = $2, slug = $3, description = $4,
			duration_minutes = $5, sort_order = $6, updated_at = now()
		WHERE id = $1
	`

	result, err := repo.db.Exec(
		ctx,
		query,
		route.ID,
		route.Name,
		route.Slug,
		route.Description,
		route.Duration,
		route.SortOrder,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *RouteRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM console.routes
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

func (repo *RouteRepository) UpsertManyBySlug(
	ctx context.Context,
	routes []models.Route,
) error {
	if len(routes) == 0 {
		return nil
	}

	const fieldsPerRow = 5

	valueRows := make([]string, 0, len(routes))
	args := make([]any, 0, len(routes)*fieldsPerRow)
	for i, route := range routes {
		placeholders := make([]string, fieldsPerRow)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", i*fieldsPerRow+j+1)
		}
		valueRows = append(
			valueRows,
			fmt.Sprintf("(%s)", strings.Join(placeholders, ", ")),
		)

		args = append(args,
			route.Name,
			route.Slug,
			route.Description,
			route.Duration,
			route.SortOrder,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO console.routes (name, slug, description,
			duration_minutes, sort_order)
		VALUES %s
		ON CONFLICT (slug)
		DO UPDATE SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			duration_minutes = EXCLUDED.duration_minutes,
			sort_order = EXCLUDED.sort_order,
			updated_at = now()
	`, strings.Join(valueRows, ", "))

	_, err := repo.db.Exec(ctx, query, args...)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

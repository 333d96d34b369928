package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"admin.townguide.app/apps/console/internal/models"
)

type AdRepository struct {
	db postgres.DB
}

func (repo *AdRepository) GetAll(ctx context.Context) ([]models.Ad, error) {
	query := `
		SELECT id, name, slug, vendor, website_url, image_url, active,
			sort_order, created_at, updated_at
		FROM console.ads
		ORDER BY sort_order ASC, name ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	ads := []models.Ad{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		ad := models.Ad{}

		err = rows.Scan(
			&ad.ID,
			&ad.Name,
			&ad.Slug,
			&ad.Vendor,
			&ad.WebsiteURL,
			&ad.ImageURL,
			&ad.Active,
			&ad.SortOrder,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return ads, nil
}

func (repo *AdRepository) GetByID(
	ctx context.Context,
	id int64,
) (*models.Ad, error) {
	query := `
		SELECT name, slug, vendor, website_url, image_url, active,
			sort_order, created_at, updated_at
		FROM console.ads
		WHERE id = $1
	`

	//nolint:exhaustruct //other fields are scanned below
	ad := models.Ad{
		ID: id,
	}
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&ad.Name,
		&ad.Slug,
		&ad.Vendor,
		&ad.WebsiteURL,
		&ad.ImageURL,
		&ad.Active,
		&ad.SortOrder,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &ad, nil
}

func (repo *AdRepository) Create(ctx context.Context, ad *models.Ad) error {
	query := `
		INSERT INTO console.ads (name, slug, vendor, website_url,
			image_url, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := repo.db.QueryRow(
		ctx,
		query,
		ad.Name,
		ad.Slug,
		ad.Vendor,
		ad.WebsiteURL,
		ad.ImageURL,
		ad.Active,
		ad.SortOrder,
	).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *AdRepository) Update(ctx context.Context, ad *models.Ad) error {
	query := `
		UPDATE console.ads
		SET name = $2, slug = $3, vendor = $4, website_url = $5,
			image_url = $6, active = $7, sort_order = $8, updated_at = now()
		WHERE id = $1
	`

	result, err := repo.db.Exec(
		ctx,
		query,
		ad.ID,
		ad.Name,
		ad.Slug,
		ad.Vendor,
		ad.WebsiteURL,
		ad.ImageURL,
		ad.Active,
		ad.SortOrder,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *AdRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM console.ads
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

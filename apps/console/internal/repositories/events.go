package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"admin.townguide.app/apps/console/internal/models"
)

type EventRepository struct {
	db postgres.DB
}

//nolint:lll //column list
const eventColumns = `id, name, slug, start_date, end_date, start_time, end_time, all_day, location, website_url, recurrence, status, sort_order, ocr_text, created_at, updated_at`

func (repo *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM console.events
		ORDER BY sort_order ASC, start_date ASC NULLS LAST, id ASC
	`, eventColumns)

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return events, nil
}

func (repo *EventRepository) GetByID(
	ctx context.Context,
	id int64,
) (*models.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM console.events
		WHERE id = $1
	`, eventColumns)

	event, err := scanEvent(repo.db.QueryRow(ctx, query, id).Scan)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return event, nil
}

func (repo *EventRepository) Create(
	ctx context.Context,
	event *models.Event,
) error {
	query := `
		INSERT INTO console.events (name, slug, start_date, end_date,
			start_time, end_time, all_day, location, website_url,
			recurrence, status, sort_order, ocr_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err := repo.db.QueryRow(
		ctx,
		query,
		event.Name,
		event.Slug,
		event.StartDate,
		event.EndDate,
		event.StartTime,
		event.EndTime,
		event.AllDay,
		event.Location,
		event.WebsiteURL,
		event.Recurrence,
		event.Status,
		event.SortOrder,
		event.OcrText,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *EventRepository) Update(
	ctx context.Context,
	event *models.Event,
) error {
	query := `
		UPDATE console.events
		SET name = $2, slug = $3, start_date = $4, end_date = $5,
			start_time = $6, end_time = $7, all_day = $8, location = $9,
			website_url = $10, recurrence = $11, status = $12,
			sort_order = $13, updated_at = now()
		WHERE id = $1
	`

	result, err := repo.db.Exec(
		ctx,
		query,
		event.ID,
		event.Name,
		event.Slug,
		event.StartDate,
		event.EndDate,
		event.StartTime,
		event.EndTime,
		event.AllDay,
		event.Location,
		event.WebsiteURL,
		event.Recurrence,
		event.Status,
		event.SortOrder,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrResourceNotFound
	}

	return nil
}

func (repo *EventRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM console.events
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

// UpsertManyBySlug writes all events in one statement so a bulk import either
// lands completely or not at all. A row with a matching slug is updated in
// place; anything else inserts.
func (repo *EventRepository) UpsertManyBySlug(
	ctx context.Context,
	events []models.Event,
) error {
	if len(events) == 0 {
		return nil
	}

	const fieldsPerRow = 13

	valueRows := make([]string, 0, len(events))
	args := make([]any, 0, len(events)*fieldsPerRow)
	for i, event := range events {
		placeholders := make([]string, fieldsPerRow)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", i*fieldsPerRow+j+1)
		}
		valueRows = append(
			valueRows,
			fmt.Sprintf("(%s)", strings.Join(placeholders, ", ")),
		)

		args = append(args,
			event.Name,
			event.Slug,
			event.StartDate,
			event.EndDate,
			event.StartTime,
			event.EndTime,
			event.AllDay,
			event.Location,
			event.WebsiteURL,
			event.Recurrence,
			event.Status,
			event.SortOrder,
			event.OcrText,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO console.events (name, slug, start_date, end_date,
			start_time, end_time, all_day, location, website_url,
			recurrence, status, sort_order, ocr_text)
		VALUES %s
		ON CONFLICT (slug)
		DO UPDATE SET name = EXCLUDED.name,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			all_day = EXCLUDED.all_day,
			location = EXCLUDED.location,
			website_url = EXCLUDED.website_url,
			recurrence = EXCLUDED.recurrence,
			status = EXCLUDED.status,
			sort_order = EXCLUDED.sort_order,
			ocr_text = COALESCE(EXCLUDED.ocr_text, console.events.ocr_text),
			updated_at = now()
	`, strings.Join(valueRows, ", "))

	_, err := repo.db.Exec(ctx, query, args...)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func scanEvent(scan func(dest ...any) error) (*models.Event, error) {
	//nolint:exhaustruct //other fields are scanned below
	event := models.Event{}

	var startDate, endDate *time.Time

	err := scan(
		&event.ID,
		&event.Name,
		&event.Slug,
		&startDate,
		&endDate,
		&event.StartTime,
		&event.EndTime,
		&event.AllDay,
		&event.Location,
		&event.WebsiteURL,
		&event.Recurrence,
		&event.Status,
		&event.SortOrder,
		&event.OcrText,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.StartDate = dateToString(startDate)
	event.EndDate = dateToString(endDate)

	return &event, nil
}

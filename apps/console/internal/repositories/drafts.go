package repositories

import (
	"context"
	"encoding/json"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"admin.townguide.app/apps/console/internal/models"
)

// DraftRepository is the explicit draft-persistence dependency: the in-memory
// draft stays the source of truth and every change is written through here as
// a side effect. Drafts are stored whole as JSON; they have no queryable
// columns of their own.
type DraftRepository struct {
	db postgres.DB
}

func (repo *DraftRepository) Save(
	ctx context.Context,
	draft *models.EventDraft,
) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO console.event_drafts (id, payload)
		VALUES ($1, $2)
		ON CONFLICT (id)
		DO UPDATE SET payload = $2, updated_at = now()
	`

	_, err = repo.db.Exec(ctx, query, draft.ID, payload)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *DraftRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.EventDraft, error) {
	query := `
		SELECT payload
		FROM console.event_drafts
		WHERE id = $1
	`

	var payload []byte
	err := repo.db.QueryRow(ctx, query, id).Scan(&payload)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return unmarshalDraft(payload)
}

func (repo *DraftRepository) GetAll(
	ctx context.Context,
) ([]models.EventDraft, error) {
	query := `
		SELECT payload
		FROM console.event_drafts
		ORDER BY created_at ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	drafts := []models.EventDraft{}
	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		draft, err := unmarshalDraft(payload)
		if err != nil {
			return nil, err
		}

		drafts = append(drafts, *draft)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return drafts, nil
}

// GetAdjacent returns the draft created directly after (or before) the given
// one, for the review screen's next/previous navigation.
func (repo *DraftRepository) GetAdjacent(
	ctx context.Context,
	id string,
	next bool,
) (*models.EventDraft, error) {
	query := `
		SELECT payload
		FROM console.event_drafts
		WHERE created_at > (
			SELECT created_at FROM console.event_drafts WHERE id = $1
		)
		ORDER BY created_at ASC
		LIMIT 1
	`
	if !next {
		query = `
			SELECT payload
			FROM console.event_drafts
			WHERE created_at < (
				SELECT created_at FROM console.event_drafts WHERE id = $1
			)
			ORDER BY created_at DESC
			LIMIT 1
		`
	}

	var payload []byte
	err := repo.db.QueryRow(ctx, query, id).Scan(&payload)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return unmarshalDraft(payload)
}

func (repo *DraftRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM console.event_drafts
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

func unmarshalDraft(payload []byte) (*models.EventDraft, error) {
	//nolint:exhaustruct //fields come from the payload
	draft := models.EventDraft{}
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, err
	}

	return &draft, nil
}

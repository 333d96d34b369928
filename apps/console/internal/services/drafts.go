package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"admin.townguide.app/apps/console/internal/dtos"
	"admin.townguide.app/apps/console/internal/models"
	"admin.townguide.app/apps/console/internal/repositories"
	"admin.townguide.app/apps/console/pkg/poster"
)

// ErrNavigationInFlight is returned when a next/previous request arrives
// while another one is still saving; the caller should simply retry.
var ErrNavigationInFlight = errors.New("a navigation request is already in flight")

type DraftService struct {
	logger *slog.Logger
	drafts *repositories.DraftRepository
	events *EventService

	// navigation saves the active draft before swapping; the mutex keeps two
	// rapid navigation actions from interleaving their save/swap steps.
	navigating sync.Mutex
}

// ParseOCR turns raw flyer text into a stored, editable draft. Extraction is
// best effort; whatever the parser could not read stays empty for the
// operator.
func (service *DraftService) ParseOCR(
	ctx context.Context,
	text string,
) (*models.EventDraft, error) {
	draft := models.DraftFromPoster(poster.Parse(text), text)
	draft.ID = uuid.NewString()

	service.logger.Debug(
		"parsed ocr text",
		slog.String("draft", draft.ID),
		slog.String("name", draft.Name),
		slog.Bool("hasDate", draft.StartDate != nil),
	)

	err := service.drafts.Save(ctx, &draft)
	if err != nil {
		return nil, err
	}

	return &draft, nil
}

func (service *DraftService) GetAll(
	ctx context.Context,
) ([]models.EventDraft, error) {
	return service.drafts.GetAll(ctx)
}

func (service *DraftService) GetByID(
	ctx context.Context,
	id string,
) (*models.EventDraft, error) {
	return service.drafts.GetByID(ctx, id)
}

// EditField applies a single field edit through the reconciliation rules and
// writes the draft back as a side effect.
func (service *DraftService) EditField(
	ctx context.Context,
	id string,
	edit dtos.DraftEditDto,
) (*models.EventDraft, error) {
	draft, err := service.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyDraftEdit(draft, edit)

	err = service.drafts.Save(ctx, draft)
	if err != nil {
		return nil, err
	}

	return draft, nil
}

func applyDraftEdit(draft *models.EventDraft, edit dtos.DraftEditDto) {
	switch edit.Field {
	case "name":
		draft.ApplyName(edit.Value, edit.SlugTouched)
	case "slug":
		draft.Slug = models.Slugify(edit.Value)
	case "startDate":
		draft.ApplyStartDate(edit.Value, time.Now())
	case "endDate":
		draft.ApplyEndDate(edit.Value)
	case "startTime":
		draft.ApplyStartTime(edit.Value)
	case "endTime":
		draft.ApplyEndTime(edit.Value)
	case "allDay":
		draft.AllDay = edit.Value == "true"
	case "location":
		draft.Location = edit.Value
	case "websiteUrl":
		draft.WebsiteURL = edit.Value
	case "recurrence":
		draft.Recurrence = edit.Value
	case "status":
		draft.Status = edit.Value
	case "sortOrder":
		sortOrder, err := strconv.Atoi(edit.Value)
		if err == nil {
			draft.SortOrder = sortOrder
		}
	}
}

// Navigate saves the active draft and returns the adjacent one. Only a
// single navigation may be in flight at a time; a second request while the
// first is still saving gets ErrNavigationInFlight instead of racing the
// save/swap steps out of order.
func (service *DraftService) Navigate(
	ctx context.Context,
	id string,
	direction string,
) (*models.EventDraft, error) {
	if !service.navigating.TryLock() {
		return nil, ErrNavigationInFlight
	}
	defer service.navigating.Unlock()

	draft, err := service.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = service.drafts.Save(ctx, draft)
	if err != nil {
		return nil, err
	}

	return service.drafts.GetAdjacent(ctx, id, direction == "next")
}

// Confirm turns the draft into a persisted event (upsert-by-slug) and clears
// the draft. The raw OCR text travels along verbatim for audit.
func (service *DraftService) Confirm(
	ctx context.Context,
	id string,
) (*models.Event, error) {
	draft, err := service.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if draft.Name == "" {
		return nil, errors.New("draft has no name")
	}

	if draft.Slug == "" {
		draft.Slug = models.Slugify(draft.Name)
	}

	status := draft.Status
	if status == "" {
		status = models.StatusDraft
	}

	var ocrText *string
	if draft.OcrText != "" {
		ocrText = &draft.OcrText
	}

	//nolint:exhaustruct //identity and timestamps are assigned by the store
	event := models.Event{
		Name:       draft.Name,
		Slug:       draft.Slug,
		StartDate:  draft.StartDate,
		EndDate:    draft.EndDate,
		StartTime:  draft.StartTime,
		EndTime:    draft.EndTime,
		AllDay:     draft.AllDay,
		Location:   draft.Location,
		WebsiteURL: draft.WebsiteURL,
		Recurrence: draft.Recurrence,
		Status:     status,
		SortOrder:  draft.SortOrder,
		OcrText:    ocrText,
	}

	err = service.events.UpsertBySlug(ctx, &event)
	if err != nil {
		return nil, err
	}

	err = service.drafts.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (service *DraftService) Delete(ctx context.Context, id string) error {
	return service.drafts.Delete(ctx, id)
}

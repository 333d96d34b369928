package services

import (
	"context"

	"admin.townguide.app/apps/console/internal/dtos"
	"admin.townguide.app/apps/console/internal/models"
	"admin.townguide.app/apps/console/internal/repositories"
	"admin.townguide.app/apps/console/pkg/tabular"
)

type EventService struct {
	events *repositories.EventRepository
}

//nolint:gochecknoglobals //fixed column order
var eventCSVHeaders = []string{
	"name", "slug", "start_date", "end_date", "start_time", "end_time",
	"all_day", "location", "website_url", "recurrence", "status", "sort_order",
}

func (service *EventService) GetAll(
	ctx context.Context,
) ([]models.Event, error) {
	return service.events.GetAll(ctx)
}

func (service *EventService) GetByID(
	ctx context.Context,
	id int64,
) (*models.Event, error) {
	return service.events.GetByID(ctx, id)
}

func (service *EventService) Create(
	ctx context.Context,
	dto dtos.EventDto,
) (*models.Event, error) {
	event := eventFromDto(dto)

	err := service.events.Create(ctx, &event)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (service *EventService) Update(
	ctx context.Context,
	id int64,
	dto dtos.EventDto,
) (*models.Event, error) {
	event := eventFromDto(dto)
	event.ID = id

	err := service.events.Update(ctx, &event)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (service *EventService) Delete(ctx context.Context, id int64) error {
	return service.events.Delete(ctx, id)
}

func (service *EventService) UpsertBySlug(
	ctx context.Context,
	event *models.Event,
) error {
	return service.events.UpsertManyBySlug(ctx, []models.Event{*event})
}

func eventFromDto(dto dtos.EventDto) models.Event {
	status := dto.Status
	if status == "" {
		status = models.StatusDraft
	}

	// single-day events only carry a start date
	endDate := dto.EndDate
	if endDate == nil {
		endDate = dto.StartDate
	}

	//nolint:exhaustruct //identity and timestamps are assigned by the store
	return models.Event{
		Name:       dto.Name,
		Slug:       dto.Slug,
		StartDate:  dto.StartDate,
		EndDate:    endDate,
		StartTime:  dto.StartTime,
		EndTime:    dto.EndTime,
		AllDay:     dto.AllDay,
		Location:   dto.Location,
		WebsiteURL: dto.WebsiteURL,
		Recurrence: dto.Recurrence,
		Status:     status,
		SortOrder:  dto.SortOrder,
	}
}

func (service *EventService) ExportCSV(ctx context.Context) (string, error) {
	events, err := service.events.GetAll(ctx)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{
			event.Name,
			event.Slug,
			stringOrEmpty(event.StartDate),
			stringOrEmpty(event.EndDate),
			stringOrEmpty(event.StartTime),
			stringOrEmpty(event.EndTime),
			boolCell(event.AllDay),
			event.Location,
			event.WebsiteURL,
			event.Recurrence,
			event.Status,
			intCell(event.SortOrder),
		})
	}

	return tabular.Serialize(rows, eventCSVHeaders), nil
}

// TemplateCSV is the downloadable starting point for a bulk import; events
// ship a bare header row.
func (service *EventService) TemplateCSV() string {
	return tabular.Serialize(nil, eventCSVHeaders)
}

// ImportCSV validates every row before writing anything; any validation
// error blocks the entire import.
func (service *EventService) ImportCSV(
	ctx context.Context,
	text string,
) (int, map[string]string, error) {
	dataRows, columns, errs := parseImportTable(text, []string{"name", "slug"})
	if errs != nil {
		return 0, errs, nil
	}

	errs = make(map[string]string)
	events := make([]models.Event, 0, len(dataRows))
	for i, row := range dataRows {
		event, rowErr := eventFromRow(row, columns)
		if rowErr != "" {
			errs[rowKey(i)] = rowErr
			continue
		}

		events = append(events, event)
	}

	if len(errs) > 0 {
		return 0, errs, nil
	}

	err := service.events.UpsertManyBySlug(ctx, events)
	if err != nil {
		return 0, nil, err
	}

	return len(events), nil, nil
}

func eventFromRow(row []string, columns map[string]int) (models.Event, string) {
	//nolint:exhaustruct //identity and timestamps are assigned by the store
	event := models.Event{}

	event.Name = cellValue(row, columns, "name")
	event.Slug = cellValue(row, columns, "slug")

	if event.Name == "" {
		return event, "name is required"
	}
	if event.Slug == "" {
		return event, "slug is required"
	}

	event.StartDate = optionalCell(cellValue(row, columns, "start_date"))
	event.EndDate = optionalCell(cellValue(row, columns, "end_date"))
	event.StartTime = optionalCell(cellValue(row, columns, "start_time"))
	event.EndTime = optionalCell(cellValue(row, columns, "end_time"))
	event.Location = cellValue(row, columns, "location")
	event.WebsiteURL = cellValue(row, columns, "website_url")
	event.Recurrence = cellValue(row, columns, "recurrence")

	allDay, err := parseBoolCell(cellValue(row, columns, "all_day"))
	if err != nil {
		return event, "all_day must be true or false"
	}
	event.AllDay = allDay

	event.Status = cellValue(row, columns, "status")
	if event.Status == "" {
		event.Status = models.StatusDraft
	}
	if !models.ValidEventStatus(event.Status) {
		return event, "status must be draft, published or archived"
	}

	sortOrder, err := parseSortOrder(cellValue(row, columns, "sort_order"))
	if err != nil {
		return event, "sort_order must be an integer"
	}
	event.SortOrder = sortOrder

	return event, ""
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func optionalCell(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func boolCell(value bool) string {
	if value {
		return "true"
	}

	return "false"
}

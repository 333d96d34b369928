package services

import (
	"context"
	"fmt"
	"log/slog"

	"admin.townguide.app/apps/console/internal/dtos"
	"admin.townguide.app/apps/console/internal/models"
	"admin.townguide.app/apps/console/internal/repositories"
	"admin.townguide.app/apps/console/pkg/tabular"
	"admin.townguide.app/apps/console/pkg/webmeta"
)

type LocationService struct {
	logger    *slog.Logger
	locations *repositories.LocationRepository
	client    webmeta.Client
}

//nolint:gochecknoglobals //fixed column order
var locationCSVHeaders = []string{
	"name", "slug", "description", "address", "website_url", "sort_order",
}

func (service *LocationService) GetAll(
	ctx context.Context,
) ([]models.Location, error) {
	return service.locations.GetAll(ctx)
}

func (service *LocationService) GetByID(
	ctx context.Context,
	id int64,
) (*models.Location, error) {
	return service.locations.GetByID(ctx, id)
}

func (service *LocationService) Create(
	ctx context.Context,
	dto dtos.LocationDto,
) (*models.Location, error) {
	location := locationFromDto(dto)

	err := service.locations.Create(ctx, &location)
	if err != nil {
		return nil, err
	}

	return &location, nil
}

func (service *LocationService) Update(
	ctx context.Context,
	id int64,
	dto dtos.LocationDto,
) (*models.Location, error) {
	location := locationFromDto(dto)
	location.ID = id

	err := service.locations.Update(ctx, &location)
	if err != nil {
		return nil, err
	}

	return &location, nil
}

func (service *LocationService) Delete(ctx context.Context, id int64) error {
	return service.locations.Delete(ctx, id)
}

// PrefillFromWebsite fetches the venue's page metadata and seeds a dto the
// operator can then correct, the same flow the OCR editor uses for flyers.
func (service *LocationService) PrefillFromWebsite(
	pageURL string,
) (*dtos.LocationDto, error) {
	meta, err := service.client.GetPageMeta(pageURL)
	if err != nil {
		return nil, err
	}

	service.logger.Debug(fmt.Sprintf("prefilled location from %s", pageURL))

	//nolint:exhaustruct //other fields are operator input
	return &dtos.LocationDto{
		Name:        meta.Title,
		Slug:        models.Slugify(meta.Title),
		Description: meta.Description,
		WebsiteURL:  pageURL,
	}, nil
}

func locationFromDto(dto dtos.LocationDto) models.Location {
	//nolint:exhaustruct //identity and timestamps are assigned by the store
	return models.Location{
		Name:        dto.Name,
		Slug:        dto.Slug,
		Description: dto.Description,
		Address:     dto.Address,
		WebsiteURL:  dto.WebsiteURL,
		SortOrder:   dto.SortOrder,
	}
}

func (service *LocationService) ExportCSV(ctx context.Context) (string, error) {
	locations, err := service.locations.GetAll(ctx)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(locations))
	for _, location := range locations {
		rows = append(rows, []string{
			location.Name,
			location.Slug,
			location.Description,
			location.Address,
			location.WebsiteURL,
			intCell(location.SortOrder),
		})
	}

	return tabular.Serialize(rows, locationCSVHeaders), nil
}

// TemplateCSV ships a sample row so the column meanings are obvious.
func (service *LocationService) TemplateCSV() string {
	return tabular.Serialize([][]string{
		{
			"Harbor Market", "harbor-market",
			"A weekly market on the old harbor pier", "1 Pier Road",
			"https://example.com", "1",
		},
	}, locationCSVHeaders)
}

func (service *LocationService) ImportCSV(
	ctx context.Context,
	text string,
) (int, map[string]string, error) {
	dataRows, columns, errs := parseImportTable(text, []string{"name", "slug"})
	if errs != nil {
		return 0, errs, nil
	}

	errs = make(map[string]string)
	locations := make([]models.Location, 0, len(dataRows))
	for i, row := range dataRows {
		location, rowErr := locationFromRow(row, columns)
		if rowErr != "" {
			errs[rowKey(i)] = rowErr
			continue
		}

		locations = append(locations, location)
	}

	if len(errs) > 0 {
		return 0, errs, nil
	}

	err := service.locations.UpsertManyBySlug(ctx, locations)
	if err != nil {
		return 0, nil, err
	}

	return len(locations), nil, nil
}

func locationFromRow(
	row []string,
	columns map[string]int,
) (models.Location, string) {
	//nolint:exhaustruct //identity and timestamps are assigned by the store
	location := models.Location{}

	location.Name = cellValue(row, columns, "name")
	location.Slug = cellValue(row, columns, "slug")

	if location.Name == "" {
		return location, "name is required"
	}
	if location.Slug == "" {
		return location, "slug is required"
	}

	location.Description = cellValue(row, columns, "description")
	location.Address = cellValue(row, columns, "address")
	location.WebsiteURL = cellValue(row, columns, "website_url")

	sortOrder, err := parseSortOrder(cellValue(row, columns, "sort_order"))
	if err != nil {
		return location, "sort_order must be an integer"
	}
	location.SortOrder = sortOrder

	return location, ""
}

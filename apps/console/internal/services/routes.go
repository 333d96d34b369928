package services

import (
	"context"
	"strconv"

	"admin.townguide.app/apps/console/internal/dtos"
	"admin.townguide.app/apps/console/internal/models"
	"admin.townguide.app/apps/console/internal/repositories"
	"admin.townguide.app/apps/console/pkg/tabular"
)

type RouteService struct {
	routes *repositories.RouteRepository
}

//nolint:gochecknoglobals //fixed column order
var routeCSVHeaders = []string{
	"name", "slug", "description", "duration_minutes", "sort_order",
}

func (service *RouteService) GetAll(
	ctx context.Context,
) ([]models.Route, error) {
	return service.routes.GetAll(ctx)
}

func (service *RouteService) GetByID(
	ctx context.Context,
	id int64,
) (*models.Route, error) {
	return service.routes.GetByID(ctx, id)
}

func (service *RouteService) Create(
	ctx context.Context,
	dto dtos.RouteDto,
) (*models.Route, error) {
	route := routeFromDto(dto)

	err := service.routes.Create(ctx, &route)
	if err != nil {
		return nil, err
	}

	return &route, nil
}

func (service *RouteService) Update(
	ctx context.Context,
	id int64,
	dto dtos.RouteDto,
) (*models.Route, error) {
	route := routeFromDto(dto)
	route.ID = id

	err := service.routes.Update(ctx, &route)
	if err != nil {
		return nil, err
	}

	return &route, nil
}

func (service *RouteService) Delete(ctx context.Context, id int64) error {
	return service.routes.Delete(ctx, id)
}

func routeFromDto(dto dtos.RouteDto) models.Route {
	//nolint:exhaustruct //identity and timestamps are assigned by the store
	return models.Route{
		Name:        dto.Name,
		Slug:        dto.Slug,
		Description: dto.Description,
		Duration:    dto.Duration,
		SortOrder:   dto.SortOrder,
	}
}

func (service *RouteService) ExportCSV(ctx context.Context) (string, error) {
	routes, err := service.routes.GetAll(ctx)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(routes))
	for _, route := range routes {
		rows = append(rows, []string{
			route.Name,
			route.Slug,
			route.Description,
			strconv.FormatFloat(route.Duration, 'f', -1, 64),
			intCell(route.SortOrder),
		})
	}

	return tabular.Serialize(rows, routeCSVHeaders), nil
}

// TemplateCSV ships a sample row so the column meanings are obvious.
func (service *RouteService) TemplateCSV() string {
	return tabular.Serialize([][]string{
		{
			"Old Town Loop", "old-town-loop",
			"A stroll past the town hall and the harbor", "45", "1",
		},
	}, routeCSVHeaders)
}

func (service *RouteService) ImportCSV(
	ctx context.Context,
	text string,
) (int, map[string]string, error) {
	dataRows, columns, errs := parseImportTable(text, []string{"name", "slug"})
	if errs != nil {
		return 0, errs, nil
	}

	errs = make(map[string]string)
	routes := make([]models.Route, 0, len(dataRows))
	for i, row := range dataRows {
		route, rowErr := routeFromRow(row, columns)
		if rowErr != "" {
			errs[rowKey(i)] = rowErr
			continue
		}

		routes = append(routes, route)
	}

	if len(errs) > 0 {
		return 0, errs, nil
	}

	err := service.routes.UpsertManyBySlug(ctx, routes)
	if err != nil {
		return 0, nil, err
	}

	return len(routes), nil, nil
}

func routeFromRow(
	row []string,
	columns map[string]int,
) (models.Route, string) {
	//nolint:exhaustruct //identity and timestamps are assigned by the store
	route := models.Route{}

	route.Name = cellValue(row, columns, "name")
	route.Slug = cellValue(row, columns, "slug")

	if route.Name == "" {
		return route, "name is required"
	}
	if route.Slug == "" {
		return route, "slug is required"
	}

	route.Description = cellValue(row, columns, "description")

	if raw := cellValue(row, columns, "duration_minutes"); raw != "" {
		duration, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return route, "duration_minutes must be a number"
		}
		route.Duration = duration
	}

	sortOrder, err := parseSortOrder(cellValue(row, columns, "sort_order"))
	if err != nil {
		return route, "sort_order must be an integer"
	}
	route.SortOrder = sortOrder

	return route, ""
}

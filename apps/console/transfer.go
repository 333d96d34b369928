package console

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"admin.townguide.app/apps/console/internal/dtos"
)

// transferRoutes wires CSV import/export for every resource with a CSV
// surface. An import either writes every row or none of them.
func (app *Console) transferRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/export", prefix),
		app.Services.Auth.Access(app.exportEventsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/template", prefix),
		app.Services.Auth.Access(app.templateEventsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events/import", prefix),
		app.Services.Auth.Access(app.importEventsHandler),
	)

	mux.HandleFunc(
		fmt.Sprintf("GET %s/locations/export", prefix),
		app.Services.Auth.Access(app.exportLocationsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/locations/template", prefix),
		app.Services.Auth.Access(app.templateLocationsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/locations/import", prefix),
		app.Services.Auth.Access(app.importLocationsHandler),
	)

	mux.HandleFunc(
		fmt.Sprintf("GET %s/routes/export", prefix),
		app.Services.Auth.Access(app.exportWalkingRoutesHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/routes/template", prefix),
		app.Services.Auth.Access(app.templateWalkingRoutesHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/routes/import", prefix),
		app.Services.Auth.Access(app.importWalkingRoutesHandler),
	)
}

func readImportDto(w http.ResponseWriter, r *http.Request) (string, bool) {
	var importDto dtos.ImportDto

	err := httptools.ReadJSON(r.Body, &importDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return "", false
	}

	if ok, errs := importDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return "", false
	}

	return importDto.Text, true
}

func (app *Console) exportEventsHandler(w http.ResponseWriter, r *http.Request) {
	data, err := app.Services.Events.ExportCSV(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeCSV(w, "events_export.csv", data)
}

func (app *Console) templateEventsHandler(
	w http.ResponseWriter,
	_ *http.Request,
) {
	writeCSV(w, "events_template.csv", app.Services.Events.TemplateCSV())
}

func (app *Console) importEventsHandler(w http.ResponseWriter, r *http.Request) {
	text, ok := readImportDto(w, r)
	if !ok {
		return
	}

	imported, errs, err := app.Services.Events.ImportCSV(r.Context(), text)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if errs != nil {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": imported})
}

func (app *Console) exportLocationsHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	data, err := app.Services.Locations.ExportCSV(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeCSV(w, "locations_export.csv", data)
}

func (app *Console) templateLocationsHandler(
	w http.ResponseWriter,
	_ *http.Request,
) {
	writeCSV(w, "locations_template.csv", app.Services.Locations.TemplateCSV())
}

func (app *Console) importLocationsHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	text, ok := readImportDto(w, r)
	if !ok {
		return
	}

	imported, errs, err := app.Services.Locations.ImportCSV(r.Context(), text)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if errs != nil {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": imported})
}

func (app *Console) exportWalkingRoutesHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	data, err := app.Services.Routes.ExportCSV(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeCSV(w, "routes_export.csv", data)
}

func (app *Console) templateWalkingRoutesHandler(
	w http.ResponseWriter,
	_ *http.Request,
) {
	writeCSV(w, "routes_template.csv", app.Services.Routes.TemplateCSV())
}

func (app *Console) importWalkingRoutesHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	text, ok := readImportDto(w, r)
	if !ok {
		return
	}

	imported, errs, err := app.Services.Routes.ImportCSV(r.Context(), text)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if errs != nil {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": imported})
}

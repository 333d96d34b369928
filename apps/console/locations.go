package console

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"admin.townguide.app/apps/console/internal/dtos"
)

func (app *Console) locationsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/locations", prefix),
		app.Services.Auth.Access(app.getLocationsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/locations", prefix),
		app.Services.Auth.Access(app.createLocationHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/locations/{id}", prefix),
		app.Services.Auth.Access(app.getLocationHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/locations/{id}/edit", prefix),
		app.Services.Auth.Access(app.editLocationHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/locations/{id}/delete", prefix),
		app.Services.Auth.Access(app.deleteLocationHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/locations/prefill", prefix),
		app.Services.Auth.Access(app.prefillLocationHandler),
	)
}

func (app *Console) getLocationsHandler(w http.ResponseWriter, r *http.Request) {
	locations, err := app.Services.Locations.GetAll(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, locations)
}

func (app *Console) getLocationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	location, err := app.Services.Locations.GetByID(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, location)
}

func (app *Console) createLocationHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var locationDto dtos.LocationDto

	err := httptools.ReadJSON(r.Body, &locationDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := locationDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	location, err := app.Services.Locations.Create(r.Context(), locationDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, location)
}

func (app *Console) editLocationHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	var locationDto dtos.LocationDto

	err = httptools.ReadJSON(r.Body, &locationDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := locationDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	location, err := app.Services.Locations.Update(r.Context(), id, locationDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, location)
}

func (app *Console) deleteLocationHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	err = app.Services.Locations.Delete(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// prefillLocationHandler seeds a location form from a venue's website so the
// operator only has to correct fields instead of typing them all.
func (app *Console) prefillLocationHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var prefillDto dtos.LocationPrefillDto

	err := httptools.ReadJSON(r.Body, &prefillDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := prefillDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	locationDto, err := app.Services.Locations.PrefillFromWebsite(
		prefillDto.WebsiteURL,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, locationDto)
}

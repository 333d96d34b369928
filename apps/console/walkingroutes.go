package console

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"admin.townguide.app/apps/console/internal/dtos"
)

// The URL segment is "routes"; the handler names say "walking route" to keep
// them apart from the HTTP route wiring.
func (app *Console) walkingRoutesRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/routes", prefix),
		app.Services.Auth.Access(app.getWalkingRoutesHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/routes", prefix),
		app.Services.Auth.Access(app.createWalkingRouteHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/routes/{id}", prefix),
		app.Services.Auth.Access(app.getWalkingRouteHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/routes/{id}/edit", prefix),
		app.Services.Auth.Access(app.editWalkingRouteHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/routes/{id}/delete", prefix),
		app.Services.Auth.Access(app.deleteWalkingRouteHandler),
	)
}

func (app *Console) getWalkingRoutesHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	routes, err := app.Services.Routes.GetAll(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, routes)
}

func (app *Console) getWalkingRouteHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	route, err := app.Services.Routes.GetByID(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, route)
}

func (app *Console) createWalkingRouteHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	var routeDto dtos.RouteDto

	err := httptools.ReadJSON(r.Body, &routeDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := routeDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	route, err := app.Services.Routes.Create(r.Context(), routeDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, route)
}

func (app *Console) editWalkingRouteHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	var routeDto dtos.RouteDto

	err = httptools.ReadJSON(r.Body, &routeDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := routeDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	route, err := app.Services.Routes.Update(r.Context(), id, routeDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, route)
}

func (app *Console) deleteWalkingRouteHandler(
	w http.ResponseWriter,
	r *http.Request,
) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	err = app.Services.Routes.Delete(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

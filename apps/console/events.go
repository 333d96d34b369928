package console

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"admin.townguide.app/apps/console/internal/dtos"
)

func (app *Console) eventsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events", prefix),
		app.Services.Auth.Access(app.getEventsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events", prefix),
		app.Services.Auth.Access(app.createEventHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events/{id}", prefix),
		app.Services.Auth.Access(app.getEventHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events/{id}/edit", prefix),
		app.Services.Auth.Access(app.editEventHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events/{id}/delete", prefix),
		app.Services.Auth.Access(app.deleteEventHandler),
	)
}

func (app *Console) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := app.Services.Events.GetAll(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (app *Console) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	event, err := app.Services.Events.GetByID(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (app *Console) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var eventDto dtos.EventDto

	err := httptools.ReadJSON(r.Body, &eventDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := eventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	event, err := app.Services.Events.Create(r.Context(), eventDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

func (app *Console) editEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	var eventDto dtos.EventDto

	err = httptools.ReadJSON(r.Body, &eventDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := eventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	event, err := app.Services.Events.Update(r.Context(), id, eventDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (app *Console) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	err = app.Services.Events.Delete(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

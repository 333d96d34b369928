package console

import (
	"errors"
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"admin.townguide.app/apps/console/internal/dtos"
	"admin.townguide.app/apps/console/internal/services"
)

func (app *Console) draftsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("POST %s/events/ocr/parse", prefix),
		app.Services.Auth.Access(app.parseOcrHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/drafts", prefix),
		app.Services.Auth.Access(app.getDraftsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/drafts/{id}", prefix),
		app.Services.Auth.Access(app.getDraftHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/drafts/{id}/edit", prefix),
		app.Services.Auth.Access(app.editDraftHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/drafts/{id}/navigate", prefix),
		app.Services.Auth.Access(app.navigateDraftHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/drafts/{id}/confirm", prefix),
		app.Services.Auth.Access(app.confirmDraftHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/drafts/{id}/delete", prefix),
		app.Services.Auth.Access(app.deleteDraftHandler),
	)
}

func (app *Console) parseOcrHandler(w http.ResponseWriter, r *http.Request) {
	var parseDto dtos.OcrParseDto

	err := httptools.ReadJSON(r.Body, &parseDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := parseDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	draft, err := app.Services.Drafts.ParseOCR(r.Context(), parseDto.Text)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, draft)
}

func (app *Console) getDraftsHandler(w http.ResponseWriter, r *http.Request) {
	drafts, err := app.Services.Drafts.GetAll(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, drafts)
}

func (app *Console) getDraftHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	draft, err := app.Services.Drafts.GetByID(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

func (app *Console) editDraftHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var editDto dtos.DraftEditDto

	err = httptools.ReadJSON(r.Body, &editDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := editDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	draft, err := app.Services.Drafts.EditField(r.Context(), id, editDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

// navigateDraftHandler saves the active draft and swaps to the adjacent one.
// A navigation that arrives while another is still saving gets a 409 and the
// client simply keeps showing the current draft.
func (app *Console) navigateDraftHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var navigateDto dtos.DraftNavigateDto

	err = httptools.ReadJSON(r.Body, &navigateDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := navigateDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	draft, err := app.Services.Drafts.Navigate(
		r.Context(),
		id,
		navigateDto.Direction,
	)
	if err != nil {
		if errors.Is(err, services.ErrNavigationInFlight) {
			writeJSON(w, http.StatusConflict, map[string]string{
				"message": err.Error(),
			})
			return
		}

		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

func (app *Console) confirmDraftHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	event, err := app.Services.Drafts.Confirm(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

func (app *Console) deleteDraftHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	err = app.Services.Drafts.Delete(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

package console

import (
	"fmt"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"admin.townguide.app/apps/console/internal/dtos"
)

func (app *Console) adsRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/ads", prefix),
		app.Services.Auth.Access(app.getAdsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/ads", prefix),
		app.Services.Auth.Access(app.createAdHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/ads/{id}", prefix),
		app.Services.Auth.Access(app.getAdHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/ads/{id}/edit", prefix),
		app.Services.Auth.Access(app.editAdHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST %s/ads/{id}/delete", prefix),
		app.Services.Auth.Access(app.deleteAdHandler),
	)
}

func (app *Console) getAdsHandler(w http.ResponseWriter, r *http.Request) {
	ads, err := app.Services.Ads.GetAll(r.Context())
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ads)
}

func (app *Console) getAdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	ad, err := app.Services.Ads.GetByID(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ad)
}

func (app *Console) createAdHandler(w http.ResponseWriter, r *http.Request) {
	var adDto dtos.AdDto

	err := httptools.ReadJSON(r.Body, &adDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := adDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	ad, err := app.Services.Ads.Create(r.Context(), adDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ad)
}

func (app *Console) editAdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	var adDto dtos.AdDto

	err = httptools.ReadJSON(r.Body, &adDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := adDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	ad, err := app.Services.Ads.Update(r.Context(), id, adDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ad)
}

func (app *Console) deleteAdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		panic(err)
	}

	err = app.Services.Ads.Delete(r.Context(), id)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

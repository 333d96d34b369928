package console

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"admin.townguide.app/apps/console/internal/models"
	"admin.townguide.app/internal/constants"
	sharedmodels "admin.townguide.app/internal/models"
)

func (app *Console) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.Services.Auth.TemplateAccess(app.rootHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/ocr", prefix),
		app.Services.Auth.TemplateAccess(app.ocrHandler),
	)
}

type RootTemplateData struct {
	User      sharedmodels.User
	Events    []models.Event
	Locations []models.Location
	Routes    []models.Route
	Ads       []models.Ad
	Drafts    int
}

func (app *Console) rootHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[sharedmodels.User](
		r.Context(),
		constants.UserContextKey,
	)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	events, err := app.Services.Events.GetAll(r.Context())
	if err != nil {
		panic(err)
	}

	locations, err := app.Services.Locations.GetAll(r.Context())
	if err != nil {
		panic(err)
	}

	routes, err := app.Services.Routes.GetAll(r.Context())
	if err != nil {
		panic(err)
	}

	ads, err := app.Services.Ads.GetAll(r.Context())
	if err != nil {
		panic(err)
	}

	drafts, err := app.Services.Drafts.GetAll(r.Context())
	if err != nil {
		panic(err)
	}

	data := RootTemplateData{
		User:      *user,
		Events:    events,
		Locations: locations,
		Routes:    routes,
		Ads:       ads,
		Drafts:    len(drafts),
	}

	tpltools.RenderWithPanic(app.tpl, w, "root.html", data)
}

type OcrTemplateData struct {
	Drafts []models.EventDraft
}

func (app *Console) ocrHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[sharedmodels.User](
		r.Context(),
		constants.UserContextKey,
	)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	drafts, err := app.Services.Drafts.GetAll(r.Context())
	if err != nil {
		panic(err)
	}

	tpltools.RenderWithPanic(app.tpl, w, "ocr.html", OcrTemplateData{
		Drafts: drafts,
	})
}

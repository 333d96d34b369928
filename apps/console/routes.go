package console

import (
	"fmt"
	"net/http"
)

func (app *Console) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)
	app.eventsRoutes(apiPrefix, mux)
	app.locationsRoutes(apiPrefix, mux)
	app.walkingRoutesRoutes(apiPrefix, mux)
	app.adsRoutes(apiPrefix, mux)
	app.draftsRoutes(apiPrefix, mux)
	app.transferRoutes(apiPrefix, mux)
}

func (app *Console) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}

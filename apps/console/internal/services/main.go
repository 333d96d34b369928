package services

import (
	"log/slog"

	"admin.townguide.app/apps/console/internal/repositories"
	"admin.townguide.app/apps/console/pkg/webmeta"
	"admin.townguide.app/internal/auth"
	"admin.townguide.app/internal/config"
)

type Services struct {
	Auth      auth.Service
	Events    *EventService
	Locations *LocationService
	Routes    *RouteService
	Ads       *AdService
	Drafts    *DraftService
}

func New(
	logger *slog.Logger,
	_ config.Config,
	repositories *repositories.Repositories,
	webmetaClient webmeta.Client,
	authService auth.Service,
) *Services {
	events := &EventService{
		events: repositories.Events,
	}
	locations := &LocationService{
		logger:    logger,
		locations: repositories.Locations,
		client:    webmetaClient,
	}
	routes := &RouteService{
		routes: repositories.Routes,
	}
	ads := &AdService{
		ads: repositories.Ads,
	}
	drafts := &DraftService{
		logger: logger,
		drafts: repositories.Drafts,
		events: events,
	}

	return &Services{
		Auth:      authService,
		Events:    events,
		Locations: locations,
		Routes:    routes,
		Ads:       ads,
		Drafts:    drafts,
	}
}

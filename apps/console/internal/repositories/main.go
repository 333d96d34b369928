package repositories

import (
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Events    *EventRepository
	Locations *LocationRepository
	Routes    *RouteRepository
	Ads       *AdRepository
	Drafts    *DraftRepository
}

func New(db postgres.DB) *Repositories {
	events := &EventRepository{db: db}
	locations := &LocationRepository{db: db}
	routes := &RouteRepository{db: db}
	ads := &AdRepository{db: db}
	drafts := &DraftRepository{db: db}

	return &Repositories{
		Events:    events,
		Locations: locations,
		Routes:    routes,
		Ads:       ads,
		Drafts:    drafts,
	}
}

const dateFormat = "2006-01-02"

func dateToString(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(dateFormat)

	return &s
}

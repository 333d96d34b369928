package dtos

import (
	"admin.townguide.app/apps/console/internal/models"
)

type EventDto struct {
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	AllDay     bool    `json:"allDay"`
	Location   string  `json:"location"`
	WebsiteURL string  `json:"websiteUrl"`
	Recurrence string  `json:"recurrence"`
	Status     string  `json:"status"`
	SortOrder  int     `json:"sortOrder"`
}

func (dto *EventDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.Name == "" {
		errs["name"] = "name is required"
	}

	if dto.Slug == "" {
		errs["slug"] = "slug is required"
	}

	if dto.Status != "" && !models.ValidEventStatus(dto.Status) {
		errs["status"] = "status must be draft, published or archived"
	}

	return len(errs) == 0, errs
}

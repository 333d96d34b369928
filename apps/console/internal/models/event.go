package models

import "time"

type EventStatus = string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusArchived  EventStatus = "archived"
)

func ValidEventStatus(status string) bool {
	switch status {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

// Event is the persisted record. The parser and editor only ever produce the
// EventDraft-compatible subset; identity and audit timestamps are assigned by
// the store on insert.
type Event struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	StartDate  *string   `json:"startDate"`
	EndDate    *string   `json:"endDate"`
	StartTime  *string   `json:"startTime"`
	EndTime    *string   `json:"endTime"`
	AllDay     bool      `json:"allDay"`
	Location   string    `json:"location"`
	WebsiteURL string    `json:"websiteUrl"`
	Recurrence string    `json:"recurrence"`
	Status     string    `json:"status"`
	SortOrder  int       `json:"sortOrder"`
	OcrText    *string   `json:"ocrText"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

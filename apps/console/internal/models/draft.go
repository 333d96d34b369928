package models

import (
	"time"

	"admin.townguide.app/apps/console/pkg/poster"
)

// EventDraft is the editable, not-yet-persisted record the OCR editor and the
// manual form both work on. Dates are "YYYY-MM-DD" and times canonical
// "HH:MM" strings, so ordering checks are plain string comparisons.
//
// Every edit surface funnels field changes through the Apply* rules below;
// they are the single implementation of the start/end cascade.
type EventDraft struct {
	ID         string  `json:"id"`
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
	OcrText    string  `json:"ocrText"`
}

// DraftFromPoster wraps the parser's output, keeping the raw text verbatim
// for audit.
func DraftFromPoster(parsed poster.Draft, ocrText string) EventDraft {
	return EventDraft{
		Name:       parsed.Name,
		Slug:       Slugify(parsed.Name),
		StartDate:  parsed.StartDate,
		EndDate:    parsed.EndDate,
		StartTime:  parsed.StartTime,
		EndTime:    parsed.EndTime,
		AllDay:     parsed.AllDay,
		Location:   parsed.Location,
		WebsiteURL: parsed.WebsiteURL,
		Recurrence: parsed.Recurrence,
		Status:     parsed.Status,
		OcrText:    ocrText,
	}
}

// ApplyStartDate sets the start date and cascades onto the end date: an end
// date that is absent, empty or still today's placeholder follows the new
// start; one that fell behind the new start is bumped up to it; a later end
// date is left alone.
func (draft *EventDraft) ApplyStartDate(newDate string, now time.Time) {
	today := now.UTC().Format(poster.DateFormat)

	if draft.EndDate == nil || *draft.EndDate == "" || *draft.EndDate == today {
		endDate := newDate
		draft.EndDate = &endDate
	} else if *draft.EndDate < newDate {
		endDate := newDate
		draft.EndDate = &endDate
	}

	draft.StartDate = &newDate
}

// ApplyEndDate stores the value verbatim; no downstream adjustment.
func (draft *EventDraft) ApplyEndDate(newDate string) {
	if newDate == "" {
		draft.EndDate = nil
		return
	}

	draft.EndDate = &newDate
}

// ApplyStartTime normalizes the raw value and drags an earlier end time
// along so the range never inverts.
func (draft *EventDraft) ApplyStartTime(raw string) {
	if raw == "" {
		draft.StartTime = nil
		return
	}

	normalized := poster.NormalizeTime(raw, false, "")

	if draft.EndTime != nil && *draft.EndTime < normalized {
		endTime := normalized
		draft.EndTime = &endTime
	}

	draft.StartTime = &normalized
}

// ApplyEndTime normalizes the raw value against the start time as companion
// and clamps a result earlier than the start up to the start.
func (draft *EventDraft) ApplyEndTime(raw string) {
	if raw == "" {
		draft.EndTime = nil
		return
	}

	companion := ""
	if draft.StartTime != nil {
		companion = *draft.StartTime
	}

	normalized := poster.NormalizeTime(raw, true, companion)

	if draft.StartTime != nil && normalized < *draft.StartTime {
		normalized = *draft.StartTime
	}

	draft.EndTime = &normalized
}

// ApplyName updates the name and regenerates the slug unless the operator
// already overrode the slug by hand in this edit session.
func (draft *EventDraft) ApplyName(name string, slugTouched bool) {
	draft.Name = name

	if !slugTouched {
		draft.Slug = Slugify(name)
	}
}

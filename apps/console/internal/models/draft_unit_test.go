package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"admin.townguide.app/apps/console/internal/models"
	"admin.townguide.app/apps/console/pkg/poster"
)

//nolint:gochecknoglobals //fixed clock for tests
var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

func TestApplyStartDateFillsEmptyEndDate(t *testing.T) {
	draft := models.EventDraft{}

	draft.ApplyStartDate("2025-03-15", testNow)

	require.NotNil(t, draft.EndDate)
	assert.Equal(t, "2025-03-15", *draft.EndDate)
	assert.Equal(t, "2025-03-15", *draft.StartDate)
}

func TestApplyStartDateReplacesTodayPlaceholder(t *testing.T) {
	draft := models.EventDraft{EndDate: strPtr("2025-06-10")}

	draft.ApplyStartDate("2025-07-01", testNow)

	assert.Equal(t, "2025-07-01", *draft.EndDate)
}

func TestApplyStartDateBumpsEarlierEndDate(t *testing.T) {
	draft := models.EventDraft{EndDate: strPtr("2025-03-01")}

	draft.ApplyStartDate("2025-03-15", testNow)

	assert.Equal(t, "2025-03-15", *draft.EndDate)
}

func TestApplyStartDateLeavesLaterEndDate(t *testing.T) {
	draft := models.EventDraft{EndDate: strPtr("2025-04-01")}

	draft.ApplyStartDate("2025-03-15", testNow)

	assert.Equal(t, "2025-04-01", *draft.EndDate)
}

func TestApplyEndDateStoredVerbatim(t *testing.T) {
	draft := models.EventDraft{StartDate: strPtr("2025-03-15")}

	draft.ApplyEndDate("2025-03-01")

	assert.Equal(t, "2025-03-01", *draft.EndDate)
	assert.Equal(t, "2025-03-15", *draft.StartDate)
}

func TestApplyStartTimeNormalizes(t *testing.T) {
	draft := models.EventDraft{}

	draft.ApplyStartTime("2:30 PM")

	require.NotNil(t, draft.StartTime)
	assert.Equal(t, "14:30", *draft.StartTime)
}

func TestApplyStartTimeDragsEarlierEndTime(t *testing.T) {
	draft := models.EventDraft{EndTime: strPtr("10:00")}

	draft.ApplyStartTime("2p")

	assert.Equal(t, "14:00", *draft.StartTime)
	assert.Equal(t, "14:00", *draft.EndTime)
}

func TestApplyStartTimeLeavesLaterEndTime(t *testing.T) {
	draft := models.EventDraft{EndTime: strPtr("22:00")}

	draft.ApplyStartTime("2p")

	assert.Equal(t, "22:00", *draft.EndTime)
}

func TestApplyEndTimeUsesStartAsCompanion(t *testing.T) {
	draft := models.EventDraft{StartTime: strPtr("09:00")}

	draft.ApplyEndTime("2")

	require.NotNil(t, draft.EndTime)
	assert.Equal(t, "14:00", *draft.EndTime)
}

func TestApplyEndTimeClampsToStart(t *testing.T) {
	draft := models.EventDraft{StartTime: strPtr("14:00")}

	draft.ApplyEndTime("09:00")

	assert.Equal(t, "14:00", *draft.EndTime)
}

func TestApplyEndTimeEmptyClears(t *testing.T) {
	draft := models.EventDraft{EndTime: strPtr("14:00")}

	draft.ApplyEndTime("")

	assert.Nil(t, draft.EndTime)
}

func TestApplyNameRegeneratesSlug(t *testing.T) {
	draft := models.EventDraft{Slug: "old-slug"}

	draft.ApplyName("Harbor Lights Parade", false)

	assert.Equal(t, "harbor-lights-parade", draft.Slug)
}

func TestApplyNameKeepsOverriddenSlug(t *testing.T) {
	draft := models.EventDraft{Slug: "custom"}

	draft.ApplyName("Harbor Lights Parade", true)

	assert.Equal(t, "custom", draft.Slug)
}

func TestDraftFromPosterKeepsRawText(t *testing.T) {
	raw := "Jazz Night\nMarch 15, 2025 7:30 PM - 10:00 PM"
	draft := models.DraftFromPoster(poster.Parse(raw), raw)

	assert.Equal(t, raw, draft.OcrText)
	assert.Equal(t, "jazz-night", draft.Slug)
	assert.Equal(t, "Jazz Night", draft.Name)
	require.NotNil(t, draft.StartTime)
	assert.Equal(t, "19:30", *draft.StartTime)
}

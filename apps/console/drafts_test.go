package console_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"admin.townguide.app/apps/console/internal/dtos"
	"admin.townguide.app/apps/console/internal/models"
)

const posterText = `Harbor Festival
Live music on the pier
Saturday, June 20, 2026 7:30 PM - 10:00 PM
`

func TestParseOcrHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events/ocr/parse", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(dtos.OcrParseDto{Text: posterText})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var draft models.EventDraft
	err := json.NewDecoder(rs.Body).Decode(&draft)
	require.NoError(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Services.Drafts.Delete(context.Background(), draft.ID)

	assert.Equal(t, "Harbor Festival Live music on the pier", draft.Name)
	require.NotNil(t, draft.StartDate)
	assert.Equal(t, "2026-06-20", *draft.StartDate)
	require.NotNil(t, draft.StartTime)
	assert.Equal(t, "19:30", *draft.StartTime)
	require.NotNil(t, draft.EndTime)
	assert.Equal(t, "22:00", *draft.EndTime)
	assert.Equal(t, posterText, draft.OcrText)
}

func TestEditDraftHandler(t *testing.T) {
	draft, err := testApp.Services.Drafts.ParseOCR(
		context.Background(),
		posterText,
	)
	require.NoError(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Services.Drafts.Delete(context.Background(), draft.ID)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/drafts/%s/edit", testApp.GetName(), draft.ID),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(dtos.DraftEditDto{
		Field:       "startDate",
		Value:       "2026-07-04",
		SlugTouched: false,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var edited models.EventDraft
	err = json.NewDecoder(rs.Body).Decode(&edited)
	require.NoError(t, err)

	require.NotNil(t, edited.StartDate)
	assert.Equal(t, "2026-07-04", *edited.StartDate)
	// the end date was equal to the old start date, so it follows along
	require.NotNil(t, edited.EndDate)
	assert.Equal(t, "2026-07-04", *edited.EndDate)
}

func TestEditDraftHandlerUnknownField(t *testing.T) {
	draft, err := testApp.Services.Drafts.ParseOCR(
		context.Background(),
		posterText,
	)
	require.NoError(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Services.Drafts.Delete(context.Background(), draft.ID)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/drafts/%s/edit", testApp.GetName(), draft.ID),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(dtos.DraftEditDto{
		Field:       "nonsense",
		Value:       "whatever",
		SlugTouched: false,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestNavigateDraftHandler(t *testing.T) {
	first, err := testApp.Services.Drafts.ParseOCR(
		context.Background(),
		"First Poster\nJune 1, 2026",
	)
	require.NoError(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Services.Drafts.Delete(context.Background(), first.ID)

	second, err := testApp.Services.Drafts.ParseOCR(
		context.Background(),
		"Second Poster\nJune 2, 2026",
	)
	require.NoError(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Services.Drafts.Delete(context.Background(), second.ID)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/drafts/%s/navigate", testApp.GetName(), first.ID),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(dtos.DraftNavigateDto{Direction: "next"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var next models.EventDraft
	err = json.NewDecoder(rs.Body).Decode(&next)
	require.NoError(t, err)
	assert.Equal(t, second.ID, next.ID)
}

func TestConfirmDraftHandler(t *testing.T) {
	draft, err := testApp.Services.Drafts.ParseOCR(
		context.Background(),
		posterText,
	)
	require.NoError(t, err)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/drafts/%s/confirm", testApp.GetName(), draft.ID),
	)
	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var event models.Event
	err = json.NewDecoder(rs.Body).Decode(&event)
	require.NoError(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Services.Events.Delete(context.Background(), event.ID)

	assert.Equal(t, "harbor-festival-live-music-on-the-pier", event.Slug)
	require.NotNil(t, event.OcrText)
	assert.Equal(t, posterText, *event.OcrText)

	// the draft is gone once it became an event
	_, err = testApp.Services.Drafts.GetByID(context.Background(), draft.ID)
	assert.Error(t, err)
}

func TestConfirmDraftHandlerExistingSlug(t *testing.T) {
	reprint := `Harbor Festival
Live music on the pier
Saturday, June 20, 2026 8:00 PM - 11:00 PM
`

	first, err := testApp.Services.Drafts.ParseOCR(
		context.Background(),
		posterText,
	)
	require.NoError(t, err)

	_, err = testApp.Services.Drafts.Confirm(context.Background(), first.ID)
	require.NoError(t, err)

	second, err := testApp.Services.Drafts.ParseOCR(
		context.Background(),
		reprint,
	)
	require.NoError(t, err)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/drafts/%s/confirm", testApp.GetName(), second.ID),
	)
	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	events, err := testApp.Services.Events.GetAll(context.Background())
	require.NoError(t, err)

	var matches []models.Event
	for _, event := range events {
		if event.Slug == "harbor-festival-live-music-on-the-pier" {
			matches = append(matches, event)
		}
	}

	// a reprint of the same poster updates the event instead of adding one
	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].OcrText)
	assert.Equal(t, reprint, *matches[0].OcrText)
	require.NotNil(t, matches[0].StartTime)
	assert.Equal(t, "20:00", *matches[0].StartTime)

	//nolint:errcheck //cleanup
	defer testApp.Services.Events.Delete(context.Background(), matches[0].ID)
}

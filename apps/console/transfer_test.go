package console_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"admin.townguide.app/apps/console/internal/dtos"
)

func TestImportEventsHandler(t *testing.T) {
	csv := strings.Join([]string{
		"name,slug,start_date,end_date,start_time,end_time,all_day,location,website_url,recurrence,status,sort_order",
		"Harvest Fair,harvest-fair,2026-09-12,2026-09-13,10:00,18:00,false,Town Square,,Annual,published,1",
		"Lantern Walk,lantern-walk,2026-11-01,,,,,riverside,,,draft,2",
	}, "\n")

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events/import", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(dtos.ImportDto{Text: csv})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	events, err := testApp.Services.Events.GetAll(context.Background())
	require.NoError(t, err)

	for _, event := range events {
		if event.Slug == "harvest-fair" || event.Slug == "lantern-walk" {
			//nolint:errcheck //cleanup
			defer testApp.Services.Events.Delete(
				context.Background(),
				event.ID,
			)
		}
	}
}

func TestImportEventsHandlerAllOrNothing(t *testing.T) {
	// the second row is broken, so the first row must not be written either
	csv := strings.Join([]string{
		"name,slug,start_date",
		"Valid Event,valid-event,2026-05-01",
		",missing-name,2026-05-02",
	}, "\n")

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/events/import", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(dtos.ImportDto{Text: csv})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)

	events, err := testApp.Services.Events.GetAll(context.Background())
	require.NoError(t, err)

	for _, event := range events {
		assert.NotEqual(t, "valid-event", event.Slug)
	}
}

func TestExportEventsHandler(t *testing.T) {
	event := createTestEvent(t, "Export Me", "export-me")
	//nolint:errcheck //cleanup
	defer testApp.Services.Events.Delete(context.Background(), event.ID)

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/events/export", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Equal(t, "text/csv", rs.Header.Get("Content-Type"))
	assert.Contains(
		t,
		rs.Header.Get("Content-Disposition"),
		"events_export.csv",
	)

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "export-me")
}

func TestTemplateRoutesHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/routes/template", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(
		t,
		"name,slug,description,duration_minutes,sort_order",
		lines[0],
	)
}

func TestImportRoutesHandlerBadDuration(t *testing.T) {
	csv := strings.Join([]string{
		"name,slug,duration_minutes",
		"Old Town Loop,old-town-loop,forty-five",
	}, "\n")

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/routes/import", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(dtos.ImportDto{Text: csv})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

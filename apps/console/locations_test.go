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

func TestCreateLocationHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/locations", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	//nolint:exhaustruct //other fields are optional
	tReq.SetData(dtos.LocationDto{
		Name:    "Town Hall",
		Slug:    "town-hall",
		Address: "1 Main Street",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var location models.Location
	err := json.NewDecoder(rs.Body).Decode(&location)
	require.NoError(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Services.Locations.Delete(
		context.Background(),
		location.ID,
	)

	assert.Equal(t, "Town Hall", location.Name)
	assert.Equal(t, "1 Main Street", location.Address)
}

func TestPrefillLocationHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/locations/prefill", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	tReq.SetData(dtos.LocationPrefillDto{
		WebsiteURL: "https://example.com/harbor-market",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var locationDto dtos.LocationDto
	err := json.NewDecoder(rs.Body).Decode(&locationDto)
	require.NoError(t, err)

	assert.Equal(t, "Harbor Market", locationDto.Name)
	assert.Equal(t, "harbor-market", locationDto.Slug)
	assert.Equal(
		t,
		"A weekly market on the old harbor pier.",
		locationDto.Description,
	)
	assert.Equal(t, "https://example.com/harbor-market", locationDto.WebsiteURL)
}

func TestCreateWalkingRouteHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/routes", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	//nolint:exhaustruct //other fields are optional
	tReq.SetData(dtos.RouteDto{
		Name:     "Old Town Loop",
		Slug:     "old-town-loop",
		Duration: 45,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var route models.Route
	err := json.NewDecoder(rs.Body).Decode(&route)
	require.NoError(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Services.Routes.Delete(context.Background(), route.ID)

	assert.Equal(t, float64(45), route.Duration)
}

func TestCreateAdHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodPost,
		fmt.Sprintf("/%s/api/ads", testApp.GetName()),
	)
	tReq.AddCookie(&accessToken)

	tReq.SetContentType(test.JSONContentType)
	//nolint:exhaustruct //other fields are optional
	tReq.SetData(dtos.AdDto{
		Name:   "Bakery Banner",
		Slug:   "bakery-banner",
		Vendor: "Corner Bakery",
		Active: true,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var ad models.Ad
	err := json.NewDecoder(rs.Body).Decode(&ad)
	require.NoError(t, err)
	//nolint:errcheck //cleanup
	defer testApp.Services.Ads.Delete(context.Background(), ad.ID)

	assert.Equal(t, "Corner Bakery", ad.Vendor)
	assert.True(t, ad.Active)
}

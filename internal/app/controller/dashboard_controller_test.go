package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardController_GetStats(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	requireStatus(t, w, http.StatusOK)

	stats := decodeBody(t, w)["stats"].(map[string]interface{})
	assert.Equal(t, float64(310000), stats["total_revenue"])
	assert.Equal(t, float64(2), stats["active_quotations"])
	assert.Equal(t, float64(3), stats["total_customers"])
	assert.Equal(t, float64(2), stats["verified_customers"])
	assert.Len(t, stats["revenue"], 6)
}

func TestDashboardController_GetNavigation(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodGet, "/api/v1/navigation", nil)
	requireStatus(t, w, http.StatusOK)

	views := decodeBody(t, w)["views"].([]interface{})
	require.Len(t, views, 7)
	shop := views[6].(map[string]interface{})
	assert.Equal(t, "Shop", shop["name"])
	assert.Equal(t, false, shop["chrome"])
}

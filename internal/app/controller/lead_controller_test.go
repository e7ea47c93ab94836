package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etimad/showroom-backend/internal/app/service"
)

func TestLeadController_ListLeads(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodGet, "/api/v1/leads", nil)
	requireStatus(t, w, http.StatusOK)

	leads := decodeBody(t, w)["leads"].([]interface{})
	require.Len(t, leads, 2)
	first := leads[0].(map[string]interface{})
	assert.Equal(t, "2022 Toyota Land Cruiser", first["interested_in"])
}

func TestLeadController_UpdateLead(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodPatch, "/api/v1/leads/lead1", map[string]interface{}{
		"status": "Negotiation",
	})
	requireStatus(t, w, http.StatusOK)

	l, ok := app.store.FindLead("lead1")
	require.True(t, ok)
	assert.Equal(t, "Negotiation", string(l.Status))
	assert.NotEmpty(t, l.Name)

	w = app.do(t, http.MethodPatch, "/api/v1/leads/lead1", map[string]interface{}{
		"status": "Lost Forever",
	})
	requireStatus(t, w, http.StatusBadRequest)

	w = app.do(t, http.MethodPatch, "/api/v1/leads/ghost", map[string]interface{}{
		"status": "Contacted",
	})
	requireStatus(t, w, http.StatusNotFound)
}

func TestLeadController_EmailDraft_NoKey(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodGet, "/api/v1/leads/lead1/email-draft", nil)
	requireStatus(t, w, http.StatusNotFound)

	w = app.do(t, http.MethodPost, "/api/v1/leads/lead1/email-draft", nil)
	requireStatus(t, w, http.StatusOK)
	draft := decodeBody(t, w)["draft"].(map[string]interface{})
	assert.Equal(t, service.EmailKeyMissing, draft["text"])

	w = app.do(t, http.MethodGet, "/api/v1/leads/lead1/email-draft", nil)
	requireStatus(t, w, http.StatusOK)
	draft = decodeBody(t, w)["draft"].(map[string]interface{})
	assert.Equal(t, false, draft["pending"])
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/websocket"
)

func setupLeadServiceTest(t *testing.T, ai AIService) (LeadService, testRepos, *recordingPublisher) {
	repos := setupRepos(t)
	pub := &recordingPublisher{}
	return NewLeadService(repos.leads, repos.cars, ai, NewGenerationTracker(), pub), repos, pub
}

func TestLeadService_ListLeads_ResolvesCars(t *testing.T) {
	svc, repos, _ := setupLeadServiceTest(t, &stubAI{})

	leads := svc.ListLeads()
	require.Len(t, leads, 2)
	assert.Equal(t, "2022 Toyota Land Cruiser", leads[0].InterestedIn)
	assert.Equal(t, "2023 BMW X5 M50i", leads[1].InterestedIn)

	ghost := "car-gone"
	_, err := repos.leads.Update("lead1", model.LeadPatch{InterestedInID: &ghost})
	require.NoError(t, err)
	_, err = repos.leads.Update("lead2", model.LeadPatch{ClearInterest: true})
	require.NoError(t, err)

	leads = svc.ListLeads()
	assert.Equal(t, UnknownVehicle, leads[0].InterestedIn)
	assert.Equal(t, GeneralInquiry, leads[1].InterestedIn)
}

func TestLeadService_UpdateLead(t *testing.T) {
	svc, _, pub := setupLeadServiceTest(t, &stubAI{})
	status := model.LeadStatusNegotiation

	v, err := svc.UpdateLead("lead1", model.LeadPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusNegotiation, v.Status)
	assert.Equal(t, "Michael Chen", v.Name)
	assert.Equal(t, []publishedEvent{{websocket.EventLeadUpdated, "lead1"}}, pub.Events())

	_, err = svc.UpdateLead("ghost", model.LeadPatch{Status: &status})
	assert.ErrorIs(t, err, ErrLeadNotFound)

	bad := model.LeadStatus("Maybe")
	_, err = svc.UpdateLead("lead1", model.LeadPatch{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidLeadEdit)
}

func TestLeadService_DraftEmail(t *testing.T) {
	ai := &stubAI{enabled: true, text: "Dear Sarah, ..."}
	svc, _, _ := setupLeadServiceTest(t, ai)

	d, err := svc.DraftEmail(context.Background(), "lead2")
	require.NoError(t, err)
	assert.Equal(t, "Dear Sarah, ...", d.Text)

	require.Len(t, ai.calls, 1)
	assert.Equal(t, model.PromptArgs{LeadName: "Sarah Jones", CarDetails: "2023 BMW X5 M50i", Status: "Contacted"}, ai.calls[0])

	got, ok := svc.EmailDraft("lead2")
	require.True(t, ok)
	assert.Equal(t, "Dear Sarah, ...", got.Text)

	_, err = svc.DraftEmail(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestLeadService_DraftEmail_Fallback(t *testing.T) {
	svc, _, _ := setupLeadServiceTest(t, NewAIService(disabledGenAIConfig(), nil))

	d, err := svc.DraftEmail(context.Background(), "lead1")
	require.NoError(t, err)
	assert.Equal(t, EmailKeyMissing, d.Text)
}

func TestLeadService_StaleLeads(t *testing.T) {
	svc, repos, _ := setupLeadServiceTest(t, &stubAI{})
	now := time.Date(2023, 10, 31, 9, 0, 0, 0, time.UTC)

	// lead1 last contact 2023-10-28, lead2 2023-10-27
	stale := svc.StaleLeads(now, 3)
	require.Len(t, stale, 1)
	assert.Equal(t, "lead2", stale[0].ID)

	won := model.LeadStatusClosedWon
	_, err := repos.leads.Update("lead2", model.LeadPatch{Status: &won})
	require.NoError(t, err)
	assert.Empty(t, svc.StaleLeads(now, 3))

	assert.Len(t, svc.StaleLeads(now.AddDate(0, 1, 0), 3), 1)
}

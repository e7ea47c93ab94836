package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/store"
)

func setupRepositoryTest(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.Seed())
}

func TestCustomerRepository_FindByID(t *testing.T) {
	s := setupRepositoryTest(t)
	repo := NewCustomerRepository(s)

	c, err := repo.FindByID("cust1")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Al-Mansoor", c.Name)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerRepository_Create(t *testing.T) {
	s := setupRepositoryTest(t)
	repo := NewCustomerRepository(s)

	repo.Create(model.Customer{ID: "c9", Name: "Layla"})

	all := repo.FindAll()
	assert.Equal(t, "c9", all[0].ID)
}

func TestLeadRepository_Update(t *testing.T) {
	s := setupRepositoryTest(t)
	repo := NewLeadRepository(s)
	status := model.LeadStatusClosedWon

	l, err := repo.Update("lead2", model.LeadPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusClosedWon, l.Status)

	_, err = repo.Update("lead9", model.LeadPatch{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuotationRepository_FindByID(t *testing.T) {
	repo := NewQuotationRepository(setupRepositoryTest(t))

	q, err := repo.FindByID("q2")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", q.CustomerName)

	_, err = repo.FindByID("q9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsRepository_Terms(t *testing.T) {
	repo := NewSettingsRepository(setupRepositoryTest(t))

	assert.Equal(t, store.DefaultTerms, repo.Terms())
	repo.SetTerms("Cash only.")
	assert.Equal(t, "Cash only.", repo.Terms())
}

package repository

import (
	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/store"
	"github.com/etimad/showroom-backend/pkg/logger"
)

type LeadRepository interface {
	FindAll() []model.Lead
	FindByID(id string) (*model.Lead, error)
	Update(id string, patch model.LeadPatch) (*model.Lead, error)
}

type leadRepository struct {
	store *store.Store
}

func NewLeadRepository(s *store.Store) LeadRepository {
	return &leadRepository{store: s}
}

func (r *leadRepository) FindAll() []model.Lead {
	return r.store.Leads()
}

func (r *leadRepository) FindByID(id string) (*model.Lead, error) {
	l, ok := r.store.FindLead(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

// Update merges the patch; an unknown id changes nothing and reports ErrNotFound
func (r *leadRepository) Update(id string, patch model.LeadPatch) (*model.Lead, error) {
	logger.Debug("Updating lead in store", map[string]interface{}{
		"lead_id": id,
	})
	l, ok := r.store.UpdateLead(id, patch)
	if !ok {
		logger.Debug("Lead update ignored for unknown lead", map[string]interface{}{
			"lead_id": id,
		})
		return nil, ErrNotFound
	}
	return &l, nil
}

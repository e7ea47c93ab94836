package repository

import (
	"github.com/etimad/showroom-backend/internal/store"
	"github.com/etimad/showroom-backend/pkg/logger"
)

type SettingsRepository interface {
	Terms() string
	SetTerms(text string)
}

type settingsRepository struct {
	store *store.Store
}

func NewSettingsRepository(s *store.Store) SettingsRepository {
	return &settingsRepository{store: s}
}

func (r *settingsRepository) Terms() string {
	return r.store.Terms()
}

func (r *settingsRepository) SetTerms(text string) {
	logger.Debug("Replacing terms text", map[string]interface{}{
		"length": len(text),
	})
	r.store.SetTerms(text)
}

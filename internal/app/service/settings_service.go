package service

import (
	"github.com/etimad/showroom-backend/internal/app/repository"
	"github.com/etimad/showroom-backend/internal/websocket"
	"github.com/etimad/showroom-backend/pkg/logger"
)

// AIStatus tells the UI whether generative buttons should be offered
type AIStatus struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message,omitempty"`
}

type SettingsService interface {
	Terms() string
	UpdateTerms(text string) string
	AIStatus() AIStatus
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	ai           AIService
	events       EventPublisher
}

func NewSettingsService(settingsRepo repository.SettingsRepository, ai AIService, events EventPublisher) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		ai:           ai,
		events:       publisherOrNop(events),
	}
}

func (s *settingsService) Terms() string {
	return s.settingsRepo.Terms()
}

// UpdateTerms replaces the global terms. Every quotation rendered afterwards shows the new text.
func (s *settingsService) UpdateTerms(text string) string {
	s.settingsRepo.SetTerms(text)
	s.events.Publish(websocket.EventTermsUpdated, "")
	logger.Info("Quotation terms updated", map[string]interface{}{
		"lines": countLines(text),
	})
	return text
}

func (s *settingsService) AIStatus() AIStatus {
	if s.ai.Enabled() {
		return AIStatus{Enabled: true}
	}
	return AIStatus{Enabled: false, Message: DescriptionKeyMissing}
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := 1
	for _, r := range text {
		if r == '\n' {
			n++
		}
	}
	return n
}

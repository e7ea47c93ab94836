package service

import (
	"context"
	"sync"
	"testing"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
	"github.com/etimad/showroom-backend/internal/store"
)

type testRepos struct {
	store      *store.Store
	customers  repository.CustomerRepository
	cars       repository.CarRepository
	leads      repository.LeadRepository
	quotations repository.QuotationRepository
	receipts   repository.ReceiptRepository
	settings   repository.SettingsRepository
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	s := store.New(store.Seed())
	return testRepos{
		store:      s,
		customers:  repository.NewCustomerRepository(s),
		cars:       repository.NewCarRepository(s),
		leads:      repository.NewLeadRepository(s),
		quotations: repository.NewQuotationRepository(s),
		receipts:   repository.NewReceiptRepository(s),
		settings:   repository.NewSettingsRepository(s),
	}
}

func fixToday(t *testing.T, date string) {
	t.Helper()
	orig := today
	today = func() string { return date }
	t.Cleanup(func() { today = orig })
}

type publishedEvent struct {
	Type string
	ID   string
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(eventType, entityID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{eventType, entityID})
}

func (p *recordingPublisher) Events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

// stubAI answers from fixed values and records the prompt arguments
type stubAI struct {
	enabled bool
	text    string
	image   *string

	mu    sync.Mutex
	calls []model.PromptArgs
}

func (s *stubAI) Enabled() bool { return s.enabled }

func (s *stubAI) GenerateText(_ context.Context, _ model.PromptKind, args model.PromptArgs) string {
	s.mu.Lock()
	s.calls = append(s.calls, args)
	s.mu.Unlock()
	return s.text
}

func (s *stubAI) GenerateImage(context.Context, string) *string {
	return s.image
}

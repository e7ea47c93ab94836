package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
	"github.com/etimad/showroom-backend/internal/websocket"
	"github.com/etimad/showroom-backend/pkg/logger"
)

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrInvalidLeadEdit = errors.New("invalid lead update")
)

const (
	GeneralInquiry = "General Inquiry"
	UnknownVehicle = "Unknown Vehicle"
)

// LeadView is a lead with its car reference resolved for display
type LeadView struct {
	model.Lead
	InterestedIn string `json:"interested_in"`
}

type LeadService interface {
	ListLeads() []LeadView
	UpdateLead(id string, patch model.LeadPatch) (*LeadView, error)
	DraftEmail(ctx context.Context, id string) (*model.GenerationDraft, error)
	EmailDraft(id string) (model.GenerationDraft, bool)
	StaleLeads(now time.Time, days int) []LeadView
}

type leadService struct {
	leadRepo repository.LeadRepository
	carRepo  repository.CarRepository
	ai       AIService
	drafts   *GenerationTracker
	events   EventPublisher
}

func NewLeadService(
	leadRepo repository.LeadRepository,
	carRepo repository.CarRepository,
	ai AIService,
	drafts *GenerationTracker,
	events EventPublisher,
) LeadService {
	return &leadService{
		leadRepo: leadRepo,
		carRepo:  carRepo,
		ai:       ai,
		drafts:   drafts,
		events:   publisherOrNop(events),
	}
}

// carName resolves the weak car reference at read time
func (s *leadService) carName(id *string) string {
	if id == nil || *id == "" {
		return GeneralInquiry
	}
	c, err := s.carRepo.FindByID(*id)
	if err != nil {
		return UnknownVehicle
	}
	return c.Title()
}

func (s *leadService) view(l model.Lead) LeadView {
	return LeadView{Lead: l, InterestedIn: s.carName(l.InterestedInID)}
}

func (s *leadService) ListLeads() []LeadView {
	leads := s.leadRepo.FindAll()
	out := make([]LeadView, len(leads))
	for i, l := range leads {
		out[i] = s.view(l)
	}
	return out
}

func (s *leadService) UpdateLead(id string, patch model.LeadPatch) (*LeadView, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidLeadEdit, *patch.Status)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be blank", ErrInvalidLeadEdit)
	}

	l, err := s.leadRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	s.events.Publish(websocket.EventLeadUpdated, id)
	logger.Info("Lead updated", map[string]interface{}{
		"lead_id": id,
		"status":  l.Status,
	})
	v := s.view(*l)
	return &v, nil
}

func (s *leadService) DraftEmail(ctx context.Context, id string) (*model.GenerationDraft, error) {
	l, err := s.leadRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	key := "lead:" + id
	seq := s.drafts.Begin(key)
	text := s.ai.GenerateText(ctx, model.PromptLeadEmail, model.PromptArgs{
		LeadName:   l.Name,
		CarDetails: s.carName(l.InterestedInID),
		Status:     string(l.Status),
	})
	if !s.drafts.Complete(key, seq, text) {
		logger.Debug("Discarded stale email draft", map[string]interface{}{
			"lead_id":  id,
			"sequence": seq,
		})
	}

	return &model.GenerationDraft{Key: key, Sequence: seq, Text: text}, nil
}

func (s *leadService) EmailDraft(id string) (model.GenerationDraft, bool) {
	return s.drafts.Draft("lead:" + id)
}

// StaleLeads lists open leads last contacted more than days calendar days before now.
// Leads with an unparseable last-contact date are treated as stale.
func (s *leadService) StaleLeads(now time.Time, days int) []LeadView {
	y, m, d := now.Date()
	cutoff := time.Date(y, m, d-days, 0, 0, 0, 0, time.UTC)
	var out []LeadView
	for _, l := range s.leadRepo.FindAll() {
		if !l.Status.Open() {
			continue
		}
		last, err := time.Parse(dateLayout, l.LastContact)
		if err == nil && !last.Before(cutoff) {
			continue
		}
		out = append(out, s.view(l))
	}
	return out
}

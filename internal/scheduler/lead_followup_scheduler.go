package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/etimad/showroom-backend/internal/app/service"
	"github.com/etimad/showroom-backend/internal/websocket"
	"github.com/etimad/showroom-backend/pkg/logger"
)

// LeadFollowUpScheduler flags open leads that have not been contacted recently
type LeadFollowUpScheduler struct {
	cron        *cron.Cron
	spec        string
	staleAfter  int
	leadService service.LeadService
	events      service.EventPublisher
	now         func() time.Time
}

// NewLeadFollowUpScheduler builds a scheduler running at spec (standard five-field cron)
func NewLeadFollowUpScheduler(spec string, staleAfterDays int, leadService service.LeadService, events service.EventPublisher) *LeadFollowUpScheduler {
	return &LeadFollowUpScheduler{
		cron:        cron.New(),
		spec:        spec,
		staleAfter:  staleAfterDays,
		leadService: leadService,
		events:      events,
		now:         time.Now,
	}
}

func (s *LeadFollowUpScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.RunOnce()
	})
	if err != nil {
		logger.Error("Failed to add cron job for lead follow-up", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Lead follow-up scheduler started", map[string]interface{}{
		"spec":             s.spec,
		"stale_after_days": s.staleAfter,
	})
	return nil
}

// RunOnce publishes a follow-up event for every stale lead and returns how many there were
func (s *LeadFollowUpScheduler) RunOnce() int {
	stale := s.leadService.StaleLeads(s.now(), s.staleAfter)
	for _, l := range stale {
		logger.Info("Lead follow-up due", map[string]interface{}{
			"lead_id":      l.ID,
			"name":         l.Name,
			"status":       l.Status,
			"last_contact": l.LastContact,
		})
		if s.events != nil {
			s.events.Publish(websocket.EventLeadFollowUpDue, l.ID)
		}
	}
	logger.Debug("Lead follow-up check finished", map[string]interface{}{
		"due": len(stale),
	})
	return len(stale)
}

func (s *LeadFollowUpScheduler) Stop() {
	logger.Info("Stopping lead follow-up scheduler...")
	<-s.cron.Stop().Done()
	logger.Info("Lead follow-up scheduler stopped")
}

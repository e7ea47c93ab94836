package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/service"
	apperrors "github.com/etimad/showroom-backend/internal/errors"
	"github.com/etimad/showroom-backend/internal/middleware"
)

type LeadController struct {
	leadService service.LeadService
}

func NewLeadController(leadService service.LeadService) *LeadController {
	return &LeadController{
		leadService: leadService,
	}
}

// ListLeads GET /api/v1/leads
func (ctrl *LeadController) ListLeads(c *gin.Context) {
	leads := ctrl.leadService.ListLeads()

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}

// UpdateLead merges the given fields into the lead
// PATCH /api/v1/leads/:id
func (ctrl *LeadController) UpdateLead(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var patch model.LeadPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	lead, err := ctrl.leadService.UpdateLead(c.Param("id"), patch)
	if err != nil {
		ctrl.respondLeadError(c, err)
		return
	}

	log.Info("Lead updated", map[string]interface{}{
		"lead_id": lead.ID,
		"status":  lead.Status,
	})

	c.JSON(http.StatusOK, gin.H{
		"lead": lead,
	})
}

// DraftEmail generates a follow-up email for the lead
// POST /api/v1/leads/:id/email-draft
func (ctrl *LeadController) DraftEmail(c *gin.Context) {
	draft, err := ctrl.leadService.DraftEmail(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.respondLeadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft": draft,
	})
}

// GetEmailDraft GET /api/v1/leads/:id/email-draft
func (ctrl *LeadController) GetEmailDraft(c *gin.Context) {
	draft, ok := ctrl.leadService.EmailDraft(c.Param("id"))
	if !ok {
		apperrors.NotFound(c, apperrors.ResourceNotFound, "No email has been drafted for this lead")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft": draft,
	})
}

func (ctrl *LeadController) respondLeadError(c *gin.Context, err error) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrLeadNotFound):
		log.Warn("Lead not found", map[string]interface{}{
			"lead_id": c.Param("id"),
		})
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Lead not found")
	case errors.Is(err, service.ErrInvalidLeadEdit):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
	default:
		log.Error("Lead request failed", err, nil)
		apperrors.InternalError(c, "")
	}
}

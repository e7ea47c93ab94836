package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/service"
	apperrors "github.com/etimad/showroom-backend/internal/errors"
)

type SettingsController struct {
	settingsService service.SettingsService
}

func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

type UpdateTermsRequest struct {
	Terms *string `json:"terms" binding:"required"`
}

// GetTerms GET /api/v1/settings/terms
func (ctrl *SettingsController) GetTerms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"terms": ctrl.settingsService.Terms(),
	})
}

// UpdateTerms replaces the terms printed on every quotation
// PUT /api/v1/settings/terms
func (ctrl *SettingsController) UpdateTerms(c *gin.Context) {
	var req UpdateTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Terms updated",
		"terms":   ctrl.settingsService.UpdateTerms(*req.Terms),
	})
}

// GetAIStatus tells the UI whether to offer generative buttons
// GET /api/v1/settings/ai
func (ctrl *SettingsController) GetAIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ai": ctrl.settingsService.AIStatus(),
	})
}

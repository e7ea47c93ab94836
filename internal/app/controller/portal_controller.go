package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/service"
	apperrors "github.com/etimad/showroom-backend/internal/errors"
	"github.com/etimad/showroom-backend/internal/middleware"
)

// PortalController serves the customer-facing verification page
type PortalController struct {
	verificationService service.VerificationService
}

func NewPortalController(verificationService service.VerificationService) *PortalController {
	return &PortalController{
		verificationService: verificationService,
	}
}

type DocumentUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Size        int64  `json:"size" binding:"required,gt=0"`
}

// GetForm returns the frozen questions for the link
// GET /verify/:id?token=
func (ctrl *PortalController) GetForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	form, err := ctrl.verificationService.PortalForm(c.Param("id"), c.Query("token"))
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form": form,
	})
}

// Submit records ID details and answers
// POST /verify/:id?token=
func (ctrl *PortalController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var form model.PortalSubmission
	if err := c.ShouldBindJSON(&form); err != nil {
		log.Warn("Invalid portal submission", map[string]interface{}{
			"customer_id": c.Param("id"),
			"error":       err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	customer, err := ctrl.verificationService.SubmitPortal(c.Param("id"), c.Query("token"), form)
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you. Your documents were submitted for review.",
		"status":  customer.Status,
	})
}

// DocumentUploadURL presigns the ID scan upload
// POST /verify/:id/document?token=
func (ctrl *PortalController) DocumentUploadURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req DocumentUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	presigned, err := ctrl.verificationService.DocumentUploadURL(
		c.Request.Context(), c.Param("id"), c.Query("token"), req.Filename, req.ContentType, req.Size,
	)
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	log.Info("Verification document upload presigned", map[string]interface{}{
		"customer_id": c.Param("id"),
		"key":         presigned.Key,
	})

	c.JSON(http.StatusOK, presigned)
}

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

type QuotationController struct {
	quotationService service.QuotationService
}

func NewQuotationController(quotationService service.QuotationService) *QuotationController {
	return &QuotationController{
		quotationService: quotationService,
	}
}

// ListQuotations GET /api/v1/quotations
func (ctrl *QuotationController) ListQuotations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	quotations := ctrl.quotationService.ListQuotations()

	log.Info("Quotations fetched successfully", map[string]interface{}{
		"count": len(quotations),
	})

	c.JSON(http.StatusOK, gin.H{
		"quotations": quotations,
		"count":      len(quotations),
	})
}

// GetQuotation GET /api/v1/quotations/:id
func (ctrl *QuotationController) GetQuotation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	q, err := ctrl.quotationService.GetQuotation(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrQuotationNotFound) {
			log.Warn("Quotation not found", map[string]interface{}{
				"quotation_id": c.Param("id"),
			})
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Quotation not found")
			return
		}
		log.Error("Failed to fetch quotation", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quotation": q,
		"reference": q.Reference(),
	})
}

// CreateQuotation freezes a new offer
// POST /api/v1/quotations
func (ctrl *QuotationController) CreateQuotation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.QuotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Invalid quotation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	q, err := ctrl.quotationService.CreateQuotation(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuotationCustomer):
			apperrors.BadRequest(c, apperrors.QuotationUnknownCustomer, "Selected customer does not exist")
		case errors.Is(err, service.ErrUnknownAddOn):
			apperrors.BadRequest(c, apperrors.QuotationInvalidAddOn, err.Error())
		case errors.Is(err, service.ErrInvalidQuotation):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		default:
			log.Error("Failed to create quotation", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Quotation created",
		"quotation": q,
		"reference": q.Reference(),
	})
}

// Preview computes the balance and installment shown while the form is edited
// POST /api/v1/quotations/preview
func (ctrl *QuotationController) Preview(c *gin.Context) {
	var input service.PreviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"breakdown": ctrl.quotationService.Preview(input),
	})
}

// ListAddOns GET /api/v1/quotations/addons
func (ctrl *QuotationController) ListAddOns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"add_ons": model.AddOnOptions,
	})
}

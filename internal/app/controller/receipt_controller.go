package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/service"
	apperrors "github.com/etimad/showroom-backend/internal/errors"
	"github.com/etimad/showroom-backend/internal/middleware"
)

type ReceiptController struct {
	receiptService service.ReceiptService
}

func NewReceiptController(receiptService service.ReceiptService) *ReceiptController {
	return &ReceiptController{
		receiptService: receiptService,
	}
}

// ListReceipts GET /api/v1/receipts
func (ctrl *ReceiptController) ListReceipts(c *gin.Context) {
	receipts := ctrl.receiptService.ListReceipts()

	c.JSON(http.StatusOK, gin.H{
		"receipts": receipts,
		"count":    len(receipts),
	})
}

// GetReceipt GET /api/v1/receipts/:id
func (ctrl *ReceiptController) GetReceipt(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	r, err := ctrl.receiptService.GetReceipt(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrReceiptNotFound) {
			log.Warn("Receipt not found", map[string]interface{}{
				"receipt_id": c.Param("id"),
			})
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Receipt not found")
			return
		}
		log.Error("Failed to fetch receipt", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipt": r,
		"number":  r.Number(),
	})
}

// CreateReceipt POST /api/v1/receipts
func (ctrl *ReceiptController) CreateReceipt(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.CreateReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Invalid receipt request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	r, err := ctrl.receiptService.CreateReceipt(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReceipt) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
			return
		}
		log.Error("Failed to create receipt", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Receipt issued",
		"receipt": r,
	})
}

package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/service"
	apperrors "github.com/etimad/showroom-backend/internal/errors"
	"github.com/etimad/showroom-backend/internal/middleware"
	"github.com/etimad/showroom-backend/internal/storage"
	"github.com/etimad/showroom-backend/pkg/logger"
)

type CustomerController struct {
	customerService     service.CustomerService
	verificationService service.VerificationService
}

func NewCustomerController(customerService service.CustomerService, verificationService service.VerificationService) *CustomerController {
	return &CustomerController{
		customerService:     customerService,
		verificationService: verificationService,
	}
}

type AddQuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

// VerifyRequest must carry confirm=true; the admin UI asks before approving
type VerifyRequest struct {
	Confirm bool `json:"confirm"`
}

// ListCustomers returns customers filtered by name or phone
// GET /api/v1/customers?search=
func (ctrl *CustomerController) ListCustomers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	customers := ctrl.customerService.ListCustomers(c.Query("search"))

	log.Info("Customers fetched successfully", map[string]interface{}{
		"count": len(customers),
	})

	c.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"count":     len(customers),
	})
}

// GetCustomer GET /api/v1/customers/:id
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	customer, err := ctrl.customerService.GetCustomer(c.Param("id"))
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
	})
}

// CreateCustomer registers a customer in Pending Verification
// POST /api/v1/customers
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Invalid customer request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	customer, err := ctrl.customerService.CreateCustomer(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCustomer) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, err.Error())
			return
		}
		log.Error("Failed to create customer", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Customer created",
		"customer": customer,
	})
}

// StartVerification opens a fresh question set with the default questions
// POST /api/v1/customers/:id/verification
func (ctrl *CustomerController) StartVerification(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	set, err := ctrl.verificationService.StartVerification(c.Param("id"))
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question_set": set,
	})
}

// GetQuestionSet GET /api/v1/customers/:id/verification
func (ctrl *CustomerController) GetQuestionSet(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	set, err := ctrl.verificationService.QuestionSet(c.Param("id"))
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question_set": set,
	})
}

// AddQuestion POST /api/v1/customers/:id/verification/questions
func (ctrl *CustomerController) AddQuestion(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	set, err := ctrl.verificationService.AddQuestion(c.Param("id"), req.Question)
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question_set": set,
	})
}

// RemoveQuestion DELETE /api/v1/customers/:id/verification/questions/:index
func (ctrl *CustomerController) RemoveQuestion(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Question index must be a number")
		return
	}

	set, err := ctrl.verificationService.RemoveQuestion(c.Param("id"), index)
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question_set": set,
	})
}

// GenerateLink freezes the questions and returns the portal link
// POST /api/v1/customers/:id/verification/link
func (ctrl *CustomerController) GenerateLink(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	link, err := ctrl.verificationService.GenerateLink(c.Param("id"))
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	log.Info("Verification link issued", map[string]interface{}{
		"customer_id": link.CustomerID,
	})

	c.JSON(http.StatusOK, gin.H{
		"link": link,
	})
}

// Review returns the customer with submitted details for the admin review panel
// GET /api/v1/customers/:id/review
func (ctrl *CustomerController) Review(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	customer, err := ctrl.verificationService.Review(c.Param("id"))
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":             customer,
		"verification_details": customer.VerificationDetails,
	})
}

// Verify approves the customer. Requires {"confirm": true}.
// POST /api/v1/customers/:id/verify
func (ctrl *CustomerController) Verify(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		log.Warn("Verification attempted without confirmation", map[string]interface{}{
			"customer_id": c.Param("id"),
		})
		apperrors.BadRequest(c, apperrors.ValidationConfirmation, "Confirm the approval by sending \"confirm\": true")
		return
	}

	customer, err := ctrl.verificationService.VerifyCustomer(c.Param("id"))
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Customer verified",
		"customer": customer,
	})
}

// Reject closes the review panel. Status and details are left as they are.
// POST /api/v1/customers/:id/reject
func (ctrl *CustomerController) Reject(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	customer, err := ctrl.verificationService.RejectReview(c.Param("id"))
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Review closed",
		"customer": customer,
	})
}

// ConfirmationMail returns the prefilled showroom visit email
// GET /api/v1/customers/:id/mail
func (ctrl *CustomerController) ConfirmationMail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	mail, err := ctrl.verificationService.ConfirmationMail(c.Param("id"))
	if err != nil {
		respondVerificationError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mail": mail,
	})
}

// respondVerificationError maps customer and verification failures to HTTP errors
func respondVerificationError(c *gin.Context, log *logger.Logger, err error) {
	fields := map[string]interface{}{
		"customer_id": c.Param("id"),
		"error":       err.Error(),
	}

	switch {
	case errors.Is(err, service.ErrCustomerNotFound):
		log.Warn("Customer not found", fields)
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Customer not found")
	case errors.Is(err, service.ErrVerificationNotStarted):
		log.Warn("Verification not started", fields)
		apperrors.Conflict(c, apperrors.VerificationNotStarted, err.Error())
	case errors.Is(err, service.ErrQuestionSetFrozen):
		log.Warn("Question set is frozen", fields)
		apperrors.Conflict(c, apperrors.VerificationQuestionsFixed, err.Error())
	case errors.Is(err, service.ErrEmptyQuestion), errors.Is(err, service.ErrIncompleteSubmission):
		apperrors.BadRequest(c, apperrors.ValidationRequired, err.Error())
	case errors.Is(err, service.ErrQuestionIndex):
		apperrors.BadRequest(c, apperrors.ValidationInvalidRange, err.Error())
	case errors.Is(err, service.ErrInvalidPortalToken):
		log.Warn("Invalid verification token", fields)
		apperrors.Forbidden(c, apperrors.VerificationTokenInvalid, err.Error())
	case errors.Is(err, service.ErrAnswerCountMismatch):
		apperrors.BadRequest(c, apperrors.VerificationAnswerMismatch, err.Error())
	case errors.Is(err, service.ErrStorageNotConfigured):
		apperrors.RespondWithError(c, http.StatusNotImplemented, apperrors.UploadNotConfigured, "Document uploads are not configured")
	case errors.Is(err, storage.ErrFileTooLarge):
		apperrors.BadRequest(c, apperrors.UploadFileTooLarge, err.Error())
	case errors.Is(err, storage.ErrContentTypeBlocked):
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, err.Error())
	default:
		log.Error("Verification request failed", err, fields)
		apperrors.InternalError(c, "")
	}
}

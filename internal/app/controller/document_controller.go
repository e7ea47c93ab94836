package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/service"
	apperrors "github.com/etimad/showroom-backend/internal/errors"
	"github.com/etimad/showroom-backend/internal/middleware"
	"github.com/etimad/showroom-backend/internal/pdf"
	"github.com/etimad/showroom-backend/internal/render"
)

// DocumentPrinter turns a print-only HTML document into a PDF
type DocumentPrinter interface {
	Print(ctx context.Context, html []byte) ([]byte, error)
}

// DocumentController serves printable quotations and receipts
type DocumentController struct {
	quotationService service.QuotationService
	receiptService   service.ReceiptService
	customerService  service.CustomerService
	settingsService  service.SettingsService
	renderer         *render.Renderer
	printer          DocumentPrinter
}

// NewDocumentController wires the document views. printer may be nil when PDF output is off.
func NewDocumentController(
	quotationService service.QuotationService,
	receiptService service.ReceiptService,
	customerService service.CustomerService,
	settingsService service.SettingsService,
	renderer *render.Renderer,
	printer DocumentPrinter,
) *DocumentController {
	return &DocumentController{
		quotationService: quotationService,
		receiptService:   receiptService,
		customerService:  customerService,
		settingsService:  settingsService,
		renderer:         renderer,
		printer:          printer,
	}
}

// Quotation renders the quotation document; ?print=1 renders the printable region alone
// GET /documents/quotations/:id
func (ctrl *DocumentController) Quotation(c *gin.Context) {
	html, ok := ctrl.renderQuotation(c, c.Query("print") == "1")
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// QuotationPDF GET /documents/quotations/:id/pdf
func (ctrl *DocumentController) QuotationPDF(c *gin.Context) {
	if ctrl.printer == nil {
		apperrors.NotImplemented(c, "PDF output is disabled")
		return
	}
	html, ok := ctrl.renderQuotation(c, true)
	if !ok {
		return
	}
	ctrl.sendPDF(c, html, "quotation-"+model.ShortReference(c.Param("id"))+".pdf")
}

// Receipt GET /documents/receipts/:id
func (ctrl *DocumentController) Receipt(c *gin.Context) {
	html, ok := ctrl.renderReceipt(c, c.Query("print") == "1")
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// ReceiptPDF GET /documents/receipts/:id/pdf
func (ctrl *DocumentController) ReceiptPDF(c *gin.Context) {
	if ctrl.printer == nil {
		apperrors.NotImplemented(c, "PDF output is disabled")
		return
	}
	html, ok := ctrl.renderReceipt(c, true)
	if !ok {
		return
	}
	ctrl.sendPDF(c, html, "receipt-"+model.ShortReference(c.Param("id"))+".pdf")
}

func (ctrl *DocumentController) renderQuotation(c *gin.Context, printOnly bool) ([]byte, bool) {
	log := middleware.GetLoggerFromContext(c)

	q, err := ctrl.quotationService.GetQuotation(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrQuotationNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Quotation not found")
			return nil, false
		}
		log.Error("Failed to fetch quotation", err, nil)
		apperrors.InternalError(c, "")
		return nil, false
	}

	var live *model.Customer
	if q.CustomerID != "" && q.CustomerID != model.ManualCustomerID {
		live, _ = ctrl.customerService.GetCustomer(q.CustomerID)
	}

	var buf bytes.Buffer
	if err := ctrl.renderer.Quotation(&buf, *q, live, ctrl.settingsService.Terms(), printOnly); err != nil {
		log.Error("Failed to render quotation", err, map[string]interface{}{
			"quotation_id": q.ID,
		})
		apperrors.InternalError(c, "")
		return nil, false
	}
	return buf.Bytes(), true
}

func (ctrl *DocumentController) renderReceipt(c *gin.Context, printOnly bool) ([]byte, bool) {
	log := middleware.GetLoggerFromContext(c)

	r, err := ctrl.receiptService.GetReceipt(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrReceiptNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Receipt not found")
			return nil, false
		}
		log.Error("Failed to fetch receipt", err, nil)
		apperrors.InternalError(c, "")
		return nil, false
	}

	var buf bytes.Buffer
	if err := ctrl.renderer.Receipt(&buf, *r, printOnly); err != nil {
		log.Error("Failed to render receipt", err, map[string]interface{}{
			"receipt_id": r.ID,
		})
		apperrors.InternalError(c, "")
		return nil, false
	}
	return buf.Bytes(), true
}

func (ctrl *DocumentController) sendPDF(c *gin.Context, html []byte, filename string) {
	log := middleware.GetLoggerFromContext(c)

	out, err := ctrl.printer.Print(c.Request.Context(), html)
	if err != nil {
		if errors.Is(err, pdf.ErrDisabled) {
			apperrors.NotImplemented(c, "PDF output is disabled")
			return
		}
		log.Error("Failed to print PDF", err, map[string]interface{}{
			"file": filename,
		})
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.InternalExternalAPI, "Failed to print document")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", out)
}

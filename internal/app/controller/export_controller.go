package controller

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/service"
	apperrors "github.com/etimad/showroom-backend/internal/errors"
	"github.com/etimad/showroom-backend/internal/middleware"
	"github.com/etimad/showroom-backend/internal/spreadsheet"
)

type ExportController struct {
	carService       service.CarService
	quotationService service.QuotationService
	receiptService   service.ReceiptService
}

func NewExportController(carService service.CarService, quotationService service.QuotationService, receiptService service.ReceiptService) *ExportController {
	return &ExportController{
		carService:       carService,
		quotationService: quotationService,
		receiptService:   receiptService,
	}
}

// Cars GET /api/v1/exports/cars.xlsx
func (ctrl *ExportController) Cars(c *gin.Context) {
	var buf bytes.Buffer
	err := spreadsheet.ExportCars(&buf, ctrl.carService.ListCars(""))
	ctrl.send(c, &buf, err, "cars.xlsx")
}

// Quotations GET /api/v1/exports/quotations.xlsx
func (ctrl *ExportController) Quotations(c *gin.Context) {
	var buf bytes.Buffer
	err := spreadsheet.ExportQuotations(&buf, ctrl.quotationService.ListQuotations())
	ctrl.send(c, &buf, err, "quotations.xlsx")
}

// Receipts GET /api/v1/exports/receipts.xlsx
func (ctrl *ExportController) Receipts(c *gin.Context) {
	var buf bytes.Buffer
	err := spreadsheet.ExportReceipts(&buf, ctrl.receiptService.ListReceipts())
	ctrl.send(c, &buf, err, "receipts.xlsx")
}

func (ctrl *ExportController) send(c *gin.Context, buf *bytes.Buffer, err error, filename string) {
	log := middleware.GetLoggerFromContext(c)

	if err != nil {
		log.Error("Failed to build workbook", err, map[string]interface{}{
			"file": filename,
		})
		apperrors.InternalError(c, "Failed to build export")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, spreadsheet.ContentType, buf.Bytes())
}

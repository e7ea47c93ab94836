// Package spreadsheet exports the showroom registers to XLSX and imports
// inventory from an XLSX sheet.
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/pkg/logger"
)

// ContentType is the MIME type of every workbook written here
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	carsSheet       = "Cars"
	quotationsSheet = "Quotations"
	receiptsSheet   = "Receipts"
)

// CarColumns is the column layout shared by export and import
var CarColumns = []string{"Make", "Model", "Year", "Mileage", "Price", "Status", "Condition", "Description", "Image", "VIN"}

var quotationColumns = []string{
	"Reference", "Date", "Customer", "Phone", "Email", "Vehicle", "VIN",
	"Price", "Down Payment", "Tenure", "Monthly Payment", "Status", "Add-ons",
}

var receiptColumns = []string{"Number", "Date", "Customer", "Vehicle", "Amount", "Payment Method", "Quotation"}

func ExportCars(w io.Writer, cars []model.Car) error {
	rows := make([][]interface{}, 0, len(cars))
	for _, c := range cars {
		rows = append(rows, []interface{}{
			c.Make, c.Model, c.Year, c.Mileage, c.Price, string(c.Status),
			c.Condition, c.Description, c.ImageURL, c.VIN,
		})
	}
	return writeSheet(w, carsSheet, CarColumns, rows)
}

func ExportQuotations(w io.Writer, quotations []model.Quotation) error {
	rows := make([][]interface{}, 0, len(quotations))
	for _, q := range quotations {
		var down int64
		if q.DownPayment != nil {
			down = *q.DownPayment
		}
		var tenure int
		if q.Tenure != nil {
			tenure = *q.Tenure
		}
		rows = append(rows, []interface{}{
			q.Reference(), q.Date, q.CustomerName, q.CustomerPhone, q.CustomerEmail,
			fmt.Sprintf("%d %s %s", q.VehicleYear, q.VehicleMake, q.VehicleModel), q.VIN,
			q.Price, down, tenure, q.MonthlyPayment.StringFixed(2), string(q.Status),
			strings.Join(q.AddOns, ", "),
		})
	}
	return writeSheet(w, quotationsSheet, quotationColumns, rows)
}

func ExportReceipts(w io.Writer, receipts []model.Receipt) error {
	rows := make([][]interface{}, 0, len(receipts))
	for _, r := range receipts {
		var quotation string
		if r.QuotationID != nil {
			quotation = model.ShortReference(*r.QuotationID)
		}
		rows = append(rows, []interface{}{
			r.Number(), r.Date, r.CustomerName, r.VehicleDescription, r.Amount,
			string(r.PaymentMethod), quotation,
		})
	}
	return writeSheet(w, receiptsSheet, receiptColumns, rows)
}

func writeSheet(w io.Writer, sheet string, header []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ReadCars parses the first sheet of an inventory workbook laid out as
// CarColumns. The header row is skipped and malformed rows are skipped
// with a warning. Every imported car gets a fresh id.
func ReadCars(r io.Reader) ([]model.Car, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	var cars []model.Car
	skipped := 0
	for i, row := range rows {
		if i == 0 {
			continue
		}
		car, err := parseCarRow(row)
		if err != nil {
			skipped++
			logger.Warn("Skipping inventory row", map[string]interface{}{
				"row":   i + 1,
				"error": err.Error(),
			})
			continue
		}
		cars = append(cars, car)
	}

	logger.Info("Inventory sheet read", map[string]interface{}{
		"sheet":    sheetName,
		"imported": len(cars),
		"skipped":  skipped,
	})
	return cars, nil
}

func parseCarRow(row []string) (model.Car, error) {
	col := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	c := model.Car{
		ID:          uuid.NewString(),
		Make:        col(0),
		Model:       col(1),
		Status:      model.CarStatus(col(5)),
		Condition:   col(6),
		Description: col(7),
		ImageURL:    col(8),
		VIN:         col(9),
	}
	if c.Make == "" || c.Model == "" {
		return model.Car{}, fmt.Errorf("make and model are required")
	}

	var err error
	if c.Year, err = strconv.Atoi(col(2)); err != nil {
		return model.Car{}, fmt.Errorf("invalid year %q", col(2))
	}
	if c.Mileage, err = atoiOrZero(col(3)); err != nil || c.Mileage < 0 {
		return model.Car{}, fmt.Errorf("invalid mileage %q", col(3))
	}
	if c.Price, err = strconv.ParseInt(col(4), 10, 64); err != nil || c.Price < 0 {
		return model.Car{}, fmt.Errorf("invalid price %q", col(4))
	}

	if c.Status == "" {
		c.Status = model.CarStatusAvailable
	}
	if !c.Status.Valid() {
		return model.Car{}, fmt.Errorf("invalid status %q", c.Status)
	}
	if c.Condition == "" {
		c.Condition = "Excellent"
	}
	return c, nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

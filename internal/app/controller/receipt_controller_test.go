package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/etimad/showroom-backend/internal/errors"
)

func TestReceiptController_CreateReceipt(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodPost, "/api/v1/receipts", map[string]interface{}{
		"quotation_id":        "does-not-exist",
		"customer_name":       "Fatima Khaled",
		"vehicle_description": "2023 Range Rover Autobiography",
		"amount":              100000,
		"payment_method":      "Cheque",
	})
	requireStatus(t, w, http.StatusCreated)

	r := decodeBody(t, w)["receipt"].(map[string]interface{})
	assert.Equal(t, "does-not-exist", r["quotation_id"])
	assert.Equal(t, "Cheque", r["payment_method"])
	assert.Len(t, app.store.Receipts(), 2)
}

func TestReceiptController_CreateReceipt_Validation(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodPost, "/api/v1/receipts", map[string]interface{}{
		"customer_name":  "Fatima Khaled",
		"amount":         -5,
		"payment_method": "Crypto",
	})
	requireStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	assert.Equal(t, apperrors.ValidationInvalidInput, body["error"])
	assert.Contains(t, body["fields"], "amount")
	assert.Contains(t, body["fields"], "payment_method")
	assert.Len(t, app.store.Receipts(), 1)
}

func TestReceiptController_GetReceipt(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodGet, "/api/v1/receipts/r1", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "R1", decodeBody(t, w)["number"])

	w = app.do(t, http.MethodGet, "/api/v1/receipts/nope", nil)
	requireStatus(t, w, http.StatusNotFound)
}

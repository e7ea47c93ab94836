package controller

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/etimad/showroom-backend/internal/errors"
)

func TestCustomerController_ListCustomers_Search(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodGet, "/api/v1/customers?search=JOHN", nil)
	requireStatus(t, w, http.StatusOK)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])

	w = app.do(t, http.MethodGet, "/api/v1/customers?search=555", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, float64(1), decodeBody(t, w)["count"])
}

func TestCustomerController_CreateCustomer(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodPost, "/api/v1/customers", map[string]interface{}{
		"name":  "Omar Khalid",
		"email": "omar@example.com",
		"phone": "050 765 4321",
	})
	requireStatus(t, w, http.StatusCreated)

	customer := decodeBody(t, w)["customer"].(map[string]interface{})
	assert.Equal(t, "Pending Verification", customer["status"])
	assert.Equal(t, "+971 50 765 4321", customer["phone"])
	assert.Len(t, app.store.Customers(), 4)
}

func TestCustomerController_CreateCustomer_Validation(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodPost, "/api/v1/customers", map[string]interface{}{
		"name": "No Email",
	})
	requireStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	assert.Equal(t, apperrors.ValidationInvalidInput, body["error"])
	assert.Contains(t, body["fields"], "email")
	assert.Len(t, app.store.Customers(), 3)
}

func TestCustomerController_GetCustomer_NotFound(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodGet, "/api/v1/customers/ghost", nil)
	requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, apperrors.ResourceNotFound, decodeBody(t, w)["error"])
}

func TestCustomerController_VerificationFlow(t *testing.T) {
	app := setupControllerTest(t, nil)

	// cust2 starts in Pending Verification
	w := app.do(t, http.MethodPost, "/api/v1/customers/cust2/verification", nil)
	requireStatus(t, w, http.StatusOK)

	w = app.do(t, http.MethodPost, "/api/v1/customers/cust2/verification/questions", map[string]string{
		"question": "  Do you hold a UAE driving licence?  ",
	})
	requireStatus(t, w, http.StatusOK)
	set := decodeBody(t, w)["question_set"].(map[string]interface{})
	assert.Len(t, set["questions"], 3)

	w = app.do(t, http.MethodPost, "/api/v1/customers/cust2/verification/link", nil)
	requireStatus(t, w, http.StatusOK)
	link := decodeBody(t, w)["link"].(map[string]interface{})
	u, err := url.Parse(link["url"].(string))
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.Len(t, token, 8)

	// questions are frozen once the link exists
	w = app.do(t, http.MethodDelete, "/api/v1/customers/cust2/verification/questions/0", nil)
	requireStatus(t, w, http.StatusConflict)
	assert.Equal(t, apperrors.VerificationQuestionsFixed, decodeBody(t, w)["error"])

	w = app.do(t, http.MethodGet, "/verify/cust2?token=wrong", nil)
	requireStatus(t, w, http.StatusForbidden)

	w = app.do(t, http.MethodGet, "/verify/cust2?token="+token, nil)
	requireStatus(t, w, http.StatusOK)
	form := decodeBody(t, w)["form"].(map[string]interface{})
	assert.Equal(t, []interface{}{
		"Are you a resident of UAE?",
		"Do you have a valid Emirates ID?",
		"Do you hold a UAE driving licence?",
	}, form["questions"])

	w = app.do(t, http.MethodPost, "/verify/cust2?token="+token, map[string]interface{}{
		"id_number":   "784-1990-1234567-1",
		"expiry_date": "2027-05-01",
		"answers":     []string{"Yes", "Yes"},
	})
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, apperrors.VerificationAnswerMismatch, decodeBody(t, w)["error"])

	w = app.do(t, http.MethodPost, "/verify/cust2?token="+token, map[string]interface{}{
		"id_number":   "784-1990-1234567-1",
		"expiry_date": "2027-05-01",
		"answers":     []string{"Yes", "Yes", "No"},
	})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "Action Required", decodeBody(t, w)["status"])

	w = app.do(t, http.MethodGet, "/api/v1/customers/cust2/review", nil)
	requireStatus(t, w, http.StatusOK)
	details := decodeBody(t, w)["verification_details"].(map[string]interface{})
	assert.Equal(t, "784-1990-1234567-1", details["id_number"])
	assert.Equal(t, "mock-doc-url", details["document_url"])
	assert.Len(t, details["questionnaire"], 3)

	w = app.do(t, http.MethodPost, "/api/v1/customers/cust2/verify", map[string]bool{"confirm": true})
	requireStatus(t, w, http.StatusOK)
	customer := decodeBody(t, w)["customer"].(map[string]interface{})
	assert.Equal(t, "Verified", customer["status"])
	assert.NotNil(t, customer["verification_details"])

	w = app.do(t, http.MethodGet, "/api/v1/customers/cust2/mail", nil)
	requireStatus(t, w, http.StatusOK)
	mail := decodeBody(t, w)["mail"].(map[string]interface{})
	assert.Equal(t, "Showroom Visit Confirmation", mail["subject"])
}

func TestCustomerController_Verify_RequiresConfirmation(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodPost, "/api/v1/customers/cust2/verify", nil)
	requireStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, apperrors.ValidationConfirmation, decodeBody(t, w)["error"])

	w = app.do(t, http.MethodPost, "/api/v1/customers/cust2/verify", map[string]bool{"confirm": false})
	requireStatus(t, w, http.StatusBadRequest)

	c, ok := app.store.FindCustomer("cust2")
	require.True(t, ok)
	assert.Equal(t, "Pending Verification", string(c.Status))
}

func TestCustomerController_Verify_FromPending(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodPost, "/api/v1/customers/cust2/verify", map[string]bool{"confirm": true})
	requireStatus(t, w, http.StatusOK)

	c, _ := app.store.FindCustomer("cust2")
	assert.Equal(t, "Verified", string(c.Status))
	assert.Nil(t, c.VerificationDetails)
}

func TestCustomerController_Reject_LeavesStatus(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodPost, "/api/v1/customers/cust3/reject", nil)
	requireStatus(t, w, http.StatusOK)

	c, _ := app.store.FindCustomer("cust3")
	assert.Equal(t, "Verified", string(c.Status))

	w = app.do(t, http.MethodPost, "/api/v1/customers/cust2/reject", nil)
	requireStatus(t, w, http.StatusOK)
	c, _ = app.store.FindCustomer("cust2")
	assert.Equal(t, "Pending Verification", string(c.Status))
}

func TestCustomerController_AddQuestion_NotStarted(t *testing.T) {
	app := setupControllerTest(t, nil)

	w := app.do(t, http.MethodPost, "/api/v1/customers/cust1/verification/questions", map[string]string{
		"question": "Anything else?",
	})
	requireStatus(t, w, http.StatusConflict)
	assert.Equal(t, apperrors.VerificationNotStarted, decodeBody(t, w)["error"])
}

func TestPortalController_DocumentUpload_NotConfigured(t *testing.T) {
	app := setupControllerTest(t, nil)

	link, err := app.verification.GenerateLink("cust2")
	require.NoError(t, err)

	w := app.do(t, http.MethodPost, "/verify/cust2/document?token="+link.Token, map[string]interface{}{
		"filename":     "id.png",
		"content_type": "image/png",
		"size":         1024,
	})
	requireStatus(t, w, http.StatusNotImplemented)
	assert.Equal(t, apperrors.UploadNotConfigured, decodeBody(t, w)["error"])
}

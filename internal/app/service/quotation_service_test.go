package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/websocket"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int { return &v }

func setupQuotationServiceTest(t *testing.T) (QuotationService, testRepos, *recordingPublisher) {
	repos := setupRepos(t)
	pub := &recordingPublisher{}
	return NewQuotationService(repos.quotations, repos.customers, pub), repos, pub
}

func landCruiserInput() QuotationInput {
	return QuotationInput{
		CustomerID:   "cust1",
		VehicleMake:  "Toyota",
		VehicleModel: "Land Cruiser",
		VehicleYear:  2022,
		VIN:          "JT1122334455",
		Price:        int64Ptr(310000),
		DownPayment:  int64Ptr(50000),
		Tenure:       intPtr(24),
	}
}

func TestQuotationService_CreateQuotation(t *testing.T) {
	svc, repos, pub := setupQuotationServiceTest(t)
	fixToday(t, "2024-05-10")

	q, err := svc.CreateQuotation(landCruiserInput())
	require.NoError(t, err)

	assert.Equal(t, "cust1", q.CustomerID)
	assert.Equal(t, "Ahmed Al-Mansoor", q.CustomerName)
	assert.Equal(t, "+971 50 123 4567", q.CustomerPhone)
	assert.Equal(t, "ahmed.m@example.com", q.CustomerEmail)
	assert.Equal(t, model.QuotationStatusDraft, q.Status)
	assert.Equal(t, "2024-05-10", q.Date)
	assert.Equal(t, "10833.33", q.MonthlyPayment.StringFixed(2))
	assert.Equal(t, int64(50000), *q.DownPayment)
	assert.Equal(t, 24, *q.Tenure)

	all := repos.quotations.FindAll()
	require.Len(t, all, 3)
	assert.Equal(t, q.ID, all[0].ID)
	assert.Equal(t, []publishedEvent{{websocket.EventQuotationCreated, q.ID}}, pub.Events())
}

func TestQuotationService_Defaults(t *testing.T) {
	svc, _, _ := setupQuotationServiceTest(t)

	in := landCruiserInput()
	in.DownPayment = nil
	in.Tenure = nil

	q, err := svc.CreateQuotation(in)
	require.NoError(t, err)
	assert.Equal(t, int64(0), *q.DownPayment)
	assert.Equal(t, 12, *q.Tenure)
	assert.Equal(t, "25833.33", q.MonthlyPayment.StringFixed(2))
}

func TestQuotationService_ZeroTenureAndOverPayment(t *testing.T) {
	svc, _, _ := setupQuotationServiceTest(t)

	in := landCruiserInput()
	in.Tenure = intPtr(0)
	q, err := svc.CreateQuotation(in)
	require.NoError(t, err)
	assert.True(t, q.MonthlyPayment.IsZero())

	in = landCruiserInput()
	in.Price = int64Ptr(100000)
	in.DownPayment = int64Ptr(150000)
	in.Tenure = intPtr(12)
	q, err = svc.CreateQuotation(in)
	require.NoError(t, err)
	assert.True(t, q.MonthlyPayment.IsZero())
}

func TestQuotationService_ManualCustomer(t *testing.T) {
	svc, _, _ := setupQuotationServiceTest(t)

	in := landCruiserInput()
	in.CustomerID = model.ManualCustomerID
	in.CustomerName = "Omar Saeed"
	in.CustomerPhone = "+971 56 000 1111"

	q, err := svc.CreateQuotation(in)
	require.NoError(t, err)
	assert.Equal(t, model.ManualCustomerID, q.CustomerID)
	assert.Equal(t, "Omar Saeed", q.CustomerName)
	assert.Equal(t, "+971 56 000 1111", q.CustomerPhone)
	assert.Empty(t, q.CustomerEmail)

	in.CustomerName = ""
	_, err = svc.CreateQuotation(in)
	assert.ErrorIs(t, err, ErrManualNameRequired)
	assert.ErrorIs(t, err, ErrInvalidQuotation)
}

func TestQuotationService_Rejections(t *testing.T) {
	svc, repos, pub := setupQuotationServiceTest(t)

	in := landCruiserInput()
	in.CustomerID = "ghost"
	_, err := svc.CreateQuotation(in)
	assert.ErrorIs(t, err, ErrQuotationCustomer)

	in = landCruiserInput()
	in.VehicleModel = " "
	_, err = svc.CreateQuotation(in)
	assert.ErrorIs(t, err, ErrVehicleRequired)

	in = landCruiserInput()
	in.Price = nil
	_, err = svc.CreateQuotation(in)
	assert.ErrorIs(t, err, ErrPriceRequired)

	in = landCruiserInput()
	in.Price = int64Ptr(-1)
	_, err = svc.CreateQuotation(in)
	assert.ErrorIs(t, err, ErrPriceRequired)

	in = landCruiserInput()
	in.AddOns = []string{"Polishing", "Free Fuel"}
	_, err = svc.CreateQuotation(in)
	assert.ErrorIs(t, err, ErrUnknownAddOn)

	assert.Len(t, repos.quotations.FindAll(), 2)
	assert.Empty(t, pub.Events())
}

func TestQuotationService_AddOnsDeduplicated(t *testing.T) {
	svc, _, _ := setupQuotationServiceTest(t)

	in := landCruiserInput()
	in.AddOns = []string{"Registration", "Polishing", "Registration", "Free Service", "Polishing"}

	q, err := svc.CreateQuotation(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Registration", "Polishing", "Free Service"}, q.AddOns)
}

func TestQuotationService_StoredSnapshotIsFrozen(t *testing.T) {
	svc, repos, _ := setupQuotationServiceTest(t)

	q, err := svc.CreateQuotation(landCruiserInput())
	require.NoError(t, err)

	// a caller mutating the returned value cannot reach the store
	*q.DownPayment = 0
	q.CustomerName = "Someone Else"

	got, err := svc.GetQuotation(q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), *got.DownPayment)
	assert.Equal(t, "Ahmed Al-Mansoor", got.CustomerName)
	assert.Equal(t, "10833.33", got.MonthlyPayment.StringFixed(2))

	repos.customers.MarkVerified("cust1")
	got, _ = svc.GetQuotation(q.ID)
	assert.Equal(t, "Ahmed Al-Mansoor", got.CustomerName)
}

func TestQuotationService_GetQuotation_NotFound(t *testing.T) {
	svc, _, _ := setupQuotationServiceTest(t)
	_, err := svc.GetQuotation("nope")
	assert.ErrorIs(t, err, ErrQuotationNotFound)
}

func TestQuotationService_Preview(t *testing.T) {
	svc, repos, _ := setupQuotationServiceTest(t)

	b := svc.Preview(PreviewInput{Price: 310000, DownPayment: 50000, Tenure: intPtr(24)})
	assert.Equal(t, int64(260000), b.Balance)
	assert.Equal(t, int64(10833), b.RoundedInstallment)

	b = svc.Preview(PreviewInput{Price: 120000})
	assert.Equal(t, 12, b.Tenure)
	assert.Equal(t, int64(10000), b.RoundedInstallment)

	assert.Len(t, repos.quotations.FindAll(), 2)
}

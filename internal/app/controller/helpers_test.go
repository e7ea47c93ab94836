package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/etimad/showroom-backend/config"
	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
	"github.com/etimad/showroom-backend/internal/app/service"
	"github.com/etimad/showroom-backend/internal/middleware"
	"github.com/etimad/showroom-backend/internal/render"
	"github.com/etimad/showroom-backend/internal/store"
)

type testApp struct {
	store        *store.Store
	router       *gin.Engine
	verification service.VerificationService
	settings     service.SettingsService
}

type fakePrinter struct {
	html []byte
}

func (p *fakePrinter) Print(_ context.Context, html []byte) ([]byte, error) {
	p.html = html
	return []byte("%PDF-1.4 fake"), nil
}

// setupControllerTest wires every controller over the seed data. printer may be nil.
func setupControllerTest(t *testing.T, printer DocumentPrinter) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	model.RegisterValidators()

	s := store.New(store.Seed())
	customerRepo := repository.NewCustomerRepository(s)
	carRepo := repository.NewCarRepository(s)
	leadRepo := repository.NewLeadRepository(s)
	quotationRepo := repository.NewQuotationRepository(s)
	receiptRepo := repository.NewReceiptRepository(s)
	settingsRepo := repository.NewSettingsRepository(s)

	ai := service.NewAIService(config.GenAIConfig{}, nil)
	drafts := service.NewGenerationTracker()

	customerService := service.NewCustomerService(customerRepo, nil, "AE")
	verificationService := service.NewVerificationService(customerRepo, nil, nil, "https://etimad.crm", "ETIMAD")
	carService := service.NewCarService(carRepo, ai, drafts, nil)
	leadService := service.NewLeadService(leadRepo, carRepo, ai, drafts, nil)
	quotationService := service.NewQuotationService(quotationRepo, customerRepo, nil)
	receiptService := service.NewReceiptService(receiptRepo, nil)
	settingsService := service.NewSettingsService(settingsRepo, ai, nil)
	dashboardService := service.NewDashboardService(customerRepo, quotationRepo, receiptRepo, store.RevenueSeries)
	shopService := service.NewShopService(carRepo, "ETIMAD", "", "AE")

	renderer, err := render.New(render.Dealer{Name: "ETIMAD", LegalName: "Used Car Leasing L.L.C", Currency: "AED"})
	require.NoError(t, err)

	dashboardCtrl := NewDashboardController(dashboardService)
	carCtrl := NewCarController(carService)
	customerCtrl := NewCustomerController(customerService, verificationService)
	portalCtrl := NewPortalController(verificationService)
	quotationCtrl := NewQuotationController(quotationService)
	receiptCtrl := NewReceiptController(receiptService)
	leadCtrl := NewLeadController(leadService)
	settingsCtrl := NewSettingsController(settingsService)
	documentCtrl := NewDocumentController(quotationService, receiptService, customerService, settingsService, renderer, printer)
	exportCtrl := NewExportController(carService, quotationService, receiptService)
	shopCtrl := NewShopController(shopService)

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())

	v1 := r.Group("/api/v1")
	v1.GET("/dashboard", dashboardCtrl.GetStats)
	v1.GET("/navigation", dashboardCtrl.GetNavigation)

	v1.GET("/cars", carCtrl.ListCars)
	v1.POST("/cars", carCtrl.CreateCar)
	v1.GET("/cars/:id", carCtrl.GetCar)
	v1.POST("/cars/description", carCtrl.GenerateDescription)
	v1.GET("/cars/description/draft", carCtrl.GetDescriptionDraft)
	v1.POST("/cars/image", carCtrl.GenerateImage)

	v1.GET("/customers", customerCtrl.ListCustomers)
	v1.POST("/customers", customerCtrl.CreateCustomer)
	v1.GET("/customers/:id", customerCtrl.GetCustomer)
	v1.POST("/customers/:id/verification", customerCtrl.StartVerification)
	v1.GET("/customers/:id/verification", customerCtrl.GetQuestionSet)
	v1.POST("/customers/:id/verification/questions", customerCtrl.AddQuestion)
	v1.DELETE("/customers/:id/verification/questions/:index", customerCtrl.RemoveQuestion)
	v1.POST("/customers/:id/verification/link", customerCtrl.GenerateLink)
	v1.GET("/customers/:id/review", customerCtrl.Review)
	v1.POST("/customers/:id/verify", customerCtrl.Verify)
	v1.POST("/customers/:id/reject", customerCtrl.Reject)
	v1.GET("/customers/:id/mail", customerCtrl.ConfirmationMail)

	v1.GET("/quotations", quotationCtrl.ListQuotations)
	v1.POST("/quotations", quotationCtrl.CreateQuotation)
	v1.POST("/quotations/preview", quotationCtrl.Preview)
	v1.GET("/quotations/addons", quotationCtrl.ListAddOns)
	v1.GET("/quotations/:id", quotationCtrl.GetQuotation)

	v1.GET("/receipts", receiptCtrl.ListReceipts)
	v1.POST("/receipts", receiptCtrl.CreateReceipt)
	v1.GET("/receipts/:id", receiptCtrl.GetReceipt)

	v1.GET("/leads", leadCtrl.ListLeads)
	v1.PATCH("/leads/:id", leadCtrl.UpdateLead)
	v1.POST("/leads/:id/email-draft", leadCtrl.DraftEmail)
	v1.GET("/leads/:id/email-draft", leadCtrl.GetEmailDraft)

	v1.GET("/settings/terms", settingsCtrl.GetTerms)
	v1.PUT("/settings/terms", settingsCtrl.UpdateTerms)
	v1.GET("/settings/ai", settingsCtrl.GetAIStatus)

	v1.GET("/exports/cars.xlsx", exportCtrl.Cars)
	v1.GET("/exports/quotations.xlsx", exportCtrl.Quotations)
	v1.GET("/exports/receipts.xlsx", exportCtrl.Receipts)

	r.GET("/verify/:id", portalCtrl.GetForm)
	r.POST("/verify/:id", portalCtrl.Submit)
	r.POST("/verify/:id/document", portalCtrl.DocumentUploadURL)

	r.GET("/documents/quotations/:id", documentCtrl.Quotation)
	r.GET("/documents/quotations/:id/pdf", documentCtrl.QuotationPDF)
	r.GET("/documents/receipts/:id", documentCtrl.Receipt)
	r.GET("/documents/receipts/:id/pdf", documentCtrl.ReceiptPDF)

	r.GET("/shop/cars", shopCtrl.ListCars)
	r.GET("/shop/makes", shopCtrl.ListMakes)
	r.GET("/shop/cars/:id/whatsapp", shopCtrl.WhatsAppLink)

	return &testApp{
		store:        s,
		router:       r,
		verification: verificationService,
		settings:     settingsService,
	}
}

// do sends a request with an optional JSON body and returns the recorder
func (a *testApp) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}

package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/etimad/showroom-backend/config"
	"github.com/etimad/showroom-backend/internal/app/controller"
	"github.com/etimad/showroom-backend/internal/middleware"
)

type Router struct {
	dashboardController *controller.DashboardController
	carController       *controller.CarController
	customerController  *controller.CustomerController
	portalController    *controller.PortalController
	quotationController *controller.QuotationController
	receiptController   *controller.ReceiptController
	leadController      *controller.LeadController
	settingsController  *controller.SettingsController
	documentController  *controller.DocumentController
	exportController    *controller.ExportController
	shopController      *controller.ShopController
	liveController      *controller.LiveController
	config              *config.Config
}

func NewRouter(
	dashboardController *controller.DashboardController,
	carController *controller.CarController,
	customerController *controller.CustomerController,
	portalController *controller.PortalController,
	quotationController *controller.QuotationController,
	receiptController *controller.ReceiptController,
	leadController *controller.LeadController,
	settingsController *controller.SettingsController,
	documentController *controller.DocumentController,
	exportController *controller.ExportController,
	shopController *controller.ShopController,
	liveController *controller.LiveController,
	cfg *config.Config,
) *Router {
	return &Router{
		dashboardController: dashboardController,
		carController:       carController,
		customerController:  customerController,
		portalController:    portalController,
		quotationController: quotationController,
		receiptController:   receiptController,
		leadController:      leadController,
		settingsController:  settingsController,
		documentController:  documentController,
		exportController:    exportController,
		shopController:      shopController,
		liveController:      liveController,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": r.config.Dealer.Name + " back office is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ws", r.liveController.Connect)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/dashboard", r.dashboardController.GetStats)
		v1.GET("/navigation", r.dashboardController.GetNavigation)

		cars := v1.Group("/cars")
		{
			cars.GET("", r.carController.ListCars)
			cars.POST("", r.carController.CreateCar)
			cars.POST("/description", r.carController.GenerateDescription)
			cars.GET("/description/draft", r.carController.GetDescriptionDraft)
			cars.POST("/image", r.carController.GenerateImage)
			cars.GET("/:id", r.carController.GetCar)
		}

		customers := v1.Group("/customers")
		{
			customers.GET("", r.customerController.ListCustomers)
			customers.POST("", r.customerController.CreateCustomer)
			customers.GET("/:id", r.customerController.GetCustomer)

			customers.POST("/:id/verification", r.customerController.StartVerification)
			customers.GET("/:id/verification", r.customerController.GetQuestionSet)
			customers.POST("/:id/verification/questions", r.customerController.AddQuestion)
			customers.DELETE("/:id/verification/questions/:index", r.customerController.RemoveQuestion)
			customers.POST("/:id/verification/link", r.customerController.GenerateLink)

			customers.GET("/:id/review", r.customerController.Review)
			customers.POST("/:id/verify", r.customerController.Verify)
			customers.POST("/:id/reject", r.customerController.Reject)
			customers.GET("/:id/mail", r.customerController.ConfirmationMail)
		}

		quotations := v1.Group("/quotations")
		{
			quotations.GET("", r.quotationController.ListQuotations)
			quotations.POST("", r.quotationController.CreateQuotation)
			quotations.POST("/preview", r.quotationController.Preview)
			quotations.GET("/addons", r.quotationController.ListAddOns)
			quotations.GET("/:id", r.quotationController.GetQuotation)
		}

		receipts := v1.Group("/receipts")
		{
			receipts.GET("", r.receiptController.ListReceipts)
			receipts.POST("", r.receiptController.CreateReceipt)
			receipts.GET("/:id", r.receiptController.GetReceipt)
		}

		leads := v1.Group("/leads")
		{
			leads.GET("", r.leadController.ListLeads)
			leads.PATCH("/:id", r.leadController.UpdateLead)
			leads.POST("/:id/email-draft", r.leadController.DraftEmail)
			leads.GET("/:id/email-draft", r.leadController.GetEmailDraft)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("/terms", r.settingsController.GetTerms)
			settings.PUT("/terms", r.settingsController.UpdateTerms)
			settings.GET("/ai", r.settingsController.GetAIStatus)
		}

		exports := v1.Group("/exports")
		{
			exports.GET("/cars.xlsx", r.exportController.Cars)
			exports.GET("/quotations.xlsx", r.exportController.Quotations)
			exports.GET("/receipts.xlsx", r.exportController.Receipts)
		}
	}

	// customer-facing verification portal, reached through the emailed link
	portal := router.Group("/verify")
	{
		portal.GET("/:id", r.portalController.GetForm)
		portal.POST("/:id", r.portalController.Submit)
		portal.POST("/:id/document", r.portalController.DocumentUploadURL)
	}

	documents := router.Group("/documents")
	{
		documents.GET("/quotations/:id", r.documentController.Quotation)
		documents.GET("/quotations/:id/pdf", r.documentController.QuotationPDF)
		documents.GET("/receipts/:id", r.documentController.Receipt)
		documents.GET("/receipts/:id/pdf", r.documentController.ReceiptPDF)
	}

	// storefront renders without the admin chrome
	shop := router.Group("/shop")
	{
		shop.GET("/cars", r.shopController.ListCars)
		shop.GET("/makes", r.shopController.ListMakes)
		shop.GET("/cars/:id/whatsapp", r.shopController.WhatsAppLink)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept", "X-Request-ID", "Cache-Control", "X-Requested-With"}
	cfg.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour

	for _, o := range allowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = allowedOrigins
	return cors.New(cfg)
}

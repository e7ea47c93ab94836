package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etimad/showroom-backend/config"
	"github.com/etimad/showroom-backend/internal/app/controller"
	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
	"github.com/etimad/showroom-backend/internal/app/service"
	"github.com/etimad/showroom-backend/internal/pdf"
	"github.com/etimad/showroom-backend/internal/render"
	"github.com/etimad/showroom-backend/internal/router"
	"github.com/etimad/showroom-backend/internal/scheduler"
	"github.com/etimad/showroom-backend/internal/spreadsheet"
	"github.com/etimad/showroom-backend/internal/storage"
	"github.com/etimad/showroom-backend/internal/store"
	"github.com/etimad/showroom-backend/internal/websocket"
	"github.com/etimad/showroom-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: true,
	})

	logger.Info("Starting showroom back office", map[string]interface{}{
		"dealer":      cfg.Dealer.Name,
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
		"ai_enabled":  cfg.GenAI.Enabled(),
	})

	model.RegisterValidators()

	// In-memory state, seeded with demo records
	s := store.New(store.Seed())
	if cfg.Inventory.ImportFile != "" {
		importInventory(s, cfg.Inventory.ImportFile)
	}

	// Live event hub
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()

	// Document storage is optional
	var docs service.DocumentStorage
	if cfg.S3.Enabled() {
		docs = storage.NewS3Storage(cfg.S3.Region, cfg.S3.Bucket, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, cfg.S3.BaseURL)
		logger.Info("Verification document uploads enabled", map[string]interface{}{
			"bucket": cfg.S3.Bucket,
		})
	} else {
		logger.Warn("AWS_S3_BUCKET not set, verification document uploads disabled")
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(s)
	carRepo := repository.NewCarRepository(s)
	leadRepo := repository.NewLeadRepository(s)
	quotationRepo := repository.NewQuotationRepository(s)
	receiptRepo := repository.NewReceiptRepository(s)
	settingsRepo := repository.NewSettingsRepository(s)

	// Initialize services
	ai := service.NewAIService(cfg.GenAI, nil)
	drafts := service.NewGenerationTracker()

	customerService := service.NewCustomerService(customerRepo, hub, cfg.Dealer.PhoneRegion)
	verificationService := service.NewVerificationService(customerRepo, docs, hub, cfg.Dealer.PortalBaseURL, cfg.Dealer.Name)
	carService := service.NewCarService(carRepo, ai, drafts, hub)
	leadService := service.NewLeadService(leadRepo, carRepo, ai, drafts, hub)
	quotationService := service.NewQuotationService(quotationRepo, customerRepo, hub)
	receiptService := service.NewReceiptService(receiptRepo, hub)
	settingsService := service.NewSettingsService(settingsRepo, ai, hub)
	dashboardService := service.NewDashboardService(customerRepo, quotationRepo, receiptRepo, store.RevenueSeries)
	shopService := service.NewShopService(carRepo, cfg.Dealer.Name, cfg.Dealer.WhatsAppNumber, cfg.Dealer.PhoneRegion)

	// Lead follow-up reminders
	followUps := scheduler.NewLeadFollowUpScheduler(cfg.Scheduler.LeadFollowUpSpec, cfg.Scheduler.StaleAfterDays, leadService, hub)
	if err := followUps.Start(); err != nil {
		logger.Error("Failed to start lead follow-up scheduler", err, map[string]interface{}{
			"spec": cfg.Scheduler.LeadFollowUpSpec,
		})
	} else {
		defer followUps.Stop()
	}

	// Printable documents
	renderer, err := render.New(render.Dealer{
		Name:      cfg.Dealer.Name,
		LegalName: cfg.Dealer.LegalName,
		Currency:  cfg.Dealer.Currency,
	})
	if err != nil {
		logger.Fatal("Failed to parse document templates", err)
	}

	var printer controller.DocumentPrinter
	p, err := pdf.New(cfg.PDF)
	switch {
	case errors.Is(err, pdf.ErrDisabled):
		logger.Info("PDF export disabled")
	case err != nil:
		logger.Error("Failed to launch headless browser, PDF export disabled", err)
	default:
		printer = p
		defer func() {
			if err := p.Close(); err != nil {
				logger.Error("Failed to close headless browser", err)
			}
		}()
	}

	// Initialize controllers
	dashboardController := controller.NewDashboardController(dashboardService)
	carController := controller.NewCarController(carService)
	customerController := controller.NewCustomerController(customerService, verificationService)
	portalController := controller.NewPortalController(verificationService)
	quotationController := controller.NewQuotationController(quotationService)
	receiptController := controller.NewReceiptController(receiptService)
	leadController := controller.NewLeadController(leadService)
	settingsController := controller.NewSettingsController(settingsService)
	documentController := controller.NewDocumentController(quotationService, receiptService, customerService, settingsService, renderer, printer)
	exportController := controller.NewExportController(carService, quotationService, receiptService)
	shopController := controller.NewShopController(shopService)
	liveController := controller.NewLiveController(hub, cfg.CORS.AllowedOrigins)

	// Setup router
	r := router.NewRouter(
		dashboardController,
		carController,
		customerController,
		portalController,
		quotationController,
		receiptController,
		leadController,
		settingsController,
		documentController,
		exportController,
		shopController,
		liveController,
		cfg,
	)
	engine := r.Setup()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	logger.Info("Server stopped successfully")
}

// importInventory adds the cars of an xlsx sheet on top of the seeded stock.
// A missing or unreadable file is logged and skipped.
func importInventory(s *store.Store, path string) {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("Inventory import file not readable", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}
	defer f.Close()

	cars, err := spreadsheet.ReadCars(f)
	if err != nil {
		logger.Warn("Failed to import inventory", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}
	for _, car := range cars {
		s.AddCar(car)
	}
	logger.Info("Inventory imported", map[string]interface{}{
		"path": path,
		"cars": len(cars),
	})
}

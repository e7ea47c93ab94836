package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Dealer    DealerConfig
	GenAI     GenAIConfig
	S3        S3Config
	Scheduler SchedulerConfig
	PDF       PDFConfig
	Inventory InventoryConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// DealerConfig identifies the showroom on documents, links and outbound messages
type DealerConfig struct {
	Name           string
	LegalName      string
	PortalBaseURL  string // verification links are built as <PortalBaseURL>/verify/<id>?token=<t>
	WhatsAppNumber string
	PhoneRegion    string // ISO region used to parse local phone numbers
	Currency       string
}

type GenAIConfig struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
}

// Enabled reports whether generative features may issue network calls
func (c GenAIConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
}

// Enabled reports whether verification document uploads can be presigned
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

type SchedulerConfig struct {
	LeadFollowUpSpec string
	StaleAfterDays   int
}

type PDFConfig struct {
	Enabled    bool
	BrowserBin string
}

type InventoryConfig struct {
	ImportFile string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Dealer: DealerConfig{
			Name:           getEnv("DEALER_NAME", "ETIMAD"),
			LegalName:      getEnv("DEALER_LEGAL_NAME", "Used Car Leasing L.L.C"),
			PortalBaseURL:  strings.TrimRight(getEnv("PORTAL_BASE_URL", "https://etimad.crm"), "/"),
			WhatsAppNumber: getEnv("DEALER_WHATSAPP", ""),
			PhoneRegion:    getEnv("DEALER_PHONE_REGION", "AE"),
			Currency:       getEnv("DEALER_CURRENCY", "AED"),
		},
		GenAI: GenAIConfig{
			APIKey:     getEnv("API_KEY", ""),
			BaseURL:    strings.TrimRight(getEnv("GENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"), "/"),
			TextModel:  getEnv("GENAI_TEXT_MODEL", "gemini-2.5-flash"),
			ImageModel: getEnv("GENAI_IMAGE_MODEL", "gemini-2.5-flash-image"),
			Timeout:    parseDuration(getEnv("GENAI_TIMEOUT", "30s"), 30*time.Second),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "me-central-1"),
			Bucket:          getEnv("AWS_S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			BaseURL:         getEnv("AWS_S3_BASE_URL", ""),
		},
		Scheduler: SchedulerConfig{
			LeadFollowUpSpec: getEnv("LEAD_FOLLOWUP_CRON", "0 9 * * *"),
			StaleAfterDays:   parseInt(getEnv("LEAD_STALE_AFTER_DAYS", "3"), 3),
		},
		PDF: PDFConfig{
			Enabled:    parseBool(getEnv("PDF_ENABLED", "false")),
			BrowserBin: getEnv("PDF_BROWSER_BIN", ""),
		},
		Inventory: InventoryConfig{
			ImportFile: getEnv("INVENTORY_IMPORT_FILE", ""),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %q, using %s", s, fallback)
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %q, using %d", s, fallback)
		return fallback
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func parseSlice(s string) []string {
	result := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

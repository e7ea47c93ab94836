package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
	"github.com/etimad/showroom-backend/internal/metrics"
	"github.com/etimad/showroom-backend/internal/websocket"
	"github.com/etimad/showroom-backend/pkg/finance"
	"github.com/etimad/showroom-backend/pkg/logger"
)

var (
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrInvalidQuotation   = errors.New("invalid quotation")
	ErrUnknownAddOn       = errors.New("unknown add-on")
	ErrQuotationCustomer  = errors.New("quotation customer not found")
	ErrManualNameRequired = errors.New("customer name is required for manual entry")
	ErrVehicleRequired    = errors.New("vehicle make, model and year are required")
	ErrPriceRequired      = errors.New("price must be zero or more")
)

// QuotationInput is the create form. An empty CustomerID or ManualCustomerID
// means the contact block is typed in by hand.
type QuotationInput struct {
	CustomerID    string   `json:"customer_id"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	CustomerEmail string   `json:"customer_email"`
	VehicleMake   string   `json:"vehicle_make" binding:"required"`
	VehicleModel  string   `json:"vehicle_model" binding:"required"`
	VehicleYear   int      `json:"vehicle_year" binding:"required,gt=0"`
	VIN           string   `json:"vin"`
	Price         *int64   `json:"price" binding:"required"`
	DownPayment   *int64   `json:"down_payment"`
	Tenure        *int     `json:"tenure"`
	AddOns        []string `json:"add_ons" binding:"omitempty,dive,addon"`
}

// PreviewInput carries only the figures needed for the live installment preview
type PreviewInput struct {
	Price       int64 `json:"price"`
	DownPayment int64 `json:"down_payment"`
	Tenure      *int  `json:"tenure"`
}

type QuotationService interface {
	ListQuotations() []model.Quotation
	GetQuotation(id string) (*model.Quotation, error)
	CreateQuotation(input QuotationInput) (*model.Quotation, error)
	Preview(input PreviewInput) finance.Breakdown
}

type quotationService struct {
	quotationRepo repository.QuotationRepository
	customerRepo  repository.CustomerRepository
	events        EventPublisher
}

func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	customerRepo repository.CustomerRepository,
	events EventPublisher,
) QuotationService {
	return &quotationService{
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		events:        publisherOrNop(events),
	}
}

func (s *quotationService) ListQuotations() []model.Quotation {
	return s.quotationRepo.FindAll()
}

// GetQuotation returns the stored snapshot. The monthly payment is never recomputed.
func (s *quotationService) GetQuotation(id string) (*model.Quotation, error) {
	q, err := s.quotationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *quotationService) Preview(input PreviewInput) finance.Breakdown {
	tenure := finance.DefaultTenure
	if input.Tenure != nil {
		tenure = *input.Tenure
	}
	return finance.Plan{Price: input.Price, DownPayment: input.DownPayment, Tenure: tenure}.Breakdown()
}

func (s *quotationService) CreateQuotation(input QuotationInput) (*model.Quotation, error) {
	q := model.Quotation{
		ID:           uuid.NewString(),
		VehicleMake:  strings.TrimSpace(input.VehicleMake),
		VehicleModel: strings.TrimSpace(input.VehicleModel),
		VehicleYear:  input.VehicleYear,
		VIN:          strings.TrimSpace(input.VIN),
		Date:         today(),
		Status:       model.QuotationStatusDraft,
	}

	if err := s.fillCustomer(&q, input); err != nil {
		logger.Warn("Quotation rejected", map[string]interface{}{
			"customer_id": input.CustomerID,
			"reason":      err.Error(),
		})
		return nil, err
	}

	if q.VehicleMake == "" || q.VehicleModel == "" || q.VehicleYear <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuotation, ErrVehicleRequired)
	}
	if input.Price == nil || *input.Price < 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuotation, ErrPriceRequired)
	}

	addOns, err := normalizeAddOns(input.AddOns)
	if err != nil {
		return nil, err
	}
	q.AddOns = addOns

	plan := finance.Plan{Price: *input.Price, Tenure: finance.DefaultTenure}
	if input.DownPayment != nil {
		plan.DownPayment = *input.DownPayment
	}
	if input.Tenure != nil {
		plan.Tenure = *input.Tenure
	}

	q.Price = plan.Price
	q.DownPayment = &plan.DownPayment
	q.Tenure = &plan.Tenure
	q.MonthlyPayment = plan.MonthlyPayment()

	s.quotationRepo.Create(q)
	metrics.QuotationsCreated.Inc()
	s.events.Publish(websocket.EventQuotationCreated, q.ID)

	logger.Info("Quotation created", map[string]interface{}{
		"quotation_id": q.ID,
		"reference":    q.Reference(),
		"customer_id":  q.CustomerID,
		"price":        q.Price,
		"tenure":       plan.Tenure,
		"monthly":      q.MonthlyPayment.StringFixed(2),
	})

	out := q.Clone()
	return &out, nil
}

// fillCustomer snapshots the contact block from an existing customer or the manual fields
func (s *quotationService) fillCustomer(q *model.Quotation, input QuotationInput) error {
	id := strings.TrimSpace(input.CustomerID)
	if id == "" || id == model.ManualCustomerID {
		name := strings.TrimSpace(input.CustomerName)
		if name == "" {
			return fmt.Errorf("%w: %w", ErrInvalidQuotation, ErrManualNameRequired)
		}
		q.CustomerID = model.ManualCustomerID
		q.CustomerName = name
		q.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
		q.CustomerEmail = strings.TrimSpace(input.CustomerEmail)
		return nil
	}

	c, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrInvalidQuotation, ErrQuotationCustomer)
		}
		return err
	}
	q.CustomerID = c.ID
	q.CustomerName = c.Name
	q.CustomerPhone = c.Phone
	q.CustomerEmail = c.Email
	return nil
}

// normalizeAddOns rejects anything outside the option list and drops repeats,
// keeping the first occurrence order.
func normalizeAddOns(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, a := range in {
		if !model.AddOn(a).Valid() {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidQuotation, ErrUnknownAddOn, a)
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out, nil
}

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
	"github.com/etimad/showroom-backend/pkg/logger"
)

var (
	ErrReceiptNotFound = errors.New("receipt not found")
	ErrInvalidReceipt  = errors.New("invalid receipt")
)

type CreateReceiptInput struct {
	QuotationID        *string             `json:"quotation_id"`
	CustomerName       string              `json:"customer_name" binding:"required"`
	VehicleDescription string              `json:"vehicle_description"`
	Amount             int64               `json:"amount" binding:"gte=0"`
	PaymentMethod      model.PaymentMethod `json:"payment_method" binding:"required,payment_method"`
}

type ReceiptService interface {
	ListReceipts() []model.Receipt
	GetReceipt(id string) (*model.Receipt, error)
	CreateReceipt(input CreateReceiptInput) (*model.Receipt, error)
}

type receiptService struct {
	receiptRepo repository.ReceiptRepository
	events      EventPublisher
}

func NewReceiptService(receiptRepo repository.ReceiptRepository, events EventPublisher) ReceiptService {
	return &receiptService{
		receiptRepo: receiptRepo,
		events:      publisherOrNop(events),
	}
}

func (s *receiptService) ListReceipts() []model.Receipt {
	return s.receiptRepo.FindAll()
}

func (s *receiptService) GetReceipt(id string) (*model.Receipt, error) {
	r, err := s.receiptRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, err
	}
	return r, nil
}

// CreateReceipt records a payment dated today. The quotation link is optional and not checked.
func (s *receiptService) CreateReceipt(input CreateReceiptInput) (*model.Receipt, error) {
	name := strings.TrimSpace(input.CustomerName)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidReceipt)
	case input.Amount < 0:
		return nil, fmt.Errorf("%w: amount must be zero or more", ErrInvalidReceipt)
	case !input.PaymentMethod.Valid():
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidReceipt, input.PaymentMethod)
	}

	r := model.Receipt{
		ID:                 uuid.NewString(),
		CustomerName:       name,
		VehicleDescription: strings.TrimSpace(input.VehicleDescription),
		Amount:             input.Amount,
		Date:               today(),
		PaymentMethod:      input.PaymentMethod,
	}
	if input.QuotationID != nil && strings.TrimSpace(*input.QuotationID) != "" {
		qid := strings.TrimSpace(*input.QuotationID)
		r.QuotationID = &qid
	}

	s.receiptRepo.Create(r)
	metrics.ReceiptsCreated.WithLabelValues(string(r.PaymentMethod)).Inc()
	s.events.Publish(websocket.EventReceiptCreated, r.ID)

	logger.Info("Receipt created", map[string]interface{}{
		"receipt_id": r.ID,
		"number":     r.Number(),
		"amount":     r.Amount,
	})
	out := r.Clone()
	return &out, nil
}

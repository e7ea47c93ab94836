package repository

import (
	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/store"
	"github.com/etimad/showroom-backend/pkg/logger"
)

type ReceiptRepository interface {
	Create(r model.Receipt)
	FindAll() []model.Receipt
	FindByID(id string) (*model.Receipt, error)
}

type receiptRepository struct {
	store *store.Store
}

func NewReceiptRepository(s *store.Store) ReceiptRepository {
	return &receiptRepository{store: s}
}

func (r *receiptRepository) Create(rc model.Receipt) {
	logger.Debug("Adding receipt to store", map[string]interface{}{
		"receipt_id": rc.ID,
		"amount":     rc.Amount,
		"method":     rc.PaymentMethod,
	})
	r.store.AddReceipt(rc)
}

func (r *receiptRepository) FindAll() []model.Receipt {
	return r.store.Receipts()
}

func (r *receiptRepository) FindByID(id string) (*model.Receipt, error) {
	rc, ok := r.store.FindReceipt(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &rc, nil
}

package repository

import (
	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/store"
	"github.com/etimad/showroom-backend/pkg/logger"
)

type QuotationRepository interface {
	Create(q model.Quotation)
	FindAll() []model.Quotation
	FindByID(id string) (*model.Quotation, error)
}

type quotationRepository struct {
	store *store.Store
}

func NewQuotationRepository(s *store.Store) QuotationRepository {
	return &quotationRepository{store: s}
}

func (r *quotationRepository) Create(q model.Quotation) {
	logger.Debug("Adding quotation to store", map[string]interface{}{
		"quotation_id": q.ID,
		"customer_id":  q.CustomerID,
		"price":        q.Price,
	})
	r.store.AddQuotation(q)
}

func (r *quotationRepository) FindAll() []model.Quotation {
	return r.store.Quotations()
}

func (r *quotationRepository) FindByID(id string) (*model.Quotation, error) {
	q, ok := r.store.FindQuotation(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &q, nil
}

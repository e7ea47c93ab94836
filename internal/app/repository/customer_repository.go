package repository

import (
	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/store"
	"github.com/etimad/showroom-backend/pkg/logger"
)

type CustomerRepository interface {
	Create(customer model.Customer)
	FindAll() []model.Customer
	FindByID(id string) (*model.Customer, error)
	SubmitDocuments(id string, details model.VerificationDetails) bool
	MarkVerified(id string) bool
}

type customerRepository struct {
	store *store.Store
}

func NewCustomerRepository(s *store.Store) CustomerRepository {
	return &customerRepository{store: s}
}

func (r *customerRepository) Create(customer model.Customer) {
	logger.Debug("Adding customer to store", map[string]interface{}{
		"customer_id": customer.ID,
		"name":        customer.Name,
	})
	r.store.AddCustomer(customer)
}

func (r *customerRepository) FindAll() []model.Customer {
	return r.store.Customers()
}

func (r *customerRepository) FindByID(id string) (*model.Customer, error) {
	c, ok := r.store.FindCustomer(id)
	if !ok {
		logger.Debug("Customer not found in store", map[string]interface{}{
			"customer_id": id,
		})
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *customerRepository) SubmitDocuments(id string, details model.VerificationDetails) bool {
	logger.Debug("Attaching verification details", map[string]interface{}{
		"customer_id":   id,
		"questionnaire": len(details.Questionnaire),
	})
	ok := r.store.SubmitDocuments(id, details)
	if !ok {
		logger.Debug("Verification details ignored for unknown customer", map[string]interface{}{
			"customer_id": id,
		})
	}
	return ok
}

func (r *customerRepository) MarkVerified(id string) bool {
	logger.Debug("Marking customer verified", map[string]interface{}{
		"customer_id": id,
	})
	ok := r.store.VerifyCustomer(id)
	if !ok {
		logger.Debug("Verify ignored for unknown customer", map[string]interface{}{
			"customer_id": id,
		})
	}
	return ok
}

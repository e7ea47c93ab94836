package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ttacon/libphonenumber"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
	"github.com/etimad/showroom-backend/internal/websocket"
	"github.com/etimad/showroom-backend/pkg/logger"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCustomer  = errors.New("customer name and email are required")
)

type CreateCustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type CustomerService interface {
	ListCustomers(search string) []model.Customer
	GetCustomer(id string) (*model.Customer, error)
	CreateCustomer(input CreateCustomerInput) (*model.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	events       EventPublisher
	region       string
}

func NewCustomerService(customerRepo repository.CustomerRepository, events EventPublisher, phoneRegion string) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		events:       publisherOrNop(events),
		region:       phoneRegion,
	}
}

// ListCustomers filters by case-insensitive name or raw phone substring
func (s *customerService) ListCustomers(search string) []model.Customer {
	all := s.customerRepo.FindAll()
	term := strings.TrimSpace(search)
	if term == "" {
		return all
	}

	lower := strings.ToLower(term)
	out := make([]model.Customer, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), lower) || strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out
}

func (s *customerService) GetCustomer(id string) (*model.Customer, error) {
	c, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *customerService) CreateCustomer(input CreateCustomerInput) (*model.Customer, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		logger.Warn("Customer creation rejected", map[string]interface{}{
			"has_name":  name != "",
			"has_email": email != "",
		})
		return nil, ErrInvalidCustomer
	}

	customer := model.Customer{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Phone:      NormalizePhone(input.Phone, s.region),
		Status:     model.CustomerStatusPending,
		Notes:      input.Notes,
		JoinedDate: today(),
	}
	s.customerRepo.Create(customer)
	s.events.Publish(websocket.EventCustomerCreated, customer.ID)

	logger.Info("Customer created", map[string]interface{}{
		"customer_id": customer.ID,
	})
	return &customer, nil
}

// NormalizePhone formats a number internationally when it parses for region.
// Anything unparseable is kept exactly as typed.
func NormalizePhone(raw, region string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	num, err := libphonenumber.Parse(trimmed, region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return raw
	}
	return libphonenumber.Format(num, libphonenumber.INTERNATIONAL)
}

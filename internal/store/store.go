// Package store is the process-wide in-memory state of the showroom.
//
// One Store is built by the composition root and shared by reference. Every
// collection is kept newest-first. Mutations are total: an unknown id leaves
// the collections untouched and is reported only through the boolean result.
// Reads hand out copies.
package store

import (
	"sync"

	"github.com/etimad/showroom-backend/internal/app/model"
)

// DefaultTerms is printed on every quotation until an admin edits it
const DefaultTerms = "All prices are in UAE Dirhams (AED).\n" +
	"This quotation is valid for 7 days from the date of issue.\n" +
	"Vehicle delivery is subject to clearance of full payment.\n" +
	"Registration and insurance fees are not included unless specified."

// Snapshot is the content a Store starts from
type Snapshot struct {
	Customers  []model.Customer
	Cars       []model.Car
	Leads      []model.Lead
	Quotations []model.Quotation
	Receipts   []model.Receipt
	Terms      string
}

type Store struct {
	mu sync.RWMutex

	customers  []model.Customer
	cars       []model.Car
	leads      []model.Lead
	quotations []model.Quotation
	receipts   []model.Receipt
	terms      string
}

// New builds a store from a snapshot. An empty Terms falls back to DefaultTerms.
func New(snap Snapshot) *Store {
	s := &Store{terms: snap.Terms}
	if s.terms == "" {
		s.terms = DefaultTerms
	}
	for _, c := range snap.Customers {
		s.customers = append(s.customers, c.Clone())
	}
	s.cars = append(s.cars, snap.Cars...)
	for _, l := range snap.Leads {
		s.leads = append(s.leads, l.Clone())
	}
	for _, q := range snap.Quotations {
		s.quotations = append(s.quotations, q.Clone())
	}
	for _, r := range snap.Receipts {
		s.receipts = append(s.receipts, r.Clone())
	}
	return s
}

// Empty is a store with no records and the default terms
func Empty() *Store {
	return New(Snapshot{})
}

func prepend[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}

// ==================== customers ====================

func (s *Store) AddCustomer(c model.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = prepend(s.customers, c.Clone())
}

// SubmitDocuments attaches details verbatim and moves the customer to Action Required
func (s *Store) SubmitDocuments(id string, details model.VerificationDetails) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].Status = model.CustomerStatusActionRequired
			s.customers[i].VerificationDetails = model.CloneDetails(details)
			return true
		}
	}
	return false
}

// VerifyCustomer marks the customer Verified whatever its current status
func (s *Store) VerifyCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].Status = model.CustomerStatusVerified
			return true
		}
	}
	return false
}

func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Customer, len(s.customers))
	for i, c := range s.customers {
		out[i] = c.Clone()
	}
	return out
}

func (s *Store) FindCustomer(id string) (model.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return model.Customer{}, false
}

// ==================== cars ====================

func (s *Store) AddCar(c model.Car) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars = prepend(s.cars, c)
}

func (s *Store) Cars() []model.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Car(nil), s.cars...)
}

func (s *Store) FindCar(id string) (model.Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cars {
		if c.ID == id {
			return c, true
		}
	}
	return model.Car{}, false
}

// ==================== leads ====================

// UpdateLead merges patch into the lead with the given id
func (s *Store) UpdateLead(id string, patch model.LeadPatch) (model.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i] = patch.Apply(s.leads[i])
			return s.leads[i].Clone(), true
		}
	}
	return model.Lead{}, false
}

func (s *Store) Leads() []model.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Lead, len(s.leads))
	for i, l := range s.leads {
		out[i] = l.Clone()
	}
	return out
}

func (s *Store) FindLead(id string) (model.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l.Clone(), true
		}
	}
	return model.Lead{}, false
}

// ==================== quotations ====================

func (s *Store) AddQuotation(q model.Quotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotations = prepend(s.quotations, q.Clone())
}

func (s *Store) Quotations() []model.Quotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Quotation, len(s.quotations))
	for i, q := range s.quotations {
		out[i] = q.Clone()
	}
	return out
}

func (s *Store) FindQuotation(id string) (model.Quotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quotations {
		if q.ID == id {
			return q.Clone(), true
		}
	}
	return model.Quotation{}, false
}

// ==================== receipts ====================

func (s *Store) AddReceipt(r model.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts = prepend(s.receipts, r.Clone())
}

func (s *Store) Receipts() []model.Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Receipt, len(s.receipts))
	for i, r := range s.receipts {
		out[i] = r.Clone()
	}
	return out
}

func (s *Store) FindReceipt(id string) (model.Receipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.receipts {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return model.Receipt{}, false
}

// ==================== terms ====================

func (s *Store) Terms() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.terms
}

func (s *Store) SetTerms(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms = text
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
	"github.com/etimad/showroom-backend/internal/metrics"
	"github.com/etimad/showroom-backend/internal/storage"
	"github.com/etimad/showroom-backend/internal/websocket"
	"github.com/etimad/showroom-backend/pkg/logger"
)

var (
	ErrVerificationNotStarted = errors.New("verification has not been started for this customer")
	ErrQuestionSetFrozen      = errors.New("questions cannot change after the link is generated")
	ErrEmptyQuestion          = errors.New("question text is required")
	ErrQuestionIndex          = errors.New("question index out of range")
	ErrInvalidPortalToken     = errors.New("verification token is not valid for this customer")
	ErrAnswerCountMismatch    = errors.New("every question needs exactly one answer")
	ErrIncompleteSubmission   = errors.New("id number and expiry date are required")
	ErrStorageNotConfigured   = errors.New("document storage is not configured")
)

const confirmationSubject = "Showroom Visit Confirmation"

// DocumentStorage presigns ID scan uploads
type DocumentStorage interface {
	PresignVerificationDocument(ctx context.Context, customerID, filename, contentType string, size int64) (*storage.PresignedURLResponse, error)
}

// PortalForm is what the customer sees when opening a verification link
type PortalForm struct {
	CustomerID   string   `json:"customer_id"`
	CustomerName string   `json:"customer_name"`
	Questions    []string `json:"questions"`
	UploadReady  bool     `json:"upload_ready"`
}

// MailDraft is the prefilled confirmation message for a verified customer
type MailDraft struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type VerificationService interface {
	StartVerification(customerID string) (*model.QuestionSet, error)
	QuestionSet(customerID string) (*model.QuestionSet, error)
	AddQuestion(customerID, text string) (*model.QuestionSet, error)
	RemoveQuestion(customerID string, index int) (*model.QuestionSet, error)
	GenerateLink(customerID string) (*model.VerificationLink, error)

	PortalForm(customerID, token string) (*PortalForm, error)
	SubmitPortal(customerID, token string, form model.PortalSubmission) (*model.Customer, error)
	DocumentUploadURL(ctx context.Context, customerID, token, filename, contentType string, size int64) (*storage.PresignedURLResponse, error)

	Review(customerID string) (*model.Customer, error)
	VerifyCustomer(customerID string) (*model.Customer, error)
	RejectReview(customerID string) (*model.Customer, error)
	ConfirmationMail(customerID string) (*MailDraft, error)
}

type verificationService struct {
	customerRepo repository.CustomerRepository
	storage      DocumentStorage
	events       EventPublisher
	portalBase   string
	dealerName   string

	mu   sync.Mutex
	sets map[string]*model.QuestionSet
}

// NewVerificationService wires the workflow. docs may be nil when uploads are disabled.
func NewVerificationService(
	customerRepo repository.CustomerRepository,
	docs DocumentStorage,
	events EventPublisher,
	portalBase string,
	dealerName string,
) VerificationService {
	return &verificationService{
		customerRepo: customerRepo,
		storage:      docs,
		events:       publisherOrNop(events),
		portalBase:   strings.TrimRight(portalBase, "/"),
		dealerName:   dealerName,
		sets:         make(map[string]*model.QuestionSet),
	}
}

func (s *verificationService) customer(id string) (*model.Customer, error) {
	c, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

// StartVerification opens a fresh question set seeded with the defaults,
// discarding any earlier set and link for the customer.
func (s *verificationService) StartVerification(customerID string) (*model.QuestionSet, error) {
	if _, err := s.customer(customerID); err != nil {
		return nil, err
	}

	set := &model.QuestionSet{
		CustomerID: customerID,
		Questions:  append([]string(nil), model.DefaultVerificationQuestions...),
	}

	s.mu.Lock()
	s.sets[customerID] = set
	s.mu.Unlock()

	logger.Debug("Verification question set opened", map[string]interface{}{
		"customer_id": customerID,
	})
	out := set.Clone()
	return &out, nil
}

func (s *verificationService) QuestionSet(customerID string) (*model.QuestionSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[customerID]
	if !ok {
		return nil, ErrVerificationNotStarted
	}
	out := set.Clone()
	return &out, nil
}

func (s *verificationService) AddQuestion(customerID, text string) (*model.QuestionSet, error) {
	q := strings.TrimSpace(text)
	if q == "" {
		return nil, ErrEmptyQuestion
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[customerID]
	if !ok {
		return nil, ErrVerificationNotStarted
	}
	if set.Frozen() {
		return nil, ErrQuestionSetFrozen
	}
	set.Questions = append(set.Questions, q)

	out := set.Clone()
	return &out, nil
}

func (s *verificationService) RemoveQuestion(customerID string, index int) (*model.QuestionSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[customerID]
	if !ok {
		return nil, ErrVerificationNotStarted
	}
	if set.Frozen() {
		return nil, ErrQuestionSetFrozen
	}
	if index < 0 || index >= len(set.Questions) {
		return nil, ErrQuestionIndex
	}
	set.Questions = append(set.Questions[:index:index], set.Questions[index+1:]...)

	out := set.Clone()
	return &out, nil
}

// GenerateLink freezes the question set and issues the invitation URL.
// A set that was never opened is started with the defaults first.
// Calling it again returns the link already issued.
func (s *verificationService) GenerateLink(customerID string) (*model.VerificationLink, error) {
	if _, err := s.customer(customerID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[customerID]
	if !ok {
		set = &model.QuestionSet{
			CustomerID: customerID,
			Questions:  append([]string(nil), model.DefaultVerificationQuestions...),
		}
		s.sets[customerID] = set
	}

	if set.Link == nil {
		token := uuid.NewString()[:8]
		set.Link = &model.VerificationLink{
			CustomerID: customerID,
			Token:      token,
			URL:        fmt.Sprintf("%s/verify/%s?token=%s", s.portalBase, customerID, token),
			Questions:  append([]string(nil), set.Questions...),
			CreatedAt:  time.Now().UTC(),
		}
		logger.Info("Verification link generated", map[string]interface{}{
			"customer_id": customerID,
			"questions":   len(set.Questions),
		})
	}

	link := set.Link.Clone()
	return &link, nil
}

// link returns a copy of the customer's issued link if token matches it
func (s *verificationService) link(customerID, token string) (*model.VerificationLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[customerID]
	if !ok || set.Link == nil {
		return nil, ErrVerificationNotStarted
	}
	if token == "" || token != set.Link.Token {
		return nil, ErrInvalidPortalToken
	}
	l := set.Link.Clone()
	return &l, nil
}

func (s *verificationService) PortalForm(customerID, token string) (*PortalForm, error) {
	link, err := s.link(customerID, token)
	if err != nil {
		return nil, err
	}
	c, err := s.customer(customerID)
	if err != nil {
		return nil, err
	}
	return &PortalForm{
		CustomerID:   customerID,
		CustomerName: c.Name,
		Questions:    link.Questions,
		UploadReady:  s.storage != nil,
	}, nil
}

// SubmitPortal pairs answers with the frozen questions by position and
// moves the customer to Action Required.
func (s *verificationService) SubmitPortal(customerID, token string, form model.PortalSubmission) (*model.Customer, error) {
	link, err := s.link(customerID, token)
	if err != nil {
		logger.Warn("Portal submission rejected", map[string]interface{}{
			"customer_id": customerID,
			"reason":      err.Error(),
		})
		return nil, err
	}

	if strings.TrimSpace(form.IDNumber) == "" || strings.TrimSpace(form.ExpiryDate) == "" {
		return nil, ErrIncompleteSubmission
	}
	if len(form.Answers) != len(link.Questions) {
		return nil, ErrAnswerCountMismatch
	}

	questionnaire := make([]model.QuestionnaireItem, len(link.Questions))
	for i, q := range link.Questions {
		questionnaire[i] = model.QuestionnaireItem{Question: q, Answer: form.Answers[i]}
	}

	docURL := strings.TrimSpace(form.DocumentURL)
	if docURL == "" {
		docURL = model.PlaceholderDocumentURL
	}

	details := model.VerificationDetails{
		IDNumber:      form.IDNumber,
		ExpiryDate:    form.ExpiryDate,
		DocumentURL:   docURL,
		Questionnaire: questionnaire,
	}
	if !s.customerRepo.SubmitDocuments(customerID, details) {
		return nil, ErrCustomerNotFound
	}

	metrics.VerificationTransitions.WithLabelValues(string(model.CustomerStatusActionRequired)).Inc()
	s.events.Publish(websocket.EventCustomerDocumentsSubmitted, customerID)
	logger.Info("Verification documents submitted", map[string]interface{}{
		"customer_id": customerID,
		"answers":     len(questionnaire),
	})

	return s.customer(customerID)
}

func (s *verificationService) DocumentUploadURL(ctx context.Context, customerID, token, filename, contentType string, size int64) (*storage.PresignedURLResponse, error) {
	if _, err := s.link(customerID, token); err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, ErrStorageNotConfigured
	}
	return s.storage.PresignVerificationDocument(ctx, customerID, filename, contentType, size)
}

func (s *verificationService) Review(customerID string) (*model.Customer, error) {
	return s.customer(customerID)
}

// VerifyCustomer approves from any state, Pending included
func (s *verificationService) VerifyCustomer(customerID string) (*model.Customer, error) {
	before, err := s.customer(customerID)
	if err != nil {
		return nil, err
	}
	if !s.customerRepo.MarkVerified(customerID) {
		return nil, ErrCustomerNotFound
	}

	if before.Status == model.CustomerStatusPending {
		logger.Warn("Customer verified without submitted documents", map[string]interface{}{
			"customer_id": customerID,
		})
	}
	metrics.VerificationTransitions.WithLabelValues(string(model.CustomerStatusVerified)).Inc()
	s.events.Publish(websocket.EventCustomerVerified, customerID)
	logger.Info("Customer verified", map[string]interface{}{
		"customer_id": customerID,
		"from":        before.Status,
	})

	return s.customer(customerID)
}

// RejectReview closes the review without changing anything. There is no rejected state.
func (s *verificationService) RejectReview(customerID string) (*model.Customer, error) {
	c, err := s.customer(customerID)
	if err != nil {
		return nil, err
	}
	logger.Info("Verification review dismissed", map[string]interface{}{
		"customer_id": customerID,
		"status":      c.Status,
	})
	return c, nil
}

func (s *verificationService) ConfirmationMail(customerID string) (*MailDraft, error) {
	c, err := s.customer(customerID)
	if err != nil {
		return nil, err
	}
	return &MailDraft{
		To:      fmt.Sprintf("%s <%s>", c.Name, c.Email),
		Subject: confirmationSubject,
		Body: fmt.Sprintf("Dear %s,\n\nThis is to confirm your verification with %s Showroom. "+
			"We are excited to do business with you.\n\nBest Regards,\nSales Team", c.Name, s.dealerName),
	}, nil
}

package model

import "time"

// DefaultVerificationQuestions seed every new question set
var DefaultVerificationQuestions = []string{
	"Are you a resident of UAE?",
	"Do you have a valid Emirates ID?",
}

// PlaceholderDocumentURL stands in for the ID scan when nothing was uploaded
const PlaceholderDocumentURL = "mock-doc-url"

// QuestionSet is the admin-edited question list for one customer's invitation.
// Once Link is set the questions are frozen.
type QuestionSet struct {
	CustomerID string            `json:"customer_id"`
	Questions  []string          `json:"questions"`
	Link       *VerificationLink `json:"link,omitempty"`
}

func (q QuestionSet) Frozen() bool {
	return q.Link != nil
}

func (q QuestionSet) Clone() QuestionSet {
	q.Questions = append([]string(nil), q.Questions...)
	if q.Link != nil {
		l := q.Link.Clone()
		q.Link = &l
	}
	return q
}

// VerificationLink is an issued invitation. The token never expires and may be reused.
type VerificationLink struct {
	CustomerID string    `json:"customer_id"`
	Token      string    `json:"token"`
	URL        string    `json:"url"`
	Questions  []string  `json:"questions"`
	CreatedAt  time.Time `json:"created_at"`
}

func (l VerificationLink) Clone() VerificationLink {
	l.Questions = append([]string(nil), l.Questions...)
	return l
}

// PortalSubmission is what the customer fills in on the verification page
type PortalSubmission struct {
	IDNumber    string   `json:"id_number" binding:"required"`
	ExpiryDate  string   `json:"expiry_date" binding:"required"`
	DocumentURL string   `json:"document_url"`
	Answers     []string `json:"answers"`
}

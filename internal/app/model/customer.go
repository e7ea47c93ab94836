package model

type CustomerStatus string // verification state of a customer profile

const (
	CustomerStatusPending        CustomerStatus = "Pending Verification" // created, nothing submitted
	CustomerStatusActionRequired CustomerStatus = "Action Required"      // documents submitted, awaiting review
	CustomerStatusVerified       CustomerStatus = "Verified"             // approved by an admin
)

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusPending, CustomerStatusActionRequired, CustomerStatusVerified:
		return true
	}
	return false
}

// QuestionnaireItem pairs one admin question with the customer's answer
type QuestionnaireItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// VerificationDetails is what the customer submits through the portal.
// It is attached once and only ever replaced by a full re-submission.
type VerificationDetails struct {
	IDNumber      string              `json:"id_number"`
	ExpiryDate    string              `json:"expiry_date"`
	DocumentURL   string              `json:"document_url,omitempty"`
	Questionnaire []QuestionnaireItem `json:"questionnaire,omitempty"`
}

func (d *VerificationDetails) clone() *VerificationDetails {
	if d == nil {
		return nil
	}
	cp := *d
	if d.Questionnaire != nil {
		cp.Questionnaire = append([]QuestionnaireItem(nil), d.Questionnaire...)
	}
	return &cp
}

type Customer struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Email               string               `json:"email"`
	Phone               string               `json:"phone"`
	Status              CustomerStatus       `json:"status"`
	Notes               string               `json:"notes"`
	JoinedDate          string               `json:"joined_date"` // YYYY-MM-DD
	VerificationDetails *VerificationDetails `json:"verification_details,omitempty"`
}

// Clone returns a deep copy so callers never share verification details with the store
func (c Customer) Clone() Customer {
	c.VerificationDetails = c.VerificationDetails.clone()
	return c
}

// CloneDetails deep-copies submitted details before they are stored
func CloneDetails(d VerificationDetails) *VerificationDetails {
	return d.clone()
}

package model

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "New"
	LeadStatusContacted   LeadStatus = "Contacted"
	LeadStatusNegotiation LeadStatus = "Negotiation"
	LeadStatusClosedWon   LeadStatus = "Closed Won"
	LeadStatusClosedLost  LeadStatus = "Closed Lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusNegotiation, LeadStatusClosedWon, LeadStatusClosedLost:
		return true
	}
	return false
}

// Open reports whether the lead still needs follow-up
func (s LeadStatus) Open() bool {
	return s == LeadStatusNew || s == LeadStatusContacted || s == LeadStatusNegotiation
}

type Lead struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Status         LeadStatus `json:"status"`
	InterestedInID *string    `json:"interested_in_id"` // car id, not checked for existence
	LastContact    string     `json:"last_contact"`     // YYYY-MM-DD
}

func (l Lead) Clone() Lead {
	if l.InterestedInID != nil {
		id := *l.InterestedInID
		l.InterestedInID = &id
	}
	return l
}

// LeadPatch carries the attributes to merge into an existing lead; nil fields are left alone.
// ClearInterest unsets InterestedInID since a nil pointer already means "unchanged".
type LeadPatch struct {
	Name           *string     `json:"name"`
	Email          *string     `json:"email"`
	Phone          *string     `json:"phone"`
	Status         *LeadStatus `json:"status"`
	InterestedInID *string     `json:"interested_in_id"`
	ClearInterest  bool        `json:"clear_interest"`
	LastContact    *string     `json:"last_contact"`
}

// Apply merges the patch into l and returns the result
func (p LeadPatch) Apply(l Lead) Lead {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.ClearInterest {
		l.InterestedInID = nil
	} else if p.InterestedInID != nil {
		id := *p.InterestedInID
		l.InterestedInID = &id
	}
	if p.LastContact != nil {
		l.LastContact = *p.LastContact
	}
	return l
}

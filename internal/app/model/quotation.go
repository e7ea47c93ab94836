package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

type QuotationStatus string

// Only Draft is assigned today; Sent and Accepted are reserved for a later workflow.
const (
	QuotationStatusDraft    QuotationStatus = "Draft"
	QuotationStatusSent     QuotationStatus = "Sent"
	QuotationStatusAccepted QuotationStatus = "Accepted"
)

// ManualCustomerID marks a quotation whose contact block was typed in by hand
const ManualCustomerID = "MANUAL"

// AddOn is a complimentary service that can be attached to a quotation
type AddOn string

const (
	AddOnFreeService       AddOn = "Free Service"
	AddOnChangeTyres       AddOn = "Change Tyres"
	AddOnRegistration      AddOn = "Registration"
	AddOnPolishing         AddOn = "Polishing"
	AddOnInteriorDeepClean AddOn = "Interior Deep Clean"
	AddOnExteriorClean     AddOn = "Exterior Clean"
)

// AddOnOptions is the closed option list in display order
var AddOnOptions = []AddOn{
	AddOnFreeService,
	AddOnChangeTyres,
	AddOnRegistration,
	AddOnPolishing,
	AddOnInteriorDeepClean,
	AddOnExteriorClean,
}

func (a AddOn) Valid() bool {
	for _, opt := range AddOnOptions {
		if a == opt {
			return true
		}
	}
	return false
}

// Quotation is a frozen offer. Contact, vehicle and payment terms are copied
// at creation and MonthlyPayment is stored, never recomputed.
type Quotation struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"` // customer id or ManualCustomerID
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	VehicleMake   string          `json:"vehicle_make"`
	VehicleModel  string          `json:"vehicle_model"`
	VehicleYear   int             `json:"vehicle_year"`
	VIN           string          `json:"vin,omitempty"`
	Price         int64           `json:"price"`
	Date          string          `json:"date"`
	Status        QuotationStatus `json:"status"`

	DownPayment    *int64          `json:"down_payment,omitempty"`
	Tenure         *int            `json:"tenure,omitempty"` // months
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`

	AddOns []string `json:"add_ons,omitempty"`
}

// Reference is the printed quotation number
func (q Quotation) Reference() string {
	return ShortReference(q.ID)
}

func (q Quotation) Clone() Quotation {
	if q.DownPayment != nil {
		v := *q.DownPayment
		q.DownPayment = &v
	}
	if q.Tenure != nil {
		v := *q.Tenure
		q.Tenure = &v
	}
	if q.AddOns != nil {
		q.AddOns = append([]string(nil), q.AddOns...)
	}
	return q
}

// ShortReference upper-cases the first eight characters of an id
func ShortReference(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

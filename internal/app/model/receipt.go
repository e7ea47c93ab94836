package model

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodCheque       PaymentMethod = "Cheque"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodCheque,
	PaymentMethodBankTransfer,
}

func (m PaymentMethod) Valid() bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// Receipt records a payment. QuotationID is an optional weak link.
type Receipt struct {
	ID                 string        `json:"id"`
	QuotationID        *string       `json:"quotation_id,omitempty"`
	CustomerName       string        `json:"customer_name"`
	VehicleDescription string        `json:"vehicle_description"`
	Amount             int64         `json:"amount"`
	Date               string        `json:"date"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
}

func (r Receipt) Number() string {
	return ShortReference(r.ID)
}

func (r Receipt) Clone() Receipt {
	if r.QuotationID != nil {
		id := *r.QuotationID
		r.QuotationID = &id
	}
	return r
}

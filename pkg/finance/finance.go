// Package finance holds the installment math behind quotations.
//
// Amounts are whole currency units. The down payment is deliberately not
// clamped to [0, Price]: a negative down payment raises the balance and an
// over-payment simply drives the balance to zero.
package finance

import "github.com/shopspring/decimal"

// DefaultTenure is the financing period offered when none is given
const DefaultTenure = 12

// Plan is a price with an optional down payment spread over Tenure months.
// A zero or negative tenure means no financing.
type Plan struct {
	Price       int64
	DownPayment int64
	Tenure      int
}

// Balance is max(0, Price-DownPayment)
func (p Plan) Balance() int64 {
	if b := p.Price - p.DownPayment; b > 0 {
		return b
	}
	return 0
}

// MonthlyPayment is Balance/Tenure, or zero without financing
func (p Plan) MonthlyPayment() decimal.Decimal {
	if p.Tenure <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(p.Balance()).Div(decimal.NewFromInt(int64(p.Tenure)))
}

// RoundedInstallment is the monthly payment as printed: rounded half away from zero
func (p Plan) RoundedInstallment() int64 {
	return Round(p.MonthlyPayment())
}

// Round converts a stored monthly payment to whole units for display
func Round(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// Breakdown is the computed view of a plan
type Breakdown struct {
	Price              int64           `json:"price"`
	DownPayment        int64           `json:"down_payment"`
	Tenure             int             `json:"tenure"`
	Balance            int64           `json:"balance"`
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
	RoundedInstallment int64           `json:"rounded_installment"`
}

func (p Plan) Breakdown() Breakdown {
	monthly := p.MonthlyPayment()
	return Breakdown{
		Price:              p.Price,
		DownPayment:        p.DownPayment,
		Tenure:             p.Tenure,
		Balance:            p.Balance(),
		MonthlyPayment:     monthly,
		RoundedInstallment: Round(monthly),
	}
}

// Package render turns quotations and receipts into printable HTML documents.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/pkg/finance"
)

//go:embed templates/*.html
var templateFS embed.FS

// ValidityNotice is printed under the quotation date
const ValidityNotice = "7 Days"

// Dealer is the identity block printed on every document
type Dealer struct {
	Name      string
	LegalName string
	Currency  string
}

type Renderer struct {
	tmpl    *template.Template
	dealer  Dealer
	printer *message.Printer
}

func New(dealer Dealer) (*Renderer, error) {
	r := &Renderer{
		dealer:  dealer,
		printer: message.NewPrinter(language.English),
	}

	tmpl, err := template.New("documents").Funcs(template.FuncMap{
		"money": r.Money,
		"upper": strings.ToUpper,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse document templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Money formats whole currency units with grouping, e.g. "AED 310,000"
func (r *Renderer) Money(amount int64) string {
	return r.printer.Sprintf("%s %d", r.dealer.Currency, amount)
}

type page struct {
	Dealer    Dealer
	PrintOnly bool
	Title     string
}

type quotationPage struct {
	page
	Reference     string
	Date          string
	Validity      string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Vehicle       string
	VehicleYear   int
	VIN           string
	Price         int64
	DownPayment   int64
	Balance       int64
	Installment   int64
	Tenure        int
	AddOns        []string
	TermsLines    []string
}

type receiptPage struct {
	page
	Number             string
	Date               string
	CustomerName       string
	PaymentMethod      string
	VehicleDescription string
	Amount             int64
	QuotationReference string
}

// Quotation renders q with the current global terms. live is the customer the
// quotation points to, when it still exists; its phone and email fill blanks
// in the snapshot.
func (r *Renderer) Quotation(w io.Writer, q model.Quotation, live *model.Customer, terms string, printOnly bool) error {
	p := quotationPage{
		page:          page{Dealer: r.dealer, PrintOnly: printOnly, Title: "Quotation " + q.Reference()},
		Reference:     q.Reference(),
		Date:          q.Date,
		Validity:      ValidityNotice,
		CustomerName:  q.CustomerName,
		CustomerPhone: q.CustomerPhone,
		CustomerEmail: q.CustomerEmail,
		Vehicle:       strings.TrimSpace(q.VehicleMake + " " + q.VehicleModel),
		VehicleYear:   q.VehicleYear,
		VIN:           q.VIN,
		Price:         q.Price,
		Installment:   finance.Round(q.MonthlyPayment),
		AddOns:        q.AddOns,
		TermsLines:    TermsLines(terms),
	}
	if q.DownPayment != nil {
		p.DownPayment = *q.DownPayment
	}
	if q.Tenure != nil {
		p.Tenure = *q.Tenure
	}
	p.Balance = finance.Plan{Price: q.Price, DownPayment: p.DownPayment}.Balance()

	if live != nil {
		if p.CustomerPhone == "" {
			p.CustomerPhone = live.Phone
		}
		if p.CustomerEmail == "" {
			p.CustomerEmail = live.Email
		}
	}

	return r.execute(w, "quotation.html", p)
}

func (r *Renderer) Receipt(w io.Writer, rc model.Receipt, printOnly bool) error {
	p := receiptPage{
		page:               page{Dealer: r.dealer, PrintOnly: printOnly, Title: "Receipt " + rc.Number()},
		Number:             rc.Number(),
		Date:               rc.Date,
		CustomerName:       rc.CustomerName,
		PaymentMethod:      string(rc.PaymentMethod),
		VehicleDescription: rc.VehicleDescription,
		Amount:             rc.Amount,
	}
	if rc.QuotationID != nil {
		p.QuotationReference = model.ShortReference(*rc.QuotationID)
	}
	return r.execute(w, "receipt.html", p)
}

// execute renders into a buffer first so a template error never leaves a half-written response
func (r *Renderer) execute(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// TermsLines splits the terms text into printed lines, dropping blank ones
func TermsLines(terms string) []string {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(terms, "\r\n", "\n"), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

package model

import "fmt"

type CarStatus string

const (
	CarStatusAvailable CarStatus = "Available"
	CarStatusReserved  CarStatus = "Reserved"
	CarStatusSold      CarStatus = "Sold"
)

func (s CarStatus) Valid() bool {
	switch s {
	case CarStatusAvailable, CarStatusReserved, CarStatusSold:
		return true
	}
	return false
}

// Car is one vehicle in the showroom inventory
type Car struct {
	ID          string    `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Mileage     int       `json:"mileage"`
	Price       int64     `json:"price"` // whole currency units
	Status      CarStatus `json:"status"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"` // remote URL or data URI
	VIN         string    `json:"vin,omitempty"`
}

// Title is the "<year> <make> <model>" label used in leads, links and receipts
func (c Car) Title() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
}

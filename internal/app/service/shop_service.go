package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ttacon/libphonenumber"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
)

// AllMakes is the storefront filter value that disables make filtering
const AllMakes = "All"

type ShopService interface {
	Cars(search, carMake string) []model.Car
	Makes() []string
	WhatsAppLink(carID string) (string, error)
}

type shopService struct {
	carRepo    repository.CarRepository
	dealerName string
	waNumber   string
}

func NewShopService(carRepo repository.CarRepository, dealerName, whatsAppNumber, phoneRegion string) ShopService {
	return &shopService{
		carRepo:    carRepo,
		dealerName: dealerName,
		waNumber:   whatsAppDigits(whatsAppNumber, phoneRegion),
	}
}

// Cars applies the text search and the exact make filter together
func (s *shopService) Cars(search, carMake string) []model.Car {
	carMake = strings.TrimSpace(carMake)
	var out []model.Car
	for _, c := range s.carRepo.FindAll() {
		if !MatchCar(c, search) {
			continue
		}
		if carMake != "" && carMake != AllMakes && c.Make != carMake {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Makes lists AllMakes followed by each distinct make in inventory order
func (s *shopService) Makes() []string {
	makes := []string{AllMakes}
	seen := make(map[string]bool)
	for _, c := range s.carRepo.FindAll() {
		if seen[c.Make] {
			continue
		}
		seen[c.Make] = true
		makes = append(makes, c.Make)
	}
	return makes
}

func (s *shopService) WhatsAppLink(carID string) (string, error) {
	c, err := s.carRepo.FindByID(carID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrCarNotFound
		}
		return "", err
	}
	msg := fmt.Sprintf("Hi %s, I am interested in the %s.", s.dealerName, c.Title())
	text := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.waNumber, text), nil
}

// whatsAppDigits reduces a configured number to the digits wa.me expects
func whatsAppDigits(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if num, err := libphonenumber.Parse(raw, region); err == nil {
		return strings.TrimPrefix(libphonenumber.Format(num, libphonenumber.E164), "+")
	}
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

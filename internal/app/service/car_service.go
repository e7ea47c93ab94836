package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/app/repository"
	"github.com/etimad/showroom-backend/internal/websocket"
	"github.com/etimad/showroom-backend/pkg/logger"
)

var (
	ErrCarNotFound = errors.New("car not found")
	ErrInvalidCar  = errors.New("car make and model are required")
)

const defaultCondition = "Excellent"

type CreateCarInput struct {
	Make        string          `json:"make" binding:"required"`
	Model       string          `json:"model" binding:"required"`
	Year        int             `json:"year"`
	Mileage     int             `json:"mileage" binding:"gte=0"`
	Price       int64           `json:"price" binding:"gte=0"`
	Status      model.CarStatus `json:"status"`
	Condition   string          `json:"condition"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	VIN         string          `json:"vin"`
}

// DescriptionRequest asks for listing copy. Key identifies the form being edited
// so a slow earlier answer cannot replace a newer one.
type DescriptionRequest struct {
	Key      string `json:"key"`
	Make     string `json:"make" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Year     int    `json:"year"`
	Features string `json:"features"`
}

type CarService interface {
	ListCars(search string) []model.Car
	GetCar(id string) (*model.Car, error)
	CreateCar(input CreateCarInput) (*model.Car, error)
	GenerateDescription(ctx context.Context, req DescriptionRequest) model.GenerationDraft
	DescriptionDraft(key string) (model.GenerationDraft, bool)
	GenerateImage(ctx context.Context, prompt string) *string
}

type carService struct {
	carRepo repository.CarRepository
	ai      AIService
	drafts  *GenerationTracker
	events  EventPublisher
}

func NewCarService(carRepo repository.CarRepository, ai AIService, drafts *GenerationTracker, events EventPublisher) CarService {
	return &carService{
		carRepo: carRepo,
		ai:      ai,
		drafts:  drafts,
		events:  publisherOrNop(events),
	}
}

// MatchCar reports whether make or model contains term, ignoring case
func MatchCar(c model.Car, term string) bool {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Make), t) || strings.Contains(strings.ToLower(c.Model), t)
}

func (s *carService) ListCars(search string) []model.Car {
	all := s.carRepo.FindAll()
	out := make([]model.Car, 0, len(all))
	for _, c := range all {
		if MatchCar(c, search) {
			out = append(out, c)
		}
	}
	return out
}

func (s *carService) GetCar(id string) (*model.Car, error) {
	c, err := s.carRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *carService) CreateCar(input CreateCarInput) (*model.Car, error) {
	car := model.Car{
		ID:          uuid.NewString(),
		Make:        strings.TrimSpace(input.Make),
		Model:       strings.TrimSpace(input.Model),
		Year:        input.Year,
		Mileage:     input.Mileage,
		Price:       input.Price,
		Status:      input.Status,
		Condition:   strings.TrimSpace(input.Condition),
		Description: input.Description,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		VIN:         strings.TrimSpace(input.VIN),
	}
	if car.Make == "" || car.Model == "" {
		logger.Warn("Car creation rejected", map[string]interface{}{
			"make":  input.Make,
			"model": input.Model,
		})
		return nil, ErrInvalidCar
	}

	if car.Status == "" {
		car.Status = model.CarStatusAvailable
	}
	if !car.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidCar, car.Status)
	}
	if car.Condition == "" {
		car.Condition = defaultCondition
	}
	if car.ImageURL == "" {
		car.ImageURL = PlaceholderImageURL(time.Now())
	}

	s.carRepo.Create(car)
	s.events.Publish(websocket.EventCarCreated, car.ID)

	logger.Info("Car added to inventory", map[string]interface{}{
		"car_id": car.ID,
		"title":  car.Title(),
		"price":  car.Price,
	})
	return &car, nil
}

// PlaceholderImageURL is the stock photo used when a listing has no image
func PlaceholderImageURL(at time.Time) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/800/600", at.UnixMilli())
}

func (s *carService) GenerateDescription(ctx context.Context, req DescriptionRequest) model.GenerationDraft {
	key := req.Key
	if key == "" {
		key = "new"
	}
	key = "car:" + key

	seq := s.drafts.Begin(key)
	text := s.ai.GenerateText(ctx, model.PromptCarDescription, model.PromptArgs{
		Make:     req.Make,
		Model:    req.Model,
		Year:     req.Year,
		Features: req.Features,
	})

	if !s.drafts.Complete(key, seq, text) {
		logger.Debug("Discarded stale description", map[string]interface{}{
			"key":      key,
			"sequence": seq,
		})
	}
	return model.GenerationDraft{Key: key, Sequence: seq, Text: text}
}

func (s *carService) DescriptionDraft(key string) (model.GenerationDraft, bool) {
	if key == "" {
		key = "new"
	}
	return s.drafts.Draft("car:" + key)
}

func (s *carService) GenerateImage(ctx context.Context, prompt string) *string {
	return s.ai.GenerateImage(ctx, prompt)
}

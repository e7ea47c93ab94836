package repository

import (
	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/store"
	"github.com/etimad/showroom-backend/pkg/logger"
)

type CarRepository interface {
	Create(car model.Car)
	FindAll() []model.Car
	FindByID(id string) (*model.Car, error)
}

type carRepository struct {
	store *store.Store
}

func NewCarRepository(s *store.Store) CarRepository {
	return &carRepository{store: s}
}

func (r *carRepository) Create(car model.Car) {
	logger.Debug("Adding car to store", map[string]interface{}{
		"car_id": car.ID,
		"make":   car.Make,
		"model":  car.Model,
	})
	r.store.AddCar(car)
}

func (r *carRepository) FindAll() []model.Car {
	return r.store.Cars()
}

func (r *carRepository) FindByID(id string) (*model.Car, error) {
	c, ok := r.store.FindCar(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

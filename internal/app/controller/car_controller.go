package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/service"
	apperrors "github.com/etimad/showroom-backend/internal/errors"
	"github.com/etimad/showroom-backend/internal/middleware"
)

type CarController struct {
	carService service.CarService
}

func NewCarController(carService service.CarService) *CarController {
	return &CarController{
		carService: carService,
	}
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// ListCars returns the inventory, optionally filtered by make or model
// GET /api/v1/cars?search=
func (ctrl *CarController) ListCars(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	search := c.Query("search")
	cars := ctrl.carService.ListCars(search)

	log.Info("Cars fetched successfully", map[string]interface{}{
		"count":  len(cars),
		"search": search,
	})

	c.JSON(http.StatusOK, gin.H{
		"cars":  cars,
		"count": len(cars),
	})
}

// GetCar returns one listing
// GET /api/v1/cars/:id
func (ctrl *CarController) GetCar(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	car, err := ctrl.carService.GetCar(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			log.Warn("Car not found", map[string]interface{}{
				"car_id": c.Param("id"),
			})
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Car not found")
			return
		}
		log.Error("Failed to fetch car", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"car": car,
	})
}

// CreateCar adds a listing to the inventory
// POST /api/v1/cars
func (ctrl *CarController) CreateCar(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.CreateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Invalid car request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	car, err := ctrl.carService.CreateCar(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCar) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
			return
		}
		log.Error("Failed to create car", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Car created successfully", map[string]interface{}{
		"car_id": car.ID,
		"title":  car.Title(),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Car added to inventory",
		"car":     car,
	})
}

// GenerateDescription drafts listing copy for the add-car form
// POST /api/v1/cars/description
func (ctrl *CarController) GenerateDescription(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	draft := ctrl.carService.GenerateDescription(c.Request.Context(), req)

	log.Info("Description generated", map[string]interface{}{
		"key":      draft.Key,
		"sequence": draft.Sequence,
	})

	c.JSON(http.StatusOK, gin.H{
		"draft": draft,
	})
}

// GetDescriptionDraft returns the newest applied description for a form key
// GET /api/v1/cars/description/draft?key=
func (ctrl *CarController) GetDescriptionDraft(c *gin.Context) {
	draft, ok := ctrl.carService.DescriptionDraft(c.Query("key"))
	if !ok {
		apperrors.NotFound(c, apperrors.ResourceNotFound, "No description has been requested for this form")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft": draft,
	})
}

// GenerateImage asks for a listing photo. A null image means none could be produced.
// POST /api/v1/cars/image
func (ctrl *CarController) GenerateImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFields(err))
		return
	}

	image := ctrl.carService.GenerateImage(c.Request.Context(), req.Prompt)

	log.Info("Image generation finished", map[string]interface{}{
		"generated": image != nil,
	})

	c.JSON(http.StatusOK, gin.H{
		"image_url": image,
	})
}

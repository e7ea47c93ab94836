package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etimad/showroom-backend/internal/app/service"
	apperrors "github.com/etimad/showroom-backend/internal/errors"
	"github.com/etimad/showroom-backend/internal/middleware"
)

// ShopController is the public storefront. It reads the same inventory as the back office.
type ShopController struct {
	shopService service.ShopService
}

func NewShopController(shopService service.ShopService) *ShopController {
	return &ShopController{
		shopService: shopService,
	}
}

// ListCars GET /shop/cars?search=&make=
func (ctrl *ShopController) ListCars(c *gin.Context) {
	cars := ctrl.shopService.Cars(c.Query("search"), c.DefaultQuery("make", service.AllMakes))

	c.JSON(http.StatusOK, gin.H{
		"cars":  cars,
		"count": len(cars),
	})
}

// ListMakes GET /shop/makes
func (ctrl *ShopController) ListMakes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"makes": ctrl.shopService.Makes(),
	})
}

// WhatsAppLink GET /shop/cars/:id/whatsapp
func (ctrl *ShopController) WhatsAppLink(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	link, err := ctrl.shopService.WhatsAppLink(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Car not found")
			return
		}
		log.Error("Failed to build WhatsApp link", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": link,
	})
}

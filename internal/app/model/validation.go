package model

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the closed-set rules used in request binding tags:
// `addon` for quotation add-ons and `payment_method` for receipts.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("addon", func(fl validator.FieldLevel) bool {
			return AddOn(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
			return PaymentMethod(fl.Field().String()).Valid()
		})
	})
}

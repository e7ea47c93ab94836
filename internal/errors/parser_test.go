package errors

import (
	stderrors "errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type bindingTarget struct {
	CustomerName string `validate:"required"`
	Email        string `validate:"required,email"`
	Amount       int64  `validate:"gte=0"`
}

func TestBindingFields_Validation(t *testing.T) {
	err := validator.New().Struct(bindingTarget{Email: "not-an-email", Amount: -5})

	fields := BindingFields(err)

	assert.Equal(t, "is required", fields["customer_name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be at least 0", fields["amount"])
}

func TestBindingFields_Other(t *testing.T) {
	fields := BindingFields(stderrors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"body": "malformed request body"}, fields)
	assert.Empty(t, BindingFields(nil))
}

func TestJSONName(t *testing.T) {
	assert.Equal(t, "id_number", jsonName("IDNumber"))
	assert.Equal(t, "vehicle_make", jsonName("VehicleMake"))
	assert.Equal(t, "vin", jsonName("VIN"))
}

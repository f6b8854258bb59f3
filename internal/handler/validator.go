package handler

import (
	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errValidatorEngine = errs.New("gin binding validator is not go-playground/validator")

// RegisterValidators installs the enum validators used by request DTO binding tags.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errValidatorEngine
	}
	rules := map[string]validator.Func{
		"space_category": func(fl validator.FieldLevel) bool {
			return space.Category(fl.Field().String()).IsValid()
		},
		"time_unit": func(fl validator.FieldLevel) bool {
			return space.TimeUnit(fl.Field().String()).IsValid()
		},
		"booking_state": func(fl validator.FieldLevel) bool {
			return booking.Status(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrap(err, "register validator "+tag)
		}
	}
	return nil
}

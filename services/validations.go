package services

import (
	"sync"

	"github.com/elitk/elfitness/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once

// InitValidator registers the custom binding validations on gin's
// validator engine. Call once at startup.
func InitValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("mealtype", func(fl validator.FieldLevel) bool {
			return models.MealType(fl.Field().String()).Valid()
		})
	})
}

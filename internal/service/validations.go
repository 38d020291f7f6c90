package service

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Schedules must lie in the future; the containers trust their
		// inputs, so the check lives here on the caller side.
		validate.RegisterValidation("future", func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)
			if !ok {
				return false
			}
			return t.After(time.Now())
		})
	})
}

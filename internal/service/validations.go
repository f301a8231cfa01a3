package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// Shared validator for the services' request structs
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
	})
}

package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/eschool/internal/app/models/dto"
)

// RegisterValidators makes gin's binding validator report fields by their JSON names.
// Call it once before the router starts serving.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(dto.JSONFieldName)
	}
}

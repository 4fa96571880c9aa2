package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/coursemap/internal/app/models/dto"
	"github.com/yigit/coursemap/internal/pkg/histograms"
)

// RegisterValidators adds the custom tags used by request DTOs to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "uri"} {
			if name, _, _ := strings.Cut(fld.Tag.Get(tag), ","); name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v.RegisterValidation("segment", func(fl validator.FieldLevel) bool {
		return histograms.ValidSegment(fl.Field().String())
	})
}

// ValidationErrorDetail converts a binding error into an error detail
func ValidationErrorDetail(err error) *dto.ErrorDetail {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(errs[0])).
			WithField(errs[0].Field())
	}
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
}

// AbortWithValidationError responds 400 with the first validation failure
func AbortWithValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(ValidationErrorDetail(err)))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "segment":
		return e.Field() + " may only contain letters, digits, '_' and '-'"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

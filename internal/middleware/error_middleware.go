package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemap/internal/app/models/dto"
	"github.com/yigit/coursemap/internal/pkg/apperrors"
	"github.com/yigit/coursemap/internal/pkg/logger"
)

// HandleAPIError maps err to a status code and an error envelope
func HandleAPIError(c *gin.Context, err error) {
	var detail *dto.ErrorDetail
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	case apperrors.IsFatal(err):
		detail = dto.NewErrorDetail(dto.ErrorCodeCatalogError, "Course catalog is not available")
	default:
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("requestId", GetRequestID(c)).
			Msg("Request failed")
		if gin.Mode() != gin.ReleaseMode {
			detail.WithDebugInfo("%v", err)
		}
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

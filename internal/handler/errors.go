package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/dormlife/notice-service/internal/apperr"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errNoToken    = errors.New("there is no token")
	errInvalidJWT = errors.New("invalid jwt")
)

// respondError is the single place that maps application errors to HTTP
// responses. Anything unrecognized is logged and surfaced as a generic 500
// so internal detail never leaks to the client.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Notice not found"})
	case errors.Is(err, apperr.ErrNotAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
	case errors.Is(err, errNoToken), errors.Is(err, errInvalidJWT):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Notice store unavailable"})
	default:
		if vErr, ok := apperr.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": vErr.Fields})
			return
		}
		var fldErrs validator.ValidationErrors
		if errors.As(err, &fldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": fieldViolations(fldErrs)})
			return
		}

		h.logger.Sugar().Errorf("unhandled error on %s %s: %s", c.Request.Method, c.Request.URL.Path, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondBindError maps request-body binding failures to 400. Validator
// errors become structured field violations; malformed JSON gets a flat
// message.
func (h *Handler) respondBindError(c *gin.Context, err error) {
	var fldErrs validator.ValidationErrors
	if errors.As(err, &fldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": fieldViolations(fldErrs)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

func fieldViolations(fldErrs validator.ValidationErrors) []apperr.FieldError {
	violations := make([]apperr.FieldError, 0, len(fldErrs))
	for _, fErr := range fldErrs {
		violations = append(violations, apperr.FieldError{
			Field:   fErr.Field(),
			Message: violationMessage(fErr),
		})
	}
	return violations
}

func violationMessage(fErr validator.FieldError) string {
	switch fErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "max":
		return "must be at most " + fErr.Param() + " characters"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fErr.Param(), " ", ", ")
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

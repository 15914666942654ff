package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/japb1998/atelier/internal/service"
)

// Error Message for Validation Errors
type ErrMsg struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required"
	case "email":
		return "should be a valid email"
	case "lte":
		return "Should be less than " + fe.Param()
	case "gte":
		return "Should be greater than " + fe.Param()
	case "min":
		return "should have min value of " + fe.Param()
	}

	return "Unknown error"
}

// abortWithBindingError answers 400 with one message per invalid field, or
// 400 with the decoder message when the body could not be read at all.
func abortWithBindingError(c *gin.Context, err error) {
	var ve validator.ValidationErrors

	if errors.As(err, &ve) {
		out := make([]ErrMsg, len(ve))

		for i, fe := range ve {
			out[i] = ErrMsg{
				Message: getErrorMsg(fe),
				Field:   fe.Field(),
			}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"errors": out,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": "invalid request body",
	})
}

// abortWithServiceError maps service errors to a status and a message meant for display.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClientNotFound), errors.Is(err, service.ErrInvoiceNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMissingEmail):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDeliveryFailed):
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": service.ErrDeliveryFailed.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

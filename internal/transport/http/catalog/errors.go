package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// httpStatus translates domain sentinel errors into HTTP status codes.
// Unknown errors become 500.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrAbstractProductNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrSkuAlreadyExists):
		return http.StatusConflict

	case errors.Is(err, domain.ErrEmptySku),
		errors.Is(err, domain.ErrSkuTooLong),
		errors.Is(err, domain.ErrMissingAbstractReference),
		errors.Is(err, domain.ErrEmptyLocale),
		errors.Is(err, domain.ErrDuplicateLocaleAttributes),
		errors.Is(err, domain.ErrUnknownLocale),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrZeroPrice),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidPriceDenominator),
		errors.Is(err, domain.ErrEmptyURL):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := httpStatus(err)
	body := gin.H{"error": err.Error()}
	if status == http.StatusInternalServerError {
		// Internal details stay out of responses; the request logger has the
		// full error.
		body = gin.H{"error": "internal error"}
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, body)
}

func respondBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

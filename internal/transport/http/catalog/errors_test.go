package catalog

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

func TestHttpStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrAbstractProductNotFound, http.StatusNotFound},
		{domain.ErrSkuAlreadyExists, http.StatusConflict},
		{domain.ErrEmptySku, http.StatusBadRequest},
		{domain.ErrSkuTooLong, http.StatusBadRequest},
		{domain.ErrUnknownLocale, http.StatusBadRequest},
		{domain.ErrZeroPrice, http.StatusBadRequest},
		{domain.ErrInvalidCurrency, http.StatusBadRequest},
		{context.Canceled, http.StatusGatewayTimeout},
		{fmt.Errorf("spanner exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, httpStatus(tc.err), "error: %v", tc.err)
	}
}

func TestHttpStatus_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("create product: %w", domain.ErrSkuAlreadyExists)
	assert.Equal(t, http.StatusConflict, httpStatus(wrapped))
}

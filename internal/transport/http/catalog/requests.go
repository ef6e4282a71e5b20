package catalog

import (
	"errors"

	"github.com/velmir/catalog-core/internal/app/catalog/usecases/create_product"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/create_product_abstract"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/save_product"
	shared "github.com/velmir/catalog-core/internal/app/catalog/usecases/shared"
)

var errMissingSkuParam = errors.New("sku query parameter is required")

type localizedPayload struct {
	LocaleID   string         `json:"locale_id" binding:"required"`
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes"`
}

type pricePayload struct {
	Numerator   int64  `json:"numerator" binding:"required"`
	Denominator int64  `json:"denominator" binding:"required"`
	Currency    string `json:"currency"`
}

type createProductRequest struct {
	Sku        string             `json:"sku" binding:"required"`
	AbstractID string             `json:"abstract_id" binding:"required"`
	Attributes map[string]any     `json:"attributes"`
	IsActive   bool               `json:"is_active"`
	Localized  []localizedPayload `json:"localized_attributes"`
	Price      *pricePayload      `json:"price"`
}

func (r createProductRequest) toApp() create_product.Request {
	return create_product.Request{
		Sku:        r.Sku,
		AbstractID: r.AbstractID,
		Attributes: r.Attributes,
		IsActive:   r.IsActive,
		Localized:  toLocalizedInputs(r.Localized),
		Price:      toPriceInput(r.Price),
	}
}

type saveProductRequest struct {
	Sku        string             `json:"sku" binding:"required"`
	AbstractID string             `json:"abstract_id" binding:"required"`
	Attributes map[string]any     `json:"attributes"`
	IsActive   bool               `json:"is_active"`
	Localized  []localizedPayload `json:"localized_attributes"`
	Price      *pricePayload      `json:"price"`
}

func (r saveProductRequest) toApp(productID string) save_product.Request {
	return save_product.Request{
		ProductID:  productID,
		Sku:        r.Sku,
		AbstractID: r.AbstractID,
		Attributes: r.Attributes,
		IsActive:   r.IsActive,
		Localized:  toLocalizedInputs(r.Localized),
		Price:      toPriceInput(r.Price),
	}
}

type createAbstractRequest struct {
	Sku       string             `json:"sku" binding:"required"`
	Localized []localizedPayload `json:"localized_attributes"`
}

func (r createAbstractRequest) toApp() create_product_abstract.Request {
	return create_product_abstract.Request{
		Sku:       r.Sku,
		Localized: toLocalizedInputs(r.Localized),
	}
}

func toLocalizedInputs(payload []localizedPayload) []shared.LocalizedInput {
	inputs := make([]shared.LocalizedInput, 0, len(payload))
	for _, entry := range payload {
		inputs = append(inputs, shared.LocalizedInput{
			LocaleID:   entry.LocaleID,
			Name:       entry.Name,
			Attributes: entry.Attributes,
		})
	}
	return inputs
}

func toPriceInput(payload *pricePayload) *shared.PriceInput {
	if payload == nil {
		return nil
	}
	return &shared.PriceInput{
		Numerator:   payload.Numerator,
		Denominator: payload.Denominator,
		Currency:    payload.Currency,
	}
}

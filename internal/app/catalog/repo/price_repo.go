package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/models/m_price"
)

// PriceRepo builds upsert mutations for the single price row of a product.
type PriceRepo struct{}

func NewPriceRepo() *PriceRepo {
	return &PriceRepo{}
}

func (r *PriceRepo) SaveMut(productID string, price *domain.Price, now time.Time) *spanner.Mutation {
	if price == nil {
		return nil
	}
	amount := price.Amount()
	return m_price.SaveMutation(productID, amount.Numerator(), amount.Denominator(), price.Currency(), now.UTC())
}

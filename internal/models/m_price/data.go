package m_price

import (
	"time"

	"cloud.google.com/go/spanner"
)

// SaveMutation builds an InsertOrUpdate for a product's single price row.
// The product id is the primary key, so re-saving the same payload is
// idempotent.
func SaveMutation(productID string, numerator, denominator int64, currency string, updatedAt time.Time) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName,
		[]string{ColProductID, ColPriceNumerator, ColPriceDenominator, ColCurrency, ColUpdatedAt},
		[]interface{}{productID, numerator, denominator, currency, updatedAt},
	)
}

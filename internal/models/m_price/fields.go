package m_price

// Field constants for the product_prices table.
const (
	TableName = "product_prices"

	ColProductID        = "product_id"
	ColPriceNumerator   = "price_numerator"
	ColPriceDenominator = "price_denominator"
	ColCurrency         = "currency"
	ColUpdatedAt        = "updated_at"
)

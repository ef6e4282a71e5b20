package domain

import "strings"

// DefaultCurrency is used when a price candidate carries no currency.
const DefaultCurrency = "EUR"

// Price is the single price record of a concrete product.
// It is owned by the price collaborator and keyed by the product id.
type Price struct {
	amount   *Money
	currency string
}

// NewPrice creates a validated Price. An empty currency falls back to
// DefaultCurrency.
func NewPrice(amount *Money, currency string) (*Price, error) {
	if amount == nil || amount.IsZero() {
		return nil, ErrZeroPrice
	}
	if amount.IsNegative() {
		return nil, ErrNegativePrice
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	return &Price{amount: amount, currency: currency}, nil
}

func (p *Price) Amount() *Money {
	return p.amount
}

func (p *Price) Currency() string {
	return p.currency
}

package shared

import (
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

// LocalizedInput is the localized attributes payload carried by write
// requests.
type LocalizedInput struct {
	LocaleID   string
	Name       string
	Attributes map[string]any
}

// PriceInput is the optional price payload carried by write requests.
// The amount is an exact rational: Numerator/Denominator.
type PriceInput struct {
	Numerator   int64
	Denominator int64
	Currency    string
}

// ToLocalizedAttributes converts and validates localized inputs against the
// configured locales.
func ToLocalizedAttributes(inputs []LocalizedInput, locales *locale.Registry) ([]domain.LocalizedAttributes, error) {
	entries := make([]domain.LocalizedAttributes, 0, len(inputs))
	for _, in := range inputs {
		if !locales.Has(in.LocaleID) {
			return nil, domain.ErrUnknownLocale
		}
		entries = append(entries, domain.LocalizedAttributes{
			LocaleID:   in.LocaleID,
			Name:       in.Name,
			Attributes: in.Attributes,
		})
	}
	if err := domain.ValidateLocalizedAttributes(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ToPrice converts an optional price input into a domain Price.
// Returns (nil, nil) when the input is absent.
func ToPrice(in *PriceInput) (*domain.Price, error) {
	if in == nil {
		return nil, nil
	}
	if in.Denominator == 0 {
		return nil, domain.ErrInvalidPriceDenominator
	}
	return domain.NewPrice(domain.NewMoney(in.Numerator, in.Denominator), in.Currency)
}

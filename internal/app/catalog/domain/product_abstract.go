package domain

import (
	"strings"
	"time"
)

// ProductAbstract is the catalog-level grouping of one or more concrete
// products. It owns the localized names the URL generator derives slugs from.
type ProductAbstract struct {
	id        string
	sku       string
	localized []LocalizedAttributes
	createdAt time.Time
	updatedAt time.Time
}

// NewProductAbstract creates a new abstract product.
func NewProductAbstract(id, sku string, localized []LocalizedAttributes, now time.Time) (*ProductAbstract, error) {
	sku = strings.TrimSpace(sku)
	if err := validateSku(sku); err != nil {
		return nil, err
	}
	if err := ValidateLocalizedAttributes(localized); err != nil {
		return nil, err
	}

	return &ProductAbstract{
		id:        id,
		sku:       sku,
		localized: localized,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructProductAbstract rebuilds an abstract product from persisted state.
func ReconstructProductAbstract(id, sku string, localized []LocalizedAttributes, createdAt, updatedAt time.Time) *ProductAbstract {
	return &ProductAbstract{
		id:        id,
		sku:       sku,
		localized: localized,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *ProductAbstract) ID() string {
	return a.id
}

func (a *ProductAbstract) Sku() string {
	return a.sku
}

func (a *ProductAbstract) LocalizedAttributes() []LocalizedAttributes {
	return a.localized
}

func (a *ProductAbstract) CreatedAt() time.Time {
	return a.createdAt
}

func (a *ProductAbstract) UpdatedAt() time.Time {
	return a.updatedAt
}

// LocalizedName returns the name for the given locale, falling back to the
// abstract sku when the locale has no entry.
func (a *ProductAbstract) LocalizedName(localeID string) string {
	for _, entry := range a.localized {
		if entry.LocaleID == localeID && entry.Name != "" {
			return entry.Name
		}
	}
	return a.sku
}

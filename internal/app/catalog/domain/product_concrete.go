package domain

import (
	"strings"
	"time"
)

// Field constants for change tracking
const (
	FieldSku               = "sku"
	FieldFkProductAbstract = "fk_product_abstract"
	FieldAttributes        = "attributes"
	FieldIsActive          = "is_active"
)

const maxSkuLength = 128

// ProductConcrete is the sellable SKU variant of an abstract product and the
// aggregate root of the save workflow. The id is assigned on first persist
// and the product is never physically deleted; deactivation is modeled via
// the active flag.
type ProductConcrete struct {
	id                string
	sku               string
	fkProductAbstract string
	attributes        map[string]any
	isActive          bool
	localized         []LocalizedAttributes
	price             *Price
	createdAt         time.Time
	updatedAt         time.Time
	changes           *ChangeTracker
}

// NewProductConcrete creates a new concrete product for the create path.
func NewProductConcrete(id, sku, abstractID string, attributes map[string]any, isActive bool, now time.Time) (*ProductConcrete, error) {
	sku = strings.TrimSpace(sku)
	if err := validateSku(sku); err != nil {
		return nil, err
	}
	if strings.TrimSpace(abstractID) == "" {
		return nil, ErrMissingAbstractReference
	}
	if attributes == nil {
		attributes = map[string]any{}
	}

	return &ProductConcrete{
		id:                id,
		sku:               sku,
		fkProductAbstract: abstractID,
		attributes:        attributes,
		isActive:          isActive,
		createdAt:         now,
		updatedAt:         now,
		changes:           NewChangeTracker(),
	}, nil
}

// ReconstructProductConcrete rebuilds a concrete product from persisted state.
// Used by the update path after loading via the read model.
func ReconstructProductConcrete(id, sku, abstractID string, attributes map[string]any, isActive bool, createdAt, updatedAt time.Time) *ProductConcrete {
	if attributes == nil {
		attributes = map[string]any{}
	}
	return &ProductConcrete{
		id:                id,
		sku:               sku,
		fkProductAbstract: abstractID,
		attributes:        attributes,
		isActive:          isActive,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		changes:           NewChangeTracker(),
	}
}

// Getters

func (p *ProductConcrete) ID() string {
	return p.id
}

func (p *ProductConcrete) Sku() string {
	return p.sku
}

func (p *ProductConcrete) AbstractID() string {
	return p.fkProductAbstract
}

func (p *ProductConcrete) Attributes() map[string]any {
	return p.attributes
}

func (p *ProductConcrete) IsActive() bool {
	return p.isActive
}

func (p *ProductConcrete) LocalizedAttributes() []LocalizedAttributes {
	return p.localized
}

func (p *ProductConcrete) Price() *Price {
	return p.price
}

func (p *ProductConcrete) CreatedAt() time.Time {
	return p.createdAt
}

func (p *ProductConcrete) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *ProductConcrete) Changes() *ChangeTracker {
	return p.changes
}

// Business methods

// ChangeSku replaces the sku. The caller must have asserted uniqueness of
// the new value against other products beforehand.
func (p *ProductConcrete) ChangeSku(sku string, now time.Time) error {
	sku = strings.TrimSpace(sku)
	if err := validateSku(sku); err != nil {
		return err
	}
	if sku == p.sku {
		return nil
	}
	p.sku = sku
	p.changes.MarkDirty(FieldSku)
	p.updatedAt = now
	return nil
}

// ReparentTo moves the product under a different abstract product.
func (p *ProductConcrete) ReparentTo(abstractID string, now time.Time) error {
	if strings.TrimSpace(abstractID) == "" {
		return ErrMissingAbstractReference
	}
	if abstractID == p.fkProductAbstract {
		return nil
	}
	p.fkProductAbstract = abstractID
	p.changes.MarkDirty(FieldFkProductAbstract)
	p.updatedAt = now
	return nil
}

// ReplaceAttributes overwrites the full attribute map.
func (p *ProductConcrete) ReplaceAttributes(attributes map[string]any, now time.Time) {
	if attributes == nil {
		attributes = map[string]any{}
	}
	p.attributes = attributes
	p.changes.MarkDirty(FieldAttributes)
	p.updatedAt = now
}

// SetActive switches the active flag.
func (p *ProductConcrete) SetActive(active bool, now time.Time) {
	if p.isActive == active {
		return
	}
	p.isActive = active
	p.changes.MarkDirty(FieldIsActive)
	p.updatedAt = now
}

// SetLocalizedAttributes attaches the per-locale attribute entries carried
// by the candidate. At most one entry per locale is allowed.
func (p *ProductConcrete) SetLocalizedAttributes(entries []LocalizedAttributes) error {
	if err := ValidateLocalizedAttributes(entries); err != nil {
		return err
	}
	p.localized = entries
	return nil
}

// AttachPrice attaches the candidate price. The product id is stamped onto
// the price record at persistence time, once the id is known.
func (p *ProductConcrete) AttachPrice(price *Price) {
	p.price = price
}

func validateSku(sku string) error {
	if sku == "" {
		return ErrEmptySku
	}
	if len(sku) > maxSkuLength {
		return ErrSkuTooLong
	}
	return nil
}

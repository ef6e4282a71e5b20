package dto

// LocalizedAttributesDTO is the per-locale view of a product's attributes.
type LocalizedAttributesDTO struct {
	LocaleID   string
	Name       string
	Attributes map[string]any
}

// PriceDTO mirrors the stored price row (exact rational amount).
type PriceDTO struct {
	Numerator   int64
	Denominator int64
	Currency    string
}

// ProductDTO contains the fully assembled concrete product returned by
// read queries: row, localized attributes, and price (nil when absent).
// Timestamps use *string (RFC3339) to mirror how they come from Spanner.
type ProductDTO struct {
	ProductID  string
	Sku        string
	AbstractID string
	Attributes map[string]any
	IsActive   bool
	CreatedAt  *string
	UpdatedAt  *string

	Localized []LocalizedAttributesDTO
	Price     *PriceDTO
}

// ProductAbstractDTO is the read view of an abstract product.
type ProductAbstractDTO struct {
	AbstractID string
	Sku        string
	CreatedAt  *string
	UpdatedAt  *string

	Localized []LocalizedAttributesDTO
}

// URLDTO mirrors one stored URL row.
type URLDTO struct {
	UrlID        string
	URL          string
	LocaleID     string
	ResourceType string
	ResourceID   string
}

// LocalizedURLDTO is one locale/url pair of the localized URL view.
// URL is empty when the locale has no record yet.
type LocalizedURLDTO struct {
	LocaleID string
	URL      string
}

// ProductURLDTO is the localized URL view of an abstract product, one entry
// per configured locale.
type ProductURLDTO struct {
	AbstractID  string
	AbstractSku string
	URLs        []LocalizedURLDTO
}

package domain

// ResourceTypeProductAbstract is the resource type stored on URL records
// owned by the product URL workflow.
const ResourceTypeProductAbstract = "product_abstract"

// ProductURL is the canonical URL record of an abstract product for one
// locale. Lifecycle (absent, active, deleted) is driven by touch events.
type ProductURL struct {
	IDUrl        string
	URL          string
	LocaleID     string
	ResourceType string
	ResourceID   string
}

// LocalizedURL is one locale/url pair produced by the URL generator or
// assembled by the read side. URL is empty when the locale has no record.
type LocalizedURL struct {
	LocaleID string
	URL      string
}

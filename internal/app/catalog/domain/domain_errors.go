package domain

import "errors"

// Errors for the concrete product aggregate
var (
	// ErrProductNotFound indicates that a concrete product with the given id or sku does not exist.
	ErrProductNotFound = errors.New("concrete product not found")

	// ErrAbstractProductNotFound indicates that the referenced abstract product does not exist.
	ErrAbstractProductNotFound = errors.New("abstract product not found")

	// ErrSkuAlreadyExists indicates that the sku is already used by a different product.
	ErrSkuAlreadyExists = errors.New("sku is already in use by another product")

	// ErrEmptySku indicates an attempt to create or update a product with an empty sku.
	ErrEmptySku = errors.New("sku cannot be empty")

	// ErrSkuTooLong indicates the sku exceeds the maximum length.
	ErrSkuTooLong = errors.New("sku exceeds maximum length of 128 characters")

	// ErrMissingAbstractReference indicates a concrete product without an abstract product reference.
	ErrMissingAbstractReference = errors.New("concrete product requires an abstract product reference")
)

// Errors for localized attributes
var (
	// ErrEmptyLocale indicates localized attributes without a locale.
	ErrEmptyLocale = errors.New("localized attributes require a locale")

	// ErrDuplicateLocaleAttributes indicates more than one localized attributes entry for the same locale.
	ErrDuplicateLocaleAttributes = errors.New("localized attributes defined more than once for the same locale")

	// ErrUnknownLocale indicates a locale id that is not configured for this store.
	ErrUnknownLocale = errors.New("unknown locale")
)

// Errors for the Price value object
var (
	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrZeroPrice indicates an attempt to set a zero price.
	ErrZeroPrice = errors.New("price cannot be zero")

	// ErrInvalidCurrency indicates a currency code that is not three letters.
	ErrInvalidCurrency = errors.New("currency must be a three-letter code")

	// ErrInvalidPriceDenominator indicates a price payload with a zero denominator.
	ErrInvalidPriceDenominator = errors.New("price denominator must be non-zero")
)

// Errors for URL records
var (
	// ErrEmptyURL indicates a URL record without a url string.
	ErrEmptyURL = errors.New("url cannot be empty")
)

package shared

import (
	"context"

	"github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// Assertion helpers of the save workflows. Each is a read-then-decide check
// against the read model, failing fast with a named error before any
// mutation is assembled. The database-level unique index on sku remains the
// actual uniqueness guarantee under concurrent writers; these checks exist
// for a precise error before a commit is even attempted.

// AssertSkuUnique fails when any concrete product already uses the sku.
func AssertSkuUnique(ctx context.Context, rm contracts.ReadModel, sku string) error {
	id, err := rm.FindProductIDBySku(ctx, sku)
	if err != nil {
		return err
	}
	if id != "" {
		return domain.ErrSkuAlreadyExists
	}
	return nil
}

// AssertSkuUniqueForUpdate fails when a product other than productID uses
// the sku. The product's own row keeping its sku is fine.
func AssertSkuUniqueForUpdate(ctx context.Context, rm contracts.ReadModel, sku, productID string) error {
	id, err := rm.FindProductIDBySku(ctx, sku)
	if err != nil {
		return err
	}
	if id != "" && id != productID {
		return domain.ErrSkuAlreadyExists
	}
	return nil
}

// AssertAbstractExists fails with ErrAbstractProductNotFound when the
// referenced abstract product is missing.
func AssertAbstractExists(ctx context.Context, rm contracts.ReadModel, abstractID string) error {
	_, err := rm.GetAbstract(ctx, abstractID)
	return err
}

// AssertAbstractSkuUnique fails when any abstract product already uses the sku.
func AssertAbstractSkuUnique(ctx context.Context, rm contracts.ReadModel, sku string) error {
	id, err := rm.FindAbstractIDBySku(ctx, sku)
	if err != nil {
		return err
	}
	if id != "" {
		return domain.ErrSkuAlreadyExists
	}
	return nil
}

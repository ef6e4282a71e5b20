package contracts

import (
	"context"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// ProductSaveHook is a post-commit callback of the save workflow. Hooks are
// registered explicitly at interactor construction and invoked in order
// after a successful commit, each receiving and returning the aggregate.
// Hook failures are logged, never propagated: the commit already happened.
type ProductSaveHook interface {
	AfterSave(ctx context.Context, product *domain.ProductConcrete) (*domain.ProductConcrete, error)
}

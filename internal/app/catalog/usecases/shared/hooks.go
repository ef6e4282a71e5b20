package shared

import (
	"context"

	charmlog "github.com/charmbracelet/log"

	"github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// RunSaveHooks invokes the registered post-commit hooks in order. The
// transaction is already committed when this runs, so a failing hook is
// logged and skipped rather than surfaced to the caller.
func RunSaveHooks(ctx context.Context, log *charmlog.Logger, hooks []contracts.ProductSaveHook, product *domain.ProductConcrete) *domain.ProductConcrete {
	for _, hook := range hooks {
		next, err := hook.AfterSave(ctx, product)
		if err != nil {
			if log != nil {
				log.Error("post-commit hook failed", "product_id", product.ID(), "err", err)
			}
			continue
		}
		if next != nil {
			product = next
		}
	}
	return product
}

package save_product

import (
	"context"

	charmlog "github.com/charmbracelet/log"

	contracts "github.com/velmir/catalog-core/internal/app/catalog/contracts"
	shared "github.com/velmir/catalog-core/internal/app/catalog/usecases/shared"
	"github.com/velmir/catalog-core/internal/pkg/clock"
	commitplan "github.com/velmir/catalog-core/internal/pkg/committer"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

// Request is the full updated state of an existing concrete product.
// Localized attributes and price replace the stored set; they are upserted
// per locale, not diffed.
type Request struct {
	ProductID  string
	Sku        string
	AbstractID string
	Attributes map[string]any
	IsActive   bool
	Localized  []shared.LocalizedInput
	Price      *shared.PriceInput
}

// Interactor implements the concrete product update workflow.
type Interactor struct {
	ProductRepo   contracts.ProductRepo
	LocalizedRepo contracts.LocalizedAttributesRepo
	PriceRepo     contracts.PriceRepo
	Committer     contracts.Committer
	ReadModel     contracts.ReadModel
	Locales       *locale.Registry
	Clock         clock.Clock
	Log           *charmlog.Logger

	Extensions []contracts.ProductExtension
	Hooks      []contracts.ProductSaveHook
}

// NewInteractor constructs the interactor. Extensions and hooks may be nil.
func NewInteractor(
	productRepo contracts.ProductRepo,
	localizedRepo contracts.LocalizedAttributesRepo,
	priceRepo contracts.PriceRepo,
	committer contracts.Committer,
	readModel contracts.ReadModel,
	locales *locale.Registry,
	clk clock.Clock,
	log *charmlog.Logger,
	extensions []contracts.ProductExtension,
	hooks []contracts.ProductSaveHook,
) *Interactor {
	return &Interactor{
		ProductRepo:   productRepo,
		LocalizedRepo: localizedRepo,
		PriceRepo:     priceRepo,
		Committer:     committer,
		ReadModel:     readModel,
		Locales:       locales,
		Clock:         clk,
		Log:           log,
		Extensions:    extensions,
		Hooks:         hooks,
	}
}

// Execute overwrites the stored product state with the request and returns
// the product id. The product must already exist; the sku may change as
// long as the new value is not taken by another product.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	stored, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return "", err
	}
	if err := shared.AssertAbstractExists(ctx, it.ReadModel, req.AbstractID); err != nil {
		return "", err
	}
	if err := shared.AssertSkuUniqueForUpdate(ctx, it.ReadModel, req.Sku, req.ProductID); err != nil {
		return "", err
	}

	product := shared.ReconstructProduct(stored)
	if err := product.ChangeSku(req.Sku, now); err != nil {
		return "", err
	}
	if err := product.ReparentTo(req.AbstractID, now); err != nil {
		return "", err
	}
	product.ReplaceAttributes(req.Attributes, now)
	product.SetActive(req.IsActive, now)

	localized, err := shared.ToLocalizedAttributes(req.Localized, it.Locales)
	if err != nil {
		return "", err
	}
	if err := product.SetLocalizedAttributes(localized); err != nil {
		return "", err
	}

	price, err := shared.ToPrice(req.Price)
	if err != nil {
		return "", err
	}
	product.AttachPrice(price)

	plan := commitplan.NewPlan()

	// Nil when nothing on the row itself changed; localized attributes and
	// price still get upserted below.
	updateMut, err := it.ProductRepo.UpdateMut(product)
	if err != nil {
		return "", err
	}
	plan.Add(updateMut)

	locMuts, err := it.LocalizedRepo.ProductMuts(product.ID(), product.LocalizedAttributes(), now)
	if err != nil {
		return "", err
	}
	plan.AddAll(locMuts)

	plan.Add(it.PriceRepo.SaveMut(product.ID(), product.Price(), now))

	for _, ext := range it.Extensions {
		extMuts, err := ext.Muts(product)
		if err != nil {
			return "", err
		}
		plan.AddAll(extMuts)
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", shared.TranslateProductCommitError(err)
	}

	shared.RunSaveHooks(ctx, it.Log, it.Hooks, product)

	return product.ID(), nil
}

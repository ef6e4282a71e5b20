package create_product

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	contracts "github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	shared "github.com/velmir/catalog-core/internal/app/catalog/usecases/shared"
	"github.com/velmir/catalog-core/internal/pkg/clock"
	commitplan "github.com/velmir/catalog-core/internal/pkg/committer"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

// Request is the application-level create-product candidate.
type Request struct {
	Sku        string
	AbstractID string
	Attributes map[string]any
	IsActive   bool
	Localized  []shared.LocalizedInput
	Price      *shared.PriceInput
}

// Interactor implements the concrete product create workflow: validate
// uniqueness and the abstract reference, then commit the product row,
// localized attributes, price, and extension writes in one transaction.
type Interactor struct {
	ProductRepo   contracts.ProductRepo
	LocalizedRepo contracts.LocalizedAttributesRepo
	PriceRepo     contracts.PriceRepo
	Committer     contracts.Committer
	ReadModel     contracts.ReadModel
	Locales       *locale.Registry
	Clock         clock.Clock
	Log           *charmlog.Logger

	// Optional strategies, registered at construction.
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

// Execute creates a new concrete product and returns its assigned id.
// On any failure the whole transaction rolls back; no partial write becomes
// visible.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	// 1. Preconditions, before any write
	if err := shared.AssertAbstractExists(ctx, it.ReadModel, req.AbstractID); err != nil {
		return "", err
	}
	if err := shared.AssertSkuUnique(ctx, it.ReadModel, req.Sku); err != nil {
		return "", err
	}

	// 2. Build the aggregate; the id is assigned here, on first persist
	id := uuid.New().String()
	product, err := domain.NewProductConcrete(id, req.Sku, req.AbstractID, req.Attributes, req.IsActive, now)
	if err != nil {
		return "", err
	}

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

	// 3. Assemble the mutation plan
	plan := commitplan.NewPlan()

	insertMut, err := it.ProductRepo.InsertMut(product)
	if err != nil {
		return "", err
	}
	plan.Add(insertMut)

	locMuts, err := it.LocalizedRepo.ProductMuts(product.ID(), product.LocalizedAttributes(), now)
	if err != nil {
		return "", err
	}
	plan.AddAll(locMuts)

	// Price payload gets the now-known product id stamped on it.
	plan.Add(it.PriceRepo.SaveMut(product.ID(), product.Price(), now))

	for _, ext := range it.Extensions {
		extMuts, err := ext.Muts(product)
		if err != nil {
			return "", err
		}
		plan.AddAll(extMuts)
	}

	// 4. One transaction for the whole fan-out
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", shared.TranslateProductCommitError(err)
	}

	// 5. Post-commit callbacks, best-effort
	shared.RunSaveHooks(ctx, it.Log, it.Hooks, product)

	return product.ID(), nil
}

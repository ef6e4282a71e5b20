package create_product_abstract

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

// Request is the create-abstract-product candidate.
type Request struct {
	Sku       string
	Localized []shared.LocalizedInput
}

// Interactor creates the abstract product a family of concrete products
// hangs off. It persists the abstract row, its localized attributes, and a
// pending touch-active signal in one transaction.
type Interactor struct {
	AbstractRepo  contracts.ProductAbstractRepo
	LocalizedRepo contracts.LocalizedAttributesRepo
	TouchRepo     contracts.TouchRepo
	Committer     contracts.Committer
	ReadModel     contracts.ReadModel
	Locales       *locale.Registry
	Clock         clock.Clock
	Log           *charmlog.Logger
}

func NewInteractor(
	abstractRepo contracts.ProductAbstractRepo,
	localizedRepo contracts.LocalizedAttributesRepo,
	touchRepo contracts.TouchRepo,
	committer contracts.Committer,
	readModel contracts.ReadModel,
	locales *locale.Registry,
	clk clock.Clock,
	log *charmlog.Logger,
) *Interactor {
	return &Interactor{
		AbstractRepo:  abstractRepo,
		LocalizedRepo: localizedRepo,
		TouchRepo:     touchRepo,
		Committer:     committer,
		ReadModel:     readModel,
		Locales:       locales,
		Clock:         clk,
		Log:           log,
	}
}

// Execute creates a new abstract product and returns its assigned id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	if err := shared.AssertAbstractSkuUnique(ctx, it.ReadModel, req.Sku); err != nil {
		return "", err
	}

	localized, err := shared.ToLocalizedAttributes(req.Localized, it.Locales)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	abstract, err := domain.NewProductAbstract(id, req.Sku, localized, now)
	if err != nil {
		return "", err
	}

	plan := commitplan.NewPlan()

	plan.Add(it.AbstractRepo.InsertMut(abstract))

	locMuts, err := it.LocalizedRepo.AbstractMuts(abstract.ID(), abstract.LocalizedAttributes(), now)
	if err != nil {
		return "", err
	}
	plan.AddAll(locMuts)

	plan.Add(it.TouchRepo.InsertMut(shared.NewAbstractTouch(abstract.ID(), contracts.TouchEventActive, now)))

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", shared.TranslateProductCommitError(err)
	}

	return abstract.ID(), nil
}

package update_product_url

import (
	"context"

	charmlog "github.com/charmbracelet/log"

	contracts "github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	shared "github.com/velmir/catalog-core/internal/app/catalog/usecases/shared"
	"github.com/velmir/catalog-core/internal/pkg/clock"
	commitplan "github.com/velmir/catalog-core/internal/pkg/committer"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

// Request identifies the abstract product whose URLs get regenerated.
type Request struct {
	AbstractID string
}

// Interactor regenerates the URL set for an abstract product, typically
// after a localized name change. Existing rows keep their url id and are
// overwritten in place; locales without a row get a fresh one. Each write
// carries a touch-active signal in the same transaction.
type Interactor struct {
	URLRepo   contracts.URLRepo
	TouchRepo contracts.TouchRepo
	Committer contracts.Committer
	ReadModel contracts.ReadModel
	URLGen    contracts.URLGenerator
	Locales   *locale.Registry
	Clock     clock.Clock
	Log       *charmlog.Logger
}

func NewInteractor(
	urlRepo contracts.URLRepo,
	touchRepo contracts.TouchRepo,
	committer contracts.Committer,
	readModel contracts.ReadModel,
	urlGen contracts.URLGenerator,
	locales *locale.Registry,
	clk clock.Clock,
	log *charmlog.Logger,
) *Interactor {
	return &Interactor{
		URLRepo:   urlRepo,
		TouchRepo: touchRepo,
		Committer: committer,
		ReadModel: readModel,
		URLGen:    urlGen,
		Locales:   locales,
		Clock:     clk,
		Log:       log,
	}
}

// Execute regenerates the URL set and returns the per-locale view.
func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.ProductURLDTO, error) {
	now := it.Clock.Now()

	stored, err := it.ReadModel.GetAbstract(ctx, req.AbstractID)
	if err != nil {
		return nil, err
	}
	abstract := shared.ReconstructAbstract(stored)

	generated := it.URLGen.Generate(abstract, it.Locales.All())

	muts, err := shared.BuildURLSaveMuts(ctx, it.ReadModel, it.URLRepo, it.TouchRepo, abstract, generated, now)
	if err != nil {
		return nil, err
	}

	plan := commitplan.NewPlan()
	plan.AddAll(muts)
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}

	urls := make([]dto.LocalizedURLDTO, 0, len(generated))
	for _, gen := range generated {
		urls = append(urls, dto.LocalizedURLDTO{LocaleID: gen.LocaleID, URL: gen.URL})
	}
	return &dto.ProductURLDTO{
		AbstractID:  abstract.ID(),
		AbstractSku: abstract.Sku(),
		URLs:        urls,
	}, nil
}

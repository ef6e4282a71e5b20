package create_product_url

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

// Request identifies the abstract product to generate URLs for.
type Request struct {
	AbstractID string
}

// Interactor generates one URL per active locale for an abstract product
// and persists the set together with per-URL touch-active signals in one
// transaction.
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

// Execute creates (or overwrites) the URL set for the abstract product and
// returns the per-locale view.
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

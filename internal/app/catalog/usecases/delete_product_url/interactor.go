package delete_product_url

import (
	"context"

	charmlog "github.com/charmbracelet/log"

	contracts "github.com/velmir/catalog-core/internal/app/catalog/contracts"
	shared "github.com/velmir/catalog-core/internal/app/catalog/usecases/shared"
	"github.com/velmir/catalog-core/internal/pkg/clock"
	commitplan "github.com/velmir/catalog-core/internal/pkg/committer"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

// Request identifies the abstract product whose URLs get removed.
type Request struct {
	AbstractID string
}

// Interactor removes every URL record of an abstract product. The
// touch-deleted signals are buffered ahead of the deletes in the same
// transaction, so downstream consumers either see both or neither.
type Interactor struct {
	URLRepo   contracts.URLRepo
	TouchRepo contracts.TouchRepo
	Committer contracts.Committer
	ReadModel contracts.ReadModel
	Locales   *locale.Registry
	Clock     clock.Clock
	Log       *charmlog.Logger
}

func NewInteractor(
	urlRepo contracts.URLRepo,
	touchRepo contracts.TouchRepo,
	committer contracts.Committer,
	readModel contracts.ReadModel,
	locales *locale.Registry,
	clk clock.Clock,
	log *charmlog.Logger,
) *Interactor {
	return &Interactor{
		URLRepo:   urlRepo,
		TouchRepo: touchRepo,
		Committer: committer,
		ReadModel: readModel,
		Locales:   locales,
		Clock:     clk,
		Log:       log,
	}
}

// Execute deletes the URL set for the abstract product. Locales without a
// URL record are skipped; deleting an abstract with no URLs is a no-op.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// Existence check; also yields not-found for dangling references.
	if _, err := it.ReadModel.GetAbstract(ctx, req.AbstractID); err != nil {
		return err
	}

	var existing []string
	for _, loc := range it.Locales.All() {
		found, err := it.ReadModel.FindURL(ctx, req.AbstractID, loc.ID)
		if err != nil {
			return err
		}
		if found == nil {
			continue
		}
		existing = append(existing, found.UrlID)
	}

	plan := commitplan.NewPlan()
	for _, urlID := range existing {
		plan.Add(it.TouchRepo.InsertMut(shared.NewURLTouch(urlID, contracts.TouchEventDeleted, now)))
	}
	for _, urlID := range existing {
		plan.Add(it.URLRepo.DeleteMut(urlID))
	}

	return it.Committer.Apply(ctx, plan)
}

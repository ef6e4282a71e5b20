package shared

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// BuildURLSaveMuts resolves a generated URL set against the existing rows
// and returns the mutations that persist it: one upsert plus one
// touch-active per locale. A locale that already has a URL record keeps its
// url id, so the row is overwritten in place and never duplicated.
//
// Shared by the create and update URL workflows, whose persistence contract
// is identical (create-or-fetch-then-overwrite).
func BuildURLSaveMuts(
	ctx context.Context,
	rm contracts.ReadModel,
	urlRepo contracts.URLRepo,
	touchRepo contracts.TouchRepo,
	abstract *domain.ProductAbstract,
	generated []domain.LocalizedURL,
	now time.Time,
) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, 2*len(generated))
	for _, gen := range generated {
		existing, err := rm.FindURL(ctx, abstract.ID(), gen.LocaleID)
		if err != nil {
			return nil, err
		}

		urlID := uuid.New().String()
		if existing != nil {
			urlID = existing.UrlID
		}

		record := &domain.ProductURL{
			IDUrl:        urlID,
			URL:          gen.URL,
			LocaleID:     gen.LocaleID,
			ResourceType: domain.ResourceTypeProductAbstract,
			ResourceID:   abstract.ID(),
		}
		muts = append(muts, urlRepo.SaveMut(record, now, now))
		muts = append(muts, touchRepo.InsertMut(NewURLTouch(urlID, contracts.TouchEventActive, now)))
	}
	return muts, nil
}

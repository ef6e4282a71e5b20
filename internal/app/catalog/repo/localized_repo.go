package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/models/m_localized_attributes"
	"github.com/velmir/catalog-core/internal/pkg/attrenc"
)

// LocalizedAttributesRepo builds upsert mutations for the per-locale
// attribute tables. The composite (owner, locale) primary key guarantees at
// most one row per locale regardless of how often a candidate is re-saved.
type LocalizedAttributesRepo struct{}

func NewLocalizedAttributesRepo() *LocalizedAttributesRepo {
	return &LocalizedAttributesRepo{}
}

func (r *LocalizedAttributesRepo) ProductMuts(productID string, entries []domain.LocalizedAttributes, now time.Time) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, len(entries))
	for _, entry := range entries {
		encoded, err := attrenc.Encode(entry.Attributes)
		if err != nil {
			return nil, err
		}
		muts = append(muts, m_localized_attributes.ProductSaveMutation(productID, entry.LocaleID, entry.Name, encoded, now.UTC()))
	}
	return muts, nil
}

func (r *LocalizedAttributesRepo) AbstractMuts(abstractID string, entries []domain.LocalizedAttributes, now time.Time) ([]*spanner.Mutation, error) {
	muts := make([]*spanner.Mutation, 0, len(entries))
	for _, entry := range entries {
		encoded, err := attrenc.Encode(entry.Attributes)
		if err != nil {
			return nil, err
		}
		muts = append(muts, m_localized_attributes.AbstractSaveMutation(abstractID, entry.LocaleID, entry.Name, encoded, now.UTC()))
	}
	return muts, nil
}

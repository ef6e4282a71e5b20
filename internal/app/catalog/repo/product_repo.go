package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/models/m_product"
	"github.com/velmir/catalog-core/internal/pkg/attrenc"
)

// ProductRepo is the Spanner implementation of the concrete product
// write-side repository. It returns *spanner.Mutation objects but never
// applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion. Unexported
// so tests in the same package can inspect the map without relying on
// spanner.Mutation internals.
func buildInsertValues(p *domain.ProductConcrete) (map[string]interface{}, error) {
	encoded, err := attrenc.Encode(p.Attributes())
	if err != nil {
		return nil, err
	}

	values := m_product.BuildInsertMap(
		p.ID(),
		p.Sku(),
		p.AbstractID(),
		encoded,
		p.IsActive(),
		p.CreatedAt().UTC(),
		p.UpdatedAt().UTC(),
	)
	return values, nil
}

// InsertMut builds an Insert mutation for a new product row.
func (r *ProductRepo) InsertMut(p *domain.ProductConcrete) (*spanner.Mutation, error) {
	values, err := buildInsertValues(p)
	if err != nil {
		return nil, err
	}
	return m_product.InsertMutation(values), nil
}

// UpdateMut builds an Update mutation from the aggregate's ChangeTracker.
// Only dirty fields are written; updated_at is stamped whenever there are
// changes. Returns nil when nothing changed.
func (r *ProductRepo) UpdateMut(p *domain.ProductConcrete) (*spanner.Mutation, error) {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil, nil
	}

	updates := map[string]interface{}{}

	if p.Changes().Dirty(domain.FieldSku) {
		updates[m_product.ColSku] = p.Sku()
	}
	if p.Changes().Dirty(domain.FieldFkProductAbstract) {
		updates[m_product.ColFkProductAbstract] = p.AbstractID()
	}
	if p.Changes().Dirty(domain.FieldAttributes) {
		encoded, err := attrenc.Encode(p.Attributes())
		if err != nil {
			return nil, err
		}
		updates[m_product.ColAttributes] = encoded
	}
	if p.Changes().Dirty(domain.FieldIsActive) {
		updates[m_product.ColIsActive] = p.IsActive()
	}

	if len(updates) == 0 {
		return nil, nil
	}

	updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	return m_product.UpdateMutation(p.ID(), updates), nil
}

// Package catalogtest provides in-memory fakes of the catalog contracts for
// interactor tests.
package catalogtest

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	commitplan "github.com/velmir/catalog-core/internal/pkg/committer"
)

// FakeReadModel is a map-backed contracts.ReadModel.
type FakeReadModel struct {
	Products      map[string]*dto.ProductDTO
	ProductBySku  map[string]string
	Abstracts     map[string]*dto.ProductAbstractDTO
	AbstractBySku map[string]string
	URLs          map[string]*dto.URLDTO
}

var _ contracts.ReadModel = (*FakeReadModel)(nil)

func NewFakeReadModel() *FakeReadModel {
	return &FakeReadModel{
		Products:      map[string]*dto.ProductDTO{},
		ProductBySku:  map[string]string{},
		Abstracts:     map[string]*dto.ProductAbstractDTO{},
		AbstractBySku: map[string]string{},
		URLs:          map[string]*dto.URLDTO{},
	}
}

// URLKey builds the lookup key used by the URLs map.
func URLKey(abstractID, localeID string) string {
	return abstractID + "/" + localeID
}

func (f *FakeReadModel) GetProduct(_ context.Context, productID string) (*dto.ProductDTO, error) {
	p, ok := f.Products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *FakeReadModel) GetProductBySku(ctx context.Context, sku string) (*dto.ProductDTO, error) {
	id, ok := f.ProductBySku[sku]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return f.GetProduct(ctx, id)
}

func (f *FakeReadModel) FindProductIDBySku(_ context.Context, sku string) (string, error) {
	return f.ProductBySku[sku], nil
}

func (f *FakeReadModel) ListProductsByAbstract(_ context.Context, abstractID string) ([]*dto.ProductDTO, error) {
	var out []*dto.ProductDTO
	for _, p := range f.Products {
		if p.AbstractID == abstractID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *FakeReadModel) GetAbstract(_ context.Context, abstractID string) (*dto.ProductAbstractDTO, error) {
	a, ok := f.Abstracts[abstractID]
	if !ok {
		return nil, domain.ErrAbstractProductNotFound
	}
	return a, nil
}

func (f *FakeReadModel) FindAbstractIDBySku(_ context.Context, sku string) (string, error) {
	return f.AbstractBySku[sku], nil
}

func (f *FakeReadModel) FindURL(_ context.Context, abstractID, localeID string) (*dto.URLDTO, error) {
	return f.URLs[URLKey(abstractID, localeID)], nil
}

// FakeCommitter records applied plans instead of talking to Spanner.
type FakeCommitter struct {
	Plans []*commitplan.Plan
	Err   error
}

var _ contracts.Committer = (*FakeCommitter)(nil)

func (c *FakeCommitter) Apply(_ context.Context, plan *commitplan.Plan) error {
	if c.Err != nil {
		return c.Err
	}
	c.Plans = append(c.Plans, plan)
	return nil
}

// LastPlan returns the most recently applied plan, nil when none.
func (c *FakeCommitter) LastPlan() *commitplan.Plan {
	if len(c.Plans) == 0 {
		return nil
	}
	return c.Plans[len(c.Plans)-1]
}

// FakeHook counts post-commit invocations.
type FakeHook struct {
	Calls int
	Err   error
}

var _ contracts.ProductSaveHook = (*FakeHook)(nil)

func (h *FakeHook) AfterSave(_ context.Context, product *domain.ProductConcrete) (*domain.ProductConcrete, error) {
	h.Calls++
	if h.Err != nil {
		return nil, h.Err
	}
	return product, nil
}

// FakeExtension contributes canned mutations to the save plan.
type FakeExtension struct {
	Label     string
	Mutations []*spanner.Mutation
	Err       error
}

var _ contracts.ProductExtension = (*FakeExtension)(nil)

func (e *FakeExtension) Name() string {
	return e.Label
}

func (e *FakeExtension) Muts(_ *domain.ProductConcrete) ([]*spanner.Mutation, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Mutations, nil
}

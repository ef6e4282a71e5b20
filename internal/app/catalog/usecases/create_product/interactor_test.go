package create_product

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/velmir/catalog-core/internal/app/catalog/catalogtest"
	contracts "github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	"github.com/velmir/catalog-core/internal/app/catalog/repo"
	shared "github.com/velmir/catalog-core/internal/app/catalog/usecases/shared"
	"github.com/velmir/catalog-core/internal/pkg/clock"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

func newTestInteractor(rm *catalogtest.FakeReadModel, cm *catalogtest.FakeCommitter, extensions []contracts.ProductExtension, hooks []contracts.ProductSaveHook) *Interactor {
	clk := clock.NewFake(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	locales := locale.MustNewRegistry("en_US", "de_DE")
	return NewInteractor(
		repo.NewProductRepo(),
		repo.NewLocalizedAttributesRepo(),
		repo.NewPriceRepo(),
		cm,
		rm,
		locales,
		clk,
		nil,
		extensions,
		hooks,
	)
}

func validRequest() Request {
	return Request{
		Sku:        "SKU-001",
		AbstractID: "abs-1",
		Attributes: map[string]any{"color": "red"},
		IsActive:   true,
		Localized: []shared.LocalizedInput{
			{LocaleID: "en_US", Name: "Widget"},
			{LocaleID: "de_DE", Name: "Dings"},
		},
		Price: &shared.PriceInput{Numerator: 1999, Denominator: 100, Currency: "EUR"},
	}
}

func TestExecute_Success(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1", Sku: "ABS-001"}
	cm := &catalogtest.FakeCommitter{}
	hook := &catalogtest.FakeHook{}

	it := newTestInteractor(rm, cm, nil, []contracts.ProductSaveHook{hook})

	id, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// product row + two localized rows + price row
	plan := cm.LastPlan()
	require.NotNil(t, plan)
	assert.Equal(t, 4, plan.Size())

	assert.Equal(t, 1, hook.Calls)
}

func TestExecute_DuplicateSku(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1"}
	rm.ProductBySku["SKU-001"] = "other-product"
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm, nil, nil)

	_, err := it.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrSkuAlreadyExists)
	assert.Empty(t, cm.Plans)
}

func TestExecute_MissingAbstract(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm, nil, nil)

	_, err := it.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrAbstractProductNotFound)
	assert.Empty(t, cm.Plans)
}

func TestExecute_UnknownLocale(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1"}
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm, nil, nil)

	req := validRequest()
	req.Localized = []shared.LocalizedInput{{LocaleID: "fr_FR", Name: "Truc"}}
	_, err := it.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrUnknownLocale)
}

// TestExecute_CommitConflictTranslated covers the concurrent-writer race:
// the pre-check passed but the unique index rejected the commit.
func TestExecute_CommitConflictTranslated(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1"}
	cm := &catalogtest.FakeCommitter{Err: status.Error(codes.AlreadyExists, "row already exists")}
	hook := &catalogtest.FakeHook{}

	it := newTestInteractor(rm, cm, nil, []contracts.ProductSaveHook{hook})

	_, err := it.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrSkuAlreadyExists)
	assert.Zero(t, hook.Calls)
}

func TestExecute_HookFailureDoesNotFailSave(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1"}
	cm := &catalogtest.FakeCommitter{}
	failing := &catalogtest.FakeHook{Err: assert.AnError}
	second := &catalogtest.FakeHook{}

	it := newTestInteractor(rm, cm, nil, []contracts.ProductSaveHook{failing, second})

	_, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, failing.Calls)
	assert.Equal(t, 1, second.Calls)
}

func TestExecute_ExtensionMutsJoinThePlan(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1"}
	cm := &catalogtest.FakeCommitter{}
	ext := &catalogtest.FakeExtension{
		Label:     "stock",
		Mutations: []*spanner.Mutation{spanner.Insert("stocks", []string{"id"}, []interface{}{"s-1"})},
	}

	it := newTestInteractor(rm, cm, []contracts.ProductExtension{ext}, nil)

	_, err := it.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 5, cm.LastPlan().Size())
}

func TestExecute_ExtensionErrorAbortsBeforeCommit(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1"}
	cm := &catalogtest.FakeCommitter{}
	ext := &catalogtest.FakeExtension{Label: "stock", Err: assert.AnError}

	it := newTestInteractor(rm, cm, []contracts.ProductExtension{ext}, nil)

	_, err := it.Execute(context.Background(), validRequest())
	assert.Error(t, err)
	assert.Empty(t, cm.Plans)
}

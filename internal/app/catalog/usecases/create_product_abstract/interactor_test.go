package create_product_abstract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmir/catalog-core/internal/app/catalog/catalogtest"
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/app/catalog/repo"
	shared "github.com/velmir/catalog-core/internal/app/catalog/usecases/shared"
	"github.com/velmir/catalog-core/internal/pkg/clock"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

func newTestInteractor(rm *catalogtest.FakeReadModel, cm *catalogtest.FakeCommitter) *Interactor {
	clk := clock.NewFake(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	locales := locale.MustNewRegistry("en_US", "de_DE")
	return NewInteractor(
		repo.NewProductAbstractRepo(),
		repo.NewLocalizedAttributesRepo(),
		repo.NewTouchRepo(),
		cm,
		rm,
		locales,
		clk,
		nil,
	)
}

func TestExecute_Success(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	id, err := it.Execute(context.Background(), Request{
		Sku: "ABS-001",
		Localized: []shared.LocalizedInput{
			{LocaleID: "en_US", Name: "Widget"},
			{LocaleID: "de_DE", Name: "Dings"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// abstract row + two localized rows + touch event
	plan := cm.LastPlan()
	require.NotNil(t, plan)
	assert.Equal(t, 4, plan.Size())
}

func TestExecute_DuplicateSku(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.AbstractBySku["ABS-001"] = "abs-existing"
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	_, err := it.Execute(context.Background(), Request{Sku: "ABS-001"})
	assert.ErrorIs(t, err, domain.ErrSkuAlreadyExists)
	assert.Empty(t, cm.Plans)
}

func TestExecute_EmptySku(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	_, err := it.Execute(context.Background(), Request{Sku: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptySku)
}

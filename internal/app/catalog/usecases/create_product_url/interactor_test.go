package create_product_url

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmir/catalog-core/internal/app/catalog/catalogtest"
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	"github.com/velmir/catalog-core/internal/app/catalog/repo"
	"github.com/velmir/catalog-core/internal/pkg/clock"
	"github.com/velmir/catalog-core/internal/pkg/locale"
	"github.com/velmir/catalog-core/internal/pkg/urlgen"
)

func newTestInteractor(rm *catalogtest.FakeReadModel, cm *catalogtest.FakeCommitter) *Interactor {
	clk := clock.NewFake(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	locales := locale.MustNewRegistry("en_US", "de_DE")
	return NewInteractor(
		repo.NewURLRepo(),
		repo.NewTouchRepo(),
		cm,
		rm,
		urlgen.NewGenerator(),
		locales,
		clk,
		nil,
	)
}

func abstractFixture() *dto.ProductAbstractDTO {
	return &dto.ProductAbstractDTO{
		AbstractID: "0f8fad5b-d9cb-469f-a165-70867728950e",
		Sku:        "ABS-001",
		Localized: []dto.LocalizedAttributesDTO{
			{LocaleID: "en_US", Name: "Cool Widget"},
			{LocaleID: "de_DE", Name: "Tolles Teil"},
		},
	}
}

func TestExecute_GeneratesOneURLPerLocale(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	abstract := abstractFixture()
	rm.Abstracts[abstract.AbstractID] = abstract
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	out, err := it.Execute(context.Background(), Request{AbstractID: abstract.AbstractID})
	require.NoError(t, err)

	require.Len(t, out.URLs, 2)
	assert.Equal(t, "en_US", out.URLs[0].LocaleID)
	assert.Equal(t, "/en/cool-widget-0f8fad5b", out.URLs[0].URL)
	assert.Equal(t, "de_DE", out.URLs[1].LocaleID)
	assert.Equal(t, "/de/tolles-teil-0f8fad5b", out.URLs[1].URL)

	// one upsert and one touch per locale
	plan := cm.LastPlan()
	require.NotNil(t, plan)
	assert.Equal(t, 4, plan.Size())
}

func TestExecute_MissingAbstract(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	_, err := it.Execute(context.Background(), Request{AbstractID: "abs-missing"})
	assert.ErrorIs(t, err, domain.ErrAbstractProductNotFound)
	assert.Empty(t, cm.Plans)
}

// TestExecute_FallsBackToSkuWithoutLocalizedName: an abstract without a name
// for a locale slugs its sku instead.
func TestExecute_FallsBackToSkuWithoutLocalizedName(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	abstract := abstractFixture()
	abstract.Localized = nil
	rm.Abstracts[abstract.AbstractID] = abstract
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	out, err := it.Execute(context.Background(), Request{AbstractID: abstract.AbstractID})
	require.NoError(t, err)
	assert.Equal(t, "/en/abs-001-0f8fad5b", out.URLs[0].URL)
}

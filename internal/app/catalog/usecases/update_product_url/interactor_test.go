package update_product_url

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

// TestExecute_RegeneratesAfterRename: the returned URL set reflects the
// current localized names, and every locale gets an upsert plus a touch even
// when a URL row already exists.
func TestExecute_RegeneratesAfterRename(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["0f8fad5b-d9cb-469f-a165-70867728950e"] = &dto.ProductAbstractDTO{
		AbstractID: "0f8fad5b-d9cb-469f-a165-70867728950e",
		Sku:        "ABS-001",
		Localized: []dto.LocalizedAttributesDTO{
			{LocaleID: "en_US", Name: "Renamed Widget"},
			{LocaleID: "de_DE", Name: "Umbenanntes Teil"},
		},
	}
	rm.URLs[catalogtest.URLKey("0f8fad5b-d9cb-469f-a165-70867728950e", "en_US")] = &dto.URLDTO{
		UrlID: "url-en", URL: "/en/old-name-0f8fad5b", LocaleID: "en_US",
	}
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	out, err := it.Execute(context.Background(), Request{AbstractID: "0f8fad5b-d9cb-469f-a165-70867728950e"})
	require.NoError(t, err)

	require.Len(t, out.URLs, 2)
	assert.Equal(t, "/en/renamed-widget-0f8fad5b", out.URLs[0].URL)
	assert.Equal(t, "/de/umbenanntes-teil-0f8fad5b", out.URLs[1].URL)
	assert.Equal(t, 4, cm.LastPlan().Size())
}

func TestExecute_MissingAbstract(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	_, err := it.Execute(context.Background(), Request{AbstractID: "abs-missing"})
	assert.ErrorIs(t, err, domain.ErrAbstractProductNotFound)
}

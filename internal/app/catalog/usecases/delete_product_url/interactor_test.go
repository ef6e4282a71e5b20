package delete_product_url

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
)

func newTestInteractor(rm *catalogtest.FakeReadModel, cm *catalogtest.FakeCommitter) *Interactor {
	clk := clock.NewFake(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	locales := locale.MustNewRegistry("en_US", "de_DE")
	return NewInteractor(
		repo.NewURLRepo(),
		repo.NewTouchRepo(),
		cm,
		rm,
		locales,
		clk,
		nil,
	)
}

func TestExecute_DeletesAllLocaleURLs(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1", Sku: "ABS-001"}
	rm.URLs[catalogtest.URLKey("abs-1", "en_US")] = &dto.URLDTO{UrlID: "url-en", URL: "/en/x"}
	rm.URLs[catalogtest.URLKey("abs-1", "de_DE")] = &dto.URLDTO{UrlID: "url-de", URL: "/de/x"}
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	require.NoError(t, it.Execute(context.Background(), Request{AbstractID: "abs-1"}))

	// one touch-deleted and one delete per existing URL
	plan := cm.LastPlan()
	require.NotNil(t, plan)
	assert.Equal(t, 4, plan.Size())
}

// TestExecute_PartialURLSet: only locales with a URL row contribute
// mutations.
func TestExecute_PartialURLSet(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1"}
	rm.URLs[catalogtest.URLKey("abs-1", "de_DE")] = &dto.URLDTO{UrlID: "url-de", URL: "/de/x"}
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	require.NoError(t, it.Execute(context.Background(), Request{AbstractID: "abs-1"}))
	assert.Equal(t, 2, cm.LastPlan().Size())
}

// TestExecute_NoURLs: deleting the URL set of an abstract without URLs is a
// no-op, not an error.
func TestExecute_NoURLs(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	rm.Abstracts["abs-1"] = &dto.ProductAbstractDTO{AbstractID: "abs-1"}
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	require.NoError(t, it.Execute(context.Background(), Request{AbstractID: "abs-1"}))
	require.NotNil(t, cm.LastPlan())
	assert.True(t, cm.LastPlan().IsEmpty())
}

func TestExecute_MissingAbstract(t *testing.T) {
	rm := catalogtest.NewFakeReadModel()
	cm := &catalogtest.FakeCommitter{}

	it := newTestInteractor(rm, cm)

	err := it.Execute(context.Background(), Request{AbstractID: "abs-missing"})
	assert.ErrorIs(t, err, domain.ErrAbstractProductNotFound)
	assert.Empty(t, cm.Plans)
}

package get_product_url

import (
	"context"

	contracts "github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

// Handler assembles the localized URL view of an abstract product: one entry
// per configured locale, with an empty URL for locales that have no record.
type Handler struct {
	readModel contracts.ReadModel
	locales   *locale.Registry
}

func NewHandler(r contracts.ReadModel, locales *locale.Registry) *Handler {
	return &Handler{readModel: r, locales: locales}
}

func (h *Handler) Execute(ctx context.Context, abstractID string) (*dto.ProductURLDTO, error) {
	abstract, err := h.readModel.GetAbstract(ctx, abstractID)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductURLDTO{
		AbstractID:  abstract.AbstractID,
		AbstractSku: abstract.Sku,
		URLs:        make([]dto.LocalizedURLDTO, 0, len(h.locales.All())),
	}
	for _, loc := range h.locales.All() {
		entry := dto.LocalizedURLDTO{LocaleID: loc.ID}
		found, err := h.readModel.FindURL(ctx, abstractID, loc.ID)
		if err != nil {
			return nil, err
		}
		if found != nil {
			entry.URL = found.URL
		}
		out.URLs = append(out.URLs, entry)
	}
	return out, nil
}

package list_products

import (
	"context"

	contracts "github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, abstractID string) ([]*dto.ProductDTO, error) {
	return h.readModel.ListProductsByAbstract(ctx, abstractID)
}

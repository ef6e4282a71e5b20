package shared

import (
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	"github.com/velmir/catalog-core/internal/app/catalog/utils"
)

// ReconstructProduct rebuilds the concrete product aggregate from a read
// model DTO for the update path.
func ReconstructProduct(d *dto.ProductDTO) *domain.ProductConcrete {
	createdAt := utils.ParseTimePtr(d.CreatedAt)
	updatedAt := utils.ParseTimePtr(d.UpdatedAt)

	return domain.ReconstructProductConcrete(
		d.ProductID,
		d.Sku,
		d.AbstractID,
		d.Attributes,
		d.IsActive,
		utils.TimeOrZero(createdAt),
		utils.TimeOrZero(updatedAt),
	)
}

// ReconstructAbstract rebuilds the abstract product aggregate from a read
// model DTO. The URL workflows feed it to the URL generator.
func ReconstructAbstract(d *dto.ProductAbstractDTO) *domain.ProductAbstract {
	createdAt := utils.ParseTimePtr(d.CreatedAt)
	updatedAt := utils.ParseTimePtr(d.UpdatedAt)

	localized := make([]domain.LocalizedAttributes, 0, len(d.Localized))
	for _, entry := range d.Localized {
		localized = append(localized, domain.LocalizedAttributes{
			LocaleID:   entry.LocaleID,
			Name:       entry.Name,
			Attributes: entry.Attributes,
		})
	}

	return domain.ReconstructProductAbstract(
		d.AbstractID,
		d.Sku,
		localized,
		utils.TimeOrZero(createdAt),
		utils.TimeOrZero(updatedAt),
	)
}

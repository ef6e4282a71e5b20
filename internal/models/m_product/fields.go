package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID         = "product_id"
	ColSku               = "sku"
	ColFkProductAbstract = "fk_product_abstract"
	ColAttributes        = "attributes"
	ColIsActive          = "is_active"
	ColCreatedAt         = "created_at"
	ColUpdatedAt         = "updated_at"
)

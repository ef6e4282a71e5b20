package m_product_abstract

// Field constants for the product_abstracts table.
const (
	TableName = "product_abstracts"

	ColAbstractID = "abstract_id"
	ColSku        = "sku"
	ColCreatedAt  = "created_at"
	ColUpdatedAt  = "updated_at"
)

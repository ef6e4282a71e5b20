package m_localized_attributes

// Field constants for the two localized attributes tables. Both tables share
// the same column layout; only the owner id column differs.
const (
	ProductTableName  = "product_localized_attributes"
	AbstractTableName = "product_abstract_localized_attributes"

	ColProductID  = "product_id"
	ColAbstractID = "abstract_id"
	ColLocaleID   = "locale_id"
	ColName       = "name"
	ColAttributes = "attributes"
	ColUpdatedAt  = "updated_at"
)

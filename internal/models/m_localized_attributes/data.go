package m_localized_attributes

import (
	"time"

	"cloud.google.com/go/spanner"
)

// ProductSaveMutation builds an InsertOrUpdate for one (product, locale)
// attributes row. The composite primary key makes repeated saves idempotent:
// at most one row per locale ever exists.
func ProductSaveMutation(productID, localeID, name, encodedAttributes string, updatedAt time.Time) *spanner.Mutation {
	return spanner.InsertOrUpdate(ProductTableName,
		[]string{ColProductID, ColLocaleID, ColName, ColAttributes, ColUpdatedAt},
		[]interface{}{productID, localeID, name, encodedAttributes, updatedAt},
	)
}

// AbstractSaveMutation builds an InsertOrUpdate for one (abstract, locale)
// attributes row.
func AbstractSaveMutation(abstractID, localeID, name, encodedAttributes string, updatedAt time.Time) *spanner.Mutation {
	return spanner.InsertOrUpdate(AbstractTableName,
		[]string{ColAbstractID, ColLocaleID, ColName, ColAttributes, ColUpdatedAt},
		[]interface{}{abstractID, localeID, name, encodedAttributes, updatedAt},
	)
}

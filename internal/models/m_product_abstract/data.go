package m_product_abstract

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the canonical columns for an abstract product row.
func BuildInsertMap(abstractID, sku string, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColAbstractID: abstractID,
		ColSku:        sku,
		ColCreatedAt:  createdAt,
		ColUpdatedAt:  updatedAt,
	}
}

// InsertMutation builds a spanner.Insert for an abstract product row.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

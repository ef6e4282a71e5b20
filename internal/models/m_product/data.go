package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert for a product row from a values map.
// Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update for a product row. The values map
// must not include the product_id key; it is always set as the first column.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical columns for insertion. The encoded
// attributes string is treated as opaque here.
func BuildInsertMap(productID, sku, fkProductAbstract, encodedAttributes string, isActive bool, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColProductID:         productID,
		ColSku:               sku,
		ColFkProductAbstract: fkProductAbstract,
		ColAttributes:        encodedAttributes,
		ColIsActive:          isActive,
		ColCreatedAt:         createdAt,
		ColUpdatedAt:         updatedAt,
	}
}

package m_touch

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap constructs the column map for a touch event row.
func BuildInsertMap(touchID, itemType, itemID, itemEvent, status string, touchedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColTouchID:     touchID,
		ColItemType:    itemType,
		ColItemID:      itemID,
		ColItemEvent:   itemEvent,
		ColStatus:      status,
		ColTouchedAt:   touchedAt,
		ColProcessedAt: nil,
	}
}

// InsertMutation builds an Insert for the touch_events table.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

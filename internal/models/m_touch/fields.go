package m_touch

// Field constants for the touch_events table.
const (
	TableName = "touch_events"

	ColTouchID     = "touch_id"
	ColItemType    = "item_type"
	ColItemID      = "item_id"
	ColItemEvent   = "item_event"
	ColStatus      = "status"
	ColTouchedAt   = "touched_at"
	ColProcessedAt = "processed_at"
)

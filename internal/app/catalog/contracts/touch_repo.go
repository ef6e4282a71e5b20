package contracts

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Touch item types and events. A touch event tells the search/index
// subsystem that the indexable state of a record changed.
const (
	TouchItemTypeURL             = "url"
	TouchItemTypeProductAbstract = "product_abstract"

	TouchEventActive  = "active"
	TouchEventDeleted = "deleted"

	TouchStatusPending = "pending"
)

// TouchRepo is the write-side repository for the touch outbox. The insert
// runs inside the workflow transaction, so touch signals roll back together
// with the writes they describe; delivery to the indexer happens after
// commit and is best-effort.
type TouchRepo interface {
	InsertMut(e *TouchRecord) *spanner.Mutation
}

// TouchRecord is the application-level representation of one touch event.
type TouchRecord struct {
	TouchID      string
	ItemType     string
	ItemID       string
	ItemEvent    string
	Status       string
	TouchedAtUTC time.Time
}

package shared

import (
	"time"

	"github.com/google/uuid"

	"github.com/velmir/catalog-core/internal/app/catalog/contracts"
)

// NewURLTouch builds a pending touch record for a URL record.
func NewURLTouch(urlID, event string, now time.Time) *contracts.TouchRecord {
	return &contracts.TouchRecord{
		TouchID:      uuid.New().String(),
		ItemType:     contracts.TouchItemTypeURL,
		ItemID:       urlID,
		ItemEvent:    event,
		Status:       contracts.TouchStatusPending,
		TouchedAtUTC: now,
	}
}

// NewAbstractTouch builds a pending touch record for an abstract product.
func NewAbstractTouch(abstractID, event string, now time.Time) *contracts.TouchRecord {
	return &contracts.TouchRecord{
		TouchID:      uuid.New().String(),
		ItemType:     contracts.TouchItemTypeProductAbstract,
		ItemID:       abstractID,
		ItemEvent:    event,
		Status:       contracts.TouchStatusPending,
		TouchedAtUTC: now,
	}
}

package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/contracts"
	"github.com/velmir/catalog-core/internal/models/m_touch"
)

// TouchRepo is the Spanner implementation of the touch outbox repository.
// It returns *spanner.Mutation but never applies it.
type TouchRepo struct{}

func NewTouchRepo() *TouchRepo {
	return &TouchRepo{}
}

func (r *TouchRepo) InsertMut(e *contracts.TouchRecord) *spanner.Mutation {
	if e == nil {
		return nil
	}

	values := m_touch.BuildInsertMap(
		e.TouchID,
		e.ItemType,
		e.ItemID,
		e.ItemEvent,
		e.Status,
		e.TouchedAtUTC,
	)
	return m_touch.InsertMutation(values)
}

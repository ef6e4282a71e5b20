package contracts

import (
	"context"

	commitplan "github.com/velmir/catalog-core/internal/pkg/committer"
)

// Committer is the transactional boundary of the save workflows: usecases
// assemble a plan of mutations and Apply commits it atomically. A failed
// Apply leaves durable state untouched, so callers may treat any error as a
// complete no-op.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}

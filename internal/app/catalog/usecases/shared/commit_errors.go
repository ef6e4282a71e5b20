package shared

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// TranslateProductCommitError maps a Spanner commit failure caused by the
// unique sku index onto the domain error the application-level check would
// have produced. The index is the real guard against the check-then-act
// race; this keeps the error contract identical either way. Every other
// error is passed through unchanged.
func TranslateProductCommitError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.AlreadyExists {
		return domain.ErrSkuAlreadyExists
	}
	return err
}

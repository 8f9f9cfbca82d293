package ports

import (
	"context"

	"procurement/internal/core/domain/model/principal"
)

// PrincipalResolver turns a bearer credential into the principal it belongs to.
// Invalid, expired or unknown credentials yield errs.ErrUnauthenticated. A
// disabled account still resolves; callers reject it.
type PrincipalResolver interface {
	Resolve(ctx context.Context, credential string) (principal.Principal, error)
}

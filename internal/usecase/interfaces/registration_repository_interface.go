package interfaces

import (
	"context"
	"errors"

	"temporada_ferias/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored version no longer
// matches the version the caller read.
var ErrVersionConflict = errors.New("registration version conflict")

// IRegistrationRepository persists registrations together with their payment plan.
//
// GetByID returns a zero-value registration and a nil error when the id is unknown.
// Update is a compare-and-swap on Version: it writes r with Version+1 only if
// the stored version equals r.Version, otherwise ErrVersionConflict.

type IRegistrationRepository interface {
	Create(ctx context.Context, r entities.Registration) (entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	List(ctx context.Context) ([]entities.Registration, error)
	Update(ctx context.Context, r entities.Registration) (entities.Registration, error)
}

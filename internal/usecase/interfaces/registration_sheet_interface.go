package interfaces

import (
	"context"

	"temporada_ferias/internal/domain/entities"
)

// IRegistrationSheet mirrors registrations into the organizers' spreadsheet.
// It is a read model: the store stays the source of truth.

type IRegistrationSheet interface {
	Append(ctx context.Context, r entities.Registration) error
	Update(ctx context.Context, r entities.Registration) error
	ReplaceAll(ctx context.Context, rs []entities.Registration) error
}

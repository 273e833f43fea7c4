package interfaces

import (
	"context"

	"temporada_ferias/internal/domain/entities"
)

// INotifier sends the transactional emails of the registration flow.

type INotifier interface {
	RegistrationReceived(ctx context.Context, r entities.Registration) error
	PaymentConfirmed(ctx context.Context, r entities.Registration) error
	QuestionAnswered(ctx context.Context, q entities.Question) error
}

package interfaces

import (
	"context"

	"temporada_ferias/internal/domain/entities"
)

// IQuestionRepository persists the Q&A inbox.

type IQuestionRepository interface {
	Create(ctx context.Context, q entities.Question) (entities.Question, error)
	GetByID(ctx context.Context, id string) (entities.Question, error)
	List(ctx context.Context) ([]entities.Question, error)
	Update(ctx context.Context, q entities.Question) (entities.Question, error)
}

package response

import (
	"time"

	"temporada_ferias/internal/domain/entities"
)

type QuestionResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Question   string     `json:"question"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	Answer     string     `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	AnsweredBy string     `json:"answered_by,omitempty"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	Warning    string     `json:"warning,omitempty"`
}

func FromQuestion(q entities.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Email:      q.Email,
		Question:   q.Question,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt,
		Answer:     q.Answer,
		AnsweredAt: q.AnsweredAt,
		AnsweredBy: q.AnsweredBy,
		ArchivedAt: q.ArchivedAt,
	}
}

func FromQuestions(items []entities.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(items))
	for _, q := range items {
		out = append(out, FromQuestion(q))
	}
	return out
}

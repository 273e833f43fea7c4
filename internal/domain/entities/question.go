package entities

import "time"

// QuestionStatus represents the lifecycle of a question sent from the landing page.
type QuestionStatus string

const (
	QuestionStatusPending  QuestionStatus = "pending"
	QuestionStatusAnswered QuestionStatus = "answered"
	QuestionStatusArchived QuestionStatus = "archived"
)

// Question is a Q&A inbox entry.
//
// Questions are never deleted: archiving keeps them for the activity log.
type Question struct {
	ID         string         `json:"id"`
	Email      string         `json:"email"`
	Question   string         `json:"question"`
	Status     QuestionStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	Answer     string         `json:"answer,omitempty"`
	AnsweredAt *time.Time     `json:"answered_at,omitempty"`
	AnsweredBy string         `json:"answered_by,omitempty"`
	ArchivedAt *time.Time     `json:"archived_at,omitempty"`
	ArchivedBy string         `json:"archived_by,omitempty"`
}

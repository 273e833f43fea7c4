package entities

import "time"

type ActivityType string

const (
	ActivityTypeRegistration ActivityType = "registration"
	ActivityTypePayment      ActivityType = "payment"
	ActivityTypeQuestion     ActivityType = "question"
)

// ActivityEntry is a derived, read-only line of the admin activity log.
type ActivityEntry struct {
	Date     time.Time    `json:"date"`
	Actor    string       `json:"actor"`
	Action   string       `json:"action"`
	Type     ActivityType `json:"type"`
	TargetID string       `json:"target_id"`
}

package interfaces

import "time"

// ITokenIssuer signs admin session tokens.

type ITokenIssuer interface {
	Issue(email string) (token string, expiresAt time.Time, err error)
}

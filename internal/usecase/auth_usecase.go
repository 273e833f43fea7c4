package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"temporada_ferias/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// dummyHash keeps the response time of unknown emails close to that of
// known ones.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("temporada-ferias"), bcrypt.DefaultCost)

// Session is what a successful admin login returns.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IAuthUseCase authenticates the organizers that use the admin area.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (Session, error)
}

type AuthUseCase struct {
	accounts map[string]string
	issuer   interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase takes the admin accounts as lowercase email -> bcrypt hash.
func NewAuthUseCase(accounts map[string]string, issuer interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, issuer: issuer}
}

func (u *AuthUseCase) Login(_ context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	hash, known := u.accounts[email]
	if !known {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		zap.L().Warn("[auth][usecase] login unknown account", zap.String("email", email))
		return Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		zap.L().Warn("[auth][usecase] login wrong password", zap.String("email", email))
		return Session{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.Issue(email)
	if err != nil {
		zap.L().Error("[auth][usecase] token issue failed", zap.String("email", email), zap.Error(err))
		return Session{}, err
	}
	zap.L().Info("[auth][usecase] login success", zap.String("email", email))
	return Session{Token: token, Email: email, ExpiresAt: expiresAt}, nil
}

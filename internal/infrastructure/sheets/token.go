package sheets

import (
	"context"
	"crypto/rsa"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sheetsScope   = "https://www.googleapis.com/auth/spreadsheets"
	jwtBearerType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

// serviceAccountToken exchanges a signed service-account assertion for an
// OAuth access token and caches it until shortly before it expires.
type serviceAccountToken struct {
	client   *resty.Client
	email    string
	key      *rsa.PrivateKey
	tokenURL string
	now      func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenError struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

func (s *serviceAccountToken) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.token != "" && now.Before(s.expires) {
		return s.token, nil
	}

	assertion, err := s.assertion(now)
	if err != nil {
		return "", err
	}

	var ok tokenResponse
	var failure tokenError
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": jwtBearerType,
			"assertion":  assertion,
		}).
		SetResult(&ok).
		SetError(&failure).
		Post(s.tokenURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() || ok.AccessToken == "" {
		return "", fmt.Errorf("google oauth: status %d: %s %s", resp.StatusCode(), failure.Error, failure.Description)
	}

	s.token = ok.AccessToken
	// refresh one minute early
	s.expires = now.Add(time.Duration(ok.ExpiresIn)*time.Second - time.Minute)
	return s.token, nil
}

func (s *serviceAccountToken) assertion(now time.Time) (string, error) {
	claims := struct {
		Scope string `json:"scope"`
		jwt.RegisteredClaims
	}{
		Scope: sheetsScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.email,
			Audience:  jwt.ClaimStrings{s.tokenURL},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
}

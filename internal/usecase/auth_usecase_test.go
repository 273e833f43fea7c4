package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "temporada_ferias/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	accounts := map[string]string{"admin@upa.org": string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		issuer := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(accounts, issuer)

		exp := fixedNow.Add(12 * time.Hour)
		issuer.EXPECT().Issue("admin@upa.org").Return("tok", exp, nil)

		s, err := uc.Login(context.Background(), " Admin@UPA.org ", "s3nha-forte")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Token != "tok" || s.Email != "admin@upa.org" || !s.ExpiresAt.Equal(exp) {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@upa.org", "errada"},
		{"unknown email", "outro@upa.org", "s3nha-forte"},
		{"empty password", "admin@upa.org", ""},
		{"empty email", "", "s3nha-forte"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := NewAuthUseCase(accounts, mock_interfaces.NewMockITokenIssuer(ctrl))
			if _, err := uc.Login(context.Background(), tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}

	t.Run("issuer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		issuer := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAuthUseCase(accounts, issuer)
		issuer.EXPECT().Issue(gomock.Any()).Return("", time.Time{}, errors.New("sign"))

		if _, err := uc.Login(context.Background(), "admin@upa.org", "s3nha-forte"); err == nil || errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected signing error, got %v", err)
		}
	})
}

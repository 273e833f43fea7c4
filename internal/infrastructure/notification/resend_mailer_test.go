package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"temporada_ferias/internal/domain/entities"
)

type capturedEmail struct {
	auth string
	body sendEmailRequest
}

func newResendServer(t *testing.T, status int, reply string) (*httptest.Server, *[]capturedEmail) {
	t.Helper()
	var got []capturedEmail
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body sendEmailRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		got = append(got, capturedEmail{auth: r.Header.Get("Authorization"), body: body})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestResendMailer_Send(t *testing.T) {
	srv, got := newResendServer(t, http.StatusOK, `{"id":"em_123"}`)
	m, err := NewResendMailer(Options{APIKey: "re_test", BaseURL: srv.URL + "/", From: "Equipe <contato@exemplo.com>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("registration received", func(t *testing.T) {
		if err := m.RegistrationReceived(ctx, entities.Registration{Name: "Maria", Email: "mae@exemplo.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := (*got)[len(*got)-1]
		if last.auth != "Bearer re_test" {
			t.Fatalf("unexpected auth header %q", last.auth)
		}
		if last.body.To[0] != "mae@exemplo.com" || last.body.Subject != subjectRegistrationReceived || last.body.From != "Equipe <contato@exemplo.com>" {
			t.Fatalf("unexpected body: %+v", last.body)
		}
		if !strings.Contains(last.body.HTML, "Olá, Maria!") {
			t.Fatalf("name missing from html")
		}
	})

	t.Run("payment confirmed", func(t *testing.T) {
		if err := m.PaymentConfirmed(ctx, entities.Registration{Name: "João", Email: "pai@exemplo.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := (*got)[len(*got)-1]
		if last.body.Subject != subjectPaymentConfirmed || !strings.Contains(last.body.HTML, "Oba, João!") {
			t.Fatalf("unexpected body: %+v", last.body)
		}
	})

	t.Run("question answered escapes user input", func(t *testing.T) {
		q := entities.Question{Email: "pai@exemplo.com", Question: "<script>alert(1)</script>", Answer: "Saída às 7h."}
		if err := m.QuestionAnswered(ctx, q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := (*got)[len(*got)-1]
		if strings.Contains(last.body.HTML, "<script>") || !strings.Contains(last.body.HTML, "Saída às 7h.") {
			t.Fatalf("unexpected html: %s", last.body.HTML)
		}
	})
}

func TestResendMailer_APIError(t *testing.T) {
	srv, _ := newResendServer(t, http.StatusUnprocessableEntity, `{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`)
	m, _ := NewResendMailer(Options{APIKey: "re_test", BaseURL: srv.URL})

	err := m.PaymentConfirmed(context.Background(), entities.Registration{Name: "Maria", Email: "mae@exemplo.com"})
	if err == nil || !strings.Contains(err.Error(), "Invalid from field") {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestNewResendMailer(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		if _, err := NewResendMailer(Options{}); err != ErrMissingResendAPIKey {
			t.Fatalf("expected ErrMissingResendAPIKey, got %v", err)
		}
	})

	t.Run("mock mode sends nothing", func(t *testing.T) {
		m, err := NewResendMailer(Options{MockMode: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := m.RegistrationReceived(context.Background(), entities.Registration{Name: "Maria", Email: "mae@exemplo.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

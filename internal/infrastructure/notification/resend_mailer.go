package notification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

const (
	subjectRegistrationReceived = "Inscrição para a Temporada de Férias 2026 Recebida!"
	subjectPaymentConfirmed     = "Pagamento Confirmado! Nos vemos na Temporada de Férias 2026!"
	subjectQuestionAnswered     = "Sua dúvida sobre a Temporada de Férias foi respondida!"
)

type Options struct {
	APIKey   string
	BaseURL  string
	From     string
	MockMode bool
	Timeout  time.Duration
}

// ResendMailer sends the transactional emails through the Resend HTTP API.
// In mock mode nothing leaves the process; the message is only logged.
type ResendMailer struct {
	client   *resty.Client
	from     string
	mockMode bool
}

var _ interfaces.INotifier = (*ResendMailer)(nil)

func NewResendMailer(opts Options) (*ResendMailer, error) {
	if opts.MockMode {
		zap.L().Info("[email][resend] mock mode enabled")
		return &ResendMailer{from: opts.From, mockMode: true}, nil
	}
	if opts.APIKey == "" {
		return nil, ErrMissingResendAPIKey
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetAuthToken(opts.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(opts.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		})

	zap.L().Info("[email][resend] client initialized")
	return &ResendMailer{client: client, from: opts.From}, nil
}

func (m *ResendMailer) RegistrationReceived(ctx context.Context, r entities.Registration) error {
	html, err := render(registrationReceivedTmpl, map[string]string{"Name": r.Name})
	if err != nil {
		return err
	}
	return m.send(ctx, r.Email, subjectRegistrationReceived, html)
}

func (m *ResendMailer) PaymentConfirmed(ctx context.Context, r entities.Registration) error {
	html, err := render(paymentConfirmedTmpl, map[string]string{"Name": r.Name})
	if err != nil {
		return err
	}
	return m.send(ctx, r.Email, subjectPaymentConfirmed, html)
}

func (m *ResendMailer) QuestionAnswered(ctx context.Context, q entities.Question) error {
	html, err := render(questionAnsweredTmpl, map[string]string{"Question": q.Question, "Answer": q.Answer})
	if err != nil {
		return err
	}
	return m.send(ctx, q.Email, subjectQuestionAnswered, html)
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

type resendError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (m *ResendMailer) send(ctx context.Context, to, subject, html string) error {
	if m.mockMode {
		zap.L().Info("[email][resend] mock send", zap.String("to", to), zap.String("subject", subject))
		return nil
	}
	if to == "" {
		return errors.New("email recipient is empty")
	}

	var ok sendEmailResponse
	var failure resendError
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(sendEmailRequest{From: m.from, To: []string{to}, Subject: subject, HTML: html}).
		SetResult(&ok).
		SetError(&failure).
		Post("/emails")
	if err != nil {
		zap.L().Error("[email][resend] request failed", zap.String("to", to), zap.Error(err))
		return err
	}
	if resp.IsError() {
		zap.L().Error("[email][resend] api error",
			zap.String("to", to), zap.Int("status", resp.StatusCode()), zap.String("message", failure.Message))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode(), failure.Message)
	}

	zap.L().Info("[email][resend] sent", zap.String("to", to), zap.String("id", ok.ID))
	return nil
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package response

import (
	"testing"
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/domain/ledger"
	"temporada_ferias/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromRegistration(t *testing.T) {
	now := time.Date(2025, 12, 10, 15, 0, 0, 0, time.UTC)
	plan, err := ledger.NewPlan(entities.PaymentMethodCarne, decimal.RequireFromString("150"), now)
	if err != nil {
		t.Fatalf("new plan: %v", err)
	}
	plan, err = ledger.RecordInstallment(plan, 2, decimal.RequireFromString("190.5"), "admin@upa.org", now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	r := entities.Registration{
		ID: "abc", Name: "Ana Clara", Email: "mae@exemplo.com",
		Fee: decimal.RequireFromString("530"), Payment: plan, CreatedAt: now, UpdatedAt: now,
	}

	res := FromRegistration(r)
	if res.Fee != "530.00" || res.Payment.TotalPaid != "340.50" {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.Payment.State != string(ledger.StatePendingAwaitingLast) || res.Payment.InstallmentsTotal != 3 {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
	if len(res.Payment.Installments) != 2 || res.Payment.Installments[1].Amount != "190.50" || res.Payment.Installments[1].ConfirmedBy != "admin@upa.org" {
		t.Fatalf("unexpected installments: %+v", res.Payment.Installments)
	}
	if res.Warning != "" {
		t.Fatalf("warning should be empty by default")
	}

	if got := FromRegistrations(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestFromPixCharge(t *testing.T) {
	res := FromPixCharge(usecase.PixCharge{RegistrationID: "abc", Payload: "000201", Amount: "530.00", TransactionID: "TX"}, "/v1/registrations/abc/pix/qrcode")
	if res.Payload != "000201" || res.Amount != "530.00" || res.QRCodeURL != "/v1/registrations/abc/pix/qrcode" {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestFromQuestion(t *testing.T) {
	at := time.Date(2025, 12, 10, 15, 0, 0, 0, time.UTC)
	q := entities.Question{ID: "q1", Email: "a@b.com", Question: "Qual o horário?", Status: entities.QuestionStatusAnswered, Answer: "Saída às 7h da igreja.", AnsweredAt: &at}
	res := FromQuestion(q)
	if res.Status != "answered" || res.Answer != q.Answer || res.AnsweredAt == nil {
		t.Fatalf("unexpected response %+v", res)
	}
}

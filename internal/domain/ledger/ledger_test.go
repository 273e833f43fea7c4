package ledger

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"temporada_ferias/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var at = time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustPlan(t *testing.T, method entities.PaymentMethod) entities.PaymentPlan {
	t.Helper()
	plan, err := NewPlan(method, decimal.Zero, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return plan
}

func TestNewPlan(t *testing.T) {
	cases := []struct {
		name      string
		method    entities.PaymentMethod
		first     string
		wantTotal int
		wantPaid  string
		wantCount int
	}{
		{name: "presencial", method: entities.PaymentMethodPresencial, first: "0", wantTotal: 1, wantPaid: "0", wantCount: 0},
		{name: "pix", method: entities.PaymentMethodPix, first: "0", wantTotal: 1, wantPaid: "0", wantCount: 0},
		{name: "carne without down payment", method: entities.PaymentMethodCarne, first: "0", wantTotal: 3, wantPaid: "0", wantCount: 0},
		{name: "carne with pix down payment", method: entities.PaymentMethodCarne, first: "176.67", wantTotal: 3, wantPaid: "176.67", wantCount: 1},
		{name: "pix ignores down payment", method: entities.PaymentMethodPix, first: "100", wantTotal: 1, wantPaid: "0", wantCount: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := NewPlan(tc.method, d(tc.first), at)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plan.Confirmed || plan.ConfirmedBy != "" {
				t.Fatalf("new plan must not be confirmed: %+v", plan)
			}
			if plan.InstallmentsTotal != tc.wantTotal {
				t.Fatalf("expected %d installments, got %d", tc.wantTotal, plan.InstallmentsTotal)
			}
			if !plan.TotalPaid.Equal(d(tc.wantPaid)) || len(plan.PaidInstallments) != tc.wantCount {
				t.Fatalf("unexpected ledger: %+v", plan)
			}
			if tc.wantCount == 1 && plan.PaidInstallments[0].ConfirmedBy != ActorSystem {
				t.Fatalf("auto-recorded installment must be attributed to system, got %q", plan.PaidInstallments[0].ConfirmedBy)
			}
		})
	}

	if _, err := NewPlan("boleto", decimal.Zero, at); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestRecordInstallment_TotalIsAlwaysTheSum(t *testing.T) {
	plan := mustPlan(t, entities.PaymentMethodCarne)
	steps := []struct {
		number int
		amount string
	}{
		{2, "0.10"}, {1, "0.20"}, {3, "176.66"}, {1, "176.67"}, {2, "176.67"},
	}
	for _, s := range steps {
		var err error
		plan, err = RecordInstallment(plan, s.number, d(s.amount), "admin@upa.org", at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum := decimal.Zero
		for _, in := range plan.PaidInstallments {
			sum = sum.Add(in.Amount)
		}
		if !plan.TotalPaid.Equal(sum) {
			t.Fatalf("total %s differs from sum %s", plan.TotalPaid, sum)
		}
	}
	if !plan.TotalPaid.Equal(d("530.00")) {
		t.Fatalf("expected exact 530.00, got %s", plan.TotalPaid)
	}
	for i, in := range plan.PaidInstallments {
		if in.Number != i+1 {
			t.Fatalf("installments not ordered by number: %+v", plan.PaidInstallments)
		}
	}
	if plan.Confirmed {
		t.Fatalf("record must never confirm the plan")
	}
}

func TestRecordInstallment_ReplacesSameNumber(t *testing.T) {
	plan := mustPlan(t, entities.PaymentMethodCarne)
	plan, _ = RecordInstallment(plan, 1, d("100"), "a", at)
	plan, err := RecordInstallment(plan, 1, d("150"), "b", at.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.PaidInstallments) != 1 {
		t.Fatalf("expected exactly one entry, got %+v", plan.PaidInstallments)
	}
	in := plan.PaidInstallments[0]
	if !in.Amount.Equal(d("150")) || in.ConfirmedBy != "b" {
		t.Fatalf("expected latest entry to win, got %+v", in)
	}
	if !plan.TotalPaid.Equal(d("150")) {
		t.Fatalf("unexpected total %s", plan.TotalPaid)
	}
}

func TestRecordInstallment_Errors(t *testing.T) {
	carne := mustPlan(t, entities.PaymentMethodCarne)
	confirmed := carne
	confirmed.Confirmed = true

	cases := []struct {
		name   string
		plan   entities.PaymentPlan
		number int
		amount string
		want   error
	}{
		{"zero amount", carne, 1, "0", ErrInvalidAmount},
		{"negative amount", carne, 1, "-5", ErrInvalidAmount},
		{"sub-centavo amount", carne, 1, "10.001", ErrInvalidAmount},
		{"installment zero", carne, 0, "10", ErrInvalidInstallment},
		{"installment beyond plan", carne, 4, "10", ErrInvalidInstallment},
		{"confirmed plan", confirmed, 1, "10", ErrAlreadyConfirmed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.plan
			got, err := RecordInstallment(tc.plan, tc.number, d(tc.amount), "x", at)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !reflect.DeepEqual(got, before) {
				t.Fatalf("plan changed on error: %+v", got)
			}
		})
	}
}

func TestRecordInstallment_DoesNotMutateInput(t *testing.T) {
	plan := mustPlan(t, entities.PaymentMethodCarne)
	plan, _ = RecordInstallment(plan, 1, d("100"), "a", at)
	snapshot := plan.PaidInstallments[0]

	_, err := RecordInstallment(plan, 1, d("999"), "b", at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.PaidInstallments[0] != snapshot || !plan.TotalPaid.Equal(d("100")) {
		t.Fatalf("input plan was mutated: %+v", plan)
	}
}

func TestFinalize_CarneScenario(t *testing.T) {
	plan := mustPlan(t, entities.PaymentMethodCarne)
	plan, _ = RecordInstallment(plan, 1, d("150.00"), "admin", at)
	plan, _ = RecordInstallment(plan, 2, d("150.00"), "admin", at)
	if StateOf(plan) != StatePendingAwaitingLast {
		t.Fatalf("expected awaiting-last, got %s", StateOf(plan))
	}

	plan, err := Finalize(plan, 3, d("180.00"), "tesouraria@upa.org", at, d("530"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.TotalPaid.Equal(d("480.00")) || !plan.Confirmed {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if plan.ConfirmedBy != "tesouraria@upa.org" || plan.ConfirmedAt == nil || !plan.ConfirmedAt.Equal(at) {
		t.Fatalf("confirmation not recorded: %+v", plan)
	}
	if StateOf(plan) != StateConfirmed {
		t.Fatalf("expected confirmed state, got %s", StateOf(plan))
	}
}

func TestFinalize_InstantTransferScenario(t *testing.T) {
	plan := mustPlan(t, entities.PaymentMethodPix)
	if StateOf(plan) != StatePendingPartial {
		t.Fatalf("expected pending partial, got %s", StateOf(plan))
	}

	plan, err := Finalize(plan, 1, d("530.00"), "admin", at, d("530"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Confirmed || len(plan.PaidInstallments) != 1 || !plan.TotalPaid.Equal(d("530")) {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

func TestFinalize_Errors(t *testing.T) {
	carne := mustPlan(t, entities.PaymentMethodCarne)
	carneFirstOnly, _ := RecordInstallment(carne, 1, d("150"), "a", at)
	carneGap, _ := RecordInstallment(carne, 2, d("150"), "a", at)
	pix := mustPlan(t, entities.PaymentMethodPix)

	cases := []struct {
		name   string
		plan   entities.PaymentPlan
		number int
		amount string
		fee    string
		want   error
	}{
		{"carne not last installment", carneFirstOnly, 2, "150", "530", ErrInstallmentOutOfOrder},
		{"carne missing second", carneFirstOnly, 3, "230", "530", ErrInstallmentOutOfOrder},
		{"carne missing first", carneGap, 3, "230", "530", ErrInstallmentOutOfOrder},
		{"pix amount differs from fee", pix, 1, "500", "530", ErrAmountMismatch},
		{"mismatch is an invalid amount", pix, 1, "500", "530", ErrInvalidAmount},
		{"zero amount", pix, 1, "0", "530", ErrInvalidAmount},
		{"pix wrong installment", pix, 2, "530", "530", ErrInvalidInstallment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Finalize(tc.plan, tc.number, d(tc.amount), "admin", at, d(tc.fee))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !reflect.DeepEqual(got, tc.plan) {
				t.Fatalf("plan changed on error: %+v", got)
			}
		})
	}

	presencial := mustPlan(t, entities.PaymentMethodPresencial)
	if _, err := Finalize(presencial, 1, d("265"), "admin", at, decimal.Zero); err != nil {
		t.Fatalf("unknown fee must not block finalize, got %v", err)
	}
}

func TestFinalize_AlreadyConfirmedLeavesPlanUnchanged(t *testing.T) {
	plan := mustPlan(t, entities.PaymentMethodPix)
	plan, err := Finalize(plan, 1, d("530"), "first", at, d("530"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := Finalize(plan, 1, d("530"), "second", at.Add(time.Hour), d("530"))
	if !errors.Is(err, ErrAlreadyConfirmed) {
		t.Fatalf("expected ErrAlreadyConfirmed, got %v", err)
	}
	if !reflect.DeepEqual(again, plan) {
		t.Fatalf("plan changed after failed finalize: %+v", again)
	}
	if again.ConfirmedBy != "first" || !again.TotalPaid.Equal(d("530")) || len(again.PaidInstallments) != 1 {
		t.Fatalf("unexpected plan: %+v", again)
	}
}

func TestToggleSpecialStatus(t *testing.T) {
	r := entities.Registration{ID: "r1"}
	on := ToggleSpecialStatus(r, true)
	if !on.IsAdoptee || r.IsAdoptee {
		t.Fatalf("expected copy with flag set, got %+v / %+v", on, r)
	}
	if off := ToggleSpecialStatus(on, false); off.IsAdoptee {
		t.Fatalf("expected flag cleared")
	}
}

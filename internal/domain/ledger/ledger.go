// Package ledger tracks installment payments against a registration's payment
// plan and gates the transition to a confirmed payment.
//
// Every function is pure: inputs are never mutated, and on error the caller's
// value is left exactly as it was. Persisting the returned value is the
// caller's job.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"temporada_ferias/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ActorSystem attributes entries recorded automatically at signup.
const ActorSystem = "system"

// carneInstallments is the number of installments offered in this deployment.
const carneInstallments = 3

var (
	ErrInvalidAmount         = errors.New("invalid installment amount")
	ErrInvalidInstallment    = errors.New("invalid installment number")
	ErrAlreadyConfirmed      = errors.New("payment already confirmed")
	ErrInstallmentOutOfOrder = errors.New("installment out of order")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")

	// ErrAmountMismatch is an ErrInvalidAmount raised when a single payment
	// does not match the registration fee.
	ErrAmountMismatch = fmt.Errorf("%w: amount does not match registration fee", ErrInvalidAmount)
)

// State is the derived position of a plan in its state machine.
type State string

const (
	StatePendingPartial      State = "pending_partial"
	StatePendingAwaitingLast State = "pending_awaiting_last"
	StateConfirmed           State = "confirmed"
)

// InstallmentsFor returns how many installments a payment method is split in.
func InstallmentsFor(method entities.PaymentMethod) int {
	if method == entities.PaymentMethodCarne {
		return carneInstallments
	}
	return 1
}

// NewPlan creates the plan stored with a new registration. A positive
// firstInstallment on a carnê plan is recorded as installment 1 by ActorSystem.
func NewPlan(method entities.PaymentMethod, firstInstallment decimal.Decimal, at time.Time) (entities.PaymentPlan, error) {
	if !method.Valid() {
		return entities.PaymentPlan{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}
	plan := entities.PaymentPlan{
		Method:            method,
		InstallmentsTotal: InstallmentsFor(method),
		PaidInstallments:  []entities.Installment{},
		TotalPaid:         decimal.Zero,
	}
	if method != entities.PaymentMethodCarne || !firstInstallment.IsPositive() {
		return plan, nil
	}
	return RecordInstallment(plan, 1, firstInstallment, ActorSystem, at)
}

// RecordInstallment upserts installment number with amount and recomputes the
// total. It never confirms the plan.
func RecordInstallment(plan entities.PaymentPlan, number int, amount decimal.Decimal, actor string, at time.Time) (entities.PaymentPlan, error) {
	if plan.Confirmed {
		return plan, ErrAlreadyConfirmed
	}
	if err := validateAmount(amount); err != nil {
		return plan, err
	}
	if number < 1 || number > plan.InstallmentsTotal {
		return plan, fmt.Errorf("%w: %d (plan has %d)", ErrInvalidInstallment, number, plan.InstallmentsTotal)
	}
	return upsert(plan, entities.Installment{
		Number:      number,
		Amount:      amount,
		PaidAt:      at.UTC(),
		ConfirmedBy: actor,
	}), nil
}

// Finalize records the closing installment and confirms the plan.
//
// Carnê plans must be closed on their last installment with every earlier one
// already recorded. Single payments (presencial, pix) must match fee when fee
// is known (positive).
func Finalize(plan entities.PaymentPlan, number int, amount decimal.Decimal, actor string, at time.Time, fee decimal.Decimal) (entities.PaymentPlan, error) {
	if plan.Confirmed {
		return plan, ErrAlreadyConfirmed
	}
	if err := validateAmount(amount); err != nil {
		return plan, err
	}

	if plan.Method == entities.PaymentMethodCarne {
		if number != plan.InstallmentsTotal {
			return plan, fmt.Errorf("%w: finalize must use installment %d, got %d", ErrInstallmentOutOfOrder, plan.InstallmentsTotal, number)
		}
		for n := 1; n < plan.InstallmentsTotal; n++ {
			if _, ok := plan.Installment(n); !ok {
				return plan, fmt.Errorf("%w: installment %d not recorded", ErrInstallmentOutOfOrder, n)
			}
		}
	} else if fee.IsPositive() && !amount.Equal(fee) {
		return plan, fmt.Errorf("%w: got %s, fee %s", ErrAmountMismatch, amount.StringFixed(2), fee.StringFixed(2))
	}

	next, err := RecordInstallment(plan, number, amount, actor, at)
	if err != nil {
		return plan, err
	}
	confirmedAt := at.UTC()
	next.Confirmed = true
	next.ConfirmedBy = actor
	next.ConfirmedAt = &confirmedAt
	return next, nil
}

// ToggleSpecialStatus sets the sponsorship ("Adote") marker.
func ToggleSpecialStatus(r entities.Registration, flag bool) entities.Registration {
	r.IsAdoptee = flag
	return r
}

// StateOf derives the plan state.
func StateOf(plan entities.PaymentPlan) State {
	if plan.Confirmed {
		return StateConfirmed
	}
	if plan.InstallmentsTotal > 1 {
		for n := 1; n < plan.InstallmentsTotal; n++ {
			if _, ok := plan.Installment(n); !ok {
				return StatePendingPartial
			}
		}
		return StatePendingAwaitingLast
	}
	return StatePendingPartial
}

// Total sums the installment amounts.
func Total(installments []entities.Installment) decimal.Decimal {
	total := decimal.Zero
	for _, in := range installments {
		total = total.Add(in.Amount)
	}
	return total
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, amount.String())
	}
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: %s has more than two fraction digits", ErrInvalidAmount, amount.String())
	}
	return nil
}

// upsert returns a copy of plan with in replacing any entry of the same number.
func upsert(plan entities.PaymentPlan, in entities.Installment) entities.PaymentPlan {
	installments := make([]entities.Installment, 0, len(plan.PaidInstallments)+1)
	for _, existing := range plan.PaidInstallments {
		if existing.Number != in.Number {
			installments = append(installments, existing)
		}
	}
	installments = append(installments, in)
	sort.Slice(installments, func(i, j int) bool {
		return installments[i].Number < installments[j].Number
	})

	plan.PaidInstallments = installments
	plan.TotalPaid = Total(installments)
	return plan
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/domain/ledger"
	"temporada_ferias/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxUpdateAttempts bounds the read-modify-write loop when another admin
// writes the same registration concurrently.
const maxUpdateAttempts = 3

var (
	ErrConcurrentUpdate   = errors.New("registration was modified concurrently, retry")
	ErrNotificationFailed = errors.New("payment confirmed but notification failed")
)

// IPaymentLedgerUseCase exposes the admin operations over a registration's
// payment plan. Every operation persists through a version-checked write.

type IPaymentLedgerUseCase interface {
	RecordInstallment(ctx context.Context, id string, number int, amount decimal.Decimal, actor string) (entities.Registration, error)
	Finalize(ctx context.Context, id string, number int, amount decimal.Decimal, actor string) (entities.Registration, error)
	SetAdoptee(ctx context.Context, id string, flag bool) (entities.Registration, error)
}

type PaymentLedgerUseCase struct {
	repo     interfaces.IRegistrationRepository
	notifier interfaces.INotifier
	sheet    interfaces.IRegistrationSheet
	now      func() time.Time
}

var _ IPaymentLedgerUseCase = (*PaymentLedgerUseCase)(nil)

func NewPaymentLedgerUseCase(repo interfaces.IRegistrationRepository, notifier interfaces.INotifier, sheet interfaces.IRegistrationSheet) *PaymentLedgerUseCase {
	return &PaymentLedgerUseCase{repo: repo, notifier: notifier, sheet: sheet, now: time.Now}
}

func (u *PaymentLedgerUseCase) RecordInstallment(ctx context.Context, id string, number int, amount decimal.Decimal, actor string) (entities.Registration, error) {
	zap.L().Info("[ledger][usecase] record-installment start",
		zap.String("registration_id", id), zap.Int("installment", number),
		zap.String("amount", amount.String()), zap.String("actor", actor))

	return u.mutate(ctx, id, "record-installment", func(r entities.Registration, at time.Time) (entities.Registration, error) {
		plan, err := ledger.RecordInstallment(r.Payment, number, amount, actor, at)
		if err != nil {
			return r, err
		}
		r.Payment = plan
		return r, nil
	})
}

// Finalize closes the plan. When the confirmation email cannot be sent the
// confirmed registration is still returned, together with ErrNotificationFailed.
func (u *PaymentLedgerUseCase) Finalize(ctx context.Context, id string, number int, amount decimal.Decimal, actor string) (entities.Registration, error) {
	zap.L().Info("[ledger][usecase] finalize start",
		zap.String("registration_id", id), zap.Int("installment", number),
		zap.String("amount", amount.String()), zap.String("actor", actor))

	saved, err := u.mutate(ctx, id, "finalize", func(r entities.Registration, at time.Time) (entities.Registration, error) {
		plan, err := ledger.Finalize(r.Payment, number, amount, actor, at, r.Fee)
		if err != nil {
			return r, err
		}
		r.Payment = plan
		r.PaidAt = plan.ConfirmedAt
		return r, nil
	})
	if err != nil {
		return entities.Registration{}, err
	}

	if u.notifier == nil {
		return saved, nil
	}
	if err := u.notifier.PaymentConfirmed(ctx, saved); err != nil {
		zap.L().Warn("[ledger][usecase] finalize notification failed",
			zap.String("registration_id", saved.ID), zap.String("email", saved.Email), zap.Error(err))
		return saved, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	zap.L().Info("[ledger][usecase] finalize success",
		zap.String("registration_id", saved.ID), zap.String("total_paid", saved.Payment.TotalPaid.StringFixed(2)))
	return saved, nil
}

func (u *PaymentLedgerUseCase) SetAdoptee(ctx context.Context, id string, flag bool) (entities.Registration, error) {
	return u.mutate(ctx, id, "set-adoptee", func(r entities.Registration, _ time.Time) (entities.Registration, error) {
		return ledger.ToggleSpecialStatus(r, flag), nil
	})
}

type registrationMutation func(r entities.Registration, at time.Time) (entities.Registration, error)

// mutate runs read -> apply -> conditional write, re-reading on version conflicts.
func (u *PaymentLedgerUseCase) mutate(ctx context.Context, id, op string, apply registrationMutation) (entities.Registration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Registration{}, ErrInvalidRegistrationID
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			zap.L().Error("[ledger][usecase] load failed", zap.String("op", op), zap.String("registration_id", id), zap.Error(err))
			return entities.Registration{}, err
		}
		if current.ID == "" {
			return entities.Registration{}, ErrRegistrationNotFound
		}

		at := u.now().UTC()
		next, err := apply(current, at)
		if err != nil {
			zap.L().Info("[ledger][usecase] rejected", zap.String("op", op), zap.String("registration_id", id), zap.Error(err))
			return entities.Registration{}, err
		}
		next.UpdatedAt = at

		saved, err := u.repo.Update(ctx, next)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			zap.L().Warn("[ledger][usecase] version conflict, retrying",
				zap.String("op", op), zap.String("registration_id", id), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			zap.L().Error("[ledger][usecase] update failed", zap.String("op", op), zap.String("registration_id", id), zap.Error(err))
			return entities.Registration{}, err
		}

		u.updateSheetRow(ctx, saved)
		zap.L().Info("[ledger][usecase] saved",
			zap.String("op", op), zap.String("registration_id", id), zap.Int64("version", saved.Version),
			zap.String("state", string(ledger.StateOf(saved.Payment))))
		return saved, nil
	}

	zap.L().Warn("[ledger][usecase] giving up after conflicts", zap.String("op", op), zap.String("registration_id", id))
	return entities.Registration{}, ErrConcurrentUpdate
}

func (u *PaymentLedgerUseCase) updateSheetRow(ctx context.Context, r entities.Registration) {
	if u.sheet == nil {
		return
	}
	if err := u.sheet.Update(ctx, r); err != nil {
		zap.L().Warn("[ledger][usecase] sheet update failed", zap.String("registration_id", r.ID), zap.Error(err))
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/domain/ledger"
	"temporada_ferias/internal/usecase/interfaces"
	mock_interfaces "temporada_ferias/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 12, 10, 15, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func carneRegistration(t *testing.T) entities.Registration {
	t.Helper()
	plan, err := ledger.NewPlan(entities.PaymentMethodCarne, decimal.Zero, fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return entities.Registration{
		ID:      "reg1",
		Name:    "Maria Souza",
		Email:   "mae@exemplo.com",
		Fee:     dec("530"),
		Payment: plan,
		Version: 4,
	}
}

// saveWithBump emulates a successful compare-and-swap.
func saveWithBump(_ context.Context, r entities.Registration) (entities.Registration, error) {
	r.Version++
	return r, nil
}

func newLedgerUseCase(ctrl *gomock.Controller) (*PaymentLedgerUseCase, *mock_interfaces.MockIRegistrationRepository, *mock_interfaces.MockINotifier, *mock_interfaces.MockIRegistrationSheet) {
	repo := mock_interfaces.NewMockIRegistrationRepository(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	sheet := mock_interfaces.NewMockIRegistrationSheet(ctrl)
	uc := NewPaymentLedgerUseCase(repo, notifier, sheet)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, notifier, sheet
}

func TestPaymentLedgerUseCase_RecordInstallment(t *testing.T) {
	t.Run("records and bumps version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, sheet := newLedgerUseCase(ctrl)
		reg := carneRegistration(t)

		repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(reg, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r entities.Registration) (entities.Registration, error) {
			if r.Version != 4 {
				t.Fatalf("expected update guarded by read version 4, got %d", r.Version)
			}
			return saveWithBump(ctx, r)
		})
		sheet.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.RecordInstallment(context.Background(), "reg1", 1, dec("150.00"), "admin@upa.org")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 5 || !got.Payment.TotalPaid.Equal(dec("150")) || got.Payment.Confirmed {
			t.Fatalf("unexpected registration: %+v", got)
		}
		if in, ok := got.Payment.Installment(1); !ok || in.ConfirmedBy != "admin@upa.org" {
			t.Fatalf("installment not recorded: %+v", got.Payment.PaidInstallments)
		}
		if !got.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("expected updated_at stamped, got %v", got.UpdatedAt)
		}
	})

	t.Run("retries from a fresh read on version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, sheet := newLedgerUseCase(ctrl)
		stale := carneRegistration(t)
		fresh := stale
		fresh.Version = 5
		fresh.Payment, _ = ledger.RecordInstallment(fresh.Payment, 1, dec("100"), "other@upa.org", fixedNow)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(stale, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Registration{}, interfaces.ErrVersionConflict),
			repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(fresh, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(saveWithBump),
		)
		sheet.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.RecordInstallment(context.Background(), "reg1", 2, dec("150"), "admin@upa.org")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 6 || !got.Payment.TotalPaid.Equal(dec("250")) || len(got.Payment.PaidInstallments) != 2 {
			t.Fatalf("expected write on top of the concurrent one, got %+v", got)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newLedgerUseCase(ctrl)
		reg := carneRegistration(t)

		repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(reg, nil).Times(maxUpdateAttempts)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Registration{}, interfaces.ErrVersionConflict).Times(maxUpdateAttempts)

		_, err := uc.RecordInstallment(context.Background(), "reg1", 1, dec("150"), "admin")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("ledger rejection skips the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newLedgerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(carneRegistration(t), nil)

		_, err := uc.RecordInstallment(context.Background(), "reg1", 4, dec("150"), "admin")
		if !errors.Is(err, ledger.ErrInvalidInstallment) {
			t.Fatalf("expected ErrInvalidInstallment, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newLedgerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Registration{}, nil)

		_, err := uc.RecordInstallment(context.Background(), "missing", 1, dec("150"), "admin")
		if !errors.Is(err, ErrRegistrationNotFound) {
			t.Fatalf("expected ErrRegistrationNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := NewPaymentLedgerUseCase(nil, nil, nil)
		_, err := uc.RecordInstallment(context.Background(), "  ", 1, dec("150"), "admin")
		if !errors.Is(err, ErrInvalidRegistrationID) {
			t.Fatalf("expected ErrInvalidRegistrationID, got %v", err)
		}
	})

	t.Run("repository error is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newLedgerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(carneRegistration(t), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Registration{}, errors.New("db"))

		_, err := uc.RecordInstallment(context.Background(), "reg1", 1, dec("150"), "admin")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("sheet failure does not fail the operation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, sheet := newLedgerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(carneRegistration(t), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(saveWithBump)
		sheet.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("sheets down"))

		if _, err := uc.RecordInstallment(context.Background(), "reg1", 1, dec("150"), "admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentLedgerUseCase_Finalize(t *testing.T) {
	awaitingLast := func(t *testing.T) entities.Registration {
		r := carneRegistration(t)
		r.Payment, _ = ledger.RecordInstallment(r.Payment, 1, dec("150"), "admin", fixedNow)
		r.Payment, _ = ledger.RecordInstallment(r.Payment, 2, dec("150"), "admin", fixedNow)
		return r
	}

	t.Run("confirms and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, notifier, sheet := newLedgerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(awaitingLast(t), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(saveWithBump)
		sheet.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().PaymentConfirmed(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Registration) error {
			if !r.Payment.Confirmed {
				t.Fatalf("notification must be sent after confirmation")
			}
			return nil
		})

		got, err := uc.Finalize(context.Background(), "reg1", 3, dec("180"), "tesouraria@upa.org")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Payment.Confirmed || !got.Payment.TotalPaid.Equal(dec("480")) || got.Payment.ConfirmedBy != "tesouraria@upa.org" {
			t.Fatalf("unexpected plan: %+v", got.Payment)
		}
		if got.PaidAt == nil || !got.PaidAt.Equal(fixedNow) {
			t.Fatalf("expected paid_at set, got %v", got.PaidAt)
		}
	})

	t.Run("notification failure keeps the confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, notifier, sheet := newLedgerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(awaitingLast(t), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(saveWithBump)
		sheet.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().PaymentConfirmed(gomock.Any(), gomock.Any()).Return(errors.New("smtp"))

		got, err := uc.Finalize(context.Background(), "reg1", 3, dec("180"), "admin")
		if !errors.Is(err, ErrNotificationFailed) {
			t.Fatalf("expected ErrNotificationFailed, got %v", err)
		}
		if !got.Payment.Confirmed || got.Version != 5 {
			t.Fatalf("expected persisted confirmation to be returned, got %+v", got)
		}
	})

	t.Run("already confirmed does not write or notify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newLedgerUseCase(ctrl)

		confirmed := awaitingLast(t)
		confirmed.Payment, _ = ledger.Finalize(confirmed.Payment, 3, dec("180"), "first", fixedNow, confirmed.Fee)
		repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(confirmed, nil)

		_, err := uc.Finalize(context.Background(), "reg1", 3, dec("180"), "second")
		if !errors.Is(err, ledger.ErrAlreadyConfirmed) {
			t.Fatalf("expected ErrAlreadyConfirmed, got %v", err)
		}
	})

	t.Run("out of order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newLedgerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(carneRegistration(t), nil)

		_, err := uc.Finalize(context.Background(), "reg1", 3, dec("180"), "admin")
		if !errors.Is(err, ledger.ErrInstallmentOutOfOrder) {
			t.Fatalf("expected ErrInstallmentOutOfOrder, got %v", err)
		}
	})

	t.Run("concurrent finalize loses with already confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newLedgerUseCase(ctrl)

		pending := awaitingLast(t)
		winner := pending
		winner.Version = 5
		winner.Payment, _ = ledger.Finalize(winner.Payment, 3, dec("180"), "other", fixedNow, winner.Fee)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(pending, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Registration{}, interfaces.ErrVersionConflict),
			repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(winner, nil),
		)

		_, err := uc.Finalize(context.Background(), "reg1", 3, dec("180"), "admin")
		if !errors.Is(err, ledger.ErrAlreadyConfirmed) {
			t.Fatalf("expected ErrAlreadyConfirmed, got %v", err)
		}
	})
}

func TestPaymentLedgerUseCase_SetAdoptee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _, sheet := newLedgerUseCase(ctrl)

	repo.EXPECT().GetByID(gomock.Any(), "reg1").Return(carneRegistration(t), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(saveWithBump)
	sheet.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.SetAdoptee(context.Background(), "reg1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsAdoptee || got.Payment.Confirmed {
		t.Fatalf("unexpected registration: %+v", got)
	}
}

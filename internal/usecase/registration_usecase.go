package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/domain/ledger"
	"temporada_ferias/internal/domain/pix"
	"temporada_ferias/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrInvalidRegistrationID = errors.New("invalid registration id")
	ErrInvalidSignUp         = errors.New("invalid signup")
	ErrPixNotApplicable      = errors.New("registration has no pix charge")
	ErrSheetNotConfigured    = errors.New("spreadsheet integration not configured")
	ErrPixPayloadMismatch    = errors.New("generated pix payload does not match the charge")
)

// SignUpCommand is a validated-at-the-edge signup form.
type SignUpCommand struct {
	Fee     decimal.Decimal
	Method  entities.PaymentMethod
	Details entities.RegistrationDetail
}

// PixCharge is what the registrant needs to pay by instant transfer.
type PixCharge struct {
	RegistrationID string
	Payload        string
	Amount         string
	TransactionID  string
	MerchantName   string
	MerchantCity   string
}

// IRegistrationUseCase exposes the signup flow and the admin read side.
type IRegistrationUseCase interface {
	SignUp(ctx context.Context, cmd SignUpCommand) (entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	List(ctx context.Context) ([]entities.Registration, error)
	PixCharge(ctx context.Context, id string) (PixCharge, error)
	Stats(ctx context.Context) (Stats, error)
	SyncSheet(ctx context.Context) (int, error)
}

type RegistrationUseCase struct {
	repo     interfaces.IRegistrationRepository
	notifier interfaces.INotifier
	sheet    interfaces.IRegistrationSheet
	merchant pix.Merchant
	encode   func(txid, amount string) (string, error)
	now      func() time.Time
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(repo interfaces.IRegistrationRepository, notifier interfaces.INotifier, sheet interfaces.IRegistrationSheet, merchant pix.Merchant) *RegistrationUseCase {
	return &RegistrationUseCase{repo: repo, notifier: notifier, sheet: sheet, merchant: merchant, encode: merchant.Payload, now: time.Now}
}

func (u *RegistrationUseCase) SignUp(ctx context.Context, cmd SignUpCommand) (entities.Registration, error) {
	cmd = normalizeSignUp(cmd)
	if err := validateSignUp(cmd); err != nil {
		zap.L().Info("[registration][usecase] signup rejected", zap.Error(err))
		return entities.Registration{}, err
	}

	now := u.now().UTC()
	first := decimal.Zero
	if cmd.Method == entities.PaymentMethodCarne && cmd.Details.PayFirstInstallmentWithPix {
		first = cmd.Details.FirstInstallmentAmount
	} else {
		cmd.Details.PayFirstInstallmentWithPix = false
		cmd.Details.FirstInstallmentAmount = decimal.Zero
	}
	plan, err := ledger.NewPlan(cmd.Method, first, now)
	if err != nil {
		return entities.Registration{}, fmt.Errorf("%w: %v", ErrInvalidSignUp, err)
	}

	r := entities.Registration{
		ID:        newRegistrationID(),
		Name:      cmd.Details.TeenName,
		Email:     cmd.Details.GuardianEmail,
		Phone:     cmd.Details.TeenPhone,
		Fee:       cmd.Fee,
		Details:   cmd.Details,
		Payment:   plan,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		zap.L().Error("[registration][usecase] create failed", zap.String("email", r.Email), zap.Error(err))
		return entities.Registration{}, err
	}
	zap.L().Info("[registration][usecase] signup success",
		zap.String("registration_id", created.ID), zap.String("method", string(created.Payment.Method)),
		zap.String("total_paid", created.Payment.TotalPaid.StringFixed(2)))

	if u.sheet != nil {
		if err := u.sheet.Append(ctx, created); err != nil {
			zap.L().Warn("[registration][usecase] sheet append failed", zap.String("registration_id", created.ID), zap.Error(err))
		}
	}
	if u.notifier != nil {
		if err := u.notifier.RegistrationReceived(ctx, created); err != nil {
			zap.L().Warn("[registration][usecase] registration email failed", zap.String("registration_id", created.ID), zap.Error(err))
		}
	}
	return created, nil
}

func (u *RegistrationUseCase) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Registration{}, ErrInvalidRegistrationID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Registration{}, err
	}
	if r.ID == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	return r, nil
}

// List returns every registration, newest first.
func (u *RegistrationUseCase) List(ctx context.Context) ([]entities.Registration, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// PixCharge regenerates the copy-and-paste payload from stored data.
//
// A pix registration is charged the full fee. A carnê whose first installment
// is paid by PIX is charged what was already recorded, or the declared down
// payment while nothing was recorded yet.
func (u *RegistrationUseCase) PixCharge(ctx context.Context, id string) (PixCharge, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return PixCharge{}, err
	}

	var amount decimal.Decimal
	switch {
	case r.Payment.Method == entities.PaymentMethodPix:
		amount = r.Fee
	case r.Payment.Method == entities.PaymentMethodCarne && r.Details.PayFirstInstallmentWithPix:
		// the down payment is installment one; later installments are paid by carnê
		amount = r.Details.FirstInstallmentAmount
		if first, ok := r.Payment.Installment(1); ok {
			amount = first.Amount
		}
	default:
		return PixCharge{}, ErrPixNotApplicable
	}

	formatted, err := pix.FormatAmount(amount)
	if err != nil {
		zap.L().Warn("[registration][usecase] pix amount rejected", zap.String("registration_id", r.ID), zap.String("amount", amount.String()))
		return PixCharge{}, err
	}
	txid := pix.TransactionID(r.ID)
	payload, err := u.encode(txid, formatted)
	if err != nil {
		zap.L().Error("[registration][usecase] pix encode failed", zap.String("registration_id", r.ID), zap.Error(err))
		return PixCharge{}, err
	}
	if err := u.verifyPayload(payload, txid, formatted); err != nil {
		zap.L().Error("[registration][usecase] pix payload rejected", zap.String("registration_id", r.ID), zap.Error(err))
		return PixCharge{}, err
	}

	return PixCharge{
		RegistrationID: r.ID,
		Payload:        payload,
		Amount:         formatted,
		TransactionID:  txid,
		MerchantName:   u.merchant.Name,
		MerchantCity:   u.merchant.City,
	}, nil
}

// verifyPayload decodes a freshly built payload and checks it carries the
// charge that was requested.
func (u *RegistrationUseCase) verifyPayload(payload, txid, amount string) error {
	decoded, err := pix.Decode(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPixPayloadMismatch, err)
	}
	if decoded.Amount != amount || decoded.TransactionID != txid || decoded.PixKey != u.merchant.Key {
		return fmt.Errorf("%w: amount %q txid %q", ErrPixPayloadMismatch, decoded.Amount, decoded.TransactionID)
	}
	return nil
}

func (u *RegistrationUseCase) Stats(ctx context.Context) (Stats, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(items, u.now()), nil
}

// SyncSheet rewrites the spreadsheet from the store and returns the row count.
func (u *RegistrationUseCase) SyncSheet(ctx context.Context) (int, error) {
	if u.sheet == nil {
		return 0, ErrSheetNotConfigured
	}
	items, err := u.List(ctx)
	if err != nil {
		return 0, err
	}
	// oldest first, matching the order rows were appended at signup
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if err := u.sheet.ReplaceAll(ctx, items); err != nil {
		zap.L().Error("[registration][usecase] sheet sync failed", zap.Int("rows", len(items)), zap.Error(err))
		return 0, err
	}
	zap.L().Info("[registration][usecase] sheet sync success", zap.Int("rows", len(items)))
	return len(items), nil
}

func newRegistrationID() string {
	// hyphen-free so the id is a valid PIX transaction id prefix
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func normalizeSignUp(cmd SignUpCommand) SignUpCommand {
	d := &cmd.Details
	d.TeenName = strings.TrimSpace(d.TeenName)
	d.TeenPhone = strings.TrimSpace(d.TeenPhone)
	d.GuardianName = strings.TrimSpace(d.GuardianName)
	d.GuardianPhone = strings.TrimSpace(d.GuardianPhone)
	d.GuardianEmail = strings.ToLower(strings.TrimSpace(d.GuardianEmail))
	d.CongregationName = strings.TrimSpace(d.CongregationName)
	d.TeenWeightAndHeight = strings.TrimSpace(d.TeenWeightAndHeight)
	cmd.Method = entities.PaymentMethod(strings.ToLower(strings.TrimSpace(string(cmd.Method))))
	return cmd
}

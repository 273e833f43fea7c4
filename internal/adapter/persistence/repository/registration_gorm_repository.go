package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type registrationRecord struct {
	ID        string          `gorm:"primaryKey;size:64"`
	Name      string          `gorm:"size:255;not null"`
	Email     string          `gorm:"size:255;index"`
	Phone     string          `gorm:"size:32"`
	Fee       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsAdoptee bool            `gorm:"not null;default:false"`
	PaidAt    *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	Version   int64     `gorm:"not null"`

	PaymentMethod     string          `gorm:"size:16;not null"`
	InstallmentsTotal int             `gorm:"not null"`
	TotalPaid         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Confirmed         bool            `gorm:"not null;default:false"`
	ConfirmedBy       string          `gorm:"size:255"`
	ConfirmedAt       *time.Time

	Details      string              `gorm:"type:text"`
	Installments []installmentRecord `gorm:"foreignKey:RegistrationID;references:ID;constraint:OnDelete:CASCADE"`
}

func (registrationRecord) TableName() string { return "registrations" }

type installmentRecord struct {
	RegistrationID string          `gorm:"primaryKey;size:64"`
	Number         int             `gorm:"primaryKey;autoIncrement:false"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaidAt         time.Time
	ConfirmedBy    string `gorm:"size:255"`
}

func (installmentRecord) TableName() string { return "registration_installments" }

// AutoMigrate creates or updates the SQL schema used by the gorm repositories.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&registrationRecord{}, &installmentRecord{}, &questionRecord{})
}

// RegistrationGormRepository is the SQL alternative to RegistrationDynamoRepository.
// Installments live in their own table and are rewritten with the parent row
// inside one transaction.
type RegistrationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IRegistrationRepository = (*RegistrationGormRepository)(nil)

func NewRegistrationGormRepository(db *gorm.DB) *RegistrationGormRepository {
	return &RegistrationGormRepository{db: db}
}

func (r *RegistrationGormRepository) Create(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	rec, err := toRegistrationRecord(reg)
	if err != nil {
		return entities.Registration{}, err
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationGormRepository) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	var rec registrationRecord
	err := r.db.WithContext(ctx).
		Preload("Installments", orderByNumber).
		First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Registration{}, nil
	}
	if err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationRecord(rec)
}

func (r *RegistrationGormRepository) List(ctx context.Context) ([]entities.Registration, error) {
	var recs []registrationRecord
	err := r.db.WithContext(ctx).
		Preload("Installments", orderByNumber).
		Order("created_at desc").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.Registration, 0, len(recs))
	for _, rec := range recs {
		reg, err := fromRegistrationRecord(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, reg)
	}
	return items, nil
}

// Update writes reg with Version+1 when the stored version equals reg.Version.
func (r *RegistrationGormRepository) Update(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	expected := reg.Version
	reg.Version = expected + 1

	rec, err := toRegistrationRecord(reg)
	if err != nil {
		return entities.Registration{}, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&registrationRecord{}).
			Where("id = ? AND version = ?", rec.ID, expected).
			Updates(map[string]interface{}{
				"name":               rec.Name,
				"email":              rec.Email,
				"phone":              rec.Phone,
				"fee":                rec.Fee,
				"is_adoptee":         rec.IsAdoptee,
				"paid_at":            rec.PaidAt,
				"updated_at":         rec.UpdatedAt,
				"version":            rec.Version,
				"payment_method":     rec.PaymentMethod,
				"installments_total": rec.InstallmentsTotal,
				"total_paid":         rec.TotalPaid,
				"confirmed":          rec.Confirmed,
				"confirmed_by":       rec.ConfirmedBy,
				"confirmed_at":       rec.ConfirmedAt,
				"details":            rec.Details,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrVersionConflict
		}

		if err := tx.Where("registration_id = ?", rec.ID).Delete(&installmentRecord{}).Error; err != nil {
			return err
		}
		if len(rec.Installments) == 0 {
			return nil
		}
		return tx.Create(&rec.Installments).Error
	})
	if err != nil {
		return entities.Registration{}, err
	}
	return reg, nil
}

func orderByNumber(db *gorm.DB) *gorm.DB {
	return db.Order("number")
}

func toRegistrationRecord(reg entities.Registration) (registrationRecord, error) {
	details, err := json.Marshal(reg.Details)
	if err != nil {
		return registrationRecord{}, err
	}

	installments := make([]installmentRecord, 0, len(reg.Payment.PaidInstallments))
	for _, in := range reg.Payment.PaidInstallments {
		installments = append(installments, installmentRecord{
			RegistrationID: reg.ID,
			Number:         in.Number,
			Amount:         in.Amount,
			PaidAt:         in.PaidAt.UTC(),
			ConfirmedBy:    in.ConfirmedBy,
		})
	}

	return registrationRecord{
		ID:                reg.ID,
		Name:              reg.Name,
		Email:             reg.Email,
		Phone:             reg.Phone,
		Fee:               reg.Fee,
		IsAdoptee:         reg.IsAdoptee,
		PaidAt:            utcPtr(reg.PaidAt),
		CreatedAt:         reg.CreatedAt.UTC(),
		UpdatedAt:         reg.UpdatedAt.UTC(),
		Version:           reg.Version,
		PaymentMethod:     string(reg.Payment.Method),
		InstallmentsTotal: reg.Payment.InstallmentsTotal,
		TotalPaid:         reg.Payment.TotalPaid,
		Confirmed:         reg.Payment.Confirmed,
		ConfirmedBy:       reg.Payment.ConfirmedBy,
		ConfirmedAt:       utcPtr(reg.Payment.ConfirmedAt),
		Details:           string(details),
		Installments:      installments,
	}, nil
}

func fromRegistrationRecord(rec registrationRecord) (entities.Registration, error) {
	var details entities.RegistrationDetail
	if rec.Details != "" {
		if err := json.Unmarshal([]byte(rec.Details), &details); err != nil {
			return entities.Registration{}, err
		}
	}

	installments := make([]entities.Installment, 0, len(rec.Installments))
	for _, in := range rec.Installments {
		installments = append(installments, entities.Installment{
			Number:      in.Number,
			Amount:      in.Amount,
			PaidAt:      in.PaidAt.UTC(),
			ConfirmedBy: in.ConfirmedBy,
		})
	}

	return entities.Registration{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Fee:       rec.Fee,
		Details:   details,
		IsAdoptee: rec.IsAdoptee,
		PaidAt:    utcPtr(rec.PaidAt),
		CreatedAt: rec.CreatedAt.UTC(),
		UpdatedAt: rec.UpdatedAt.UTC(),
		Version:   rec.Version,
		Payment: entities.PaymentPlan{
			Method:            entities.PaymentMethod(rec.PaymentMethod),
			InstallmentsTotal: rec.InstallmentsTotal,
			PaidInstallments:  installments,
			TotalPaid:         rec.TotalPaid,
			Confirmed:         rec.Confirmed,
			ConfirmedBy:       rec.ConfirmedBy,
			ConfirmedAt:       utcPtr(rec.ConfirmedAt),
		},
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

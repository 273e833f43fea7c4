package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the way a registrant chose to pay the retreat fee.
type PaymentMethod string

const (
	// PaymentMethodPresencial is a single payment made in person at the office.
	PaymentMethodPresencial PaymentMethod = "presencial"
	// PaymentMethodCarne splits the fee in installments (carnê).
	PaymentMethodCarne PaymentMethod = "carne"
	// PaymentMethodPix is a single instant transfer.
	PaymentMethodPix PaymentMethod = "pix"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPresencial, PaymentMethodCarne, PaymentMethodPix:
		return true
	}
	return false
}

// Installment is one recorded payment inside a registration's payment history.
type Installment struct {
	Number      int             `json:"installment"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAt      time.Time       `json:"paid_at"`
	ConfirmedBy string          `json:"confirmed_by,omitempty"`
}

// PaymentPlan is embedded in the registration and only mutated through the ledger.
//
// Invariants:
//   - PaidInstallments is ordered by Number and numbers are unique.
//   - TotalPaid is always the exact sum of PaidInstallments[*].Amount.
//   - Confirmed only goes false -> true.
type PaymentPlan struct {
	Method            PaymentMethod   `json:"method"`
	InstallmentsTotal int             `json:"installments_total"`
	PaidInstallments  []Installment   `json:"paid_installments"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	Confirmed         bool            `json:"confirmed"`
	ConfirmedBy       string          `json:"confirmed_by,omitempty"`
	ConfirmedAt       *time.Time      `json:"confirmed_at,omitempty"`
}

// Installment returns the recorded installment with the given number, if any.
func (p PaymentPlan) Installment(number int) (Installment, bool) {
	for _, in := range p.PaidInstallments {
		if in.Number == number {
			return in, true
		}
	}
	return Installment{}, false
}

// Registration is a retreat signup persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Version: incremented on every write, used as the conditional-write guard.
//
// Name/Email/Phone are the fields shown in the admin list; Details keeps the
// full signup form.
type Registration struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Fee       decimal.Decimal    `json:"fee"`
	Details   RegistrationDetail `json:"details"`
	Payment   PaymentPlan        `json:"payment"`
	PaidAt    *time.Time         `json:"paid_at,omitempty"`
	IsAdoptee bool               `json:"is_adoptee"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	Version   int64              `json:"version"`
}

// PaymentConfirmed reports whether the payment plan was finalized.
func (r Registration) PaymentConfirmed() bool {
	return r.Payment.Confirmed
}

// RegistrationDetail is the signup form as submitted. The validate tags hold
// the per-field rules; phone_br is registered by the signup validator.
type RegistrationDetail struct {
	ParticipationType string `json:"participation_type" validate:"oneof=member guest congregation"`
	CongregationName  string `json:"congregation_name,omitempty"`
	TeenName          string `json:"teen_name" validate:"min=3"`
	TeenAge           int    `json:"teen_age" validate:"gte=12,lte=18"`
	TeenGender        string `json:"teen_gender" validate:"oneof=female male"`
	TeenPhone         string `json:"teen_phone" validate:"phone_br"`
	ShirtSize         string `json:"shirt_size" validate:"oneof=P M G GG XG"`
	Transportation    string `json:"transportation" validate:"oneof=bus car"`

	BloodType                     string `json:"blood_type" validate:"oneof=A+ A- B+ B- O+ O- AB+ AB- NAO_SEI"`
	TeenWeightAndHeight           string `json:"teen_weight_and_height" validate:"required"`
	HasMedicalInsurance           bool   `json:"has_medical_insurance"`
	MedicalInsuranceName          string `json:"medical_insurance_name,omitempty"`
	HasMedicalCondition           bool   `json:"has_medical_condition"`
	MedicalConditionDescription   string `json:"medical_condition_description,omitempty"`
	IsUnderTreatment              bool   `json:"is_under_treatment"`
	TreatmentDescription          string `json:"treatment_description,omitempty"`
	HasMedicalMonitoring          bool   `json:"has_medical_monitoring"`
	MedicalMonitoringReason       string `json:"medical_monitoring_reason,omitempty"`
	HasPsychologicalMonitoring    bool   `json:"has_psychological_monitoring"`
	PsychologicalMonitoringReason string `json:"psychological_monitoring_reason,omitempty"`
	CanDoPhysicalActivities       bool   `json:"can_do_physical_activities"`
	HasDietaryRestrictions        bool   `json:"has_dietary_restrictions"`
	DietaryRestrictionsDesc       string `json:"dietary_restrictions_description,omitempty"`

	GuardianName               string `json:"guardian_name" validate:"min=3"`
	GuardianPhone              string `json:"guardian_phone" validate:"phone_br"`
	GuardianEmail              string `json:"guardian_email" validate:"email"`
	ImageAndVoiceAuthorized    bool   `json:"image_and_voice_authorized"`
	ElectronicsAware           bool   `json:"electronics_aware" validate:"eq=true"`
	ShirtPolicyAgreement       bool   `json:"shirt_policy_agreement" validate:"eq=true"`
	RefundPolicyAgreement      bool   `json:"refund_policy_agreement" validate:"eq=true"`
	GuardianAuthorization      bool   `json:"guardian_authorization_agreement" validate:"eq=true"`
	PayFirstInstallmentWithPix bool   `json:"pay_first_installment_with_pix"`

	// FirstInstallmentAmount is the down payment declared for carnê + PIX.
	FirstInstallmentAmount decimal.Decimal `json:"first_installment_amount" swaggertype:"string"`
}

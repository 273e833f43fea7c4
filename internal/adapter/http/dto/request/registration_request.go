package request

import (
	"strings"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := usecase.RegisterSignUpValidations(v); err != nil {
		panic(err)
	}
}

// SignUpRequest is the public signup form.
//
// Amounts are accepted as JSON numbers or strings ("450.50"). Fee, payment
// method and down payment are checked together by the use case.
type SignUpRequest struct {
	ParticipationType string `json:"participation_type" binding:"required,oneof=member guest congregation"`
	CongregationName  string `json:"congregation_name"`
	TeenName          string `json:"teen_name" binding:"required,min=3"`
	TeenAge           int    `json:"teen_age" binding:"required,gte=12,lte=18"`
	TeenGender        string `json:"teen_gender" binding:"required,oneof=female male"`
	TeenPhone         string `json:"teen_phone" binding:"required,phone_br"`
	ShirtSize         string `json:"shirt_size" binding:"required,oneof=P M G GG XG"`
	Transportation    string `json:"transportation" binding:"required,oneof=bus car"`

	BloodType                     string `json:"blood_type" binding:"required,oneof=A+ A- B+ B- O+ O- AB+ AB- NAO_SEI"`
	TeenWeightAndHeight           string `json:"teen_weight_and_height" binding:"required"`
	HasMedicalInsurance           bool   `json:"has_medical_insurance"`
	MedicalInsuranceName          string `json:"medical_insurance_name"`
	HasMedicalCondition           bool   `json:"has_medical_condition"`
	MedicalConditionDescription   string `json:"medical_condition_description"`
	IsUnderTreatment              bool   `json:"is_under_treatment"`
	TreatmentDescription          string `json:"treatment_description"`
	HasMedicalMonitoring          bool   `json:"has_medical_monitoring"`
	MedicalMonitoringReason       string `json:"medical_monitoring_reason"`
	HasPsychologicalMonitoring    bool   `json:"has_psychological_monitoring"`
	PsychologicalMonitoringReason string `json:"psychological_monitoring_reason"`
	CanDoPhysicalActivities       bool   `json:"can_do_physical_activities"`
	HasDietaryRestrictions        bool   `json:"has_dietary_restrictions"`
	DietaryRestrictionsDesc       string `json:"dietary_restrictions_description"`

	GuardianName            string `json:"guardian_name" binding:"required,min=3"`
	GuardianPhone           string `json:"guardian_phone" binding:"required,phone_br"`
	GuardianEmail           string `json:"guardian_email" binding:"required,email"`
	ImageAndVoiceAuthorized bool   `json:"image_and_voice_authorized"`
	ElectronicsAware        bool   `json:"electronics_aware" binding:"eq=true"`
	ShirtPolicyAgreement    bool   `json:"shirt_policy_agreement" binding:"eq=true"`
	RefundPolicyAgreement   bool   `json:"refund_policy_agreement" binding:"eq=true"`
	GuardianAuthorization   bool   `json:"guardian_authorization_agreement" binding:"eq=true"`

	RegistrationValue          decimal.Decimal `json:"registration_value" swaggertype:"string" example:"530.00"`
	PaymentMethod              string          `json:"payment_method" binding:"required"`
	PayFirstInstallmentWithPix bool            `json:"pay_first_installment_with_pix"`
	FirstInstallmentAmount     decimal.Decimal `json:"first_installment_amount" swaggertype:"string" example:"176.67"`
}

func (r SignUpRequest) ToCommand() usecase.SignUpCommand {
	return usecase.SignUpCommand{
		Fee:    r.RegistrationValue,
		Method: entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		Details: entities.RegistrationDetail{
			ParticipationType:             r.ParticipationType,
			CongregationName:              r.CongregationName,
			TeenName:                      r.TeenName,
			TeenAge:                       r.TeenAge,
			TeenGender:                    r.TeenGender,
			TeenPhone:                     r.TeenPhone,
			ShirtSize:                     r.ShirtSize,
			Transportation:                r.Transportation,
			BloodType:                     r.BloodType,
			TeenWeightAndHeight:           r.TeenWeightAndHeight,
			HasMedicalInsurance:           r.HasMedicalInsurance,
			MedicalInsuranceName:          r.MedicalInsuranceName,
			HasMedicalCondition:           r.HasMedicalCondition,
			MedicalConditionDescription:   r.MedicalConditionDescription,
			IsUnderTreatment:              r.IsUnderTreatment,
			TreatmentDescription:          r.TreatmentDescription,
			HasMedicalMonitoring:          r.HasMedicalMonitoring,
			MedicalMonitoringReason:       r.MedicalMonitoringReason,
			HasPsychologicalMonitoring:    r.HasPsychologicalMonitoring,
			PsychologicalMonitoringReason: r.PsychologicalMonitoringReason,
			CanDoPhysicalActivities:       r.CanDoPhysicalActivities,
			HasDietaryRestrictions:        r.HasDietaryRestrictions,
			DietaryRestrictionsDesc:       r.DietaryRestrictionsDesc,
			GuardianName:                  r.GuardianName,
			GuardianPhone:                 r.GuardianPhone,
			GuardianEmail:                 r.GuardianEmail,
			ImageAndVoiceAuthorized:       r.ImageAndVoiceAuthorized,
			ElectronicsAware:              r.ElectronicsAware,
			ShirtPolicyAgreement:          r.ShirtPolicyAgreement,
			RefundPolicyAgreement:         r.RefundPolicyAgreement,
			GuardianAuthorization:         r.GuardianAuthorization,
			PayFirstInstallmentWithPix:    r.PayFirstInstallmentWithPix,
			FirstInstallmentAmount:        r.FirstInstallmentAmount,
		},
	}
}

package sheets

import (
	"fmt"
	"strings"
	"time"

	"temporada_ferias/internal/domain/entities"
)

const notAvailable = "N/A"

// The organizers read the sheet in Manaus local time (UTC-4, no DST).
var manausZone = time.FixedZone("America/Manaus", -4*60*60)

// HeaderRow is the first row of the registrations tab. Rows produced by
// formatRow follow this column order.
var HeaderRow = []string{
	"ID",
	"Status Pagamento",
	"É Adotante",
	"Data Inscrição",
	"Data Pagamento Final",

	"Nome Completo",
	"Idade",
	"Gênero",
	"Telefone Adolescente",
	"Tamanho Camisa",
	"Tipo de Participação",
	"Nome Congregação",
	"Transporte",

	"Nome Responsável",
	"Email Responsável",
	"Telefone Responsável",

	"Valor Inscrição",
	"Forma de Pagamento",
	"Valor Total Pago",
	"Histórico de Pagamentos",

	"Tipo Sanguíneo",
	"Peso e Altura",
	"Pode Fazer Atividades Físicas",
	"Possui Convênio",
	"Nome Convênio",
	"Restrição Médica",
	"Descrição Restrição Médica",
	"Em Tratamento",
	"Descrição Tratamento",
	"Acompanhamento Médico",
	"Motivo Acompanhamento Médico",
	"Acompanhamento Psicológico",
	"Motivo Acompanhamento Psicológico",
	"Restrição Alimentar",
	"Descrição Restrição Alimentar",

	"Ciente Eletrônicos",
	"Ciente Política Camisa",
	"Acordo Política Reembolso",
	"Acordo Autorização Responsável",
	"Autorização de Imagem",
}

var (
	participationLabels = map[string]string{
		"member":       "Membro IPManaus",
		"guest":        "Convidado",
		"congregation": "Congregação",
	}
	paymentMethodLabels = map[entities.PaymentMethod]string{
		entities.PaymentMethodPresencial: "Presencial - À vista",
		entities.PaymentMethodCarne:      "Carnê-Parcelamento",
		entities.PaymentMethodPix:        "PIX",
	}
)

func formatRow(r entities.Registration) []interface{} {
	d := r.Details

	status := "Pendente"
	if r.PaymentConfirmed() {
		status = "Confirmado"
	}
	gender := "Masculino"
	if d.TeenGender == "female" {
		gender = "Feminino"
	}
	transport := "Carro"
	if d.Transportation == "bus" {
		transport = "Ônibus"
	}
	participation := notAvailable
	if label, ok := participationLabels[d.ParticipationType]; ok {
		participation = label
	}
	method := notAvailable
	if label, ok := paymentMethodLabels[r.Payment.Method]; ok {
		method = label
	}
	fee := notAvailable
	if r.Fee.IsPositive() {
		fee = "R$ " + r.Fee.StringFixed(2)
	}
	image := "Não Autorizado"
	if d.ImageAndVoiceAuthorized {
		image = "Autorizado"
	}

	return []interface{}{
		r.ID,
		status,
		yesNo(r.IsAdoptee),
		formatDate(&r.CreatedAt),
		formatDate(r.PaidAt),

		r.Name,
		d.TeenAge,
		gender,
		r.Phone,
		d.ShirtSize,
		participation,
		orNA(d.CongregationName),
		transport,

		d.GuardianName,
		r.Email,
		d.GuardianPhone,

		fee,
		method,
		strings.Replace(r.Payment.TotalPaid.StringFixed(2), ".", ",", 1),
		orNA(paymentHistory(r.Payment)),

		d.BloodType,
		d.TeenWeightAndHeight,
		yesNo(d.CanDoPhysicalActivities),
		yesNo(d.HasMedicalInsurance),
		orNA(d.MedicalInsuranceName),
		yesNo(d.HasMedicalCondition),
		orNA(d.MedicalConditionDescription),
		yesNo(d.IsUnderTreatment),
		orNA(d.TreatmentDescription),
		yesNo(d.HasMedicalMonitoring),
		orNA(d.MedicalMonitoringReason),
		yesNo(d.HasPsychologicalMonitoring),
		orNA(d.PsychologicalMonitoringReason),
		yesNo(d.HasDietaryRestrictions),
		orNA(d.DietaryRestrictionsDesc),

		yesNo(d.ElectronicsAware),
		yesNo(d.ShirtPolicyAgreement),
		yesNo(d.RefundPolicyAgreement),
		yesNo(d.GuardianAuthorization),
		image,
	}
}

// paymentHistory renders "P1: R$150.00; P2: R$150.00".
func paymentHistory(p entities.PaymentPlan) string {
	parts := make([]string, 0, len(p.PaidInstallments))
	for _, in := range p.PaidInstallments {
		parts = append(parts, fmt.Sprintf("P%d: R$%s", in.Number, in.Amount.StringFixed(2)))
	}
	return strings.Join(parts, "; ")
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return notAvailable
	}
	return t.In(manausZone).Format("02/01/2006 15:04")
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

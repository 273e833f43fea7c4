package response

import (
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/domain/ledger"
	"temporada_ferias/internal/usecase"
)

type InstallmentResponse struct {
	Installment int       `json:"installment"`
	Amount      string    `json:"amount"`
	PaidAt      time.Time `json:"paid_at"`
	ConfirmedBy string    `json:"confirmed_by,omitempty"`
}

type PaymentResponse struct {
	Method            string                `json:"method"`
	State             string                `json:"state"`
	InstallmentsTotal int                   `json:"installments_total"`
	Installments      []InstallmentResponse `json:"installments"`
	TotalPaid         string                `json:"total_paid"`
	Confirmed         bool                  `json:"confirmed"`
	ConfirmedBy       string                `json:"confirmed_by,omitempty"`
	ConfirmedAt       *time.Time            `json:"confirmed_at,omitempty"`
}

// RegistrationResponse renders money as fixed two-decimal strings.
//
// Warning is set when the write succeeded but a side effect (email) did not.
type RegistrationResponse struct {
	ID        string                      `json:"id"`
	Name      string                      `json:"name"`
	Email     string                      `json:"email"`
	Phone     string                      `json:"phone"`
	Fee       string                      `json:"registration_value"`
	IsAdoptee bool                        `json:"is_adoptee"`
	Payment   PaymentResponse             `json:"payment"`
	PaidAt    *time.Time                  `json:"paid_at,omitempty"`
	Details   entities.RegistrationDetail `json:"details"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
	Warning   string                      `json:"warning,omitempty"`
}

func FromRegistration(r entities.Registration) RegistrationResponse {
	installments := make([]InstallmentResponse, 0, len(r.Payment.PaidInstallments))
	for _, in := range r.Payment.PaidInstallments {
		installments = append(installments, InstallmentResponse{
			Installment: in.Number,
			Amount:      in.Amount.StringFixed(2),
			PaidAt:      in.PaidAt,
			ConfirmedBy: in.ConfirmedBy,
		})
	}
	return RegistrationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Fee:       r.Fee.StringFixed(2),
		IsAdoptee: r.IsAdoptee,
		Payment: PaymentResponse{
			Method:            string(r.Payment.Method),
			State:             string(ledger.StateOf(r.Payment)),
			InstallmentsTotal: r.Payment.InstallmentsTotal,
			Installments:      installments,
			TotalPaid:         r.Payment.TotalPaid.StringFixed(2),
			Confirmed:         r.Payment.Confirmed,
			ConfirmedBy:       r.Payment.ConfirmedBy,
			ConfirmedAt:       r.Payment.ConfirmedAt,
		},
		PaidAt:    r.PaidAt,
		Details:   r.Details,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromRegistrations(items []entities.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRegistration(r))
	}
	return out
}

type PixChargeResponse struct {
	RegistrationID string `json:"registration_id"`
	Payload        string `json:"payload"`
	Amount         string `json:"amount"`
	TransactionID  string `json:"txid"`
	MerchantName   string `json:"merchant_name"`
	MerchantCity   string `json:"merchant_city"`
	QRCodeURL      string `json:"qrcode_url"`
}

func FromPixCharge(p usecase.PixCharge, qrcodeURL string) PixChargeResponse {
	return PixChargeResponse{
		RegistrationID: p.RegistrationID,
		Payload:        p.Payload,
		Amount:         p.Amount,
		TransactionID:  p.TransactionID,
		MerchantName:   p.MerchantName,
		MerchantCity:   p.MerchantCity,
		QRCodeURL:      qrcodeURL,
	}
}

type SheetSyncResponse struct {
	Rows int `json:"rows"`
}

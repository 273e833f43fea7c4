package request

import "github.com/shopspring/decimal"

// InstallmentRequest records or finalizes one installment.
type InstallmentRequest struct {
	Installment int             `json:"installment" binding:"required,min=1"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"190.25"`
}

// AdopteeRequest uses a pointer so that an explicit false is distinguishable
// from a missing field.
type AdopteeRequest struct {
	IsAdoptee *bool `json:"is_adoptee" binding:"required"`
}

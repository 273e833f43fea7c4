package pix

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatAmount is the pre-check callers run before Encode: the amount must be
// positive and representable in centavos. It returns the "D+.DD" form.
func FormatAmount(amount decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, amount.String())
	}
	if !amount.Equal(amount.Round(2)) {
		return "", fmt.Errorf("%w: %s has more than two fraction digits", ErrInvalidAmount, amount.String())
	}
	return amount.StringFixed(2), nil
}

// TransactionID derives the reference label from a registration id: only
// alphanumerics are kept and the result is truncated to 25 characters.
func TransactionID(registrationID string) string {
	out := make([]byte, 0, maxTransactionIDLen)
	for i := 0; i < len(registrationID) && len(out) < maxTransactionIDLen; i++ {
		c := registrationID[i]
		if isAlphanumeric(string(c)) {
			out = append(out, c)
		}
	}
	return string(out)
}

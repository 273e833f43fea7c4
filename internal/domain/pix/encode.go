// Package pix builds and parses static PIX "Copia e Cola" payloads (BR Code),
// the EMV Merchant-Presented QR Code format used by Brazilian banking apps.
package pix

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidAmount        = errors.New("invalid pix amount")
	ErrFieldTooLong         = errors.New("pix field too long")
	ErrInvalidTransactionID = errors.New("invalid pix transaction id")
	ErrInvalidMerchant      = errors.New("invalid pix merchant")
)

const (
	tagPayloadFormat       = "00"
	tagMerchantAccount     = "26"
	tagMerchantCategory    = "52"
	tagTransactionCurrency = "53"
	tagTransactionAmount   = "54"
	tagCountryCode         = "58"
	tagMerchantName        = "59"
	tagMerchantCity        = "60"
	tagAdditionalData      = "62"
	tagCRC                 = "63"

	// subfields of tag 26
	tagAccountGUI = "00"
	tagAccountKey = "01"
	// subfield of tag 62
	tagReferenceLabel = "05"

	payloadFormatVersion = "01"
	pixGUI               = "BR.GOV.BCB.PIX"
	merchantCategoryCode = "0000"
	currencyBRL          = "986"
	countryBR            = "BR"

	// crcHeader is tag 63 + its fixed length; it is part of the checksummed bytes.
	crcHeader = tagCRC + "04"

	maxFieldLen         = 99
	maxPixKeyLen        = 77
	maxMerchantNameLen  = 25
	maxMerchantCityLen  = 15
	maxTransactionIDLen = 25
)

var amountPattern = regexp.MustCompile(`^[0-9]+\.[0-9]{2}$`)

// Merchant is the fixed receiver identity embedded in every payload.
type Merchant struct {
	Key  string
	Name string
	City string
}

// Payload encodes a charge for this merchant.
func (m Merchant) Payload(transactionID, amount string) (string, error) {
	return Encode(m.Key, m.Name, m.City, transactionID, amount)
}

// Encode builds the BR Code payload terminated by its CRC16 field.
//
// amount must already be formatted with exactly two fraction digits; sign is the
// caller's concern (see FormatAmount). The output is deterministic.
func Encode(pixKey, merchantName, merchantCity, transactionID, amount string) (string, error) {
	if !amountPattern.MatchString(amount) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if transactionID == "" || !isAlphanumeric(transactionID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionID, transactionID)
	}
	if pixKey == "" || merchantName == "" || merchantCity == "" {
		return "", ErrInvalidMerchant
	}
	limits := []struct {
		name  string
		value string
		max   int
	}{
		{"pix key", pixKey, maxPixKeyLen},
		{"merchant name", merchantName, maxMerchantNameLen},
		{"merchant city", merchantCity, maxMerchantCityLen},
		{"transaction id", transactionID, maxTransactionIDLen},
	}
	for _, l := range limits {
		if len(l.value) > l.max {
			return "", fmt.Errorf("%w: %s has %d bytes (max %d)", ErrFieldTooLong, l.name, len(l.value), l.max)
		}
	}

	var account tlvWriter
	account.add(tagAccountGUI, pixGUI)
	account.add(tagAccountKey, pixKey)

	var additional tlvWriter
	additional.add(tagReferenceLabel, transactionID)

	var w tlvWriter
	w.add(tagPayloadFormat, payloadFormatVersion)
	w.nest(tagMerchantAccount, &account)
	w.add(tagMerchantCategory, merchantCategoryCode)
	w.add(tagTransactionCurrency, currencyBRL)
	w.add(tagTransactionAmount, amount)
	w.add(tagCountryCode, countryBR)
	w.add(tagMerchantName, merchantName)
	w.add(tagMerchantCity, merchantCity)
	w.nest(tagAdditionalData, &additional)
	if w.err != nil {
		return "", w.err
	}

	body := w.String() + crcHeader
	return body + Checksum(body), nil
}

// tlvWriter concatenates tag-length-value fields and keeps the first error.
type tlvWriter struct {
	b   strings.Builder
	err error
}

func (w *tlvWriter) add(tag, value string) {
	if w.err != nil {
		return
	}
	if len(value) > maxFieldLen {
		w.err = fmt.Errorf("%w: tag %s has %d bytes", ErrFieldTooLong, tag, len(value))
		return
	}
	w.b.WriteString(tag)
	fmt.Fprintf(&w.b, "%02d", len(value))
	w.b.WriteString(value)
}

func (w *tlvWriter) nest(tag string, inner *tlvWriter) {
	if inner.err != nil && w.err == nil {
		w.err = inner.err
		return
	}
	w.add(tag, inner.String())
}

func (w *tlvWriter) String() string {
	return w.b.String()
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

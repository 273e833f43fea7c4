package pix

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedPayload = errors.New("malformed pix payload")
	ErrChecksumMismatch = errors.New("pix payload checksum mismatch")
)

// Payload is the parsed content of a BR Code.
type Payload struct {
	FormatIndicator      string
	PixKey               string
	MerchantCategoryCode string
	Currency             string
	Amount               string
	CountryCode          string
	MerchantName         string
	MerchantCity         string
	TransactionID        string
	CRC                  string
}

type tlvField struct {
	tag   string
	value string
}

// Decode parses a payload produced by Encode (or any static BR Code) and
// verifies its trailing CRC16. Unknown tags are skipped.
func Decode(payload string) (Payload, error) {
	if len(payload) < len(crcHeader)+4 {
		return Payload{}, fmt.Errorf("%w: too short", ErrMalformedPayload)
	}
	body, crc := payload[:len(payload)-4], payload[len(payload)-4:]
	if !strings.HasSuffix(body, crcHeader) {
		return Payload{}, fmt.Errorf("%w: missing crc field", ErrMalformedPayload)
	}
	if !isUpperHex(crc) {
		return Payload{}, fmt.Errorf("%w: crc %q is not uppercase hex", ErrMalformedPayload, crc)
	}
	if want := Checksum(body); want != crc {
		return Payload{}, fmt.Errorf("%w: got %s, computed %s", ErrChecksumMismatch, crc, want)
	}

	fields, err := parseTLV(strings.TrimSuffix(body, crcHeader))
	if err != nil {
		return Payload{}, err
	}

	out := Payload{CRC: crc}
	for _, f := range fields {
		switch f.tag {
		case tagPayloadFormat:
			out.FormatIndicator = f.value
		case tagMerchantAccount:
			sub, err := parseTLV(f.value)
			if err != nil {
				return Payload{}, err
			}
			gui := ""
			for _, s := range sub {
				switch s.tag {
				case tagAccountGUI:
					gui = s.value
				case tagAccountKey:
					out.PixKey = s.value
				}
			}
			if !strings.EqualFold(gui, pixGUI) {
				return Payload{}, fmt.Errorf("%w: unexpected gui %q", ErrMalformedPayload, gui)
			}
		case tagMerchantCategory:
			out.MerchantCategoryCode = f.value
		case tagTransactionCurrency:
			out.Currency = f.value
		case tagTransactionAmount:
			out.Amount = f.value
		case tagCountryCode:
			out.CountryCode = f.value
		case tagMerchantName:
			out.MerchantName = f.value
		case tagMerchantCity:
			out.MerchantCity = f.value
		case tagAdditionalData:
			sub, err := parseTLV(f.value)
			if err != nil {
				return Payload{}, err
			}
			for _, s := range sub {
				if s.tag == tagReferenceLabel {
					out.TransactionID = s.value
				}
			}
		}
	}

	if out.FormatIndicator != payloadFormatVersion {
		return Payload{}, fmt.Errorf("%w: payload format indicator %q", ErrMalformedPayload, out.FormatIndicator)
	}
	if out.PixKey == "" {
		return Payload{}, fmt.Errorf("%w: missing pix key", ErrMalformedPayload)
	}
	return out, nil
}

func parseTLV(s string) ([]tlvField, error) {
	var fields []tlvField
	for i := 0; i < len(s); {
		if len(s)-i < 4 {
			return nil, fmt.Errorf("%w: truncated field at offset %d", ErrMalformedPayload, i)
		}
		tag := s[i : i+2]
		hi, lo := s[i+2], s[i+3]
		if !isDigit(hi) || !isDigit(lo) {
			return nil, fmt.Errorf("%w: bad length for tag %s", ErrMalformedPayload, tag)
		}
		n := int(hi-'0')*10 + int(lo-'0')
		start := i + 4
		if start+n > len(s) {
			return nil, fmt.Errorf("%w: tag %s overflows payload", ErrMalformedPayload, tag)
		}
		fields = append(fields, tlvField{tag: tag, value: s[start : start+n]})
		i = start + n
	}
	return fields, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isUpperHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

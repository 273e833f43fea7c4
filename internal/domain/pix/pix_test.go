package pix

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const knownVector = "00020126390014BR.GOV.BCB.PIX0117teste@dominio.com520400005303986540510.005802BR5906Fulano6008SAOPAULO62110507TXID00163040846"

func TestCRC16_CheckValue(t *testing.T) {
	if got := CRC16([]byte("123456789")); got != 0x29B1 {
		t.Fatalf("expected 0x29B1, got 0x%04X", got)
	}
	if got := Checksum(""); got != "FFFF" {
		t.Fatalf("expected FFFF for empty input, got %s", got)
	}
}

func TestEncode_KnownVector(t *testing.T) {
	got, err := Encode("teste@dominio.com", "Fulano", "SAOPAULO", "TXID001", "10.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != knownVector {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", got, knownVector)
	}
}

func TestEncode_DeterministicAndSelfConsistent(t *testing.T) {
	cases := []struct {
		key, name, city, txid, amount string
	}{
		{"teste@dominio.com", "Fulano", "SAOPAULO", "TXID001", "10.00"},
		{"upareligados@ipmanaus.com.br", "UPA Religados", "Manaus", "abc123XYZ", "530.00"},
		{"+5592999999999", "A", "B", "1", "0.01"},
		{strings.Repeat("k", 77), strings.Repeat("n", 25), strings.Repeat("c", 15), strings.Repeat("T", 25), "123456.78"},
	}
	for _, tc := range cases {
		first, err := Encode(tc.key, tc.name, tc.city, tc.txid, tc.amount)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", tc, err)
		}
		second, _ := Encode(tc.key, tc.name, tc.city, tc.txid, tc.amount)
		if first != second {
			t.Fatalf("encode is not deterministic: %s vs %s", first, second)
		}

		body, crc := first[:len(first)-4], first[len(first)-4:]
		if !isUpperHex(crc) {
			t.Fatalf("crc %q is not uppercase hex", crc)
		}
		if !strings.HasSuffix(body, "6304") {
			t.Fatalf("crc header missing in %s", first)
		}
		if Checksum(body) != crc {
			t.Fatalf("crc mismatch for %s", first)
		}
	}
}

func TestEncode_FieldOrder(t *testing.T) {
	got, err := Encode("upareligados@ipmanaus.com.br", "UPA Religados", "Manaus", "abc123XYZ", "150.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "00020126500014BR.GOV.BCB.PIX0128upareligados@ipmanaus.com.br5204000053039865406150.005802BR5913UPA Religados6006Manaus62130509abc123XYZ6304DE4E"
	if got != want {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", got, want)
	}
}

func TestEncode_Errors(t *testing.T) {
	cases := []struct {
		name                          string
		key, merchant, city, txid, amt string
		want                          error
	}{
		{"empty amount", "k", "n", "c", "TX1", "", ErrInvalidAmount},
		{"non numeric amount", "k", "n", "c", "TX1", "abc", ErrInvalidAmount},
		{"one fraction digit", "k", "n", "c", "TX1", "10.0", ErrInvalidAmount},
		{"no fraction", "k", "n", "c", "TX1", "10", ErrInvalidAmount},
		{"comma decimal", "k", "n", "c", "TX1", "10,00", ErrInvalidAmount},
		{"negative", "k", "n", "c", "TX1", "-10.00", ErrInvalidAmount},
		{"empty txid", "k", "n", "c", "", "1.00", ErrInvalidTransactionID},
		{"txid with hyphen", "k", "n", "c", "abc-123", "1.00", ErrInvalidTransactionID},
		{"empty key", "", "n", "c", "TX1", "1.00", ErrInvalidMerchant},
		{"key too long", strings.Repeat("k", 78), "n", "c", "TX1", "1.00", ErrFieldTooLong},
		{"name too long", "k", strings.Repeat("n", 26), "c", "TX1", "1.00", ErrFieldTooLong},
		{"city too long", "k", "n", strings.Repeat("c", 16), "TX1", "1.00", ErrFieldTooLong},
		{"txid too long", "k", "n", "c", strings.Repeat("T", 26), "1.00", ErrFieldTooLong},
		{"amount over two digit length", "k", "n", "c", "TX1", strings.Repeat("9", 100) + ".00", ErrFieldTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.key, tc.merchant, tc.city, tc.txid, tc.amt)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if got != "" {
				t.Fatalf("expected empty payload on error, got %q", got)
			}
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	m := Merchant{Key: "upareligados@ipmanaus.com.br", Name: "UPA Religados", City: "Manaus"}
	payload, err := m.Payload("abc123XYZ", "530.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Decode(payload)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if got.PixKey != m.Key || got.MerchantName != m.Name || got.MerchantCity != m.City {
		t.Fatalf("unexpected merchant fields: %+v", got)
	}
	if got.Amount != "530.00" || got.TransactionID != "abc123XYZ" {
		t.Fatalf("unexpected charge fields: %+v", got)
	}
	if got.Currency != "986" || got.CountryCode != "BR" || got.MerchantCategoryCode != "0000" || got.FormatIndicator != "01" {
		t.Fatalf("unexpected fixed fields: %+v", got)
	}
	if got.CRC != "FC97" {
		t.Fatalf("unexpected crc %s", got.CRC)
	}
}

func TestDecode_Errors(t *testing.T) {
	tampered := strings.Replace(knownVector, "10.00", "90.00", 1)

	cases := []struct {
		name    string
		payload string
		want    error
	}{
		{"too short", "6304", ErrMalformedPayload},
		{"missing crc header", knownVector[:len(knownVector)-8] + "12340846", ErrMalformedPayload},
		{"lowercase crc", knownVector[:len(knownVector)-4] + "0a46", ErrMalformedPayload},
		{"tampered amount", tampered, ErrChecksumMismatch},
		{"bad crc", knownVector[:len(knownVector)-4] + "0000", ErrChecksumMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.payload); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	// structurally broken bodies with a valid checksum
	knownBody := knownVector[:len(knownVector)-4]
	for name, body := range map[string]string{
		"overflowing tag":    "0002012699" + crcHeader,
		"signed length":      strings.Replace(knownBody, "5802BR", "58+2BR", 1),
		"space in length":    strings.Replace(knownBody, "5802BR", "58 2BR", 1),
		"non-numeric length": strings.Replace(knownBody, "5802BR", "58x2BR", 1),
	} {
		t.Run(name, func(t *testing.T) {
			if body == knownBody {
				t.Fatalf("fixture did not change the payload")
			}
			if _, err := Decode(body + Checksum(body)); !errors.Is(err, ErrMalformedPayload) {
				t.Fatalf("expected ErrMalformedPayload, got %v", err)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"530", "530.00", false},
		{"450.5", "450.50", false},
		{"0.01", "0.01", false},
		{"0", "", true},
		{"-1", "", true},
		{"10.005", "", true},
	}
	for _, tc := range cases {
		got, err := FormatAmount(decimal.RequireFromString(tc.in))
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("%s: expected ErrInvalidAmount, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%s: expected %s, got %s (err=%v)", tc.in, tc.want, got, err)
		}
	}
}

func TestTransactionID(t *testing.T) {
	if got := TransactionID("3f2a9c1e-77b0-4b8e-9d0a-0c3e5f6a7b8c"); got != "3f2a9c1e77b04b8e9d0a0c3e5" {
		t.Fatalf("unexpected txid %q", got)
	}
	if got := TransactionID("short"); got != "short" {
		t.Fatalf("unexpected txid %q", got)
	}
	if got := TransactionID("---"); got != "" {
		t.Fatalf("expected empty txid, got %q", got)
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// ErrCorruptItem is returned when a stored attribute cannot be parsed back.
var ErrCorruptItem = errors.New("stored item is corrupt")

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// Money is always written with two decimals so stored values compare as text.
func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// itemDecoder parses the text attributes of a stored item and keeps the first
// failure, so a corrupted value surfaces as an error instead of a zero.
type itemDecoder struct {
	err error
}

func (d *itemDecoder) time(field, s string) time.Time {
	if s == "" || d.err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		d.err = fmt.Errorf("%w: %s: %v", ErrCorruptItem, field, err)
	}
	return t
}

func (d *itemDecoder) timePtr(field, s string) *time.Time {
	t := d.time(field, s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func (d *itemDecoder) money(field, s string) decimal.Decimal {
	if s == "" || d.err != nil {
		return decimal.Zero
	}
	m, err := decimal.NewFromString(s)
	if err != nil {
		d.err = fmt.Errorf("%w: %s: %v", ErrCorruptItem, field, err)
		return decimal.Zero
	}
	return m
}

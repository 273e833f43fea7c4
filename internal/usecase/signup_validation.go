package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"temporada_ferias/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Fees offered on the signup form.
var allowedFees = []decimal.Decimal{
	decimal.RequireFromString("530"),
	decimal.RequireFromString("477"),
	decimal.RequireFromString("450.50"),
	decimal.RequireFromString("265"),
}

// Brazilian phone with area code: "(92) 99999-0000", "92 3333-4444", "92999990000".
var phonePattern = regexp.MustCompile(`^\(?\d{2}\)?[\s-]?\d{4,5}-?\d{4}$`)

var signUpValidator = newSignUpValidator()

func newSignUpValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterSignUpValidations(v); err != nil {
		panic(err)
	}
	// report fields by their form names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterSignUpValidations adds the custom signup tags to v. The HTTP binding
// engine registers them too so both layers accept the same forms.
func RegisterSignUpValidations(v *validator.Validate) error {
	return v.RegisterValidation("phone_br", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
}

func validateSignUp(cmd SignUpCommand) error {
	d := cmd.Details
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidSignUp, fmt.Sprintf(format, args...))
	}

	if err := signUpValidator.Struct(d); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			return invalid("%s", describeField(fields[0]))
		}
		return invalid("%v", err)
	}

	// rules that span fields stay here
	if !cmd.Method.Valid() {
		return invalid("payment_method %q is not allowed", cmd.Method)
	}
	if !isAllowedFee(cmd.Fee) {
		return invalid("registration_value %s is not offered", cmd.Fee.String())
	}
	if cmd.Method == entities.PaymentMethodCarne && d.PayFirstInstallmentWithPix {
		first := d.FirstInstallmentAmount
		if !first.IsPositive() || !first.Equal(first.Round(2)) || first.GreaterThan(cmd.Fee) {
			return invalid("first_installment_amount must be a positive amount up to the fee")
		}
	}
	return nil
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s %q is not allowed", fe.Field(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "phone_br":
		return fmt.Sprintf("%s is not a valid phone number", fe.Field())
	case "email":
		return fmt.Sprintf("%s is not a valid email", fe.Field())
	case "eq":
		return "all policy agreements must be accepted"
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}

func isAllowedFee(fee decimal.Decimal) bool {
	for _, f := range allowedFees {
		if fee.Equal(f) {
			return true
		}
	}
	return false
}

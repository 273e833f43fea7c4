package handlers

import (
	"errors"
	"net/http"
	"strings"

	"temporada_ferias/internal/domain/ledger"
	"temporada_ferias/internal/domain/pix"
	"temporada_ferias/internal/usecase"
	"temporada_ferias/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

const notificationWarning = "saved, but the notification email could not be sent"

// mapError translates usecase and ledger errors into the API error body.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignUp):
		return pkg.NewDomainError("INVALID_SIGNUP", detail(err, usecase.ErrInvalidSignUp), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRegistrationID), errors.Is(err, usecase.ErrInvalidQuestionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrAmountMismatch):
		return pkg.NewDomainError("AMOUNT_MISMATCH", "Amount does not match the registration fee", err, http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, pix.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "Amount must be positive with at most two decimals", err, http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidInstallment):
		return pkg.NewDomainError("INVALID_INSTALLMENT", "Installment number is not part of the payment plan", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuestion):
		return pkg.NewDomainError("INVALID_QUESTION", detail(err, usecase.ErrInvalidQuestion), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAnswer):
		return pkg.NewDomainErrorSimple("INVALID_ANSWER", "Answer must have at least 10 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuestionNotFound):
		return pkg.NewDomainErrorSimple("QUESTION_NOT_FOUND", "Question not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrAlreadyConfirmed):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_CONFIRMED", "Payment already confirmed", http.StatusConflict)
	case errors.Is(err, ledger.ErrInstallmentOutOfOrder):
		return pkg.NewDomainError("INSTALLMENT_OUT_OF_ORDER", "Previous installments must be recorded before the last one", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Registration was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuestionArchived):
		return pkg.NewDomainErrorSimple("QUESTION_ARCHIVED", "Question is archived", http.StatusConflict)
	case errors.Is(err, usecase.ErrPixNotApplicable):
		return pkg.NewDomainErrorSimple("PIX_NOT_APPLICABLE", "Registration has no PIX charge", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSheetNotConfigured):
		return pkg.NewDomainErrorSimple("SHEETS_NOT_CONFIGURED", "Spreadsheet integration not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// detail drops the sentinel prefix so the message names the offending field.
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}

func abortWithError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("["+area+"][handler] request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		zap.L().Info("["+area+"][handler] request rejected", zap.String("path", c.FullPath()), zap.String("code", appErr.Code), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortInvalidPayload(c *gin.Context, area string, err error) {
	zap.L().Info("["+area+"][handler] invalid payload", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

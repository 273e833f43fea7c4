package handlers

import (
	"context"
	"errors"
	"net/http"

	request "temporada_ferias/internal/adapter/http/dto/request"
	response "temporada_ferias/internal/adapter/http/dto/response"
	"temporada_ferias/internal/adapter/http/middleware"
	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LedgerHandler exposes the admin payment operations. The acting admin is
// the email carried by the bearer token.

type LedgerHandler struct {
	usecase usecase.IPaymentLedgerUseCase
}

func NewLedgerHandler(uc usecase.IPaymentLedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

// @Summary      Record an installment
// @Description  Re-recording an installment number replaces the earlier entry.
// @Tags         admin-ledger
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "registration id"
// @Param        payload  body      request.InstallmentRequest  true  "installment"
// @Success      200      {object}  response.RegistrationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/registrations/{id}/installments [post]
func (h *LedgerHandler) RecordInstallment(c *gin.Context) {
	h.applyInstallment(c, "record", h.usecase.RecordInstallment)
}

// Finalize confirms the plan. A failed confirmation email still answers 200
// with a warning, since the payment itself was stored.
//
// @Summary      Confirm the payment
// @Tags         admin-ledger
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "registration id"
// @Param        payload  body      request.InstallmentRequest  true  "closing installment"
// @Success      200      {object}  response.RegistrationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/registrations/{id}/finalize [post]
func (h *LedgerHandler) Finalize(c *gin.Context) {
	h.applyInstallment(c, "finalize", h.usecase.Finalize)
}

func (h *LedgerHandler) applyInstallment(
	c *gin.Context,
	op string,
	apply func(ctx context.Context, id string, number int, amount decimal.Decimal, actor string) (entities.Registration, error),
) {
	var payload request.InstallmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, "ledger", err)
		return
	}

	id := c.Param("id")
	actor := middleware.Actor(c)
	zap.L().Info("[ledger][handler] "+op+" start",
		zap.String("registration_id", id), zap.Int("installment", payload.Installment), zap.String("actor", actor))

	saved, err := apply(c.Request.Context(), id, payload.Installment, payload.Amount, actor)
	if err != nil && !(errors.Is(err, usecase.ErrNotificationFailed) && saved.ID != "") {
		abortWithError(c, "ledger", err)
		return
	}

	res := response.FromRegistration(saved)
	if err != nil {
		res.Warning = notificationWarning
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Set the Adote marker
// @Tags         admin-ledger
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "registration id"
// @Param        payload  body      request.AdopteeRequest  true  "marker"
// @Success      200      {object}  response.RegistrationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/registrations/{id}/adoptee [patch]
func (h *LedgerHandler) SetAdoptee(c *gin.Context) {
	var payload request.AdopteeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, "ledger", err)
		return
	}

	saved, err := h.usecase.SetAdoptee(c.Request.Context(), c.Param("id"), *payload.IsAdoptee)
	if err != nil {
		abortWithError(c, "ledger", err)
		return
	}
	zap.L().Info("[ledger][handler] adoptee updated",
		zap.String("registration_id", saved.ID), zap.Bool("is_adoptee", saved.IsAdoptee), zap.String("actor", middleware.Actor(c)))
	c.JSON(http.StatusOK, response.FromRegistration(saved))
}

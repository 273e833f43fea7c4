package handlers

import (
	"fmt"
	"net/http"

	request "temporada_ferias/internal/adapter/http/dto/request"
	response "temporada_ferias/internal/adapter/http/dto/response"
	"temporada_ferias/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrCodeSize = 320

// RegistrationHandler serves the public signup and PIX endpoints and the
// admin read side of registrations.

type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

// @Summary      Sign up for the retreat
// @Description  Stores the form, opens the payment plan and records a PIX down payment for carnê plans.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SignUpRequest  true  "signup form"
// @Success      201      {object}  response.RegistrationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /registrations [post]
func (h *RegistrationHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, "registration", err)
		return
	}

	created, err := h.usecase.SignUp(c.Request.Context(), payload.ToCommand())
	if err != nil {
		abortWithError(c, "registration", err)
		return
	}
	zap.L().Info("[registration][handler] signup created", zap.String("registration_id", created.ID))
	c.JSON(http.StatusCreated, response.FromRegistration(created))
}

// @Summary      Get a registration
// @Tags         admin-registrations
// @Produce      json
// @Param        id   path      string  true  "registration id"
// @Success      200  {object}  response.RegistrationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/registrations/{id} [get]
func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, "registration", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(r))
}

// @Summary      List registrations
// @Description  Newest first.
// @Tags         admin-registrations
// @Produce      json
// @Success      200  {array}   response.RegistrationResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/registrations [get]
func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, "registration", err)
		return
	}
	c.JSON(http.StatusOK, response.FromRegistrations(items))
}

// PixCharge returns the copy-and-paste payload and where to fetch its QR image.
//
// @Summary      PIX copy-and-paste charge
// @Tags         pix
// @Produce      json
// @Param        id   path      string  true  "registration id"
// @Success      200  {object}  response.PixChargeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Router       /registrations/{id}/pix [get]
func (h *RegistrationHandler) PixCharge(c *gin.Context) {
	charge, err := h.usecase.PixCharge(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, "pix", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPixCharge(charge, c.Request.URL.Path+"/qrcode"))
}

// PixQRCode renders the same payload as a PNG.
//
// @Summary      PIX charge as PNG QR code
// @Tags         pix
// @Produce      png
// @Param        id   path      string  true  "registration id"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Router       /registrations/{id}/pix/qrcode [get]
func (h *RegistrationHandler) PixQRCode(c *gin.Context) {
	charge, err := h.usecase.PixCharge(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, "pix", err)
		return
	}
	png, err := qrcode.Encode(charge.Payload, qrcode.Medium, qrCodeSize)
	if err != nil {
		abortWithError(c, "pix", fmt.Errorf("qrcode encode: %w", err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// @Summary      Dashboard statistics
// @Tags         admin-dashboard
// @Produce      json
// @Success      200  {object}  usecase.Stats
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/stats [get]
func (h *RegistrationHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SyncSheet rewrites the spreadsheet from the store.
//
// @Summary      Rewrite the spreadsheet mirror
// @Tags         admin-dashboard
// @Produce      json
// @Success      200  {object}  response.SheetSyncResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/sheets/sync [post]
func (h *RegistrationHandler) SyncSheet(c *gin.Context) {
	rows, err := h.usecase.SyncSheet(c.Request.Context())
	if err != nil {
		abortWithError(c, "sheets", err)
		return
	}
	c.JSON(http.StatusOK, response.SheetSyncResponse{Rows: rows})
}

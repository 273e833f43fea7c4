package handlers

import (
	"net/http"

	request "temporada_ferias/internal/adapter/http/dto/request"
	"temporada_ferias/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler exchanges admin credentials for a bearer token.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "credentials"
// @Success      200      {object}  usecase.Session
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, "auth", err)
		return
	}
	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		abortWithError(c, "auth", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

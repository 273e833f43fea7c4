package handlers

import (
	"net/http"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	usecase usecase.IActivityUseCase
}

func NewActivityHandler(uc usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

// @Summary      Activity log
// @Description  Newest first.
// @Tags         admin-dashboard
// @Produce      json
// @Success      200  {array}   entities.ActivityEntry
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/activity [get]
func (h *ActivityHandler) List(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, "activity", err)
		return
	}
	if entries == nil {
		entries = []entities.ActivityEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

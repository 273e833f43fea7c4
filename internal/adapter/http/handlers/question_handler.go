package handlers

import (
	"errors"
	"net/http"

	request "temporada_ferias/internal/adapter/http/dto/request"
	response "temporada_ferias/internal/adapter/http/dto/response"
	"temporada_ferias/internal/adapter/http/middleware"
	"temporada_ferias/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuestionHandler serves the landing page Q&A inbox.

type QuestionHandler struct {
	usecase usecase.IQuestionUseCase
}

func NewQuestionHandler(uc usecase.IQuestionUseCase) *QuestionHandler {
	return &QuestionHandler{usecase: uc}
}

// @Summary      Send a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuestionRequest  true  "question"
// @Success      201      {object}  response.QuestionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      429      {object}  pkg.HTTPError
// @Router       /questions [post]
func (h *QuestionHandler) Submit(c *gin.Context) {
	var payload request.QuestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, "question", err)
		return
	}
	q, err := h.usecase.Submit(c.Request.Context(), payload.Email, payload.Question)
	if err != nil {
		abortWithError(c, "question", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuestion(q))
}

// @Summary      List questions
// @Tags         admin-questions
// @Produce      json
// @Success      200  {array}   response.QuestionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, "question", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuestions(items))
}

// @Summary      Answer a question
// @Tags         admin-questions
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "question id"
// @Param        payload  body      request.ReplyRequest  true  "answer"
// @Success      200      {object}  response.QuestionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/questions/{id}/reply [post]
func (h *QuestionHandler) Reply(c *gin.Context) {
	var payload request.ReplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, "question", err)
		return
	}
	q, err := h.usecase.Reply(c.Request.Context(), c.Param("id"), payload.Answer, middleware.Actor(c))
	if err != nil && !(errors.Is(err, usecase.ErrNotificationFailed) && q.ID != "") {
		abortWithError(c, "question", err)
		return
	}
	res := response.FromQuestion(q)
	if err != nil {
		res.Warning = notificationWarning
	}
	c.JSON(http.StatusOK, res)
}

// Archive soft-deletes the question.
//
// @Summary      Archive a question
// @Tags         admin-questions
// @Produce      json
// @Param        id   path      string  true  "question id"
// @Success      200  {object}  response.QuestionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/questions/{id} [delete]
func (h *QuestionHandler) Archive(c *gin.Context) {
	q, err := h.usecase.Archive(c.Request.Context(), c.Param("id"), middleware.Actor(c))
	if err != nil {
		abortWithError(c, "question", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuestion(q))
}

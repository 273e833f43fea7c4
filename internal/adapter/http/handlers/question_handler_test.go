package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"temporada_ferias/internal/adapter/http/handlers/mocks"
	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func questionRouter(uc *mocks.MockIQuestionUseCase) *gin.Engine {
	h := NewQuestionHandler(uc)
	r := newRouter()
	r.POST("/v1/questions", h.Submit)
	r.GET("/v1/admin/questions", h.List)
	r.POST("/v1/admin/questions/:id/reply", h.Reply)
	r.DELETE("/v1/admin/questions/:id", h.Archive)
	return r
}

func TestQuestionHandler_Submit(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuestionUseCase(ctrl)

		w := do(questionRouter(uc), http.MethodPost, "/v1/questions", `{"email":"nope","question":"Qual o horário de saída?"}`)
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("too short", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), "a@b.com", "Oi").
			Return(entities.Question{}, fmt.Errorf("%w: question must have at least 10 characters", usecase.ErrInvalidQuestion))

		w := do(questionRouter(uc), http.MethodPost, "/v1/questions", `{"email":"a@b.com","question":"Oi"}`)
		assertStatus(t, w, http.StatusBadRequest)
		if body := decodeError(t, w); body.Code != "INVALID_QUESTION" || body.Message != "question must have at least 10 characters" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), "a@b.com", "Qual o horário de saída?").
			Return(entities.Question{ID: "q1", Email: "a@b.com", Status: entities.QuestionStatusPending, CreatedAt: testNow}, nil)

		w := do(questionRouter(uc), http.MethodPost, "/v1/questions", `{"email":"a@b.com","question":"Qual o horário de saída?"}`)
		assertStatus(t, w, http.StatusCreated)
	})
}

func TestQuestionHandler_Admin(t *testing.T) {
	answered := entities.Question{ID: "q1", Status: entities.QuestionStatusAnswered, Answer: "Saída às 7h da igreja.", AnsweredBy: testActor}

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := do(questionRouter(uc), http.MethodGet, "/v1/admin/questions", "")
		assertStatus(t, w, http.StatusOK)
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("reply archived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		uc.EXPECT().Reply(gomock.Any(), "q1", "Saída às 7h da igreja.", testActor).Return(entities.Question{}, usecase.ErrQuestionArchived)

		w := do(questionRouter(uc), http.MethodPost, "/v1/admin/questions/q1/reply", `{"answer":"Saída às 7h da igreja."}`)
		assertStatus(t, w, http.StatusConflict)
	})

	t.Run("reply email failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		uc.EXPECT().Reply(gomock.Any(), "q1", gomock.Any(), testActor).
			Return(answered, fmt.Errorf("%w: timeout", usecase.ErrNotificationFailed))

		w := do(questionRouter(uc), http.MethodPost, "/v1/admin/questions/q1/reply", `{"answer":"Saída às 7h da igreja."}`)
		assertStatus(t, w, http.StatusOK)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["warning"] != notificationWarning || body["status"] != "answered" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("archive missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuestionUseCase(ctrl)
		uc.EXPECT().Archive(gomock.Any(), "q9", testActor).Return(entities.Question{}, usecase.ErrQuestionNotFound)

		w := do(questionRouter(uc), http.MethodDelete, "/v1/admin/questions/q9", "")
		assertStatus(t, w, http.StatusNotFound)
	})
}

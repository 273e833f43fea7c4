package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"temporada_ferias/internal/adapter/http/middleware"
	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/domain/ledger"
	"temporada_ferias/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const testActor = "admin@upa.org"

var testNow = time.Date(2025, 12, 10, 15, 0, 0, 0, time.UTC)

// newRouter returns a test router whose admin requests already carry testActor.
func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.ActorKey, testActor) })
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

func carneRegistration(t *testing.T) entities.Registration {
	t.Helper()
	plan, err := ledger.NewPlan(entities.PaymentMethodCarne, decimal.RequireFromString("150"), testNow)
	if err != nil {
		t.Fatalf("new plan: %v", err)
	}
	return entities.Registration{
		ID: "0f8fad5bd9cb469fa16570867728950e", Name: "Ana Clara", Email: "mae@exemplo.com",
		Fee: decimal.RequireFromString("530"), Payment: plan, CreatedAt: testNow, UpdatedAt: testNow, Version: 1,
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}


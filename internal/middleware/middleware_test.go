package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warehouse/internal/service"
	"warehouse/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(generated); err != nil {
		t.Fatalf("generated id %q: %v", generated, err)
	}
	if w.Body.String() != generated {
		t.Errorf("context id %q != header %q", w.Body.String(), generated)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("propagated id = %q", got)
	}
}

func TestRecoveryWritesEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error == nil || body.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("body = %+v", body)
	}
}

func TestActorStoresUserOnContext(t *testing.T) {
	r := gin.New()
	r.Use(Actor())
	r.GET("/", func(c *gin.Context) {
		fromCtx, ok := service.ActorFromContext(c.Request.Context())
		fromGin, _ := GetUserID(c)
		if !ok || fromCtx != fromGin {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, fromCtx.String())
	})

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, id.String())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != id.String() {
		t.Errorf("status=%d body=%q", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, "nope")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid header status = %d", w.Code)
	}
}

func TestActorOptional(t *testing.T) {
	r := gin.New()
	r.Use(Actor())
	r.GET("/", func(c *gin.Context) {
		if _, ok := service.ActorFromContext(c.Request.Context()); ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d", w.Code)
	}
}

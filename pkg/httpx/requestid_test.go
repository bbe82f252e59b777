package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gunvolt24/cleanpos/pkg/ctxmeta"
	"github.com/Gunvolt24/cleanpos/pkg/httpx"
)

// serveWithID — прогоняет запрос через middleware и возвращает заголовок ответа и id из контекста.
func serveWithID(t *testing.T, provided string) (header, fromCtx string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		fromCtx, _ = ctxmeta.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if provided != "" {
		req.Header.Set(httpx.HeaderRequestID, provided)
	}
	r.ServeHTTP(w, req)
	return w.Header().Get(httpx.HeaderRequestID), fromCtx
}

func TestRequestIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	rid, gotID := serveWithID(t, "")
	if _, err := uuid.Parse(rid); err != nil {
		t.Fatalf("сгенерированный X-Request-ID должен быть UUID, got=%q err=%v", rid, err)
	}
	if gotID != rid {
		t.Fatalf("request id в контексте должен совпадать с заголовком: ctx=%q header=%q", gotID, rid)
	}
}

func TestRequestIDMiddleware_UsesProvidedHeader(t *testing.T) {
	const provided = "pos-terminal-7:42"
	rid, gotID := serveWithID(t, provided)
	if rid != provided || gotID != provided {
		t.Fatalf("middleware должен сохранять переданный X-Request-ID: header=%q ctx=%q want=%q", rid, gotID, provided)
	}
}

func TestRequestIDMiddleware_ReplacesUnacceptable(t *testing.T) {
	for name, provided := range map[string]string{
		"too_long":  strings.Repeat("a", 129),
		"has_space": "id with spaces",
	} {
		t.Run(name, func(t *testing.T) {
			rid, _ := serveWithID(t, provided)
			if rid == provided {
				t.Fatalf("неподходящий X-Request-ID должен быть заменён")
			}
			if _, err := uuid.Parse(rid); err != nil {
				t.Fatalf("замена должна быть UUID, got=%q", rid)
			}
		})
	}
}

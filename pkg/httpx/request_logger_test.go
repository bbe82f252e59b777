package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/cleanpos/pkg/httpx"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Infof(_ context.Context, f string, a ...any)  { l.add("INFO", f, a...) }
func (l *recordingLogger) Warnf(_ context.Context, f string, a ...any)  { l.add("WARN", f, a...) }
func (l *recordingLogger) Errorf(_ context.Context, f string, a ...any) { l.add("ERROR", f, a...) }

func TestRequestLogger_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := &recordingLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ok/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, p := range []string{"/ok/42", "/bad", "/boom", "/ping"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, http.NoBody))
	}

	require.Len(t, log.lines, 3, "ping не логируется")
	require.Contains(t, log.lines[0], "INFO")
	require.Contains(t, log.lines[0], "route=/ok/:id")
	require.Contains(t, log.lines[0], "path=/ok/42")
	require.Contains(t, log.lines[1], "WARN")
	require.Contains(t, log.lines[2], "ERROR")
}

func TestRequestLogger_UnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := &recordingLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))

	require.Len(t, log.lines, 1)
	require.Contains(t, log.lines[0], "route=unmatched")
	require.Contains(t, log.lines[0], "status=404")
}

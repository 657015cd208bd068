package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emresource/emresource/internal/pkg/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	logger.SetGlobalLogger(&logger.ZapLogger{Logger: zap.New(core)})
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })
	return &buf
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		expectLog  string
	}{
		{
			name:       "string panic",
			panicValue: "something broke",
			expectLog:  "something broke",
		},
		{
			name:       "error panic",
			panicValue: fmt.Errorf("handler blew up"),
			expectLog:  "handler blew up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)

			e := echo.New()
			handler := PanicRecoveryMiddleware()(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "Internal server error", response["error"])
			assert.Equal(t, false, response["success"])

			assert.Contains(t, logs.String(), tt.expectLog)
			assert.Contains(t, logs.String(), "stack")
		})
	}
}

func TestPanicRecoveryMiddleware_PassesThrough(t *testing.T) {
	e := echo.New()
	handler := PanicRecoveryMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

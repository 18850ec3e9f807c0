package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/status-server/internal/pkg/version"
	"github.com/darkkaiser/status-server/internal/service/api/handler/status"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// setupRouter 미들웨어와 라우트가 모두 등록된 Echo 인스턴스를 생성합니다.
func setupRouter(t *testing.T) *echo.Echo {
	t.Helper()

	e := NewHTTPServer()
	RegisterRoutes(e, status.New(version.Info{Version: "0.1.0"}, time.Now()))

	return e
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func assertCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()

	assert.Equal(t, "*", h.Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "GET, POST, OPTIONS", h.Get(echo.HeaderAccessControlAllowMethods))
	assert.Equal(t, "Content-Type", h.Get(echo.HeaderAccessControlAllowHeaders))
}

func TestRegisterRoutes_GetStatus(t *testing.T) {
	t.Parallel()

	rec := serve(setupRouter(t), http.MethodGet, "/status")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get(echo.HeaderContentType))
	assertCORSHeaders(t, rec.Header())

	body := rec.Body.String()
	assert.Equal(t, "ok", gjson.Get(body, "status").String())
	assert.Equal(t, "0.1.0", gjson.Get(body, "version").String())
	assert.GreaterOrEqual(t, gjson.Get(body, "uptime_seconds").Int(), int64(0))
}

func TestRegisterRoutes_쿼리스트링무시(t *testing.T) {
	t.Parallel()

	rec := serve(setupRouter(t), http.MethodGet, "/status?verbose=1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
}

func TestRegisterRoutes_Preflight(t *testing.T) {
	t.Parallel()

	rec := serve(setupRouter(t), http.MethodOptions, "/status")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assertCORSHeaders(t, rec.Header())
}

func TestRegisterRoutes_알수없는경로(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		target string
		code   int
	}{
		{"루트 경로", http.MethodGet, "/", http.StatusNotFound},
		{"다른 경로", http.MethodGet, "/health", http.StatusNotFound},
		{"하위 경로", http.MethodGet, "/status/extra", http.StatusNotFound},
		{"허용되지 않은 메서드", http.MethodPost, "/status", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(setupRouter(t), tt.method, tt.target)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, int64(tt.code), gjson.Get(rec.Body.String(), "result_code").Int())
			assert.NotEqual(t, "ok", gjson.Get(rec.Body.String(), "status").String())
		})
	}
}

func TestNewHTTPServer_공통헤더(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		code   int
	}{
		{"GET", http.MethodGet, http.StatusOK},
		{"OPTIONS Preflight", http.MethodOptions, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(setupRouter(t), tt.method, "/status")
			require.Equal(t, tt.code, rec.Code)

			assert.Empty(t, rec.Header().Get(echo.HeaderServer), "Server 헤더가 노출되지 않아야 합니다")

			// Secure 미들웨어 헤더는 CORS 헤더와 함께 모든 /status 응답에 포함된다
			assertCORSHeaders(t, rec.Header())
			assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
			assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
			assert.Equal(t, "1; mode=block", rec.Header().Get(echo.HeaderXXSSProtection))

			requestID := rec.Header().Get(echo.HeaderXRequestID)
			assert.Len(t, requestID, 36, "Request ID는 UUID 형식이어야 합니다")
			assert.Equal(t, 4, strings.Count(requestID, "-"))
		})
	}
}

func TestNewHTTPServer_설정(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer()

	assert.True(t, e.HideBanner)
	assert.True(t, e.HidePort)
	assert.NotZero(t, e.Server.ReadHeaderTimeout)
	assert.NotZero(t, e.Server.IdleTimeout)
}

package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// captureLogs 전역 Logger 출력을 JSON 형식으로 버퍼에 캡처합니다.
// 전역 상태를 변경하므로 이 헬퍼를 사용하는 테스트는 병렬로 실행하지 않습니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.InfoLevel)

	t.Cleanup(func() {
		applog.SetOutput(os.Stdout)
		applog.SetFormatter(&applog.TextFormatter{})
		applog.SetLevel(applog.InfoLevel)
	})

	return buf
}

// =============================================================================
// PanicRecovery
// =============================================================================

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name       string
		panicValue any
		expectMsg  string
	}{
		{"문자열 panic", "something broke", "something broke"},
		{"에러 panic", errors.New("db down"), "db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			e := echo.New()
			e.Use(PanicRecovery())
			e.GET("/panic", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/panic", nil)
			rec := httptest.NewRecorder()

			assert.NotPanics(t, func() { e.ServeHTTP(rec, req) })
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			line := buf.String()
			assert.Equal(t, "PANIC RECOVERED", gjson.Get(line, "msg").String())
			assert.Equal(t, "api.middleware", gjson.Get(line, "component").String())
			assert.Contains(t, gjson.Get(line, "error").String(), tt.expectMsg)
			assert.NotEmpty(t, gjson.Get(line, "stack").String())
		})
	}
}

func TestPanicRecovery_AbortHandler(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecovery())
	e.GET("/abort", func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	req := httptest.NewRequest(http.MethodGet, "/abort", nil)
	rec := httptest.NewRecorder()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { e.ServeHTTP(rec, req) })
}

// =============================================================================
// HTTPLogger
// =============================================================================

func TestHTTPLogger(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	e.Use(HTTPLogger())
	e.GET("/status", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/status?probe=1", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	req.Header.Set("User-Agent", "probe/1.0")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	line := buf.String()
	assert.Equal(t, "HTTP 요청", gjson.Get(line, "msg").String())
	assert.Equal(t, "GET", gjson.Get(line, "method").String())
	assert.Equal(t, "/status", gjson.Get(line, "path").String())
	assert.Equal(t, "/status?probe=1", gjson.Get(line, "uri").String())
	assert.Equal(t, int64(200), gjson.Get(line, "status").Int())
	assert.Equal(t, "0", gjson.Get(line, "bytes_in").String())
	assert.Equal(t, "2", gjson.Get(line, "bytes_out").String())
	assert.Equal(t, "probe/1.0", gjson.Get(line, "user_agent").String())
	assert.True(t, gjson.Get(line, "latency").Exists())
}

func TestHTTPLogger_에러상태기록(t *testing.T) {
	buf := captureLogs(t)

	e := echo.New()
	e.Use(HTTPLogger())
	e.GET("/missing", func(c echo.Context) error {
		return echo.ErrNotFound
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(404), gjson.Get(buf.String(), "status").Int(), "에러 핸들러가 기록한 최종 상태 코드가 로그에 남아야 합니다")
}

// =============================================================================
// Logger Adapter
// =============================================================================

func TestLogger_Level변환(t *testing.T) {
	captureLogs(t)
	l := Logger{Logger: applog.StandardLogger()}

	tests := []struct {
		echoLevel log.Lvl
		appLevel  applog.Level
	}{
		{log.DEBUG, applog.DebugLevel},
		{log.INFO, applog.InfoLevel},
		{log.WARN, applog.WarnLevel},
		{log.ERROR, applog.ErrorLevel},
	}

	for _, tt := range tests {
		l.SetLevel(tt.echoLevel)
		assert.Equal(t, tt.appLevel, applog.StandardLogger().GetLevel())
		assert.Equal(t, tt.echoLevel, l.Level())
	}

	// OFF는 무시되고, 대응 레벨이 없으면 OFF를 반환한다
	l.SetLevel(log.OFF)
	assert.Equal(t, applog.ErrorLevel, applog.StandardLogger().GetLevel())

	applog.SetLevel(applog.TraceLevel)
	assert.Equal(t, log.OFF, l.Level())
}

func TestLogger_출력위임(t *testing.T) {
	buf := captureLogs(t)
	l := Logger{Logger: applog.StandardLogger()}

	assert.Same(t, buf, l.Output())
	assert.Empty(t, l.Prefix())

	l.Infoj(log.JSON{"port": 8080})
	assert.Equal(t, int64(8080), gjson.Get(buf.String(), "port").Int())

	buf.Reset()
	l.Warnf("echo %s", "warning")
	assert.Equal(t, "echo warning", gjson.Get(buf.String(), "msg").String())
	assert.Equal(t, "warning", gjson.Get(buf.String(), "level").String())
}

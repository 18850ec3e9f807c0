// Package status /status 엔드포인트의 HTTP 핸들러를 제공합니다.
package status

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/darkkaiser/status-server/internal/pkg/errors"
	"github.com/darkkaiser/status-server/internal/pkg/version"
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/darkkaiser/status-server/internal/service/api/model/status"
	"github.com/labstack/echo/v4"
)

// Handler 서버 상태 조회 요청을 처리합니다.
type Handler struct {
	buildInfo version.Info

	// startTime 프로세스 시작 시각. time.Now()가 반환한 값이므로 단조 시계 값을 포함합니다.
	startTime time.Time

	now func() time.Time
}

// New Handler 인스턴스를 생성합니다.
//
// startTime은 프로세스 시작 시 한 번만 기록된 값이어야 하며, 이후 변경되지 않습니다.
func New(buildInfo version.Info, startTime time.Time) *Handler {
	if buildInfo.Version == "" {
		buildInfo.Version = version.DefaultVersion
	}

	return &Handler{
		buildInfo: buildInfo,
		startTime: startTime,
		now:       time.Now,
	}
}

// Uptime 프로세스 시작 이후 경과한 시간을 초 단위(내림)로 반환합니다.
//
// time.Time.Sub는 양쪽 값에 단조 시계가 있으면 이를 사용하므로 시스템 시각이 변경되어도 감소하지 않습니다.
func (h *Handler) Uptime() int64 {
	elapsed := h.now().Sub(h.startTime)
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / time.Second)
}

// StatusHandler 서버 상태를 JSON으로 반환합니다.
//
// Content-Type은 charset 파라미터 없이 정확히 "application/json"으로 응답합니다.
func (h *Handler) StatusHandler(c echo.Context) error {
	body, err := json.Marshal(status.StatusResponse{
		Status:        constants.StatusOK,
		Version:       h.buildInfo.Version,
		UptimeSeconds: h.Uptime(),
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "상태 응답을 직렬화하는데 실패하였습니다")
	}

	return c.Blob(http.StatusOK, constants.ContentTypeJSON, body)
}

// PreflightHandler CORS Preflight 요청에 본문 없이 204로 응답합니다.
// CORS 헤더는 라우트 미들웨어에서 설정됩니다.
func (h *Handler) PreflightHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

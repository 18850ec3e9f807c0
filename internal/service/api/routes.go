package api

import (
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/darkkaiser/status-server/internal/service/api/handler/status"
	appmiddleware "github.com/darkkaiser/status-server/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes 상태 엔드포인트를 등록합니다.
//
//   - GET /status: 서버 상태 조회
//   - OPTIONS /status: CORS Preflight (204)
//
// 그 외 경로는 전역 에러 핸들러가 404로 응답합니다.
func RegisterRoutes(e *echo.Echo, h *status.Handler) {
	cors := appmiddleware.StatusCORS()

	e.GET(constants.StatusPath, h.StatusHandler, cors)
	e.OPTIONS(constants.StatusPath, h.PreflightHandler, cors)
}

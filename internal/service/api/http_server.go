package api

import (
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/darkkaiser/status-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/status-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewHTTPServer 공통 미들웨어가 적용된 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어에서 발생한 panic도 복구하도록 가장 먼저 적용
//  2. RequestID - 요청마다 X-Request-ID(UUID)를 부여하여 로그와 연결
//  3. ServerHeader - 응답의 Server 헤더 제거
//  4. HTTPLogger - 요청/응답을 구조화된 로그로 기록
//  5. Secure - X-Content-Type-Options 등 보안 헤더 추가
//
// 상태 엔드포인트는 모니터링 도구가 동시에 호출하는 것을 전제로 하므로 요청 수 제한은 적용하지 않습니다.
// CORS 헤더는 라우트 단위(StatusCORS)로 설정되며, 라우트 등록은 RegisterRoutes에서 수행합니다.
func NewHTTPServer() *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그를 애플리케이션 로거로 통합
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(middleware.Secure())

	return e
}

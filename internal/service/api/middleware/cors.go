package middleware

import (
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// StatusCORS /status 라우트의 모든 응답에 고정된 CORS 헤더를 설정하는 미들웨어를 반환합니다.
//
// echo의 CORS 미들웨어는 Origin 헤더가 있는 요청에만 헤더를 추가하지만,
// 상태 엔드포인트는 Origin 유무와 관계없이 항상 동일한 세 헤더를 응답해야 합니다.
// 헤더는 핸들러 실행 전에 설정되므로 핸들러가 에러를 반환해도 유지됩니다.
func StatusCORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, constants.CORSAllowOrigin)
			h.Set(echo.HeaderAccessControlAllowMethods, constants.CORSAllowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, constants.CORSAllowHeaders)

			return next(c)
		}
	}
}

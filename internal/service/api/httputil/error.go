// Package httputil HTTP 응답 처리를 위한 공통 유틸리티를 제공합니다.
package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/darkkaiser/status-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 ErrorResponse JSON 형식으로 변환하여 반환합니다.
// 404/405는 고정된 메시지를 사용하고, 그 외 echo.HTTPError가 아닌 에러는 500으로 응답합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	switch code {
	case http.StatusNotFound:
		message = constants.ErrMsgNotFound
	case http.StatusMethodNotAllowed:
		message = constants.ErrMsgMethodNotAllowed
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	// 이미 응답이 전송된 경우 추가 응답을 보내지 않는다
	if c.Response().Committed {
		return
	}

	// HEAD 요청은 본문 없이 헤더만 반환
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

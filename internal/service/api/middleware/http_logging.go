package middleware

import (
	"strconv"
	"time"

	"github.com/darkkaiser/status-server/internal/service/api/constants"
	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없는 경우 bytes_in 필드에 기록할 값
const defaultBytesIn = "0"

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 기록되는 정보:
//   - 요청: IP, 메서드, 경로, User-Agent, Content-Length
//   - 응답: 상태 코드, 응답 크기, Request ID
//   - 성능: 처리 시간
func HTTPLogger() echo.MiddlewareFunc {
	return httpLogger
}

func httpLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		res := c.Response()
		start := time.Now()

		// panic이 발생해도 로그가 남도록 defer로 기록
		defer func() {
			latency := time.Since(start)

			path := req.URL.Path
			if path == "" {
				path = "/"
			}

			bytesIn := req.Header.Get(echo.HeaderContentLength)
			if bytesIn == "" {
				bytesIn = defaultBytesIn
			}

			applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
				"method":   req.Method,
				"path":     path,
				"uri":      req.RequestURI,
				"host":     req.Host,
				"protocol": req.Proto,

				"remote_ip":  c.RealIP(),
				"user_agent": req.UserAgent(),

				"status":    res.Status,
				"bytes_in":  bytesIn,
				"bytes_out": strconv.FormatInt(res.Size, 10),

				"latency":       strconv.FormatInt(latency.Microseconds(), 10),
				"latency_human": latency.String(),

				"request_id": res.Header().Get(echo.HeaderXRequestID),
			}).Info(constants.LogMsgHTTPRequest)
		}()

		// 에러를 여기서 처리해야 로그에 최종 상태 코드가 기록된다
		if err := next(c); err != nil {
			c.Error(err)
		}

		return nil
	}
}

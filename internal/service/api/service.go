// Package api 상태 조회 HTTP 서버의 생명주기를 관리합니다.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/status-server/internal/config"
	apperrors "github.com/darkkaiser/status-server/internal/pkg/errors"
	"github.com/darkkaiser/status-server/internal/pkg/version"
	"github.com/darkkaiser/status-server/internal/service"
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	"github.com/darkkaiser/status-server/internal/service/api/handler/status"
	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/net/http2"
)

var _ service.Service = (*Service)(nil)

// Service 상태 조회 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start는 리스닝 소켓을 동기적으로 바인딩한 뒤 서버를 고루틴에서 실행하고 즉시 반환합니다.
// 바인딩 실패는 Start의 에러로 반환되므로 호출자가 프로세스를 종료할 수 있으며,
// 실행 중 서버가 예기치 않게 종료되면 Errors 채널로 알립니다.
// 종료는 Start에 전달한 context를 취소하여 요청합니다.
type Service struct {
	appConfig *config.AppConfig

	buildInfo version.Info

	// startTime 프로세스 시작 시각 (uptime 계산 기준)
	startTime time.Time

	listener net.Listener

	errC chan error

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, buildInfo version.Info, startTime time.Time) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Service{
		appConfig: appConfig,

		buildInfo: buildInfo,

		startTime: startTime,

		errC: make(chan error, 1),
	}
}

// Start API 서비스를 시작합니다.
//
// 처리 순서:
//  1. 중복 실행 확인
//  2. Echo 서버 구성 (미들웨어, 라우트)
//  3. 리스닝 소켓 바인딩 (실패 시 apperrors.System 에러 반환)
//  4. 서버 실행 및 종료 대기 (별도 고루틴)
//
// 에러를 반환하거나 이미 실행 중인 경우에도 serviceStopWG.Done()이 호출되므로,
// 호출자는 결과와 관계없이 serviceStopWG.Wait()로 종료를 기다릴 수 있습니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	e := s.setupServer()

	ln, err := net.Listen("tcp", s.appConfig.Address())
	if err != nil {
		defer serviceStopWG.Done()

		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"port":  s.appConfig.Port,
			"error": err,
		}).Error(constants.LogMsgServiceBindFailed)

		return apperrors.Wrapf(err, apperrors.System, "리스닝 포트(%d) 바인딩에 실패하였습니다", s.appConfig.Port)
	}

	e.Listener = ln
	s.listener = ln
	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG, e)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": s.boundPort(),
	}).Info(constants.LogMsgServiceStarted)

	return nil
}

// Errors 실행 중 서버가 예기치 않게 종료된 경우 에러를 전달하는 채널을 반환합니다.
func (s *Service) Errors() <-chan error {
	return s.errC
}

// Addr 바인딩된 리스닝 주소를 반환합니다. 시작 전에는 nil입니다.
func (s *Service) Addr() net.Addr {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Port 실제로 바인딩된 포트를 반환합니다. 포트 0으로 시작한 경우 운영체제가 할당한 포트입니다.
func (s *Service) Port() int {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.boundPort()
}

func (s *Service) boundPort() int {
	if s.listener != nil {
		if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
			return addr.Port
		}
	}
	return s.appConfig.Port
}

// setupServer Echo 서버 인스턴스를 생성하고 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	statusHandler := status.New(s.buildInfo, s.startTime)

	e := NewHTTPServer()
	RegisterRoutes(e, statusHandler)

	return e
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, e *echo.Echo) {
	defer serviceStopWG.Done()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// startHTTPServer 바인딩된 리스너로 HTTP 서버를 실행합니다.
// HTTP/1.1과 함께 h2c(평문 HTTP/2) 연결도 처리하며, 서버가 종료될 때까지 블로킹됩니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	err := e.StartH2CServer("", &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          constants.DefaultIdleTimeout,
	})

	s.handleServerError(err)
}

// handleServerError HTTP 서버 종료 원인을 처리합니다.
//
//   - nil, http.ErrServerClosed: Graceful Shutdown에 의한 정상 종료
//   - 그 외: Error 레벨 로깅 후 Errors 채널로 전달
func (s *Service) handleServerError(err error) {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.Port,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)

	select {
	case s.errC <- apperrors.Wrap(err, apperrors.Unavailable, constants.LogMsgServiceHTTPServerFatalError):
	default:
	}
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 이미 종료되었으므로 Shutdown 호출 없이 상태만 정리
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

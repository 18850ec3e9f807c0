package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/darkkaiser/status-server/internal/config"
	"github.com/darkkaiser/status-server/internal/pkg/version"
	"github.com/darkkaiser/status-server/internal/service"
	"github.com/darkkaiser/status-server/internal/service/api"
	"github.com/darkkaiser/status-server/internal/service/api/constants"
	applog "github.com/darkkaiser/status-server/pkg/log"
)

const (
	banner = `
  ____  _____   _   _____  _   _  ____
 / ___||_   _| / \ |_   _|| | | |/ ___|
 \___ \  | |  / _ \  | |  | | | |\___ \
  ___) | | | / ___ \ | |  | |_| | ___) |
 |____/  |_|/_/   \_\|_|   \___/ |____/  Server v%s
--------------------------------------------------------------------------------
`
)

func main() {
	// uptime 기준 시각. 다른 초기화보다 먼저 기록한다
	startTime := time.Now()

	os.Exit(run(context.Background(), os.Args[1:], startTime, os.Stdout))
}

// run 서버를 실행하고 프로세스 종료 코드를 반환합니다.
// ctx가 취소되거나 SIGINT/SIGTERM을 수신하면 서버를 정상 종료하고 0을 반환합니다.
func run(ctx context.Context, args []string, startTime time.Time, stdout io.Writer) int {
	buildInfo := version.Get()

	fmt.Fprintf(stdout, banner, buildInfo.Version)

	// 1. 환경설정 로드
	appConfig, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		return 1
	}

	// 2. 로그 시스템 초기화 (실패해도 서버 구동은 계속한다)
	appLogCloser, err := applog.Setup(applog.NewProductionOptions(config.AppName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] 로그 시스템 초기화 실패. 기본 로거로 계속 진행합니다. (Cause: %v)\n", err)
	} else {
		defer appLogCloser.Close()
	}

	applog.WithComponentAndFields("main", buildInfo.ToMap()).
		WithField("port", appConfig.Port).
		Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 3. 서비스 시작
	apiService := api.NewService(appConfig, buildInfo, startTime)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패로 프로그램을 종료합니다")

			cancel()
			serviceStopWG.Wait()

			return 1
		}
	}

	applog.WithComponent("main").Infof("%s %d", constants.LogMsgServiceListening, apiService.Port())

	// 4. 종료 신호 대기
	termCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exitCode := 0
	select {
	case <-termCtx.Done():
		applog.WithComponentAndFields("main", applog.Fields{
			"cause": context.Cause(termCtx),
		}).Info("Shutdown signal received")
	case err := <-apiService.Errors():
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("HTTP 서버가 중단되어 프로그램을 종료합니다")
		exitCode = 1
	}

	cancel()
	serviceStopWG.Wait()

	return exitCode
}

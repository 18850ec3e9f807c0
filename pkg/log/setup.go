package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 Setup 결과. 재호출 시 동일한 Closer와 에러를 반환합니다.
	globalCloser   io.Closer
	globalSetupErr error

	// consoleOutput 콘솔 로그의 출력 대상 (테스트에서 교체)
	consoleOutput io.Writer = os.Stdout

	// stderrOutput 로그 시스템 자체의 경고 출력 대상 (테스트에서 교체)
	stderrOutput io.Writer = os.Stderr
)

// silentFormatter 아무것도 출력하지 않는 포맷터입니다.
// 실제 포맷팅은 hook에서 수행하므로, io.Discard로 버려질 출력을 위해 포맷팅 비용을 쓰지 않습니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}

// Setup 전역 로깅 시스템을 초기화합니다.
//
// 반환된 Closer는 main 함수에서 defer로 해제해야 합니다.
// 로그 디렉토리를 만들 수 없는 경우 에러 대신 표준 에러로 경고를 남기고 콘솔 출력만 사용합니다.
// 두 번째 호출부터는 최초 호출의 결과를 그대로 반환합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == PanicLevel {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	h := &hook{
		formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
				return frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")", ""
			},
		},
	}

	closers, err := openLogFiles(h, opts)
	if err != nil {
		// 파일 로그 실패는 기동을 막지 않는다. 콘솔 출력으로 대체
		fmt.Fprintf(stderrOutput, "[LOG-SYSTEM-WARN] 로그 파일을 사용할 수 없어 콘솔 출력만 사용합니다: %v\n", err)
		h.consoleWriter = consoleOutput
	}

	if opts.EnableConsoleLog {
		h.consoleWriter = consoleOutput
	}

	// 모든 출력은 hook이 담당한다
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)
	logrus.AddHook(h)

	c := &closer{closers: closers, hook: h}

	// Fatal 로그로 os.Exit이 호출되기 직전에 파일을 정리한다
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// openLogFiles 로그 디렉토리를 준비하고 메인/Critical 로그 파일 Writer를 hook에 연결합니다.
// 디렉토리를 만들 수 없으면 hook을 변경하지 않고 에러를 반환합니다.
func openLogFiles(h *hook, opts Options) ([]io.Closer, error) {
	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	newRotatingFile := func(name string) *lumberjack.Logger {
		return &lumberjack.Logger{
			Filename:   filepath.Join(dir, name),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     opts.MaxAge,
			LocalTime:  true,
		}
	}

	mainLogger := newRotatingFile(fmt.Sprintf("%s.%s", opts.Name, fileExt))
	h.mainWriter = mainLogger
	closers := []io.Closer{mainLogger}

	if opts.EnableCriticalLog {
		criticalLogger := newRotatingFile(fmt.Sprintf("%s.critical.%s", opts.Name, fileExt))
		h.criticalWriter = criticalLogger
		closers = append(closers, criticalLogger)
	}

	return closers, nil
}

package middleware

import (
	"io"

	applog "github.com/darkkaiser/status-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

var _ echo.Logger = Logger{}

// Logger Echo의 Logger 인터페이스(github.com/labstack/gommon/log)를 애플리케이션 로거로 위임하는 어댑터입니다.
//
// Print/Debug/Info/Warn/Error/Fatal/Panic 계열 메서드는 임베딩된 Logger에서 그대로 승격되며,
// 레벨 변환과 JSON 변형(*j) 메서드만 이 파일에서 구현합니다.
type Logger struct {
	*applog.Logger
}

// echoToAppLevel Echo 로그 레벨과 애플리케이션 로그 레벨의 대응표
var echoToAppLevel = map[log.Lvl]applog.Level{
	log.DEBUG: applog.DebugLevel,
	log.INFO:  applog.InfoLevel,
	log.WARN:  applog.WarnLevel,
	log.ERROR: applog.ErrorLevel,
}

func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Prefix Echo의 Prefix 기능은 사용하지 않습니다.
func (l Logger) Prefix() string {
	return ""
}

func (l Logger) SetPrefix(string) {}

// Level 애플리케이션 로그 레벨을 Echo 로그 레벨로 변환합니다.
// 대응하는 레벨이 없는 경우(Trace, Fatal, Panic) OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	current := l.Logger.GetLevel()
	for lvl, appLvl := range echoToAppLevel {
		if appLvl == current {
			return lvl
		}
	}
	return log.OFF
}

// SetLevel Echo 로그 레벨을 애플리케이션 로그 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if appLvl, ok := echoToAppLevel[lvl]; ok {
		l.Logger.SetLevel(appLvl)
	}
}

func (l Logger) SetHeader(string) {}

func (l Logger) Printj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Print()
}

func (l Logger) Debugj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Debug()
}

func (l Logger) Infoj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Info()
}

func (l Logger) Warnj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Warn()
}

func (l Logger) Errorj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Error()
}

func (l Logger) Fatalj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Fatal()
}

func (l Logger) Panicj(j log.JSON) {
	l.Logger.WithFields(applog.Fields(j)).Panic()
}

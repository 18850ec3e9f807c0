package log

// NewProductionOptions 운영 환경에 맞춘 로그 설정을 반환합니다.
//
// 상태 서버는 기동 시 리스닝 포트를 콘솔에 알려야 하므로 운영 환경에서도 콘솔 출력을 유지합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableConsoleLog:  true,

		ReportCaller: false,
	}
}

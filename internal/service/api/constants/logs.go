package constants

// 서비스 생명주기 로그 메시지
const (
	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceBindFailed     = "리스닝 포트 바인딩에 실패하였습니다"
	LogMsgServiceListening      = "listening on port"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "HTTP 서버가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStopped       = "HTTP 서버 중지됨"
	LogMsgServiceHTTPServerFatalError    = "HTTP 서버 실행 중 치명적인 오류가 발생하였습니다"
	LogMsgServiceHTTPServerShutdownError = "HTTP 서버를 중지하는 중에 오류가 발생하였습니다"
)

// HTTP 요청 처리 로그 메시지
const (
	LogMsgHTTPRequest        = "HTTP 요청"
	LogMsgHTTP4xxClientError = "클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "서버 내부 오류"
	LogMsgPanicRecovered     = "PANIC RECOVERED"
)

package constants

// 클라이언트에게 반환되는 에러 메시지입니다.
const (
	ErrMsgNotFound         = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgMethodNotAllowed = "허용되지 않은 메서드입니다"
	ErrMsgInternalServer   = "내부 서버 오류가 발생하였습니다"
)

// panic 메시지입니다.
const (
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"
)

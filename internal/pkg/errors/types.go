package errors

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (복구된 panic 등)
	Internal

	// System 시스템 또는 인프라 오류 (포트 바인딩 실패, 설정 디코딩 실패 등)
	System

	// InvalidInput 잘못된 입력값
	InvalidInput

	// Unavailable 서비스 일시적 사용 불가
	Unavailable
)

func (t ErrorType) String() string {
	switch t {
	case Internal:
		return "Internal"
	case System:
		return "System"
	case InvalidInput:
		return "InvalidInput"
	case Unavailable:
		return "Unavailable"
	default:
		return "Unknown"
	}
}

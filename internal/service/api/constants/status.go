package constants

// StatusPath 상태 조회 엔드포인트 경로
const StatusPath = "/status"

// StatusOK 정상 동작 중일 때 status 필드 값
const StatusOK = "ok"

// ContentTypeJSON 상태 응답의 Content-Type
const ContentTypeJSON = "application/json"

// /status 응답에 항상 포함되는 CORS 헤더 값입니다.
const (
	CORSAllowOrigin  = "*"
	CORSAllowMethods = "GET, POST, OPTIONS"
	CORSAllowHeaders = "Content-Type"
)

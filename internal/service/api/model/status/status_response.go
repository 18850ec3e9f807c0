package status

// StatusResponse GET /status 응답
type StatusResponse struct {
	// Status 서버 상태 (항상 "ok")
	Status string `json:"status"`

	// Version 서버 버전
	Version string `json:"version"`

	// UptimeSeconds 프로세스 시작 이후 경과한 시간 (초, 내림)
	UptimeSeconds int64 `json:"uptime_seconds"`
}

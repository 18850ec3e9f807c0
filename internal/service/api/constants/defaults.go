package constants

import "time"

const (
	// DefaultReadTimeout 요청 전체(헤더 + 본문)를 읽는 최대 시간
	DefaultReadTimeout = 10 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더를 읽는 최대 시간 (Slowloris 방어)
	DefaultReadHeaderTimeout = 5 * time.Second

	// DefaultWriteTimeout 응답을 쓰는 최대 시간
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 진행 중인 요청을 기다리는 최대 시간
	DefaultShutdownTimeout = 5 * time.Second
)

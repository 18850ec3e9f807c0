package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 이벤트를 레벨에 따라 메인 파일, 중요(Critical) 파일, 콘솔로 분배합니다.
//
//   - consoleWriter: 모든 레벨
//   - criticalWriter: ERROR / FATAL / PANIC
//   - mainWriter: 모든 레벨 (Critical 로그도 문맥 보존을 위해 중복 기록)
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	mu     sync.RWMutex // 로그 기록(Read Lock)과 종료 처리(Write Lock) 간의 동시성 제어
	closed bool
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그 Entry를 한 번 포맷팅한 뒤 설정된 Writer들에 기록합니다.
// 메인 파일 기록은 다른 Writer의 실패와 관계없이 항상 시도합니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error

	// 콘솔 쓰기 실패는 전파하지 않는다
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력(Console) 쓰기 실패: %v\n", err)
		}
	}

	if entry.Level <= ErrorLevel && h.criticalWriter != nil {
		if _, err := h.criticalWriter.Write(msg); err != nil {
			firstErr = err
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] Critical 로그 파일 쓰기 실패: %v\n", err)
		}
	}

	if h.mainWriter != nil {
		if _, err := h.mainWriter.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] Main 로그 파일 쓰기 실패: %v\n", err)
		}
	}

	return firstErr
}

// Close 이후의 모든 로그 기록 요청을 무시하도록 Hook을 종료 상태로 전환합니다.
// 진행 중인 Fire 호출이 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}

package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer 로그 파일 리소스의 해제를 통합 관리합니다.
// Hook을 먼저 비활성화한 뒤 파일을 닫으며, 여러 번 호출해도 안전합니다.
type closer struct {
	closers []io.Closer

	hook *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	// 닫힌 파일에 쓰지 않도록 로그 유입부터 차단한다
	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

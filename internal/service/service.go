// Package service 애플리케이션을 구성하는 서비스의 공통 인터페이스를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service context 취소로 종료되는 장기 실행 서비스입니다.
//
// Start는 호출 전에 serviceStopWG.Add(1)이 되어 있다고 가정하며,
// 서비스가 완전히 종료되거나 시작에 실패하면 serviceStopWG.Done()을 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}

package testutil

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFreePort(t *testing.T) {
	port, err := GetFreePort()
	require.NoError(t, err)
	assert.Greater(t, port, 0)

	// 반환된 포트는 즉시 다시 바인딩할 수 있어야 한다
	l, err := net.Listen("tcp", "127.0.0.1:"+strconv.Itoa(port))
	require.NoError(t, err)
	l.Close()
}

func TestWaitForServer(t *testing.T) {
	t.Run("리스닝 중인 포트", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		port := l.Addr().(*net.TCPAddr).Port
		assert.NoError(t, WaitForServer(port, time.Second))
	})

	t.Run("닫힌 포트_타임아웃", func(t *testing.T) {
		port, err := GetFreePort()
		require.NoError(t, err)

		err = WaitForServer(port, 50*time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), strconv.Itoa(port))
	})
}

func TestStatusURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8080/status", StatusURL(8080))
}

package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/darkkaiser/status-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRun_로그디렉토리생성실패_서버기동(t *testing.T) {
	// logs 위치에 일반 파일이 있어 로그 디렉토리를 만들 수 없는 환경
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs"), []byte("not a directory"), 0644))

	port, err := testutil.GetFreePort()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exitC := make(chan int, 1)
	go func() {
		exitC <- run(ctx, []string{"--port", strconv.Itoa(port)}, time.Now(), io.Discard)
	}()

	require.NoError(t, testutil.WaitForServer(port, 5*time.Second), "로그 디렉토리가 없어도 포트를 바인딩해야 합니다")

	client := &http.Client{Timeout: 5 * time.Second}
	defer client.CloseIdleConnections()

	resp, err := client.Get(testutil.StatusURL(port))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", gjson.GetBytes(body, "status").String())

	cancel()

	select {
	case exitCode := <-exitC:
		assert.Equal(t, 0, exitCode, "정상 종료 시 종료 코드는 0이어야 합니다")
	case <-time.After(10 * time.Second):
		t.Fatal("run이 종료되지 않았습니다")
	}

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.False(t, info.IsDir(), "기존 파일은 그대로 유지되어야 합니다")
}

func TestRun_포트바인딩실패(t *testing.T) {
	// 로그 파일이 패키지 디렉토리에 생성되지 않도록 임시 디렉토리에서 실행
	t.Chdir(t.TempDir())

	occupied, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer occupied.Close()

	port := occupied.Addr().(*net.TCPAddr).Port

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--port", strconv.Itoa(port)}, time.Now(), stdout)

	assert.Equal(t, 1, exitCode, "바인딩 실패 시 0이 아닌 종료 코드를 반환해야 합니다")
	assert.Contains(t, stdout.String(), "Server v0.1.0")
}

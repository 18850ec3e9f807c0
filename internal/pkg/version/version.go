// Package version 애플리케이션의 빌드 및 버전 정보를 제공합니다.
//
// 버전 문자열은 기본값(DefaultVersion)을 가지며, 빌드 시점에 링커 플래그로 덮어쓸 수 있습니다.
//
//	go build -ldflags "-X github.com/darkkaiser/status-server/internal/pkg/version.appVersion=0.2.0"
//
// 커밋 해시와 빌드 날짜는 주입되지 않은 경우 debug.ReadBuildInfo의 VCS 정보로 보강됩니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// DefaultVersion /status 응답에 노출되는 기본 버전 문자열입니다.
const DefaultVersion = "0.1.0"

const unknown = "unknown"

// 링커 플래그(-ldflags -X)로 주입되는 빌드 정보입니다. 직접 참조하지 말고 Get()을 사용해야 합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	buildDate     = ""
	buildNumber   = ""
)

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

var (
	buildInfoOnce sync.Once
	buildInfo     Info
)

// Info 애플리케이션의 빌드 정보를 담고 있습니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 애플리케이션의 빌드 정보를 반환합니다. 최초 호출 시 한 번만 계산되며, 이후에는 불변입니다.
func Get() Info {
	buildInfoOnce.Do(func() {
		buildInfo = enrich(Info{
			Version:     strings.TrimSpace(appVersion),
			Commit:      strings.TrimSpace(gitCommitHash),
			BuildDate:   strings.TrimSpace(buildDate),
			BuildNumber: strings.TrimSpace(buildNumber),
		})
	})
	return buildInfo
}

// enrich 비어 있는 필드를 런타임 정보와 VCS 메타데이터로 채웁니다.
//
// 버전은 모듈 버전으로 대체하지 않습니다. /status 응답의 version 필드는 주입값 또는 DefaultVersion이어야 합니다.
func enrich(bi Info) Info {
	if bi.Version == "" {
		bi.Version = DefaultVersion
	}
	if bi.GoVersion == "" {
		bi.GoVersion = runtime.Version()
	}
	if bi.OS == "" {
		bi.OS = runtime.GOOS
	}
	if bi.Arch == "" {
		bi.Arch = runtime.GOARCH
	}

	if val, ok := readBuildInfo(); ok && val != nil {
		for _, setting := range val.Settings {
			switch setting.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = setting.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = setting.Value
				}
			case "vcs.modified":
				if setting.Value == "true" {
					bi.DirtyBuild = true
				}
			}
		}
	}

	if bi.Commit == "" {
		bi.Commit = unknown
	}
	if bi.BuildDate == "" {
		bi.BuildDate = unknown
	}

	return bi
}

// ToMap 빌드 정보를 구조적 로깅용 맵으로 반환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String 빌드 정보를 한 줄로 요약해 반환합니다. (예: "0.1.0 (commit: f25b8bf, go_version: go1.24.0, os: linux, arch: amd64)")
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		details = append(details, "commit: "+commit)
	}
	if i.BuildNumber != "" {
		details = append(details, "build: "+i.BuildNumber)
	}
	if i.BuildDate != "" && i.BuildDate != unknown {
		details = append(details, "date: "+i.BuildDate)
	}
	if i.GoVersion != "" {
		details = append(details, "go_version: "+i.GoVersion)
	}
	if i.OS != "" {
		details = append(details, "os: "+i.OS)
	}
	if i.Arch != "" {
		details = append(details, "arch: "+i.Arch)
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}

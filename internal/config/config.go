package config

import (
	"errors"
	"fmt"
	"strconv"

	apperrors "github.com/darkkaiser/status-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다. (로그 파일명 등에 사용)
	AppName string = "status-server"

	// DefaultPort --port 플래그가 없거나 값을 해석할 수 없을 때 사용하는 리스닝 포트입니다.
	DefaultPort = 8080

	// PortFlag 리스닝 포트를 지정하는 명령행 플래그 토큰입니다. 값은 다음 인자로 전달합니다. (예: --port 9090)
	PortFlag = "--port"

	// privilegedPortLimit 이 값 미만의 포트는 관리자 권한이 필요할 수 있습니다.
	privilegedPortLimit = 1024
)

// AppConfig 애플리케이션 설정입니다. 기동 시 한 번 결정되며 이후 변경되지 않습니다.
type AppConfig struct {
	// Port 리스닝 포트. 범위 검증은 경고로만 사용하며, 범위를 벗어난 값도 그대로 리스너에 전달됩니다.
	Port int `koanf:"port" validate:"min=1,max=65535"`
}

// Load 명령행 인자로부터 애플리케이션 설정을 생성합니다.
//
// 우선순위: 기본값 < 명령행 인자(--port).
// --port 값을 해석할 수 없는 경우 에러로 취급하지 않고 기본값을 유지합니다.
func Load(args []string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드
	if err := k.Load(structs.Provider(AppConfig{Port: DefaultPort}, "koanf"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. 명령행 인자 로드
	if err := k.Load(structs.Provider(AppConfig{Port: ResolvePort(args)}, "koanf"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "명령행 설정 로드에 실패했습니다")
	}

	// 3. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	return &appConfig, nil
}

// ResolvePort 명령행 인자에서 리스닝 포트를 결정합니다.
//
// --port 토큰 바로 다음 인자를 10진 정수로 해석하며, 플래그가 없거나 해석에 실패하면 DefaultPort를 반환합니다.
// 플래그가 여러 번 주어진 경우 마지막으로 해석에 성공한 값이 사용됩니다.
func ResolvePort(args []string) int {
	port := DefaultPort
	for i := 0; i < len(args)-1; i++ {
		if args[i] != PortFlag {
			continue
		}
		if v, err := strconv.Atoi(args[i+1]); err == nil {
			port = v
		}
	}
	return port
}

// VerifyRecommendations 권장 설정 준수 여부를 진단하여 경고 메시지 목록을 반환합니다.
// 경고는 기동을 막지 않습니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				if fieldErr.StructField() == "Port" {
					warnings = append(warnings, fmt.Sprintf("리스닝 포트(%d)가 유효 범위(1-65535)를 벗어났습니다. 포트 바인딩에 실패할 수 있습니다", c.Port))
				}
			}
		}
		return warnings
	}

	if c.Port < privilegedPortLimit {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.Port))
	}

	return warnings
}

// Address 리스너가 바인딩할 주소를 반환합니다. (예: ":8080")
func (c *AppConfig) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate 설정 구조체 검증에 사용하는 공용 Validator 인스턴스입니다. (goroutine-safe)
var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 검증 에러에 Go 필드명(예: Port) 대신 설정 키(예: port)가 나오도록 한다
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

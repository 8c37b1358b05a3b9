package config

import (
	"errors"
	"fmt"
	"strings"

	logconfig "github.com/weisyn/filegen/internal/config/log"
	"github.com/weisyn/filegen/pkg/interfaces/config"
)

// ValidationError 配置验证错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("配置验证失败 [%s]: %s", e.Field, e.Message)
}

// maxPayloadSize 单次负载上限，流式大文件不在服务范围内
const maxPayloadSize = 64 * 1024 * 1024

// Validate 验证合并默认值后的配置
// 返回所有校验错误的合集
func Validate(provider config.Provider) error {
	var errs []error

	api := provider.GetAPI()
	if api.HTTP.Port < 0 || api.HTTP.Port > 65535 {
		errs = append(errs, &ValidationError{
			Field:   "api.http_port",
			Message: fmt.Sprintf("端口 %d 超出范围 [0, 65535]", api.HTTP.Port),
		})
	}
	if api.HTTP.ReadTimeout <= 0 || api.HTTP.WriteTimeout <= 0 || api.HTTP.IdleTimeout <= 0 {
		errs = append(errs, &ValidationError{
			Field:   "api.timeouts",
			Message: "超时时间必须是大于0的合法时长，如 \"15s\"",
		})
	}
	switch api.HTTP.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, &ValidationError{
			Field:   "api.gin_mode",
			Message: fmt.Sprintf("未知的gin模式 %q", api.HTTP.GinMode),
		})
	}

	gen := provider.GetGenerator()
	if strings.TrimSpace(gen.Dir) == "" {
		errs = append(errs, &ValidationError{
			Field:   "generator.dir",
			Message: "文件目录不能为空",
		})
	}
	if strings.TrimSpace(gen.FileName) == "" || strings.ContainsAny(gen.FileName, `/\`) {
		errs = append(errs, &ValidationError{
			Field:   "generator.file_name",
			Message: fmt.Sprintf("文件名 %q 无效，不能为空或包含路径分隔符", gen.FileName),
		})
	}
	if gen.PayloadSize <= 0 || gen.PayloadSize > maxPayloadSize {
		errs = append(errs, &ValidationError{
			Field:   "generator.payload_size",
			Message: fmt.Sprintf("负载长度 %d 超出范围 (0, %d]", gen.PayloadSize, maxPayloadSize),
		})
	}

	if !logconfig.NewFromOptions(provider.GetLog()).IsValidLevel() {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("未知的日志级别 %q", provider.GetLog().Level),
		})
	}

	return errors.Join(errs...)
}

package log

import (
	"go.uber.org/zap/zapcore"

	logiface "github.com/weisyn/filegen/pkg/interfaces/infrastructure/log"
)

// 日志配置默认值
const (
	// defaultLogLevel 默认日志级别设为"info"
	defaultLogLevel = string(logiface.InfoLevel)

	// defaultToConsole 默认启用控制台输出
	defaultToConsole = true

	// defaultFilePath 默认不写文件
	defaultFilePath = ""

	// === 日志轮转配置 ===

	// defaultMaxSize 单个日志文件最大大小(MB)
	defaultMaxSize = 100

	// defaultMaxBackups 最大备份文件数
	defaultMaxBackups = 10

	// defaultMaxAge 日志文件最大保留天数
	defaultMaxAge = 30

	// defaultCompress 默认启用历史日志压缩
	defaultCompress = true

	// === 调试配置 ===

	// defaultEnableCaller 默认启用调用者信息
	defaultEnableCaller = true

	// defaultEnableStacktrace 默认对Error级别启用堆栈跟踪
	defaultEnableStacktrace = false
)

// 默认的日志级别映射
var defaultLevelMap = map[string]zapcore.Level{
	string(logiface.DebugLevel): zapcore.DebugLevel,
	string(logiface.InfoLevel):  zapcore.InfoLevel,
	string(logiface.WarnLevel):  zapcore.WarnLevel,
	string(logiface.ErrorLevel): zapcore.ErrorLevel,
	string(logiface.FatalLevel): zapcore.FatalLevel,
}

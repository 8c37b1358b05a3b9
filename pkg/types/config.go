package types

// AppConfig 应用配置结构
// 对应 JSON 配置文件的顶层结构
//
// 零值陷阱处理：所有字段均为指针类型
// - nil: 用户未在配置文件中设置该字段，使用系统默认值
// - &value: 用户明确设置了该值，即使是零值也会被采用
type AppConfig struct {
	// 应用程序基本信息
	AppName *string `json:"app_name,omitempty"` // 应用名称
	Version *string `json:"version,omitempty"`  // 应用版本

	API       *UserAPIConfig       `json:"api,omitempty"`       // HTTP API配置
	Log       *UserLogConfig       `json:"log,omitempty"`       // 日志配置
	Generator *UserGeneratorConfig `json:"generator,omitempty"` // 文件生成器配置
}

// UserAPIConfig 用户API配置
// 只包含JSON配置文件中实际出现的字段
type UserAPIConfig struct {
	HTTPHost *string `json:"http_host,omitempty"` // HTTP监听地址（默认0.0.0.0）
	HTTPPort *int    `json:"http_port,omitempty"` // HTTP监听端口（默认5000）

	// 超时配置，使用 time.ParseDuration 格式，如 "15s"
	ReadTimeout  *string `json:"read_timeout,omitempty"`
	WriteTimeout *string `json:"write_timeout,omitempty"`
	IdleTimeout  *string `json:"idle_timeout,omitempty"`

	MetricsEnabled *bool   `json:"metrics_enabled,omitempty"` // 是否暴露 /metrics（默认true）
	GinMode        *string `json:"gin_mode,omitempty"`        // gin运行模式：debug | release | test
}

// UserLogConfig 用户日志配置
type UserLogConfig struct {
	Level    *string `json:"level,omitempty"`     // 日志级别：debug, info, warn, error, fatal
	FilePath *string `json:"file_path,omitempty"` // 日志文件路径，为空时只输出到控制台

	// 文件轮转（lumberjack），未设置时使用默认值
	MaxSizeMB  *int  `json:"max_size_mb,omitempty"`
	MaxBackups *int  `json:"max_backups,omitempty"`
	MaxAgeDays *int  `json:"max_age_days,omitempty"`
	Compress   *bool `json:"compress,omitempty"`
}

// UserGeneratorConfig 用户文件生成器配置
type UserGeneratorConfig struct {
	Dir         *string `json:"dir,omitempty"`          // 文件存放目录（默认/app）
	FileName    *string `json:"file_name,omitempty"`    // 文件名（默认serverfile.txt）
	PayloadSize *int    `json:"payload_size,omitempty"` // 负载长度，单位字节（默认1024）
	Isolate     *bool   `json:"isolate,omitempty"`      // 是否每个请求独立文件（默认true）
	Seed        *uint64 `json:"seed,omitempty"`         // 固定随机种子，仅用于可复现测试
}

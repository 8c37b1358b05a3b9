package api

import (
	"time"

	"github.com/weisyn/filegen/pkg/types"
)

// APIOptions API服务配置选项
type APIOptions struct {
	// HTTP API配置
	HTTP HTTPConfig `json:"http"`
}

// HTTPConfig HTTP API配置
type HTTPConfig struct {
	Host string `json:"host"` // 监听地址
	Port int    `json:"port"` // 监听端口

	// 超时配置
	ReadTimeout     time.Duration `json:"read_timeout"`     // 读取超时时间
	WriteTimeout    time.Duration `json:"write_timeout"`    // 写入超时时间
	IdleTimeout     time.Duration `json:"idle_timeout"`     // 空闲连接超时
	ShutdownTimeout time.Duration `json:"shutdown_timeout"` // 优雅关闭超时

	MetricsEnabled bool   `json:"metrics_enabled"` // 是否暴露Prometheus指标
	GinMode        string `json:"gin_mode"`        // gin运行模式
}

// Config API配置实现
type Config struct {
	options *APIOptions
}

// New 创建API配置实现
func New(userConfig *types.UserAPIConfig) *Config {
	// 1. 先创建完整的默认配置
	defaultOptions := createDefaultAPIOptions()

	// 2. 如果有用户配置，则转换并覆盖默认配置
	if userConfig != nil {
		convertAndMergeUserConfig(defaultOptions, userConfig)
	}

	return &Config{
		options: defaultOptions,
	}
}

// createDefaultAPIOptions 创建默认API配置
func createDefaultAPIOptions() *APIOptions {
	return &APIOptions{
		HTTP: HTTPConfig{
			Host:            defaultHTTPHost,
			Port:            defaultHTTPPort,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MetricsEnabled:  defaultMetricsEnabled,
			GinMode:         defaultGinMode,
		},
	}
}

// convertAndMergeUserConfig 将用户配置转换并合并到默认配置中
// 使用指针类型来准确区分"未设置"和"设置为零值"
func convertAndMergeUserConfig(opts *APIOptions, userConfig *types.UserAPIConfig) {
	if userConfig.HTTPHost != nil {
		opts.HTTP.Host = *userConfig.HTTPHost
	}
	// 端口设置为0时由系统分配，测试中常用
	if userConfig.HTTPPort != nil {
		opts.HTTP.Port = *userConfig.HTTPPort
	}

	// 无法解析的时长置为0，由校验器报告
	if d, ok := parseDuration(userConfig.ReadTimeout); ok {
		opts.HTTP.ReadTimeout = d
	}
	if d, ok := parseDuration(userConfig.WriteTimeout); ok {
		opts.HTTP.WriteTimeout = d
	}
	if d, ok := parseDuration(userConfig.IdleTimeout); ok {
		opts.HTTP.IdleTimeout = d
	}

	if userConfig.MetricsEnabled != nil {
		opts.HTTP.MetricsEnabled = *userConfig.MetricsEnabled
	}
	if userConfig.GinMode != nil && *userConfig.GinMode != "" {
		opts.HTTP.GinMode = *userConfig.GinMode
	}
}

func parseDuration(s *string) (time.Duration, bool) {
	if s == nil || *s == "" {
		return 0, false
	}
	d, err := time.ParseDuration(*s)
	if err != nil {
		return 0, true
	}
	return d, true
}

// GetOptions 获取完整的API配置选项
func (c *Config) GetOptions() *APIOptions {
	return c.options
}

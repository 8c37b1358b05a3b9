package api

import "time"

// API服务默认配置值
const (
	// defaultHTTPHost 监听所有网络接口
	defaultHTTPHost = "0.0.0.0"

	// defaultHTTPPort 默认端口5000
	defaultHTTPPort = 5000

	// defaultReadTimeout 读取超时
	defaultReadTimeout = 15 * time.Second

	// defaultWriteTimeout 写入超时
	defaultWriteTimeout = 15 * time.Second

	// defaultIdleTimeout 空闲连接超时
	defaultIdleTimeout = 60 * time.Second

	// defaultShutdownTimeout 优雅关闭的最长等待时间
	defaultShutdownTimeout = 5 * time.Second

	// defaultMetricsEnabled 默认暴露 /metrics
	defaultMetricsEnabled = true

	// defaultGinMode gin默认以release模式运行，访问日志由自有中间件输出
	defaultGinMode = "release"
)

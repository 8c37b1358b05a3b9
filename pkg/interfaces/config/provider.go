// Package config provides configuration provider interfaces.
package config

import (
	apiconfig "github.com/weisyn/filegen/internal/config/api"
	generatorconfig "github.com/weisyn/filegen/internal/config/generator"
	logconfig "github.com/weisyn/filegen/internal/config/log"
)

// Provider 配置提供者接口
// 各模块通过该接口获取已合并默认值的配置选项
type Provider interface {
	// GetAPI 获取API服务配置
	GetAPI() *apiconfig.APIOptions

	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetGenerator 获取文件生成器配置
	GetGenerator() *generatorconfig.GeneratorOptions
}

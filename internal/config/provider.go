package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/weisyn/filegen/internal/config/api"
	"github.com/weisyn/filegen/internal/config/generator"
	"github.com/weisyn/filegen/internal/config/log"
	"github.com/weisyn/filegen/pkg/interfaces/config"
	"github.com/weisyn/filegen/pkg/types"
)

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	return &Provider{
		appConfig: appConfig,
	}
}

// GetAPI 获取API服务配置
func (p *Provider) GetAPI() *api.APIOptions {
	var userAPIConfig *types.UserAPIConfig
	if p.appConfig != nil {
		userAPIConfig = p.appConfig.API
	}

	// api.New会处理默认值应用和用户配置覆盖
	return api.New(userAPIConfig).GetOptions()
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	var userLogConfig *types.UserLogConfig
	if p.appConfig != nil {
		userLogConfig = p.appConfig.Log
	}
	return log.New(userLogConfig).GetOptions()
}

// GetGenerator 获取文件生成器配置
func (p *Provider) GetGenerator() *generator.GeneratorOptions {
	var userGeneratorConfig *types.UserGeneratorConfig
	if p.appConfig != nil {
		userGeneratorConfig = p.appConfig.Generator
	}
	return generator.New(userGeneratorConfig).GetOptions()
}

// GetAppConfig 返回原始用户配置
func (p *Provider) GetAppConfig() *types.AppConfig {
	return p.appConfig
}

// LoadAppConfig 从JSON文件加载用户配置
// path为空时返回空配置，全部字段使用默认值
func LoadAppConfig(path string) (*types.AppConfig, error) {
	if path == "" {
		return &types.AppConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	return ParseAppConfig(data)
}

// ParseAppConfig 解析JSON配置内容
func ParseAppConfig(data []byte) (*types.AppConfig, error) {
	var appConfig types.AppConfig
	if len(data) == 0 {
		return &appConfig, nil
	}
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	return &appConfig, nil
}

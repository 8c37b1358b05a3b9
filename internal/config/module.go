// Package config 提供应用配置管理功能
package config

import (
	apiconfig "github.com/weisyn/filegen/internal/config/api"
	generatorconfig "github.com/weisyn/filegen/internal/config/generator"
	"github.com/weisyn/filegen/pkg/interfaces/config"
	"github.com/weisyn/filegen/pkg/types"
	"go.uber.org/fx"
)

// ConfigParams 定义配置模块的依赖参数
type ConfigParams struct {
	fx.In

	// 应用配置选项
	AppOptions config.AppOptions `optional:"true"`
}

// ConfigOutput 定义配置模块的输出结构
type ConfigOutput struct {
	fx.Out

	// 配置提供者
	Provider config.Provider
}

// Module 返回配置模块
func Module() fx.Option {
	return fx.Module("config",
		fx.Provide(
			ProvideConfigServices,
			// 提供具体的配置类型用于依赖注入
			func(provider config.Provider) *apiconfig.APIOptions {
				return provider.GetAPI()
			},
			func(provider config.Provider) *generatorconfig.GeneratorOptions {
				return provider.GetGenerator()
			},
		),
	)
}

// ProvideConfigServices 提供配置服务
// 配置非法时直接返回错误，阻止应用启动
func ProvideConfigServices(params ConfigParams) (ConfigOutput, error) {
	var appConfig *types.AppConfig
	if params.AppOptions != nil {
		appConfig = params.AppOptions.GetAppConfig()
	}

	provider := NewProvider(appConfig)
	if err := Validate(provider); err != nil {
		return ConfigOutput{}, err
	}

	return ConfigOutput{
		Provider: provider,
	}, nil
}

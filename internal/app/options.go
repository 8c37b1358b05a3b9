package app

import (
	"fmt"

	internalconfig "github.com/weisyn/filegen/internal/config"
	"github.com/weisyn/filegen/pkg/interfaces/config"
	"github.com/weisyn/filegen/pkg/types"
)

// Option 应用程序选项函数类型
type Option func(*options)

// options 应用程序选项
// 实现config.AppOptions接口
type options struct {
	// 配置文件路径
	configFilePath string

	// 嵌入的配置内容（优先级高于configFilePath）
	embeddedConfig []byte

	// 在文件配置之上应用的覆盖，通常来自命令行参数
	overrides []func(*types.AppConfig)

	// 解析完成的用户配置
	appConfig *types.AppConfig
}

// 编译时校验options是否实现了config.AppOptions接口
var _ config.AppOptions = (*options)(nil)

// WithConfigFile 设置配置文件路径
func WithConfigFile(configPath string) Option {
	return func(o *options) {
		o.configFilePath = configPath
	}
}

// WithEmbeddedConfig 设置嵌入的配置内容（优先级高于WithConfigFile）
func WithEmbeddedConfig(configBytes []byte) Option {
	return func(o *options) {
		o.embeddedConfig = configBytes
	}
}

// WithOverride 在加载的配置之上修改字段，按添加顺序依次应用
func WithOverride(fn func(*types.AppConfig)) Option {
	return func(o *options) {
		if fn != nil {
			o.overrides = append(o.overrides, fn)
		}
	}
}

// newOptions 创建选项并解析配置
func newOptions(opts ...Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var (
		appConfig *types.AppConfig
		err       error
	)
	switch {
	case len(o.embeddedConfig) > 0:
		appConfig, err = internalconfig.ParseAppConfig(o.embeddedConfig)
	default:
		appConfig, err = internalconfig.LoadAppConfig(o.configFilePath)
	}
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	for _, fn := range o.overrides {
		fn(appConfig)
	}
	o.appConfig = appConfig

	return o, nil
}

// GetAppConfig 返回应用程序配置
func (o *options) GetAppConfig() *types.AppConfig {
	return o.appConfig
}

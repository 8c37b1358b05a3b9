package generator

import (
	"github.com/weisyn/filegen/pkg/types"
)

// GeneratorOptions 文件生成器配置选项
type GeneratorOptions struct {
	Dir         string  `json:"dir"`          // 文件存放目录
	FileName    string  `json:"file_name"`    // 文件名
	PayloadSize int     `json:"payload_size"` // 负载长度（字节）
	Isolate     bool    `json:"isolate"`      // 是否按请求隔离文件
	Seed        *uint64 `json:"seed"`         // 固定随机种子，nil表示使用全局随机源
}

// Config 文件生成器配置实现
type Config struct {
	options *GeneratorOptions
}

// New 创建文件生成器配置
func New(userConfig *types.UserGeneratorConfig) *Config {
	defaultOptions := createDefaultGeneratorOptions()

	if userConfig != nil {
		applyUserGeneratorConfig(defaultOptions, userConfig)
	}

	return &Config{
		options: defaultOptions,
	}
}

// createDefaultGeneratorOptions 创建默认配置
func createDefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		Dir:         defaultDir,
		FileName:    defaultFileName,
		PayloadSize: defaultPayloadSize,
		Isolate:     defaultIsolate,
	}
}

// applyUserGeneratorConfig 应用用户配置覆盖默认值
func applyUserGeneratorConfig(options *GeneratorOptions, userConfig *types.UserGeneratorConfig) {
	if userConfig.Dir != nil {
		options.Dir = *userConfig.Dir
	}
	if userConfig.FileName != nil {
		options.FileName = *userConfig.FileName
	}
	if userConfig.PayloadSize != nil {
		options.PayloadSize = *userConfig.PayloadSize
	}
	if userConfig.Isolate != nil {
		options.Isolate = *userConfig.Isolate
	}
	if userConfig.Seed != nil {
		seed := *userConfig.Seed
		options.Seed = &seed
	}
}

// GetOptions 获取完整的配置选项
func (c *Config) GetOptions() *GeneratorOptions {
	return c.options
}

package configs

import _ "embed"

// 默认配置文件，未指定 --config 时使用
//
//go:embed config.json
var defaultConfig []byte

// GetDefaultConfig 获取嵌入的默认配置
func GetDefaultConfig() []byte {
	return defaultConfig
}

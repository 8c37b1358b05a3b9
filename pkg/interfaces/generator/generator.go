// Package generator 定义随机负载文件生成器接口
package generator

import (
	"context"

	"github.com/weisyn/filegen/pkg/types"
)

// ReleaseFunc 释放一次生成结果占用的资源
// 隔离模式下删除请求独立的文件，共享模式下释放对固定文件的独占
// 可重复调用，只有第一次生效
type ReleaseFunc func()

// FileGenerator 文件生成器
type FileGenerator interface {
	// Generate 生成随机负载，计算摘要并写入磁盘
	// 调用方在读取完文件后必须调用返回的 ReleaseFunc
	Generate(ctx context.Context) (*types.Artifact, ReleaseFunc, error)

	// Dir 返回文件存放目录
	Dir() string

	// PayloadSize 返回每次生成的负载长度
	PayloadSize() int
}

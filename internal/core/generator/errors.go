package generator

import "errors"

var (
	// ErrStorageUnavailable 文件目录无法创建或访问
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrArtifactWrite 文件写入失败
	ErrArtifactWrite = errors.New("artifact write failed")
	// ErrInvalidPayloadSize 负载长度非法
	ErrInvalidPayloadSize = errors.New("invalid payload size")
	// ErrInvalidFileName 文件名为空或包含路径
	ErrInvalidFileName = errors.New("invalid file name")
)

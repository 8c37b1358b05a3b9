package types

import "time"

// Artifact 单次请求生成的磁盘文件描述
type Artifact struct {
	ID        string    `json:"id"`         // 请求级唯一标识
	Path      string    `json:"path"`       // 文件绝对路径
	Checksum  string    `json:"checksum"`   // 负载的SHA-256十六进制摘要
	Size      int64     `json:"size"`       // 负载字节数
	Shared    bool      `json:"shared"`     // 是否为共享的固定路径文件
	CreatedAt time.Time `json:"created_at"` // 写入完成时间
}

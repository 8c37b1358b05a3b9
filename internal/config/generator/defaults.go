package generator

// 文件生成器默认配置值
const (
	// defaultDir 文件存放目录
	defaultDir = "/app"

	// defaultFileName 共享模式下的固定文件名，隔离模式下作为文件名前缀与扩展名
	defaultFileName = "serverfile.txt"

	// defaultPayloadSize 1KB
	defaultPayloadSize = 1024

	// defaultIsolate 默认每个请求写独立文件，避免并发请求互相覆盖
	defaultIsolate = true
)

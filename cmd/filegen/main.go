// filegen 随机负载文件服务
//
// 用法:
//
//	filegen serve [--config path] [--host 0.0.0.0] [--port 5000] [--dir /app] ...
//	filegen fetch --url http://127.0.0.1:5000 [--out file]
//	filegen version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

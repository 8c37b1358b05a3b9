package main

import (
	"github.com/spf13/cobra"

	"github.com/weisyn/filegen/internal/app/version"
)

// newRootCmd 根命令
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filegen",
		Short: "随机负载文件服务",
		Long: `filegen - 生成随机字母负载文件并附带 SHA-256 摘要返回

服务端:
  filegen serve            # 在 0.0.0.0:5000 上提供 / 与 /get_file

客户端:
  filegen fetch --url URL  # 下载文件并校验 Checksum 头`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.GetFullVersion())
		},
	}
}

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/weisyn/filegen/configs"
	"github.com/weisyn/filegen/internal/app"
	"github.com/weisyn/filegen/pkg/types"
)

// serveFlags serve 命令参数
// 只有显式设置的参数会覆盖配置文件
type serveFlags struct {
	configPath string
	host       string
	port       int
	dir        string
	fileName   string
	size       int
	shared     bool
	logLevel   string
	logFile    string
}

// bindServeFlags 将参数绑定到标志集
func bindServeFlags(fs *pflag.FlagSet, f *serveFlags) {
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON配置文件路径 (默认使用内置配置)")
	fs.StringVar(&f.host, "host", "0.0.0.0", "HTTP监听地址")
	fs.IntVarP(&f.port, "port", "p", 5000, "HTTP监听端口")
	fs.StringVar(&f.dir, "dir", "/app", "文件存放目录")
	fs.StringVar(&f.fileName, "file", "serverfile.txt", "文件名")
	fs.IntVar(&f.size, "size", 1024, "负载长度（字节）")
	fs.BoolVar(&f.shared, "shared", false, "所有请求共用同一个文件（串行处理）")
	fs.StringVar(&f.logLevel, "log-level", "info", "日志级别: debug|info|warn|error")
	fs.StringVar(&f.logFile, "log-file", "", "日志文件路径（按大小轮转）")
}

// override 返回把已设置参数写入配置的函数
func (f *serveFlags) override(fs *pflag.FlagSet) func(*types.AppConfig) {
	return func(c *types.AppConfig) {
		if c.API == nil {
			c.API = &types.UserAPIConfig{}
		}
		if c.Log == nil {
			c.Log = &types.UserLogConfig{}
		}
		if c.Generator == nil {
			c.Generator = &types.UserGeneratorConfig{}
		}

		if fs.Changed("host") {
			c.API.HTTPHost = types.StringPtr(f.host)
		}
		if fs.Changed("port") {
			c.API.HTTPPort = types.IntPtr(f.port)
		}
		if fs.Changed("dir") {
			c.Generator.Dir = types.StringPtr(f.dir)
		}
		if fs.Changed("file") {
			c.Generator.FileName = types.StringPtr(f.fileName)
		}
		if fs.Changed("size") {
			c.Generator.PayloadSize = types.IntPtr(f.size)
		}
		if fs.Changed("shared") {
			c.Generator.Isolate = types.BoolPtr(!f.shared)
		}
		if fs.Changed("log-level") {
			c.Log.Level = types.StringPtr(f.logLevel)
		}
		if fs.Changed("log-file") {
			c.Log.FilePath = types.StringPtr(f.logFile)
		}
	}
}

// appOptions 组装应用选项
func (f *serveFlags) appOptions(fs *pflag.FlagSet) []app.Option {
	opts := []app.Option{}
	if f.configPath != "" {
		opts = append(opts, app.WithConfigFile(f.configPath))
	} else {
		opts = append(opts, app.WithEmbeddedConfig(configs.GetDefaultConfig()))
	}
	return append(opts, app.WithOverride(f.override(fs)))
}

func newServeCmd() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动文件服务",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Start(flags.appOptions(cmd.Flags())...)
			if err != nil {
				return err
			}
			return a.Wait(cmd.Context())
		},
	}
	bindServeFlags(cmd.Flags(), flags)

	return cmd
}

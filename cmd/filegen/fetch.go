package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/weisyn/filegen/client/core/transport"
	"github.com/weisyn/filegen/client/pkg/ux/ui"
)

// fetchFlags fetch 命令参数
type fetchFlags struct {
	url     string
	out     string
	timeout time.Duration
	wait    time.Duration
}

func newFetchCmd() *cobra.Command {
	flags := &fetchFlags{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "下载文件并校验摘要",
		Long: `从文件服务下载 /get_file，重新计算 SHA-256 并与 Checksum 头比较。
摘要不一致时以非零状态退出。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), flags, ui.NewComponents(cmd.OutOrStdout()))
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.url, "url", "u", "http://127.0.0.1:5000", "文件服务地址")
	fs.StringVarP(&flags.out, "out", "o", "", "保存负载的文件路径")
	fs.DurationVar(&flags.timeout, "timeout", 30*time.Second, "请求超时")
	fs.DurationVar(&flags.wait, "wait", 0, "下载前等待服务就绪的最长时间")

	return cmd
}

func runFetch(ctx context.Context, flags *fetchFlags, comp *ui.Components) error {
	if ctx == nil {
		ctx = context.Background()
	}
	client := transport.NewFileClient(flags.url, flags.timeout)

	if flags.wait > 0 {
		if err := client.WaitForServerReady(ctx, flags.wait); err != nil {
			comp.ShowError(err.Error())
			return err
		}
	}

	result, err := client.Fetch(ctx)
	if result == nil {
		comp.ShowError(fmt.Sprintf("下载失败: %v", err))
		return err
	}

	_ = comp.ShowTable([][]string{
		{"字段", "值"},
		{"服务", client.BaseURL()},
		{"请求ID", result.RequestID},
		{"大小", ui.FormatBytes(int64(len(result.Payload)))},
		{"耗时", ui.FormatDuration(result.Duration)},
		{"Checksum", result.Expected},
		{"本地SHA-256", result.Actual},
	})

	if err != nil {
		if errors.Is(err, transport.ErrChecksumMismatch) || errors.Is(err, transport.ErrMissingChecksum) {
			comp.ShowError("摘要校验失败")
		}
		return err
	}

	if flags.out != "" {
		if err := os.WriteFile(flags.out, result.Payload, 0o644); err != nil {
			return fmt.Errorf("保存文件 %s 失败: %w", flags.out, err)
		}
		comp.ShowSuccess(fmt.Sprintf("已保存到 %s", flags.out))
	} else {
		comp.ShowWarning("未指定 --out，负载未保存")
	}
	comp.ShowSuccess("摘要校验通过")
	return nil
}

// Package ui 提供命令行输出组件
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
)

// Components 终端输出组件
type Components struct {
	writer io.Writer
}

// NewComponents 创建输出组件，w为nil时输出到标准输出
func NewComponents(w io.Writer) *Components {
	if w == nil {
		w = os.Stdout
	}
	return &Components{writer: w}
}

// ShowSuccess 显示成功消息
func (c *Components) ShowSuccess(message string) {
	pterm.Success.WithWriter(c.writer).Println(message)
}

// ShowError 显示错误消息
func (c *Components) ShowError(message string) {
	pterm.Error.WithWriter(c.writer).Println(message)
}

// ShowWarning 显示警告消息
func (c *Components) ShowWarning(message string) {
	pterm.Warning.WithWriter(c.writer).Println(message)
}

// ShowTable 显示表格数据，第一行为表头
func (c *Components) ShowTable(data [][]string) error {
	if len(data) == 0 {
		return fmt.Errorf("表格数据为空")
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithWriter(c.writer).
		WithData(data).
		Render()
}

// FormatBytes 以人类可读的形式显示字节数
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatDuration 格式化耗时
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}

package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	m.Run()
}

func TestShowMessages(t *testing.T) {
	var buf bytes.Buffer
	comp := NewComponents(&buf)

	comp.ShowSuccess("校验通过")
	comp.ShowError("校验失败")
	comp.ShowWarning("注意")

	out := buf.String()
	assert.Contains(t, out, "校验通过")
	assert.Contains(t, out, "校验失败")
	assert.Contains(t, out, "注意")
}

func TestShowTable(t *testing.T) {
	var buf bytes.Buffer
	comp := NewComponents(&buf)

	require.NoError(t, comp.ShowTable([][]string{
		{"字段", "值"},
		{"checksum", "ba7816bf"},
	}))
	assert.Contains(t, buf.String(), "ba7816bf")

	assert.Error(t, comp.ShowTable(nil))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "1.5 MiB", FormatBytes(1536*1024))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250µs", FormatDuration(250*time.Microsecond))
	assert.Equal(t, "12ms", FormatDuration(12*time.Millisecond))
	assert.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
}

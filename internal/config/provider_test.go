package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/filegen/pkg/types"
)

// TestProviderDefaults 未配置时使用默认值
func TestProviderDefaults(t *testing.T) {
	provider := NewProvider(nil)

	api := provider.GetAPI()
	assert.Equal(t, "0.0.0.0", api.HTTP.Host)
	assert.Equal(t, 5000, api.HTTP.Port)
	assert.Equal(t, 15*time.Second, api.HTTP.ReadTimeout)
	assert.True(t, api.HTTP.MetricsEnabled)

	gen := provider.GetGenerator()
	assert.Equal(t, "/app", gen.Dir)
	assert.Equal(t, "serverfile.txt", gen.FileName)
	assert.Equal(t, 1024, gen.PayloadSize)
	assert.True(t, gen.Isolate)
	assert.Nil(t, gen.Seed)

	logOpts := provider.GetLog()
	assert.Equal(t, "info", logOpts.Level)
	assert.Empty(t, logOpts.FilePath)

	require.NoError(t, Validate(provider))
}

// TestProviderUserOverrides 用户配置覆盖默认值，零值也生效
func TestProviderUserOverrides(t *testing.T) {
	cfg := &types.AppConfig{
		API: &types.UserAPIConfig{
			HTTPHost:       types.StringPtr("127.0.0.1"),
			HTTPPort:       types.IntPtr(0),
			ReadTimeout:    types.StringPtr("3s"),
			MetricsEnabled: types.BoolPtr(false),
		},
		Generator: &types.UserGeneratorConfig{
			Dir:         types.StringPtr("/tmp/filegen"),
			PayloadSize: types.IntPtr(2048),
			Isolate:     types.BoolPtr(false),
			Seed:        types.Uint64Ptr(42),
		},
		Log: &types.UserLogConfig{
			Level: types.StringPtr("debug"),
		},
	}
	provider := NewProvider(cfg)

	api := provider.GetAPI()
	assert.Equal(t, "127.0.0.1", api.HTTP.Host)
	assert.Equal(t, 0, api.HTTP.Port, "显式设置为0应被采用")
	assert.Equal(t, 3*time.Second, api.HTTP.ReadTimeout)
	assert.Equal(t, 15*time.Second, api.HTTP.WriteTimeout)
	assert.False(t, api.HTTP.MetricsEnabled)

	gen := provider.GetGenerator()
	assert.Equal(t, "/tmp/filegen", gen.Dir)
	assert.Equal(t, "serverfile.txt", gen.FileName)
	assert.Equal(t, 2048, gen.PayloadSize)
	assert.False(t, gen.Isolate)
	require.NotNil(t, gen.Seed)
	assert.Equal(t, uint64(42), *gen.Seed)

	assert.Equal(t, "debug", provider.GetLog().Level)
	require.NoError(t, Validate(provider))
}

// TestValidate 非法配置应被拒绝
func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *types.AppConfig
		field string
	}{
		{
			name:  "端口越界",
			cfg:   &types.AppConfig{API: &types.UserAPIConfig{HTTPPort: types.IntPtr(70000)}},
			field: "api.http_port",
		},
		{
			name:  "非法超时",
			cfg:   &types.AppConfig{API: &types.UserAPIConfig{WriteTimeout: types.StringPtr("soon")}},
			field: "api.timeouts",
		},
		{
			name:  "负载长度为0",
			cfg:   &types.AppConfig{Generator: &types.UserGeneratorConfig{PayloadSize: types.IntPtr(0)}},
			field: "generator.payload_size",
		},
		{
			name:  "文件名包含路径",
			cfg:   &types.AppConfig{Generator: &types.UserGeneratorConfig{FileName: types.StringPtr("../x.txt")}},
			field: "generator.file_name",
		},
		{
			name:  "空目录",
			cfg:   &types.AppConfig{Generator: &types.UserGeneratorConfig{Dir: types.StringPtr(" ")}},
			field: "generator.dir",
		},
		{
			name:  "未知日志级别",
			cfg:   &types.AppConfig{Log: &types.UserLogConfig{Level: types.StringPtr("loud")}},
			field: "log.level",
		},
		{
			name:  "未知gin模式",
			cfg:   &types.AppConfig{API: &types.UserAPIConfig{GinMode: types.StringPtr("prod")}},
			field: "api.gin_mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(NewProvider(tt.cfg))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

// TestLoadAppConfig 从文件加载JSON配置
func TestLoadAppConfig(t *testing.T) {
	t.Run("空路径返回空配置", func(t *testing.T) {
		cfg, err := LoadAppConfig("")
		require.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Nil(t, cfg.API)
	})

	t.Run("读取配置文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{"api":{"http_port":8081},"generator":{"dir":"/data","payload_size":16}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadAppConfig(path)
		require.NoError(t, err)
		require.NotNil(t, cfg.API)
		assert.Equal(t, 8081, *cfg.API.HTTPPort)
		assert.Equal(t, "/data", *cfg.Generator.Dir)
		assert.Equal(t, 16, *cfg.Generator.PayloadSize)
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("非法JSON", func(t *testing.T) {
		_, err := ParseAppConfig([]byte("{not json"))
		assert.Error(t, err)
	})
}

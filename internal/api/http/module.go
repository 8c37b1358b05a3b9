package http

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	apiconfig "github.com/weisyn/filegen/internal/config/api"
	logimpl "github.com/weisyn/filegen/internal/core/infrastructure/log"
	generatoriface "github.com/weisyn/filegen/pkg/interfaces/generator"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/log"
)

// ServerParams HTTP服务器依赖参数
type ServerParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Options    *apiconfig.APIOptions
	Logger     log.Logger
	Generator  generatoriface.FileGenerator
	Registerer prometheus.Registerer `optional:"true"`
	Gatherer   prometheus.Gatherer   `optional:"true"`
	Clock      clock.Clock           `optional:"true"`
}

// Module 返回HTTP服务模块
func Module() fx.Option {
	return fx.Module("http",
		fx.Provide(NewServer),
		// 确保HTTP服务器被创建，从而注册生命周期钩子
		fx.Invoke(func(*Server) {}),
	)
}

// NewServer 创建HTTP服务器并注册fx生命周期钩子
func NewServer(params ServerParams) *Server {
	server := New(RouterDeps{
		Options:    params.Options,
		Logger:     logimpl.NewModuleLogger(params.Logger, "api"),
		Generator:  params.Generator,
		Registerer: params.Registerer,
		Gatherer:   params.Gatherer,
		Clock:      params.Clock,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			return server.Stop(ctx)
		},
	})

	return server
}

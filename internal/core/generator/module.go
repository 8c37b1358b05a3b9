package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	generatorconfig "github.com/weisyn/filegen/internal/config/generator"
	logimpl "github.com/weisyn/filegen/internal/core/infrastructure/log"
	generatoriface "github.com/weisyn/filegen/pkg/interfaces/generator"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/log"
)

// ModuleParams 定义生成器模块的依赖参数
type ModuleParams struct {
	fx.In

	Options    *generatorconfig.GeneratorOptions
	Logger     log.Logger
	Registerer prometheus.Registerer `optional:"true"`
	Clock      clock.Clock           `optional:"true"`
}

// ModuleOutput 定义生成器模块的输出
type ModuleOutput struct {
	fx.Out

	Generator generatoriface.FileGenerator
}

// Module 返回文件生成器模块
func Module() fx.Option {
	return fx.Module("generator",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 创建文件生成服务
// 目录在此处创建，失败时应用启动失败
func ProvideServices(params ModuleParams) (ModuleOutput, error) {
	logger := logimpl.NewModuleLogger(params.Logger, "generator")

	svc, err := New(params.Options, nil, logger, NewMetrics(params.Registerer))
	if err != nil {
		return ModuleOutput{}, err
	}
	svc.WithClock(params.Clock)

	mode := "isolated"
	if !svc.Isolated() {
		mode = "shared"
	}
	logger.Infof("文件生成器就绪: dir=%s size=%d mode=%s", svc.Dir(), svc.PayloadSize(), mode)

	return ModuleOutput{Generator: svc}, nil
}

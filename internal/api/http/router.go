package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weisyn/filegen/internal/api/http/handlers"
	"github.com/weisyn/filegen/internal/api/http/middleware"
	apiconfig "github.com/weisyn/filegen/internal/config/api"
	logimpl "github.com/weisyn/filegen/internal/core/infrastructure/log"
	generatoriface "github.com/weisyn/filegen/pkg/interfaces/generator"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/log"
)

// RouterDeps 构建路由所需的依赖
type RouterDeps struct {
	Options    *apiconfig.APIOptions
	Logger     log.Logger
	Generator  generatoriface.FileGenerator
	Registerer prometheus.Registerer // 为nil时中间件指标不注册
	Gatherer   prometheus.Gatherer   // 为nil时不暴露 /metrics
	Clock      clock.Clock           // 为nil时使用系统时钟
}

// NewRouter 创建gin路由引擎并注册所有端点
//
// 路由：
//   - GET|HEAD /          服务说明
//   - GET|HEAD /get_file  随机负载文件
//   - GET /health[/live|/ready]
//   - GET /metrics     Prometheus指标（可配置关闭）
//
// 未知路径返回404，已知路径的错误方法返回405。
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	zl := deps.Logger.GetZapLogger()

	router.Use(
		gin.Recovery(),
		middleware.NewRequestID().Middleware(),
		middleware.NewLogger(deps.Logger).Middleware(),
		middleware.NewMetrics(zl, deps.Registerer).Middleware(),
		middleware.ErrorHandler(zl, deps.Clock),
	)

	hl := logimpl.NewModuleZapLogger(zl, "handlers")
	handlers.NewFileHandler(hl, deps.Generator).RegisterRoutes(router)
	handlers.NewHealthHandler(hl, deps.Generator, deps.Clock).RegisterRoutes(router)

	if deps.Options.HTTP.MetricsEnabled && deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	return router
}

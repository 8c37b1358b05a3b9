package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	clockimpl "github.com/weisyn/filegen/internal/core/infrastructure/clock"
	generatoriface "github.com/weisyn/filegen/pkg/interfaces/generator"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/clock"
	"go.uber.org/zap"
)

// HealthHandler 健康检查端点处理器
//
// - /health: 完整健康报告
// - /health/live: 存活检查（进程是否响应）
// - /health/ready: 就绪检查（文件目录是否可写）
type HealthHandler struct {
	logger    *zap.Logger
	clock     clock.Clock
	startTime time.Time
	generator generatoriface.FileGenerator
}

// NewHealthHandler 创建健康检查处理器
// clk为nil时使用系统时钟
func NewHealthHandler(logger *zap.Logger, gen generatoriface.FileGenerator, clk clock.Clock) *HealthHandler {
	if clk == nil {
		clk = clockimpl.NewSystemClock()
	}
	return &HealthHandler{
		logger:    logger,
		clock:     clk,
		startTime: clk.Now(),
		generator: gen,
	}
}

// RegisterRoutes 注册健康检查路由
func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	health := r.Group("/health")
	{
		health.GET("", h.GetHealth)
		health.GET("/live", h.GetLiveness)
		health.GET("/ready", h.GetReadiness)
	}
}

// GetHealth 完整健康报告
// GET /health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK
	storage := "ok"
	if err := h.checkStorage(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
		storage = err.Error()
	}

	c.JSON(code, gin.H{
		"status":      status,
		"uptime":      h.clock.Since(h.startTime).Round(time.Second).String(),
		"artifactDir": h.generator.Dir(),
		"payloadSize": h.generator.PayloadSize(),
		"checks": gin.H{
			"storage": storage,
		},
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339),
	})
}

// GetLiveness 存活检查
// GET /health/live
func (h *HealthHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
		"uptime": h.clock.Since(h.startTime).Round(time.Second).String(),
	})
}

// GetReadiness 就绪检查
// GET /health/ready
func (h *HealthHandler) GetReadiness(c *gin.Context) {
	if err := h.checkStorage(); err != nil {
		h.logger.Warn("就绪检查失败", zap.String("dir", h.generator.Dir()), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// checkStorage 在文件目录中创建并删除一个探测文件
func (h *HealthHandler) checkStorage() error {
	f, err := os.CreateTemp(h.generator.Dir(), ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

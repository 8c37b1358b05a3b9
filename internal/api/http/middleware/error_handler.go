package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	apitypes "github.com/weisyn/filegen/internal/api/types"
	clockimpl "github.com/weisyn/filegen/internal/core/infrastructure/clock"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/clock"
	"go.uber.org/zap"
)

// ErrorHandler 错误处理中间件
// 将处理器通过 c.Error 上报的错误统一转换为 Problem Details 响应，
// timestamp 取自 clk（为nil时使用系统时钟）
func ErrorHandler(logger *zap.Logger, clk clock.Clock) gin.HandlerFunc {
	if clk == nil {
		clk = clockimpl.NewSystemClock()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		problem, ok := apitypes.IsProblemDetails(err)
		if !ok {
			problem = apitypes.NewProblemDetails(
				apitypes.CodeCommonInternalError,
				apitypes.LayerFileService,
				"服务器内部错误，请稍后重试。",
				fmt.Sprintf("Internal error: %v", err),
				500,
				map[string]interface{}{
					"path": c.Request.URL.Path,
				},
			)
		}
		if requestID := GetRequestID(c); requestID != "" {
			problem.TraceID = requestID
		}
		problem.Instance = c.Request.URL.Path
		problem.Timestamp = clk.Now().UTC().Format(time.RFC3339)

		logger.Error("HTTP error",
			zap.String("code", problem.Code),
			zap.String("traceId", problem.TraceID),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))

		// 响应已经开始写出时无法再修改状态码
		if c.Writer.Written() {
			return
		}
		problem.WriteJSON(c.Writer)
		c.Abort()
	}
}

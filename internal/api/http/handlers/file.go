package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	apitypes "github.com/weisyn/filegen/internal/api/types"
	"github.com/weisyn/filegen/internal/core/generator"
	generatoriface "github.com/weisyn/filegen/pkg/interfaces/generator"
	"go.uber.org/zap"
)

const (
	// ChecksumHeader 响应中携带负载SHA-256摘要的头
	ChecksumHeader = "Checksum"

	// Banner 根路径返回的说明文字
	Banner = "This is the server. To get a file, go to /get_file."

	payloadContentType = "text/plain; charset=utf-8"
)

// FileHandler 文件下发端点处理器
//
// - GET /: 服务说明
// - GET /get_file: 生成随机负载文件并连同摘要返回
type FileHandler struct {
	logger    *zap.Logger
	generator generatoriface.FileGenerator
}

// NewFileHandler 创建文件处理器
func NewFileHandler(logger *zap.Logger, gen generatoriface.FileGenerator) *FileHandler {
	return &FileHandler{
		logger:    logger,
		generator: gen,
	}
}

// RegisterRoutes 注册文件路由，HEAD 与 GET 共用处理器，响应体由 net/http 丢弃
func (h *FileHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.GetIndex)
	r.HEAD("/", h.GetIndex)
	r.GET("/get_file", h.GetFile)
	r.HEAD("/get_file", h.GetFile)
}

// GetIndex 返回服务说明
// GET /
func (h *FileHandler) GetIndex(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// GetFile 生成并返回负载文件
// GET /get_file
//
// 响应体为写入磁盘的文件内容，Checksum 头为写入前在内存中计算的摘要。
// 文件在响应写完后才释放，共享模式下此期间其他请求等待。
func (h *FileHandler) GetFile(c *gin.Context) {
	artifact, release, err := h.generator.Generate(c.Request.Context())
	if err != nil {
		_ = c.Error(problemFromGenerateError(c.Request.URL.Path, err))
		return
	}
	defer release()

	f, err := os.Open(artifact.Path)
	if err != nil {
		_ = c.Error(newReadProblem(artifact.Path, err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		_ = c.Error(newReadProblem(artifact.Path, err))
		return
	}
	if info.Size() != artifact.Size {
		_ = c.Error(apitypes.NewProblemDetails(
			apitypes.CodeArtifactSizeMismatch,
			apitypes.LayerFileService,
			"生成的文件不完整，请重试。",
			fmt.Sprintf("artifact %s has %d bytes, expected %d", artifact.Path, info.Size(), artifact.Size),
			http.StatusInternalServerError,
			map[string]interface{}{"artifactId": artifact.ID},
		))
		return
	}

	h.logger.Debug("serving artifact",
		zap.String("id", artifact.ID),
		zap.String("path", artifact.Path),
		zap.Int64("size", artifact.Size),
		zap.String("checksum", artifact.Checksum))

	c.DataFromReader(http.StatusOK, info.Size(), payloadContentType, f, map[string]string{
		ChecksumHeader: artifact.Checksum,
	})
}

func problemFromGenerateError(path string, err error) *apitypes.ProblemDetails {
	details := map[string]interface{}{"path": path}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apitypes.NewProblemDetails(
			apitypes.CodeCommonRequestCanceled,
			apitypes.LayerFileService,
			"请求已取消。",
			err.Error(),
			http.StatusServiceUnavailable,
			details,
		)
	case errors.Is(err, generator.ErrStorageUnavailable):
		return apitypes.NewProblemDetails(
			apitypes.CodeStorageUnavailable,
			apitypes.LayerFileService,
			"文件存储不可用。",
			err.Error(),
			http.StatusInternalServerError,
			details,
		)
	case errors.Is(err, generator.ErrArtifactWrite):
		return apitypes.NewProblemDetails(
			apitypes.CodeArtifactWriteFailed,
			apitypes.LayerFileService,
			"文件写入失败，请稍后重试。",
			err.Error(),
			http.StatusInternalServerError,
			details,
		)
	default:
		return apitypes.NewProblemDetails(
			apitypes.CodeCommonInternalError,
			apitypes.LayerFileService,
			"服务器内部错误，请稍后重试。",
			err.Error(),
			http.StatusInternalServerError,
			details,
		)
	}
}

func newReadProblem(path string, err error) *apitypes.ProblemDetails {
	return apitypes.NewProblemDetails(
		apitypes.CodeArtifactReadFailed,
		apitypes.LayerFileService,
		"文件读取失败，请稍后重试。",
		fmt.Sprintf("read artifact %s: %v", path, err),
		http.StatusInternalServerError,
		nil,
	)
}

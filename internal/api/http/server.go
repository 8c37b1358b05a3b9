package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apiconfig "github.com/weisyn/filegen/internal/config/api"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/log"
)

// Server HTTP服务器
// 负责监听端口、分发请求以及优雅关闭
type Server struct {
	router     *gin.Engine  // Gin路由引擎
	httpServer *http.Server // 标准HTTP服务器
	options    *apiconfig.APIOptions
	logger     log.Logger

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{} // Serve 返回后关闭
}

// New 创建HTTP服务器，不启动监听
func New(deps RouterDeps) *Server {
	gin.SetMode(deps.Options.HTTP.GinMode)

	return &Server{
		router:  NewRouter(deps),
		options: deps.Options,
		logger:  deps.Logger,
	}
}

// Handler 返回路由引擎，测试中可直接配合 httptest 使用
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start 启动HTTP服务器
// 监听在当前goroutine中完成，端口被占用时直接返回错误；
// 请求处理在后台goroutine中进行
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return fmt.Errorf("HTTP服务器已启动: %s", s.listener.Addr())
	}

	cfg := s.options.HTTP
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("监听 %s 失败: %w", addr, err)
	}

	s.listener = ln
	s.done = make(chan struct{})
	s.httpServer = &http.Server{
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     zap.NewStdLog(s.logger.GetZapLogger()),
	}

	s.startGoroutine(s.httpServer, ln, s.done)

	s.logger.Infof("HTTP服务器启动成功，监听地址: %s", ln.Addr())
	s.logger.Infof("文件端点: http://%s/get_file", ln.Addr())
	s.logger.Infof("健康检查: http://%s/health", ln.Addr())
	return nil
}

func (s *Server) startGoroutine(srv *http.Server, ln net.Listener, done chan struct{}) {
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("HTTP服务器异常退出: %v", err)
		}
	}()
}

// Addr 返回实际监听地址，未启动时返回空串
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop 停止HTTP服务器
// 等待进行中的请求完成，最长等待 ShutdownTimeout
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.httpServer, s.done
	s.httpServer, s.listener, s.done = nil, nil, nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	s.logger.Info("正在关闭HTTP服务器")

	stopCtx, cancel := context.WithTimeout(ctx, s.options.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(stopCtx); err != nil {
		s.logger.Errorf("HTTP服务器关闭出错: %v", err)
		return err
	}
	<-done

	s.logger.Info("HTTP服务器已关闭")
	return nil
}

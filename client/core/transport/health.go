package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status string `json:"status"`
}

// WaitForServerReady 等待文件服务就绪
// 先要求 /health/live 返回 alive，再要求 /health/ready 返回 ready
func (c *FileClient) WaitForServerReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		err := c.CheckHealth(ctx)
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("等待服务就绪超时（%v）: %w", timeout, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// CheckHealth 检查服务健康状态（一次性）
func (c *FileClient) CheckHealth(ctx context.Context) error {
	if err := c.checkStatus(ctx, "/health/live", "alive"); err != nil {
		return fmt.Errorf("存活检查失败: %w", err)
	}
	if err := c.checkStatus(ctx, "/health/ready", "ready"); err != nil {
		return fmt.Errorf("就绪检查失败: %w", err)
	}
	return nil
}

func (c *FileClient) checkStatus(ctx context.Context, path, want string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("状态码: %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return err
	}
	if health.Status != want {
		return fmt.Errorf("状态: %s", health.Status)
	}
	return nil
}

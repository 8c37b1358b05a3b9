// Package transport 文件服务客户端
package transport

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ChecksumHeader 服务端返回摘要使用的响应头
const ChecksumHeader = "Checksum"

// maxPayloadBytes 单次下载上限，与服务端负载上限一致
const maxPayloadBytes = 64 * 1024 * 1024

var (
	// ErrChecksumMismatch 下载内容与服务端摘要不一致
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrMissingChecksum 响应中没有摘要头
	ErrMissingChecksum = errors.New("missing checksum header")
)

// FetchResult 一次下载的结果
type FetchResult struct {
	Payload   []byte
	Expected  string // 服务端给出的摘要
	Actual    string // 本地重新计算的摘要
	RequestID string
	Duration  time.Duration
}

// Verified 本地摘要是否与服务端一致
func (r *FetchResult) Verified() bool {
	return r.Expected != "" && strings.EqualFold(r.Expected, r.Actual)
}

// FileClient 文件服务HTTP客户端
type FileClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewFileClient 创建文件服务客户端
func NewFileClient(baseURL string, timeout time.Duration) *FileClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &FileClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL 返回服务地址
func (c *FileClient) BaseURL() string {
	return c.baseURL
}

// Fetch 下载 /get_file 并校验摘要
// 摘要不一致时同时返回结果和 ErrChecksumMismatch，便于调用方展示两边的值
func (c *FileClient) Fetch(ctx context.Context) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get_file", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("Failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(payload) > maxPayloadBytes {
		return nil, fmt.Errorf("payload exceeds %d bytes", maxPayloadBytes)
	}

	sum := sha256.Sum256(payload)
	result := &FetchResult{
		Payload:   payload,
		Expected:  resp.Header.Get(ChecksumHeader),
		Actual:    hex.EncodeToString(sum[:]),
		RequestID: resp.Header.Get("X-Request-ID"),
		Duration:  time.Since(start),
	}

	if result.Expected == "" {
		return result, ErrMissingChecksum
	}
	if !result.Verified() {
		return result, fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, result.Expected, result.Actual)
	}
	return result, nil
}

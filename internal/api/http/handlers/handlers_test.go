package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weisyn/filegen/internal/api/http/middleware"
	apitypes "github.com/weisyn/filegen/internal/api/types"
	generatorconfig "github.com/weisyn/filegen/internal/config/generator"
	"github.com/weisyn/filegen/internal/core/generator"
	clockimpl "github.com/weisyn/filegen/internal/core/infrastructure/clock"
	corelog "github.com/weisyn/filegen/internal/core/infrastructure/log"
	generatoriface "github.com/weisyn/filegen/pkg/interfaces/generator"
	"github.com/weisyn/filegen/pkg/types"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newService(t *testing.T, isolate bool) *generator.Service {
	t.Helper()
	svc, err := generator.New(&generatorconfig.GeneratorOptions{
		Dir:         t.TempDir(),
		FileName:    "serverfile.txt",
		PayloadSize: 1024,
		Isolate:     isolate,
	}, nil, corelog.NewNop(), nil)
	require.NoError(t, err)
	return svc
}

func newRouter(gen generatoriface.FileGenerator) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop(), nil))
	NewFileHandler(zap.NewNop(), gen).RegisterRoutes(r)
	NewHealthHandler(zap.NewNop(), gen, nil).RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// stubGenerator 返回固定结果的生成器
type stubGenerator struct {
	dir      string
	artifact *types.Artifact
	err      error
	released int
}

func (s *stubGenerator) Generate(context.Context) (*types.Artifact, generatoriface.ReleaseFunc, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.artifact, func() { s.released++ }, nil
}

func (s *stubGenerator) Dir() string      { return s.dir }
func (s *stubGenerator) PayloadSize() int { return 1024 }

func TestGetIndex(t *testing.T) {
	w := get(newRouter(newService(t, true)), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Banner, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestGetFile(t *testing.T) {
	for _, isolate := range []bool{true, false} {
		t.Run(fmt.Sprintf("isolate=%v", isolate), func(t *testing.T) {
			svc := newService(t, isolate)
			w := get(newRouter(svc), "/get_file")

			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.Bytes()
			assert.Len(t, body, 1024)
			assert.True(t, generator.IsAlphabetic(body))

			sum := sha256.Sum256(body)
			assert.Equal(t, hex.EncodeToString(sum[:]), w.Header().Get(ChecksumHeader))
			assert.Equal(t, "1024", w.Header().Get("Content-Length"))
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))

			shared := filepath.Join(svc.Dir(), "serverfile.txt")
			if isolate {
				entries, err := os.ReadDir(svc.Dir())
				require.NoError(t, err)
				assert.Empty(t, entries, "isolated artifacts are removed after the response")
			} else {
				onDisk, err := os.ReadFile(shared)
				require.NoError(t, err)
				assert.Equal(t, body, onDisk)
			}
		})
	}
}

func TestHeadRoutes(t *testing.T) {
	r := newRouter(newService(t, true))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/get_file", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `^[0-9a-f]{64}$`, w.Header().Get(ChecksumHeader))
	assert.Equal(t, "1024", w.Header().Get("Content-Length"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetFileSharedWaitCanceled(t *testing.T) {
	svc := newService(t, false)
	_, release, err := svc.Generate(context.Background())
	require.NoError(t, err)
	defer release()

	// 共享文件被占用，请求在等待中超时
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get_file", nil).WithContext(ctx))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), apitypes.CodeCommonRequestCanceled)
}

func TestGetFileSequentialDiffer(t *testing.T) {
	r := newRouter(newService(t, true))

	first := get(r, "/get_file")
	second := get(r, "/get_file")

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.NotEqual(t, first.Header().Get(ChecksumHeader), second.Header().Get(ChecksumHeader))
	assert.NotEqual(t, first.Body.String(), second.Body.String())
}

func TestGetFileGenerateErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"write", fmt.Errorf("%w: /app/x: permission denied", generator.ErrArtifactWrite), http.StatusInternalServerError, apitypes.CodeArtifactWriteFailed},
		{"storage", fmt.Errorf("%w: /app", generator.ErrStorageUnavailable), http.StatusInternalServerError, apitypes.CodeStorageUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError, apitypes.CodeCommonInternalError},
		{"canceled", context.Canceled, http.StatusServiceUnavailable, apitypes.CodeCommonRequestCanceled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(newRouter(&stubGenerator{dir: t.TempDir(), err: tc.err}), "/get_file")

			assert.Equal(t, tc.status, w.Code)
			assert.Empty(t, w.Header().Get(ChecksumHeader))

			var problem apitypes.ProblemDetails
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
			assert.Equal(t, tc.code, problem.Code)
			assert.Equal(t, apitypes.LayerFileService, problem.Layer)
		})
	}
}

func TestGetFileMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	stub := &stubGenerator{
		dir: dir,
		artifact: &types.Artifact{
			ID:   "gone",
			Path: filepath.Join(dir, "gone.txt"),
			Size: 1024,
		},
	}

	w := get(newRouter(stub), "/get_file")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apitypes.CodeArtifactReadFailed)
	assert.Equal(t, 1, stub.released)
}

func TestGetFileSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))
	stub := &stubGenerator{
		dir:      dir,
		artifact: &types.Artifact{ID: "short", Path: path, Size: 1024},
	}

	w := get(newRouter(stub), "/get_file")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apitypes.CodeArtifactSizeMismatch)
	assert.Equal(t, 1, stub.released)
}

func TestHealthEndpoints(t *testing.T) {
	svc := newService(t, true)
	r := newRouter(svc)

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "healthy", report["status"])
	assert.Equal(t, svc.Dir(), report["artifactDir"])
	assert.NotEmpty(t, report["uptime"])

	assert.Equal(t, http.StatusOK, get(r, "/health/live").Code)
	assert.Equal(t, http.StatusOK, get(r, "/health/ready").Code)

	entries, err := os.ReadDir(svc.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "readiness probe must clean up")
}

func TestReadinessUnwritableDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	r := newRouter(&stubGenerator{dir: missing})

	w := get(r, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not_ready")

	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/health").Code)
}

func TestHealthUptime(t *testing.T) {
	clk := clockimpl.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	r := gin.New()
	NewHealthHandler(zap.NewNop(), &stubGenerator{dir: t.TempDir()}, clk).RegisterRoutes(r)

	clk.Advance(90 * time.Second)

	w := get(r, "/health/live")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive","uptime":"1m30s"}`, w.Body.String())
}

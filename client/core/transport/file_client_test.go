package transport

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func fileServer(t *testing.T, payload []byte, checksum string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_file" {
			http.NotFound(w, r)
			return
		}
		if checksum != "" {
			w.Header().Set(ChecksumHeader, checksum)
		}
		w.Header().Set("X-Request-ID", "rid-1")
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchVerified(t *testing.T) {
	payload := []byte(strings.Repeat("aB", 512))
	srv := fileServer(t, payload, sha256Hex(payload))

	res, err := NewFileClient(srv.URL+"/", time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Verified())
	assert.Equal(t, payload, res.Payload)
	assert.Equal(t, "rid-1", res.RequestID)
}

func TestFetchChecksumMismatch(t *testing.T) {
	payload := []byte("abcdef")
	srv := fileServer(t, payload, sha256Hex([]byte("tampered")))

	res, err := NewFileClient(srv.URL, time.Second).Fetch(context.Background())
	require.ErrorIs(t, err, ErrChecksumMismatch)
	require.NotNil(t, res)
	assert.False(t, res.Verified())
	assert.Equal(t, sha256Hex(payload), res.Actual)
}

func TestFetchMissingChecksum(t *testing.T) {
	srv := fileServer(t, []byte("abc"), "")

	res, err := NewFileClient(srv.URL, time.Second).Fetch(context.Background())
	require.ErrorIs(t, err, ErrMissingChecksum)
	assert.False(t, res.Verified())
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"FILE_ARTIFACT_WRITE_FAILED"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewFileClient(srv.URL, time.Second).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.Contains(t, err.Error(), "FILE_ARTIFACT_WRITE_FAILED")
}

func TestWaitForServerReady(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health/live":
			_, _ = w.Write([]byte(`{"status":"alive"}`))
		case "/health/ready":
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"not_ready"}`))
				return
			}
			_, _ = w.Write([]byte(`{"status":"ready"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewFileClient(srv.URL, time.Second)
	require.NoError(t, c.WaitForServerReady(context.Background(), 5*time.Second))
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestWaitForServerReadyTimeout(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	err := NewFileClient(srv.URL, time.Second).WaitForServerReady(context.Background(), 300*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "超时")
}

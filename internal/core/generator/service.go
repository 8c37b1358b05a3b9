// Package generator 生成随机负载文件并计算其摘要
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	generatorconfig "github.com/weisyn/filegen/internal/config/generator"
	clockimpl "github.com/weisyn/filegen/internal/core/infrastructure/clock"
	generatoriface "github.com/weisyn/filegen/pkg/interfaces/generator"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/clock"
	"github.com/weisyn/filegen/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/filegen/pkg/types"
)

// Service 文件生成服务
//
// 隔离模式下每次生成写入 <stem>-<uuid><ext>，释放时删除；
// 共享模式下写入固定文件，写入到释放之间占用 sharedSlot，
// 保证读取到的内容与返回的摘要一致；等待占用时可被 ctx 取消。
type Service struct {
	dir      string
	fileName string
	size     int
	isolate  bool

	source  Source
	clock   clock.Clock
	logger  log.Logger
	metrics *Metrics

	sharedSlot chan struct{} // 容量为1
}

// 编译时校验
var _ generatoriface.FileGenerator = (*Service)(nil)

// New 创建文件生成服务，并确保文件目录存在
// source为nil时根据配置选择固定种子或全局随机源
func New(opts *generatorconfig.GeneratorOptions, source Source, logger log.Logger, metrics *Metrics) (*Service, error) {
	if opts.PayloadSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPayloadSize, opts.PayloadSize)
	}
	if opts.FileName == "" || strings.ContainsAny(opts.FileName, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFileName, opts.FileName)
	}

	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, opts.Dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: 创建目录 %s 失败: %w", ErrStorageUnavailable, dir, err)
	}

	if source == nil {
		if opts.Seed != nil {
			source = NewSeededSource(*opts.Seed)
		} else {
			source = NewGlobalSource()
		}
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &Service{
		dir:      dir,
		fileName: opts.FileName,
		size:     opts.PayloadSize,
		isolate:  opts.Isolate,
		source:   source,
		clock:    clockimpl.NewSystemClock(),
		logger:   logger,
		metrics:  metrics,

		sharedSlot: make(chan struct{}, 1),
	}, nil
}

// WithClock 替换时间源，返回自身便于链式调用
func (s *Service) WithClock(c clock.Clock) *Service {
	if c != nil {
		s.clock = c
	}
	return s
}

// Dir 返回文件存放目录（绝对路径）
func (s *Service) Dir() string {
	return s.dir
}

// PayloadSize 返回负载长度
func (s *Service) PayloadSize() int {
	return s.size
}

// Isolated 是否按请求隔离文件
func (s *Service) Isolated() bool {
	return s.isolate
}

// Generate 生成负载、计算摘要并写入磁盘
//
// 摘要在写入之前基于内存中的负载计算，与写入的字节完全对应。
// 成功时调用方必须在读取完文件后调用返回的 ReleaseFunc。
func (s *Service) Generate(ctx context.Context) (*types.Artifact, generatoriface.ReleaseFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	start := s.clock.Now()
	payload := NewPayload(s.source, s.size)
	checksum := Checksum(payload)
	id := uuid.NewString()

	var path string
	if s.isolate {
		path = filepath.Join(s.dir, isolatedName(s.fileName, id))
	} else {
		select {
		case s.sharedSlot <- struct{}{}:
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
		path = filepath.Join(s.dir, s.fileName)
	}

	if err := writeFile(path, payload); err != nil {
		if !s.isolate {
			<-s.sharedSlot
		}
		s.metrics.observeFailure()
		s.logger.Errorf("写入文件失败: path=%s err=%v", path, err)
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrArtifactWrite, path, err)
	}

	s.metrics.observeSuccess(len(payload), s.clock.Since(start).Seconds())

	artifact := &types.Artifact{
		ID:        id,
		Path:      path,
		Checksum:  checksum,
		Size:      int64(len(payload)),
		Shared:    !s.isolate,
		CreatedAt: s.clock.Now(),
	}
	s.logger.Debugf("文件已生成: id=%s path=%s size=%d checksum=%s", id, path, artifact.Size, checksum)

	return artifact, s.releaseFunc(artifact), nil
}

// releaseFunc 构造只生效一次的释放函数
func (s *Service) releaseFunc(artifact *types.Artifact) generatoriface.ReleaseFunc {
	var once sync.Once
	return func() {
		once.Do(func() {
			if artifact.Shared {
				<-s.sharedSlot
				return
			}
			if err := os.Remove(artifact.Path); err != nil && !os.IsNotExist(err) {
				s.logger.Warnf("删除文件失败: path=%s err=%v", artifact.Path, err)
			}
		})
	}
}

// isolatedName 在文件名与扩展名之间插入请求ID
// serverfile.txt -> serverfile-<id>.txt
func isolatedName(fileName, id string) string {
	ext := filepath.Ext(fileName)
	stem := strings.TrimSuffix(fileName, ext)
	return stem + "-" + id + ext
}

// writeFile 先写同目录临时文件再重命名，
// 目标文件要么是完整的新内容，要么保持原样
func writeFile(path string, payload []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

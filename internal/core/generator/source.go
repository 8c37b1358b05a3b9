package generator

import (
	"math/rand/v2"
	"sync"
)

// Source 非加密随机源
// 负载只用于传输校验测试，不需要安全随机数
type Source interface {
	// IntN 返回 [0, n) 内均匀分布的整数
	IntN(n int) int
}

// globalSource 使用 math/rand/v2 的全局随机源，并发安全
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewGlobalSource 返回基于全局随机源的 Source
func NewGlobalSource() Source {
	return globalSource{}
}

// lockedSource 固定种子的随机源
// *rand.Rand 本身不是并发安全的，需要加锁
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource 返回固定种子的 Source，相同种子产生相同序列
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

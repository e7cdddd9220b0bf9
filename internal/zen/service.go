package zen

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
	"github.com/dep2p/go-discovery/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
// PingService 探测服务
// ════════════════════════════════════════════════════════════════════════════

// pingEntry 已实例化的探测变体
type pingEntry struct {
	name string
	ping pkgif.Ping
}

// PingService 探测服务
//
// 聚合引导阶段绑定的全部探测变体，对外提供统一的并行探测入口。
// 变体列表在引导解析时一次性填充，之后只读。
type PingService struct {
	entries []pingEntry
}

// NewPingService 创建空的探测服务
func NewPingService() *PingService {
	return &PingService{}
}

// Add 追加一个已实例化的变体
//
// 仅供引导解析器在构造期调用；名称唯一性已由扩展点保证。
func (s *PingService) Add(name string, ping pkgif.Ping) {
	s.entries = append(s.entries, pingEntry{name: name, ping: ping})
}

// Variants 返回已绑定的变体名称（按注册顺序）
func (s *PingService) Variants() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}
	return names
}

// PingAll 用所有变体并行探测全部地址
//
// 返回 变体数 × 地址数 条结果，顺序不保证。
func (s *PingService) PingAll(ctx context.Context, addrs []types.Address) []pkgif.PingResult {
	if len(s.entries) == 0 || len(addrs) == 0 {
		return nil
	}

	results := make([]pkgif.PingResult, 0, len(s.entries)*len(addrs))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, e := range s.entries {
		for _, addr := range addrs {
			wg.Add(1)
			go func(e pingEntry, addr types.Address) {
				defer wg.Done()

				rtt, err := e.ping.Ping(ctx, addr)
				mu.Lock()
				results = append(results, pkgif.PingResult{
					Variant: e.name,
					Addr:    addr,
					RTT:     rtt,
					Err:     err,
				})
				mu.Unlock()
			}(e, addr)
		}
	}

	wg.Wait()
	return results
}

// Start 启动所有变体
//
// 任一变体启动失败时，回滚已启动的变体并返回错误。
func (s *PingService) Start(ctx context.Context) error {
	for i, e := range s.entries {
		if err := e.ping.Start(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = s.entries[j].ping.Stop(ctx)
			}
			return fmt.Errorf("start ping variant %q: %w", e.name, err)
		}
	}
	logger.Info("探测服务已启动", "variants", s.Variants())
	return nil
}

// Stop 停止所有变体，聚合全部错误
func (s *PingService) Stop(ctx context.Context) error {
	var err error
	for _, e := range s.entries {
		if stopErr := e.ping.Stop(ctx); stopErr != nil {
			err = multierr.Append(err, fmt.Errorf("stop ping variant %q: %w", e.name, stopErr))
		}
	}
	return err
}

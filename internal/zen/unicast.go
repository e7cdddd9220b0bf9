package zen

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
	"github.com/dep2p/go-discovery/pkg/lib/log"
	"github.com/dep2p/go-discovery/pkg/types"
)

var logger = log.Logger("discovery/zen")

// DefaultVariantName 默认探测变体名称
const DefaultVariantName = "unicast"

// DefaultPingTimeout 默认单次探测超时
const DefaultPingTimeout = 3 * time.Second

// ════════════════════════════════════════════════════════════════════════════
// UnicastPing 单播探测变体
// ════════════════════════════════════════════════════════════════════════════

// UnicastPing 单播探测变体
//
// 通过对目标地址拨号测量往返时间。扩展点为空时由引导解析器
// 自动注入，作为指定的默认变体。
type UnicastPing struct {
	transport pkgif.Transport
	clk       clock.Clock
	timeout   time.Duration

	started atomic.Bool

	// 统计
	totalProbes  atomic.Int64
	failedProbes atomic.Int64
}

// UnicastPingStats 探测统计快照
type UnicastPingStats struct {
	TotalProbes  int64
	FailedProbes int64
}

// UnicastOption 单播探测选项
type UnicastOption func(*UnicastPing)

// WithUnicastClock 设置时钟（测试用 mock）
func WithUnicastClock(clk clock.Clock) UnicastOption {
	return func(p *UnicastPing) {
		p.clk = clk
	}
}

// WithUnicastTimeout 设置单次探测超时
func WithUnicastTimeout(d time.Duration) UnicastOption {
	return func(p *UnicastPing) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewUnicastPing 创建单播探测变体
func NewUnicastPing(transport pkgif.Transport, opts ...UnicastOption) *UnicastPing {
	p := &UnicastPing{
		transport: transport,
		clk:       clock.New(),
		timeout:   DefaultPingTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// UnicastFactory 返回默认变体的工厂
//
// provider 参数由 PingFactory 契约提供；单播探测逐地址工作，
// 不需要自行读取种子列表。
func UnicastFactory(opts ...UnicastOption) pkgif.PingFactory {
	return func(transport pkgif.Transport, _ pkgif.HostsProvider) (pkgif.Ping, error) {
		return NewUnicastPing(transport, opts...), nil
	}
}

// Ping 探测单个地址
func (p *UnicastPing) Ping(ctx context.Context, addr types.Address) (time.Duration, error) {
	if !p.started.Load() {
		return 0, ErrNotStarted
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.totalProbes.Add(1)

	start := p.clk.Now()
	conn, err := p.transport.Dial(ctx, addr)
	if err != nil {
		p.failedProbes.Add(1)
		return 0, err
	}
	rtt := p.clk.Since(start)
	_ = conn.Close()

	return rtt, nil
}

// Start 启动探测变体
func (p *UnicastPing) Start(_ context.Context) error {
	if !p.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	logger.Debug("单播探测变体已启动", "timeout", p.timeout)
	return nil
}

// Stop 停止探测变体
func (p *UnicastPing) Stop(_ context.Context) error {
	p.started.Store(false)
	return nil
}

// Stats 返回探测统计快照
func (p *UnicastPing) Stats() UnicastPingStats {
	return UnicastPingStats{
		TotalProbes:  p.totalProbes.Load(),
		FailedProbes: p.failedProbes.Load(),
	}
}

package zen

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
	"github.com/dep2p/go-discovery/pkg/types"
)

// DefaultRoundInterval 默认探测轮询间隔
const DefaultRoundInterval = 30 * time.Second

// ════════════════════════════════════════════════════════════════════════════
// ZenDiscovery 发现策略
// ════════════════════════════════════════════════════════════════════════════

// ZenDiscovery 内建 "zen" 发现策略
//
// 周期性地从种子地址提供者取种子列表，经探测服务做可达性
// 探测，并据此维护存活成员表。成员表只反映探测结果；
// 成员交换与选主协议由嵌入系统实现。
type ZenDiscovery struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	// 依赖
	transport pkgif.Transport
	provider  pkgif.HostsProvider
	pings     pkgif.PingService

	// 配置
	clk      clock.Clock
	interval time.Duration

	// 状态
	started atomic.Bool
	wg      sync.WaitGroup

	mu    sync.RWMutex
	peers map[string]types.PeerInfo // 键为 Address.String()
}

// Option Zen 发现策略选项
type Option func(*ZenDiscovery)

// WithClock 设置时钟（测试用 mock）
func WithClock(clk clock.Clock) Option {
	return func(d *ZenDiscovery) {
		d.clk = clk
	}
}

// WithRoundInterval 设置探测轮询间隔
func WithRoundInterval(interval time.Duration) Option {
	return func(d *ZenDiscovery) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

// New 创建 Zen 发现策略
func New(transport pkgif.Transport, provider pkgif.HostsProvider, pings pkgif.PingService, opts ...Option) *ZenDiscovery {
	d := &ZenDiscovery{
		transport: transport,
		provider:  provider,
		pings:     pings,
		clk:       clock.New(),
		interval:  DefaultRoundInterval,
		peers:     make(map[string]types.PeerInfo),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Factory 返回注册表使用的工厂
func Factory(opts ...Option) pkgif.DiscoveryFactory {
	return func(res pkgif.DiscoveryResources) (pkgif.Discovery, error) {
		return New(res.Transport, res.HostsProvider, res.Pings, opts...), nil
	}
}

// Start 启动发现策略
//
// 首轮探测同步执行，返回后成员表即可查询；后续轮次在
// 后台按间隔执行。
func (d *ZenDiscovery) Start(ctx context.Context) error {
	if !d.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	d.ctx, d.ctxCancel = context.WithCancel(context.Background())

	logger.Info("Zen 发现策略启动", "interval", d.interval)

	d.round(ctx)

	d.wg.Add(1)
	go d.loop()

	return nil
}

// Stop 停止发现策略
func (d *ZenDiscovery) Stop(_ context.Context) error {
	if !d.started.CompareAndSwap(true, false) {
		return nil
	}

	d.ctxCancel()
	d.wg.Wait()

	logger.Info("Zen 发现策略已停止")
	return nil
}

// KnownPeers 返回当前已知成员快照
func (d *ZenDiscovery) KnownPeers() []types.PeerInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	peers := make([]types.PeerInfo, 0, len(d.peers))
	for _, p := range d.peers {
		peers = append(peers, p)
	}
	return peers
}

// loop 后台轮询
func (d *ZenDiscovery) loop() {
	defer d.wg.Done()

	ticker := d.clk.Ticker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-ticker.C:
			d.round(d.ctx)
		}
	}
}

// round 执行一轮种子探测并更新成员表
func (d *ZenDiscovery) round(ctx context.Context) {
	seeds, err := d.provider.SeedHosts(ctx)
	if err != nil {
		logger.Warn("获取种子地址失败", "error", err)
		return
	}
	if len(seeds) == 0 {
		return
	}

	results := d.pings.PingAll(ctx, seeds)

	// 同一地址可能有多个变体的结果，取最先成功的
	alive := make(map[string]types.PeerInfo, len(seeds))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		key := r.Addr.String()
		if _, ok := alive[key]; ok {
			continue
		}
		alive[key] = types.PeerInfo{
			Addr:     r.Addr,
			RTT:      r.RTT,
			LastSeen: d.clk.Now(),
		}
	}

	d.mu.Lock()
	for key, p := range alive {
		d.peers[key] = p
	}
	// 本轮种子中探测失败的地址移出成员表
	for _, seed := range seeds {
		key := seed.String()
		if _, ok := alive[key]; !ok {
			delete(d.peers, key)
		}
	}
	count := len(d.peers)
	d.mu.Unlock()

	logger.Debug("探测轮完成", "seeds", len(seeds), "alive", len(alive), "peers", count)
}

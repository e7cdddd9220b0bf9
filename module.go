package discovery

import (
	"fmt"

	"github.com/dep2p/go-discovery/config"
	"github.com/dep2p/go-discovery/internal/none"
	"github.com/dep2p/go-discovery/internal/registry"
	"github.com/dep2p/go-discovery/internal/zen"
	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
	"github.com/dep2p/go-discovery/pkg/lib/log"
)

var logger = log.Logger("discovery/module")

// ════════════════════════════════════════════════════════════════════════════
// Module 引导解析器
// ════════════════════════════════════════════════════════════════════════════

// Module 发现模块的引导解析器
//
// 构造期注册内建变体并合并插件贡献（注册阶段），Resolve 读取
// 设置、校验并装配最终对象图（解析阶段）。两阶段之间严格顺序
// 执行，由嵌入系统保证；Module 不做内部加锁。
type Module struct {
	settings  config.Settings
	transport pkgif.Transport
	network   pkgif.Network
	opts      *options

	types *registry.TypeRegistry
	pings *registry.PingVariantSet
	hosts *registry.HostsProviderRegistry

	resolved *Resolved
}

// Resolved 引导解析产物
//
// 每次节点启动创建一次，解析后不再变更；注册表随引导废弃，
// 只有 Resolved 活到节点生命周期结束。
type Resolved struct {
	// Type 选定的发现类型
	Type string

	// Discovery 已构造的发现策略
	Discovery pkgif.Discovery

	// Pings 已绑定的探测服务（type 为 "none" 时为 nil）
	Pings pkgif.PingService

	// HostsProvider 已构造的种子地址提供者（type 为 "none" 时为 nil）
	HostsProvider pkgif.HostsProvider
}

// New 创建发现模块
//
// 依次注册内建发现类型（"none"、"zen"）与内建种子地址提供者
// （"zen" → 空列表），然后按加载顺序询问每个插件一次并合并其
// 贡献。任何键冲突立即返回错误，节点启动应当中止。
func New(settings config.Settings, transport pkgif.Transport, network pkgif.Network, plugins []pkgif.Plugin, opts ...Option) (*Module, error) {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Module{
		settings:  settings,
		transport: transport,
		network:   network,
		opts:      o,
		types:     registry.NewTypeRegistry(),
		pings:     registry.NewPingVariantSet(),
		hosts:     registry.NewHostsProviderRegistry(),
	}

	// 内建发现类型先于任何外部注册写入，走同一条校验路径
	if err := m.types.Register(config.DiscoveryTypeNone, none.Factory()); err != nil {
		return nil, err
	}
	zenFactory := zen.Factory(
		zen.WithClock(o.clk),
		zen.WithRoundInterval(o.roundInterval),
	)
	if err := m.types.Register(config.DiscoveryTypeZen, zenFactory); err != nil {
		return nil, err
	}

	// 内建提供者："zen" → 空种子列表，真实种子来源由插件贡献
	emptyProvider := func() (pkgif.HostsProvider, error) {
		return zen.NewStaticHostsProvider(), nil
	}
	if err := m.hosts.Register(config.DiscoveryTypeZen, emptyProvider); err != nil {
		return nil, err
	}

	// 插件按加载顺序逐个贡献，冲突即中止
	for _, plugin := range plugins {
		contrib := plugin.HostsProviders(transport, network)
		if len(contrib) == 0 {
			continue
		}
		if err := m.hosts.Merge(contrib); err != nil {
			return nil, err
		}
	}

	logger.Debug("发现模块构造完成",
		"types", m.types.Keys(),
		"providers", m.hosts.Keys(),
		"plugins", len(plugins))
	return m, nil
}

// ════════════════════════════════════════════════════════════════════════════
// 解析前扩展钩子
// ════════════════════════════════════════════════════════════════════════════

// AddDiscoveryType 注册自定义发现类型
//
// 与内建键（"zen"、"none"）冲突同样被拒绝。
func (m *Module) AddDiscoveryType(key string, factory pkgif.DiscoveryFactory) error {
	return m.types.Register(key, factory)
}

// AddPingVariant 注册自定义探测变体
//
// 必须在 Resolve 之前调用；解析后集合已冻结。
func (m *Module) AddPingVariant(v pkgif.PingVariant) error {
	return m.pings.Register(v)
}

// ════════════════════════════════════════════════════════════════════════════
// 引导解析
// ════════════════════════════════════════════════════════════════════════════

// Resolve 执行一次性引导解析
//
// 算法：
//  1. 读取 discovery.type（默认 "zen"），查找发现类型
//  2. "none"：只构造发现策略，不装配探测服务与提供者
//  3. 否则读取 discovery.zen.hosts_provider（默认回退到
//     discovery.type 的解析值），查找并实例化提供者
//  4. 探测变体集合为空则注入默认单播变体，然后冻结绑定
//  5. 构造探测服务与发现策略，返回 Resolved
//
// 任何失败都使引导中止，不留下可用的部分装配结果。
// 重复调用返回首次解析的缓存结果。
func (m *Module) Resolve() (*Resolved, error) {
	if m.resolved != nil {
		return m.resolved, nil
	}

	discoveryType := m.settings.DiscoveryType()
	factory, err := m.types.Resolve(discoveryType)
	if err != nil {
		return nil, err
	}

	if discoveryType == config.DiscoveryTypeNone {
		d, err := factory(pkgif.DiscoveryResources{
			Transport: m.transport,
			Network:   m.network,
		})
		if err != nil {
			return nil, fmt.Errorf("construct discovery %q: %w", discoveryType, err)
		}
		m.resolved = &Resolved{Type: discoveryType, Discovery: d}
		logger.Info("发现配置解析完成", "type", discoveryType)
		return m.resolved, nil
	}

	providerName := m.settings.HostsProviderName()
	providerFactory, err := m.hosts.Resolve(providerName)
	if err != nil {
		return nil, err
	}
	provider, err := providerFactory()
	if err != nil {
		return nil, fmt.Errorf("construct hosts provider %q: %w", providerName, err)
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilHostsProvider, providerName)
	}

	// 默认注入恰好发生一次：Bind 冻结集合后这条路径不可再进入
	if m.pings.Empty() {
		defaultVariant := pkgif.PingVariant{
			Name: zen.DefaultVariantName,
			New: zen.UnicastFactory(
				zen.WithUnicastClock(m.opts.clk),
				zen.WithUnicastTimeout(m.opts.pingTimeout),
			),
		}
		if err := m.pings.Register(defaultVariant); err != nil {
			return nil, err
		}
		logger.Debug("注入默认探测变体", "variant", zen.DefaultVariantName)
	}
	variants := m.pings.Bind()

	pingService := zen.NewPingService()
	for _, v := range variants {
		p, err := v.New(m.transport, provider)
		if err != nil {
			return nil, fmt.Errorf("construct ping variant %q: %w", v.Name, err)
		}
		pingService.Add(v.Name, p)
	}

	d, err := factory(pkgif.DiscoveryResources{
		Transport:     m.transport,
		Network:       m.network,
		HostsProvider: provider,
		Pings:         pingService,
	})
	if err != nil {
		return nil, fmt.Errorf("construct discovery %q: %w", discoveryType, err)
	}

	m.resolved = &Resolved{
		Type:          discoveryType,
		Discovery:     d,
		Pings:         pingService,
		HostsProvider: provider,
	}
	logger.Info("发现配置解析完成",
		"type", discoveryType,
		"hosts_provider", providerName,
		"ping_variants", pingService.Variants())
	return m.resolved, nil
}

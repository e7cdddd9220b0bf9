package discovery

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
// Fx 装配
// ════════════════════════════════════════════════════════════════════════════

// Result 解析产物的 Fx 输出
//
// 解析出的实例作为命名单例注入下游；"none" 类型时
// Pings/HostsProvider 为 nil。
type Result struct {
	fx.Out

	// Resolved 完整解析产物
	Resolved *Resolved

	// Discovery 发现策略单例
	Discovery pkgif.Discovery `name:"discovery"`

	// Pings 探测服务单例
	Pings pkgif.PingService `name:"ping_service"`

	// HostsProvider 种子地址提供者单例
	HostsProvider pkgif.HostsProvider `name:"hosts_provider"`
}

// FxOption 返回把解析产物绑定进 Fx 容器的选项
//
// 解析在容器构造期执行一次；任何解析失败都会使 fx.App
// 构造失败，即引导中止。
func (m *Module) FxOption() fx.Option {
	return fx.Module("discovery",
		fx.Provide(m.provideResolved),
		fx.Invoke(registerLifecycle),
	)
}

// provideResolved 提供解析产物
func (m *Module) provideResolved() (Result, error) {
	r, err := m.Resolve()
	if err != nil {
		return Result{}, err
	}
	return Result{
		Resolved:      r,
		Discovery:     r.Discovery,
		Pings:         r.Pings,
		HostsProvider: r.HostsProvider,
	}, nil
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC       fx.Lifecycle
	Resolved *Resolved
}

// registerLifecycle 注册生命周期
//
// 启动顺序：探测服务 → 发现策略；停止时逆序执行并聚合错误。
func registerLifecycle(input lifecycleInput) {
	r := input.Resolved
	input.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if r.Pings != nil {
				if err := r.Pings.Start(ctx); err != nil {
					return err
				}
			}
			if err := r.Discovery.Start(ctx); err != nil {
				if r.Pings != nil {
					return multierr.Append(err, r.Pings.Stop(ctx))
				}
				return err
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := r.Discovery.Stop(ctx)
			if r.Pings != nil {
				err = multierr.Append(err, r.Pings.Stop(ctx))
			}
			return err
		},
	})
}

// NewApp 组装独立的 Fx 应用
//
// 供嵌入系统和测试直接使用；禁用 Fx 自身的日志输出，
// 避免干扰用户日志。
func NewApp(m *Module, extra ...fx.Option) *fx.App {
	opts := []fx.Option{m.FxOption()}
	opts = append(opts, extra...)
	opts = append(opts,
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
		fx.NopLogger,
	)
	return fx.New(opts...)
}

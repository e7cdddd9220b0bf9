package interfaces

import (
	"context"
	"time"

	"github.com/dep2p/go-discovery/pkg/types"
)

// Ping 探测机制
//
// 对候选节点做可达性探测。
type Ping interface {
	// Ping 探测单个地址并返回往返时间
	Ping(ctx context.Context, addr types.Address) (time.Duration, error)

	// Start 启动探测机制
	Start(ctx context.Context) error

	// Stop 停止探测机制
	Stop(ctx context.Context) error
}

// PingFactory 探测机制工厂
//
// 在引导解析阶段被调用，provider 为已解析的种子地址提供者。
type PingFactory func(transport Transport, provider HostsProvider) (Ping, error)

// PingVariant 命名的探测变体
//
// Go 函数值不可比较，扩展点以 Name 判定变体唯一性；
// Name 同时用于日志与 PingService.Variants 诊断输出。
type PingVariant struct {
	// Name 变体名称，在扩展点内唯一
	Name string

	// New 变体工厂
	New PingFactory
}

// PingResult 单次探测结果
type PingResult struct {
	// Variant 产生结果的变体名称
	Variant string

	// Addr 被探测地址
	Addr types.Address

	// RTT 往返时间（Err 为 nil 时有效）
	RTT time.Duration

	// Err 探测错误
	Err error
}

// PingService 探测服务
//
// 聚合引导阶段绑定的全部探测变体。
type PingService interface {
	// PingAll 用所有变体并行探测全部地址
	PingAll(ctx context.Context, addrs []types.Address) []PingResult

	// Variants 返回已绑定的变体名称（按注册顺序）
	Variants() []string

	// Start 启动所有变体
	Start(ctx context.Context) error

	// Stop 停止所有变体
	Stop(ctx context.Context) error
}

package interfaces

import (
	"context"

	"github.com/dep2p/go-discovery/pkg/types"
)

// Discovery 集群发现策略
//
// 负责让本节点在启动后找到其余集群成员。
type Discovery interface {
	// Start 启动发现策略
	Start(ctx context.Context) error

	// Stop 停止发现策略
	Stop(ctx context.Context) error

	// KnownPeers 返回当前已知的集群成员快照
	KnownPeers() []types.PeerInfo
}

// DiscoveryResources 发现策略的构造资源
//
// 由引导解析器在解析完成后填充。discovery.type 为 "none" 时
// 只有 Transport/Network 非空。
type DiscoveryResources struct {
	// Transport 传输句柄
	Transport Transport

	// Network 网络句柄
	Network Network

	// HostsProvider 已解析的种子地址提供者（none 时为 nil）
	HostsProvider HostsProvider

	// Pings 已绑定的探测服务（none 时为 nil）
	Pings PingService
}

// DiscoveryFactory 发现策略工厂
//
// 注册到类型注册表的不透明构造引用，在引导解析阶段被调用至多一次。
type DiscoveryFactory func(res DiscoveryResources) (Discovery, error)

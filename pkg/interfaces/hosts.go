package interfaces

import (
	"context"

	"github.com/dep2p/go-discovery/pkg/types"
)

// HostsProvider 种子地址提供者
//
// 为发现策略提供引导用的种子节点地址列表。
type HostsProvider interface {
	// SeedHosts 返回当前的种子地址列表
	//
	// 允许阻塞（如 DNS 解析类实现），必须响应 ctx 取消。
	// 返回空列表是合法结果。
	SeedHosts(ctx context.Context) ([]types.Address, error)
}

// HostsProviderFactory 种子地址提供者工厂
//
// 在引导解析阶段被调用至多一次。返回 (nil, nil) 视为致命错误
// （见根包 ErrNilHostsProvider）。
type HostsProviderFactory func() (HostsProvider, error)

// Package none 实现内建的 "none" 发现策略
//
// 空实现：不探测、不维护成员表。用于单节点部署和测试场景，
// 选中时引导解析器不会装配探测服务与种子地址提供者。
package none

import (
	"context"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
	"github.com/dep2p/go-discovery/pkg/types"
)

// NoneDiscovery 空发现策略
type NoneDiscovery struct{}

// New 创建空发现策略
func New() *NoneDiscovery {
	return &NoneDiscovery{}
}

// Factory 返回注册表使用的工厂
func Factory() pkgif.DiscoveryFactory {
	return func(pkgif.DiscoveryResources) (pkgif.Discovery, error) {
		return New(), nil
	}
}

// Start 启动（无操作）
func (d *NoneDiscovery) Start(_ context.Context) error {
	return nil
}

// Stop 停止（无操作）
func (d *NoneDiscovery) Stop(_ context.Context) error {
	return nil
}

// KnownPeers 永远返回空
func (d *NoneDiscovery) KnownPeers() []types.PeerInfo {
	return nil
}

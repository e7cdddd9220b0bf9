package zen

import (
	"context"

	"github.com/dep2p/go-discovery/pkg/types"
)

// StaticHostsProvider 固定种子列表提供者
//
// 不带参数构造时返回空列表——这是种子地址提供者注册表里
// 内建 "zen" 项的形式，真实的种子来源由插件贡献。
type StaticHostsProvider struct {
	addrs []types.Address
}

// NewStaticHostsProvider 创建固定种子列表提供者
func NewStaticHostsProvider(addrs ...types.Address) *StaticHostsProvider {
	out := make([]types.Address, len(addrs))
	copy(out, addrs)
	return &StaticHostsProvider{addrs: out}
}

// SeedHosts 返回固定的种子地址副本
func (p *StaticHostsProvider) SeedHosts(_ context.Context) ([]types.Address, error) {
	out := make([]types.Address, len(p.addrs))
	copy(out, p.addrs)
	return out, nil
}

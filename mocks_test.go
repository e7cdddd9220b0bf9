package discovery

import (
	"context"

	"github.com/dep2p/go-discovery/internal/zen"
	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
	"github.com/dep2p/go-discovery/pkg/types"
)

// ============================================================================
//                              测试桩
// ============================================================================

// stubConn 模拟连接
type stubConn struct {
	remote types.Address
}

func (c *stubConn) Read(_ []byte) (int, error)  { return 0, nil }
func (c *stubConn) Write(p []byte) (int, error) { return len(p), nil }
func (c *stubConn) Close() error                { return nil }
func (c *stubConn) RemoteAddr() types.Address   { return c.remote }

// stubTransport 模拟传输：所有拨号立即成功
type stubTransport struct{}

func (t *stubTransport) Dial(_ context.Context, addr types.Address) (pkgif.Conn, error) {
	return &stubConn{remote: addr}, nil
}

// stubNetwork 模拟网络句柄
type stubNetwork struct{}

func (n *stubNetwork) LocalAddrs() []types.Address {
	return []types.Address{{Host: "127.0.0.1", Port: 9300}}
}

func (n *stubNetwork) LookupHost(_ context.Context, host string) ([]types.Address, error) {
	return []types.Address{{Host: host, Port: 9300}}, nil
}

// stubPlugin 固定贡献映射的插件
type stubPlugin struct {
	providers map[string]pkgif.HostsProviderFactory
}

func (p *stubPlugin) HostsProviders(_ pkgif.Transport, _ pkgif.Network) map[string]pkgif.HostsProviderFactory {
	return p.providers
}

// staticProviderFactory 返回固定种子列表的提供者工厂
func staticProviderFactory(addrs ...types.Address) pkgif.HostsProviderFactory {
	return func() (pkgif.HostsProvider, error) {
		return zen.NewStaticHostsProvider(addrs...), nil
	}
}

// nilProviderFactory 产出空实例的损坏工厂
func nilProviderFactory() pkgif.HostsProviderFactory {
	return func() (pkgif.HostsProvider, error) {
		return nil, nil
	}
}

package interfaces

import (
	"context"
	"io"

	"github.com/dep2p/go-discovery/pkg/types"
)

// Conn 传输连接
//
// 发现模块只把连接当作字节流使用，具体协议由嵌入系统实现。
type Conn interface {
	io.ReadWriteCloser

	// RemoteAddr 返回对端地址
	RemoteAddr() types.Address
}

// Transport 传输服务句柄（黑盒）
//
// 由嵌入系统在构造 Module 时注入，透传给发现/探测实现和插件。
// 本模块不拥有任何 socket，也不关心底层协议。
type Transport interface {
	// Dial 建立到指定地址的连接
	Dial(ctx context.Context, addr types.Address) (Conn, error)
}

// Network 网络服务句柄（黑盒）
//
// 供需要解析主机名或枚举本地地址的插件使用。
type Network interface {
	// LocalAddrs 返回本节点的监听地址
	LocalAddrs() []types.Address

	// LookupHost 解析主机名为地址列表
	LookupHost(ctx context.Context, host string) ([]types.Address, error)
}

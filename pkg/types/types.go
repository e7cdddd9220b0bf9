// Package types 定义 go-discovery 公共数据类型
package types

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// NodeID 节点唯一标识
type NodeID string

// ShortString 返回节点 ID 的短格式（用于日志）
func (id NodeID) ShortString() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// Address 种子节点网络地址
type Address struct {
	// Host 主机名或 IP
	Host string

	// Port 端口号
	Port int
}

// String 返回 host:port 格式
func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// IsZero 判断地址是否为空
func (a Address) IsZero() bool {
	return a.Host == "" && a.Port == 0
}

// ParseAddress 解析 host:port 格式的地址字符串
func ParseAddress(s string) (Address, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Address{}, fmt.Errorf("invalid port in address %q", s)
	}
	return Address{Host: host, Port: port}, nil
}

// PeerInfo 集群成员信息
type PeerInfo struct {
	// ID 节点 ID（握手前可能为空）
	ID NodeID

	// Addr 节点地址
	Addr Address

	// RTT 最近一次探测的往返时间
	RTT time.Duration

	// LastSeen 最近一次探测成功时间
	LastSeen time.Time
}

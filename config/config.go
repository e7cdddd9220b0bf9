// Package config 定义发现模块消费的设置键与默认值
//
// 设置来源是嵌入系统的外部键值存储，本包只提供只读视图和
// 带默认值的类型化读取，不实现任何配置加载机制。
package config

// 设置键
const (
	// DiscoveryTypeKey 发现类型设置键
	DiscoveryTypeKey = "discovery.type"

	// HostsProviderKey 种子地址提供者设置键
	HostsProviderKey = "discovery.zen.hosts_provider"
)

// 内建发现类型
const (
	// DiscoveryTypeZen 全量成员协议
	DiscoveryTypeZen = "zen"

	// DiscoveryTypeNone 空实现（单节点/测试场景）
	DiscoveryTypeNone = "none"
)

// Settings 只读设置视图
//
// 键值均为字符串；空串视为未设置。
type Settings map[string]string

// Get 读取设置，未设置时返回 fallback
func (s Settings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}

// DiscoveryType 返回选定的发现类型，默认 "zen"
func (s Settings) DiscoveryType() string {
	return s.Get(DiscoveryTypeKey, DiscoveryTypeZen)
}

// HostsProviderName 返回选定的种子地址提供者名称
//
// 跨设置默认：未设置时回退到 discovery.type 的解析值（而非字面量 "zen"）。
// 保持两步读取，显式暴露两个设置之间的依赖。
func (s Settings) HostsProviderName() string {
	return s.Get(HostsProviderKey, s.DiscoveryType())
}

// Package interfaces 定义 go-discovery 公共接口
//
// 本包只包含接口和小型值类型，不包含实现：
//
//   - Discovery / DiscoveryFactory: 发现策略
//   - Ping / PingVariant / PingService: 探测机制
//   - HostsProvider / HostsProviderFactory: 种子地址提供者
//   - Plugin: 插件贡献入口
//   - Transport / Network: 嵌入系统提供的黑盒句柄
//
// 实现位于 internal/ 下的各子模块，由根包的 Module 在引导阶段解析装配。
package interfaces

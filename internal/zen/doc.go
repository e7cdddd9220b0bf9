// Package zen 实现内建的 "zen" 发现策略及其配套组件
//
// # 模块概述
//
//   - ZenDiscovery: 基于种子地址 + 周期探测的成员发现策略
//   - UnicastPing: 默认探测变体（拨号测量 RTT）
//   - PingService: 聚合引导阶段绑定的全部探测变体
//   - StaticHostsProvider: 固定种子列表提供者（空列表形式即内建 "zen" 项）
//
// 成员交换/选主等集群协议不在本包范围内，ZenDiscovery 只维护
// 一张由探测结果驱动的存活成员表。
package zen

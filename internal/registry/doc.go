// Package registry 实现引导阶段的三个注册表
//
// # 模块概述
//
//   - TypeRegistry: 发现类型注册表（键 → 发现策略工厂）
//   - PingVariantSet: 探测变体扩展点（有序去重集合，绑定后冻结）
//   - HostsProviderRegistry: 种子地址提供者注册表（内建项 + 插件合并）
//
// # 并发模型
//
// 三个注册表都假定两阶段、单线程访问：先是严格顺序的注册阶段
// （内建项、插件按加载顺序依次写入），然后是一次性的解析阶段。
// 阶段分离由嵌入系统保证，注册表本身不做任何内部加锁。
package registry

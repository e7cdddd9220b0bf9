// Package discovery 提供集群节点发现组件的引导期解析与装配
//
// go-discovery 负责在节点启动时从配置中选定、校验并装配三类
// 可插拔组件：发现策略、探测机制和种子地址提供者。它不实现
// 任何网络协议——传输、配置存储和插件加载都是通过接口消费的
// 外部协作者。
//
// # 核心概念
//
//   - Module: 引导解析器，持有三个注册表并执行一次性解析
//   - Resolved: 解析产物，节点生命周期内唯一存活的装配结果
//   - Plugin: 向注册表贡献种子地址提供者的外部扩展
//
// # 快速开始
//
//	import (
//	    discovery "github.com/dep2p/go-discovery"
//	    "github.com/dep2p/go-discovery/config"
//	)
//
//	settings := config.Settings{
//	    config.DiscoveryTypeKey: "zen",
//	}
//
//	m, err := discovery.New(settings, transport, network, plugins)
//	if err != nil {
//	    log.Fatal(err) // 注册冲突：致命的启动条件
//	}
//
//	resolved, err := m.Resolve()
//	if err != nil {
//	    log.Fatal(err) // 未知类型/提供者：引导中止
//	}
//	_ = resolved.Discovery.Start(ctx)
//
// 嵌入 Fx 应用时改用 m.FxOption()，解析产物会以命名单例绑定，
// 生命周期钩子自动按 探测服务 → 发现策略 的顺序启停。
//
// # 两阶段模型
//
// 注册阶段（Module 构造 + AddDiscoveryType/AddPingVariant）与
// 解析阶段（Resolve）严格顺序执行。注册表不做内部加锁；
// 若嵌入系统并发加载插件，须在任何 Resolve 调用前自行串行化
// 注册。解析是一次性的：失败即中止启动，成功结果被缓存。
//
// # 文件组织
//
//	go-discovery/
//	├── module.go     # Module、Resolved、引导解析算法
//	├── fx.go         # Fx 绑定与生命周期
//	├── options.go    # 模块选项
//	├── errors.go     # 公共错误
//	├── config/       # 设置键、默认值与跨设置回退
//	├── pkg/
//	│   ├── interfaces/  # 公共契约（Discovery、Ping、HostsProvider、Plugin…）
//	│   ├── types/       # 公共数据类型
//	│   └── lib/log/     # 日志封装
//	└── internal/
//	    ├── registry/    # 类型注册表、探测变体扩展点、提供者注册表
//	    ├── zen/         # 内建 zen 策略、单播探测、探测服务
//	    └── none/        # 内建空策略
package discovery

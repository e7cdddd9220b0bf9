package interfaces

// Plugin 发现插件
//
// 插件在 Module 构造期被逐个（按加载顺序）询问一次，
// 贡献额外的种子地址提供者。键与内建项冲突是致命错误。
type Plugin interface {
	// HostsProviders 返回插件贡献的 providerKey → 工厂 映射
	//
	// transport/network 供需要网络能力的工厂闭包捕获。
	// 返回 nil 或空映射表示不贡献。
	HostsProviders(transport Transport, network Network) map[string]HostsProviderFactory
}

package discovery

import (
	"errors"

	"github.com/dep2p/go-discovery/internal/registry"
)

// 公共错误定义
//
// 注册表错误从 internal/registry 透出别名，便于调用方 errors.Is 判定。
// 所有错误都是致命的引导失败：没有重试，也没有可用的部分装配结果。
var (
	// ────────────────────────────────────────────────────────────────────────
	// 注册冲突
	// ────────────────────────────────────────────────────────────────────────

	// ErrDuplicateDiscoveryType 发现类型重复注册（包括与内建类型冲突）
	ErrDuplicateDiscoveryType = registry.ErrDuplicateType

	// ErrDuplicatePingVariant 探测变体重复注册
	ErrDuplicatePingVariant = registry.ErrDuplicateVariant

	// ErrDuplicateHostsProvider 种子地址提供者键冲突（跨插件）
	ErrDuplicateHostsProvider = registry.ErrDuplicateProvider

	// ErrPingVariantsFrozen 解析完成后注册探测变体
	ErrPingVariantsFrozen = registry.ErrVariantsFrozen

	// ────────────────────────────────────────────────────────────────────────
	// 解析失败
	// ────────────────────────────────────────────────────────────────────────

	// ErrUnknownDiscoveryType 配置引用了未注册的发现类型
	ErrUnknownDiscoveryType = registry.ErrUnknownType

	// ErrUnknownHostsProvider 配置引用了未注册的提供者名称
	ErrUnknownHostsProvider = registry.ErrUnknownProvider

	// ErrNilHostsProvider 提供者工厂产出了空实例
	ErrNilHostsProvider = errors.New("discovery: hosts provider factory returned nil")
)

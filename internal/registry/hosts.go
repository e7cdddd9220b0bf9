package registry

import (
	"fmt"
	"sort"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
)

// ============================================================================
//                              HostsProviderRegistry
// ============================================================================

// HostsProviderRegistry 种子地址提供者注册表
//
// 构造期先写入内建项，再按插件加载顺序 Merge 各插件的贡献。
// 任何键冲突（与内建项或先加载的插件）都是致命错误，不做覆盖。
// 合并完成后注册表只读。
type HostsProviderRegistry struct {
	factories map[string]pkgif.HostsProviderFactory
}

// NewHostsProviderRegistry 创建空的提供者注册表
func NewHostsProviderRegistry() *HostsProviderRegistry {
	return &HostsProviderRegistry{
		factories: make(map[string]pkgif.HostsProviderFactory),
	}
}

// Register 注册单个提供者工厂
//
// 键已存在时返回 ErrDuplicateProvider（携带冲突键）。
func (r *HostsProviderRegistry) Register(key string, factory pkgif.HostsProviderFactory) error {
	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateProvider, key)
	}
	r.factories[key] = factory
	logger.Debug("注册种子地址提供者", "provider", key)
	return nil
}

// Merge 合并一个插件贡献的提供者映射
//
// 键按排序后的顺序写入，保证冲突错误跨运行确定。
// 首个冲突立即中止，不回滚已写入的键——冲突是致命的启动条件，
// 注册表随引导一起废弃。
func (r *HostsProviderRegistry) Merge(contrib map[string]pkgif.HostsProviderFactory) error {
	keys := make([]string, 0, len(contrib))
	for key := range contrib {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := r.Register(key, contrib[key]); err != nil {
			return err
		}
	}
	return nil
}

// Resolve 查找提供者工厂
//
// 键不存在时返回 ErrUnknownProvider（携带被查询键）。
func (r *HostsProviderRegistry) Resolve(key string) (pkgif.HostsProviderFactory, error) {
	factory, ok := r.factories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, key)
	}
	return factory, nil
}

// Keys 返回已注册的提供者键（排序后）
func (r *HostsProviderRegistry) Keys() []string {
	keys := make([]string, 0, len(r.factories))
	for key := range r.factories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package registry

import (
	"fmt"
	"sort"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
	"github.com/dep2p/go-discovery/pkg/lib/log"
)

var logger = log.Logger("discovery/registry")

// ============================================================================
//                              TypeRegistry
// ============================================================================

// TypeRegistry 发现类型注册表
//
// 键区分大小写，注册后不可变；内建类型与插件类型走同一条
// Register 路径，因此插件无法覆盖内建键。没有删除操作：
// 注册表只增长，最终被解析器查询一次。
type TypeRegistry struct {
	factories map[string]pkgif.DiscoveryFactory
}

// NewTypeRegistry 创建空的发现类型注册表
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		factories: make(map[string]pkgif.DiscoveryFactory),
	}
}

// Register 注册发现类型
//
// 键已存在时返回 ErrDuplicateType（携带冲突键）。
func (r *TypeRegistry) Register(key string, factory pkgif.DiscoveryFactory) error {
	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateType, key)
	}
	r.factories[key] = factory
	logger.Debug("注册发现类型", "type", key)
	return nil
}

// Resolve 查找发现类型
//
// 键不存在时返回 ErrUnknownType（携带被查询键）。
func (r *TypeRegistry) Resolve(key string) (pkgif.DiscoveryFactory, error) {
	factory, ok := r.factories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, key)
	}
	return factory, nil
}

// Keys 返回已注册的类型键（排序后）
func (r *TypeRegistry) Keys() []string {
	keys := make([]string, 0, len(r.factories))
	for key := range r.factories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

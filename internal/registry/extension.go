package registry

import (
	"fmt"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
)

// ============================================================================
//                              PingVariantSet
// ============================================================================

// PingVariantSet 探测变体扩展点
//
// 两阶段对象：注册阶段是追加式的有序集合，Bind 之后进入
// 冻结的解析阶段。变体以名称判定唯一性，重复注册被拒绝
// 而非静默忽略。注册顺序保留用于枚举，不代表优先级。
type PingVariantSet struct {
	variants []pkgif.PingVariant
	names    map[string]struct{}
	frozen   bool
}

// NewPingVariantSet 创建空的探测变体集合
func NewPingVariantSet() *PingVariantSet {
	return &PingVariantSet{
		names: make(map[string]struct{}),
	}
}

// Register 注册探测变体
//
// 集合已冻结时返回 ErrVariantsFrozen；名称重复时返回
// ErrDuplicateVariant（携带冲突名称）。
func (s *PingVariantSet) Register(v pkgif.PingVariant) error {
	if s.frozen {
		return fmt.Errorf("%w: %q", ErrVariantsFrozen, v.Name)
	}
	if v.Name == "" || v.New == nil {
		return ErrInvalidVariant
	}
	if _, ok := s.names[v.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVariant, v.Name)
	}
	s.names[v.Name] = struct{}{}
	s.variants = append(s.variants, v)
	logger.Debug("注册探测变体", "variant", v.Name)
	return nil
}

// Empty 报告是否尚无任何变体
func (s *PingVariantSet) Empty() bool {
	return len(s.variants) == 0
}

// Len 返回已注册的变体数量
func (s *PingVariantSet) Len() int {
	return len(s.variants)
}

// Frozen 报告集合是否已冻结
func (s *PingVariantSet) Frozen() bool {
	return s.frozen
}

// Bind 冻结集合并返回最终的变体列表（按注册顺序）
//
// 首次调用后任何 Register 都会失败；重复 Bind 返回同一内容。
func (s *PingVariantSet) Bind() []pkgif.PingVariant {
	s.frozen = true
	out := make([]pkgif.PingVariant, len(s.variants))
	copy(out, s.variants)
	return out
}

package registry

import "errors"

var (
	// ErrDuplicateType 发现类型重复注册
	ErrDuplicateType = errors.New("registry: discovery type already registered")

	// ErrUnknownType 发现类型未注册
	ErrUnknownType = errors.New("registry: unknown discovery type")

	// ErrDuplicateVariant 探测变体重复注册
	ErrDuplicateVariant = errors.New("registry: ping variant already registered")

	// ErrVariantsFrozen 探测变体集合已冻结
	ErrVariantsFrozen = errors.New("registry: ping variant set is frozen")

	// ErrInvalidVariant 探测变体不完整
	ErrInvalidVariant = errors.New("registry: ping variant missing name or factory")

	// ErrDuplicateProvider 种子地址提供者键冲突
	ErrDuplicateProvider = errors.New("registry: hosts provider already registered")

	// ErrUnknownProvider 种子地址提供者未注册
	ErrUnknownProvider = errors.New("registry: unknown hosts provider")
)

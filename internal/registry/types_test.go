package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
)

// nopDiscoveryFactory 返回一个什么都不构造的工厂（注册表只存引用）
func nopDiscoveryFactory() pkgif.DiscoveryFactory {
	return func(pkgif.DiscoveryResources) (pkgif.Discovery, error) {
		return nil, nil
	}
}

// TestTypeRegistry_RegisterAndResolve 测试注册与查找
func TestTypeRegistry_RegisterAndResolve(t *testing.T) {
	r := NewTypeRegistry()

	require.NoError(t, r.Register("zen", nopDiscoveryFactory()))
	require.NoError(t, r.Register("none", nopDiscoveryFactory()))

	factory, err := r.Resolve("zen")
	require.NoError(t, err)
	assert.NotNil(t, factory)

	assert.Equal(t, []string{"none", "zen"}, r.Keys())
}

// TestTypeRegistry_DuplicateKey 重复键被拒绝，即使工厂相同
func TestTypeRegistry_DuplicateKey(t *testing.T) {
	r := NewTypeRegistry()
	factory := nopDiscoveryFactory()

	require.NoError(t, r.Register("zen", factory))

	err := r.Register("zen", factory)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateType)
	assert.Contains(t, err.Error(), `"zen"`)
}

// TestTypeRegistry_UnknownKey 未注册键返回 ErrUnknownType
func TestTypeRegistry_UnknownKey(t *testing.T) {
	r := NewTypeRegistry()

	_, err := r.Resolve("bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), `"bogus"`)
}

// TestTypeRegistry_CaseSensitive 键区分大小写
func TestTypeRegistry_CaseSensitive(t *testing.T) {
	r := NewTypeRegistry()

	require.NoError(t, r.Register("zen", nopDiscoveryFactory()))
	require.NoError(t, r.Register("Zen", nopDiscoveryFactory()))

	_, err := r.Resolve("ZEN")
	assert.ErrorIs(t, err, ErrUnknownType)
}

package none

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
)

// TestNoneDiscovery 空策略不做任何事
func TestNoneDiscovery(t *testing.T) {
	d := New()
	ctx := context.Background()

	require.NoError(t, d.Start(ctx))
	assert.Nil(t, d.KnownPeers())
	require.NoError(t, d.Stop(ctx))
}

// TestFactory 工厂忽略资源并总是成功
func TestFactory(t *testing.T) {
	d, err := Factory()(pkgif.DiscoveryResources{})
	require.NoError(t, err)
	assert.Nil(t, d.KnownPeers())
}

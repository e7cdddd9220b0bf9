package zen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-discovery/pkg/types"
)

// TestUnicastPing_MeasuresRTT 测试 RTT 测量
func TestUnicastPing_MeasuresRTT(t *testing.T) {
	clk := clock.NewMock()
	transport := newMockTransport()
	transport.clk = clk
	transport.delay = 5 * time.Millisecond

	p := NewUnicastPing(transport, WithUnicastClock(clk))
	require.NoError(t, p.Start(context.Background()))

	addr := types.Address{Host: "10.0.0.1", Port: 9300}
	rtt, err := p.Ping(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, rtt)

	stats := p.Stats()
	assert.Equal(t, int64(1), stats.TotalProbes)
	assert.Equal(t, int64(0), stats.FailedProbes)
}

// TestUnicastPing_DialError 拨号失败向上传播并计入统计
func TestUnicastPing_DialError(t *testing.T) {
	transport := newMockTransport()
	addr := types.Address{Host: "10.0.0.2", Port: 9300}
	dialErr := errors.New("connection refused")
	transport.failAddr(addr, dialErr)

	p := NewUnicastPing(transport)
	require.NoError(t, p.Start(context.Background()))

	_, err := p.Ping(context.Background(), addr)
	require.Error(t, err)
	assert.ErrorIs(t, err, dialErr)

	stats := p.Stats()
	assert.Equal(t, int64(1), stats.TotalProbes)
	assert.Equal(t, int64(1), stats.FailedProbes)
}

// TestUnicastPing_NotStarted 未启动时探测被拒绝
func TestUnicastPing_NotStarted(t *testing.T) {
	p := NewUnicastPing(newMockTransport())

	_, err := p.Ping(context.Background(), types.Address{Host: "10.0.0.1", Port: 9300})
	assert.ErrorIs(t, err, ErrNotStarted)
}

// TestUnicastPing_Lifecycle 重复启动被拒绝，停止后探测失效
func TestUnicastPing_Lifecycle(t *testing.T) {
	p := NewUnicastPing(newMockTransport())
	ctx := context.Background()

	require.NoError(t, p.Start(ctx))
	assert.ErrorIs(t, p.Start(ctx), ErrAlreadyStarted)

	require.NoError(t, p.Stop(ctx))
	_, err := p.Ping(ctx, types.Address{Host: "10.0.0.1", Port: 9300})
	assert.ErrorIs(t, err, ErrNotStarted)
}

// TestUnicastFactory 工厂产出可用的变体
func TestUnicastFactory(t *testing.T) {
	factory := UnicastFactory(WithUnicastTimeout(time.Second))

	p, err := factory(newMockTransport(), NewStaticHostsProvider())
	require.NoError(t, err)
	require.NotNil(t, p)
}

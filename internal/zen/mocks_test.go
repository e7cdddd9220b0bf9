package zen

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	pkgif "github.com/dep2p/go-discovery/pkg/interfaces"
	"github.com/dep2p/go-discovery/pkg/types"
)

// ============================================================================
//                              Mock 传输
// ============================================================================

// mockConn 模拟连接
type mockConn struct {
	remote types.Address
}

func (c *mockConn) Read(_ []byte) (int, error)  { return 0, nil }
func (c *mockConn) Write(p []byte) (int, error) { return len(p), nil }
func (c *mockConn) Close() error                { return nil }
func (c *mockConn) RemoteAddr() types.Address   { return c.remote }

// mockTransport 模拟传输
type mockTransport struct {
	mu      sync.Mutex
	dialErr map[string]error // 按地址返回的拨号错误
	delay   time.Duration    // 拨号耗时（配合 mock 时钟）
	clk     *clock.Mock
	dials   int
}

func newMockTransport() *mockTransport {
	return &mockTransport{dialErr: make(map[string]error)}
}

func (t *mockTransport) failAddr(addr types.Address, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dialErr[addr.String()] = err
}

func (t *mockTransport) Dial(_ context.Context, addr types.Address) (pkgif.Conn, error) {
	t.mu.Lock()
	t.dials++
	err := t.dialErr[addr.String()]
	t.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if t.delay > 0 && t.clk != nil {
		t.clk.Add(t.delay)
	}
	return &mockConn{remote: addr}, nil
}

// ============================================================================
//                              Mock 探测
// ============================================================================

// mockPing 模拟探测变体
type mockPing struct {
	rtt      time.Duration
	pingErr  error
	startErr error
	stopErr  error

	mu      sync.Mutex
	started bool
	stopped bool
	pinged  []types.Address
}

func (m *mockPing) Ping(_ context.Context, addr types.Address) (time.Duration, error) {
	m.mu.Lock()
	m.pinged = append(m.pinged, addr)
	m.mu.Unlock()

	if m.pingErr != nil {
		return 0, m.pingErr
	}
	return m.rtt, nil
}

func (m *mockPing) Start(_ context.Context) error {
	if m.startErr != nil {
		return m.startErr
	}
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
	return nil
}

func (m *mockPing) Stop(_ context.Context) error {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
	return m.stopErr
}

// mockPingService 模拟探测服务
type mockPingService struct {
	mu      sync.Mutex
	results map[string]error // 地址 → 探测错误（nil 表示成功）
	rtt     time.Duration
}

func newMockPingService() *mockPingService {
	return &mockPingService{
		results: make(map[string]error),
		rtt:     5 * time.Millisecond,
	}
}

func (s *mockPingService) setResult(addr types.Address, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[addr.String()] = err
}

func (s *mockPingService) PingAll(_ context.Context, addrs []types.Address) []pkgif.PingResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]pkgif.PingResult, 0, len(addrs))
	for _, addr := range addrs {
		results = append(results, pkgif.PingResult{
			Variant: "mock",
			Addr:    addr,
			RTT:     s.rtt,
			Err:     s.results[addr.String()],
		})
	}
	return results
}

func (s *mockPingService) Variants() []string            { return []string{"mock"} }
func (s *mockPingService) Start(_ context.Context) error { return nil }
func (s *mockPingService) Stop(_ context.Context) error  { return nil }

// ============================================================================
//                              Mock 提供者
// ============================================================================

// mockProvider 模拟种子地址提供者
type mockProvider struct {
	mu    sync.Mutex
	addrs []types.Address
	err   error
}

func (p *mockProvider) SeedHosts(_ context.Context) ([]types.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	out := make([]types.Address, len(p.addrs))
	copy(out, p.addrs)
	return out, nil
}

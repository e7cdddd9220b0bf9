package discovery

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-discovery/internal/zen"
)

// Option 模块配置选项
type Option func(*options)

// options 内部选项结构
type options struct {
	// 时钟（测试注入 mock）
	clk clock.Clock

	// 探测配置
	pingTimeout   time.Duration
	roundInterval time.Duration
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{
		clk:           clock.New(),
		pingTimeout:   zen.DefaultPingTimeout,
		roundInterval: zen.DefaultRoundInterval,
	}
}

// WithClock 设置模块使用的时钟
//
// 内建 zen 策略和默认探测变体共用该时钟。
func WithClock(clk clock.Clock) Option {
	return func(o *options) {
		if clk != nil {
			o.clk = clk
		}
	}
}

// WithPingTimeout 设置默认探测变体的单次探测超时
func WithPingTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.pingTimeout = d
		}
	}
}

// WithRoundInterval 设置 zen 策略的探测轮询间隔
func WithRoundInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.roundInterval = d
		}
	}
}

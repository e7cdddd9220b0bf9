package zen

import "errors"

var (
	// ErrNotStarted 服务未启动
	ErrNotStarted = errors.New("zen: not started")

	// ErrAlreadyStarted 服务已启动
	ErrAlreadyStarted = errors.New("zen: already started")
)

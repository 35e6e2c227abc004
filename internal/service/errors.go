package service

import "errors"

// 校验错误：调用方输入不合法，不触发任何外部调用
var (
	ErrEventRequired  = errors.New("event data required")
	ErrEventsRequired = errors.New("events array required")
)

// 外部依赖错误：包装原始错误，消息原样保留
var (
	ErrUpstream = errors.New("market data source failed")
	ErrEngine   = errors.New("reasoning engine failed")
)

// ErrStoreDisabled 未启用快照库
var ErrStoreDisabled = errors.New("snapshot store disabled")

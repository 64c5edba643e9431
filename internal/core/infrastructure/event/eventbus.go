// Package event 基于asaskevich/EventBus的事件总线实现
package event

import (
	"sync/atomic"

	evbus "github.com/asaskevich/EventBus"
	eventconfig "github.com/weisyn/assetbridge/internal/config/event"
	"github.com/weisyn/assetbridge/pkg/interfaces/infrastructure/event"
)

// EventBus 是基于asaskevich/EventBus的实现
//
// 事件系统未启用时，订阅静默成功、发布直接丢弃。
type EventBus struct {
	bus    evbus.Bus
	config *eventconfig.Config

	published atomic.Uint64
}

var _ event.EventBus = (*EventBus)(nil)

// New 创建事件总线实例
func New(config *eventconfig.Config) *EventBus {
	return &EventBus{
		bus:    evbus.New(),
		config: config,
	}
}

// Subscribe 实现订阅
func (eb *EventBus) Subscribe(eventType event.EventType, handler interface{}) error {
	if !eb.config.IsEnabled() {
		return nil
	}
	return eb.bus.Subscribe(string(eventType), handler)
}

// SubscribeAsync 实现异步订阅
func (eb *EventBus) SubscribeAsync(eventType event.EventType, handler interface{}, transactional bool) error {
	if !eb.config.IsEnabled() {
		return nil
	}
	return eb.bus.SubscribeAsync(string(eventType), handler, transactional)
}

// Unsubscribe 取消订阅
func (eb *EventBus) Unsubscribe(eventType event.EventType, handler interface{}) error {
	if !eb.config.IsEnabled() {
		return nil
	}
	return eb.bus.Unsubscribe(string(eventType), handler)
}

// Publish 发布事件
func (eb *EventBus) Publish(eventType event.EventType, args ...interface{}) {
	if !eb.config.IsEnabled() {
		return
	}
	eb.published.Add(1)
	eb.bus.Publish(string(eventType), args...)
}

// HasCallback 是否存在订阅者
func (eb *EventBus) HasCallback(eventType event.EventType) bool {
	return eb.bus.HasCallback(string(eventType))
}

// WaitAsync 等待所有异步处理完成
func (eb *EventBus) WaitAsync() {
	eb.bus.WaitAsync()
}

// PublishedCount 已发布事件总数
func (eb *EventBus) PublishedCount() uint64 {
	return eb.published.Load()
}

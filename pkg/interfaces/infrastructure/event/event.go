// Package event 提供资产桥的事件总线接口定义
//
// 📢 **事件总线 (Event Bus)**
//
// 账本在状态变更提交后发布事件，订阅方（CLI、审计、指标）按主题订阅。
// 事件在事务提交之后发布，订阅方看到的都是已生效的变更。
package event

// EventType 事件主题
type EventType string

// EventBus 事件总线接口
type EventBus interface {
	// Subscribe 同步订阅
	Subscribe(eventType EventType, handler interface{}) error

	// SubscribeAsync 异步订阅，transactional 为 true 时同一订阅者串行处理
	SubscribeAsync(eventType EventType, handler interface{}, transactional bool) error

	// Unsubscribe 取消订阅
	Unsubscribe(eventType EventType, handler interface{}) error

	// Publish 发布事件
	Publish(eventType EventType, args ...interface{})

	// HasCallback 是否存在订阅者
	HasCallback(eventType EventType) bool

	// WaitAsync 等待所有异步处理完成
	WaitAsync()
}

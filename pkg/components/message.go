package components

// StatusMessageComponent 存储一条带显示时长的状态消息
// 消息不是独立的异步定时器，剩余时长由 MessageSystem 随 tick 递减，
// 到期后实体被清除（参照 LifetimeComponent 的自动清理模式）
type StatusMessageComponent struct {
	Text      string  // 消息文本
	Remaining float64 // 剩余显示时长（秒）
	Expired   bool    // 是否已过期
}

package components

// PositionComponent 存储实体在战场上的横向坐标
// 战场是一条一维通道：城堡在左端（x=0 附近），敌人从右端进场
type PositionComponent struct {
	X float64 // 横向坐标（世界单位）
}

// MovementComponent 存储实体的移动属性
// 注意：遵循 ECS 原则，组件仅存储数据，移动计算在 MovementSystem 中
type MovementComponent struct {
	// Speed 移动速度（单位/秒），恒为正值
	Speed float64

	// Direction 移动方向：+1 向右（玩家单位），-1 向左（敌方单位）
	Direction float64
}

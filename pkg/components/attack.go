package components

// AttackComponent 存储实体的攻击属性与冷却状态
type AttackComponent struct {
	// Damage 单次攻击伤害
	Damage float64

	// Range 攻击距离（世界单位）
	// 交战判定使用双方攻击距离的较大值
	Range float64

	// Cooldown 攻击冷却时长（秒）
	Cooldown float64

	// CooldownTimer 剩余冷却时间（秒），<= 0 时可以出手
	// 出手后重置为 Cooldown，由 MovementSystem 随时间递减
	CooldownTimer float64
}

// Ready 判断冷却是否已结束
func (a *AttackComponent) Ready() bool {
	return a.CooldownTimer <= 0
}

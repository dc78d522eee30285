package components

// HealthComponent 存储实体的生命值信息
// 不变式：0 <= Current <= Max（伤害结算允许 Current 瞬时为负，
// 当 tick 收尾清除死亡实体后不变式恢复）
type HealthComponent struct {
	Current float64 // 当前生命值
	Max     float64 // 最大生命值
}

// Alive 判断实体是否存活
func (h *HealthComponent) Alive() bool {
	return h.Current > 0
}

// Ratio 返回生命值比例，裁剪到 [0, 1]
// 仅供展示层（血条等）消费，不参与模拟逻辑
func (h *HealthComponent) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	ratio := h.Current / h.Max
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

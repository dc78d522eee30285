package components

import "github.com/gonewx/castlewar/pkg/types"

// UnitComponent 标记实体为战斗单位并记录其阵营信息
type UnitComponent struct {
	// Type 兵种类型（敌方单位统一使用 UnitSword 占位，
	// 敌人属性完全由波次配置决定，不参与升级体系）
	Type types.UnitType

	// IsPlayer 是否为玩家阵营
	IsPlayer bool

	// WaveIndex 敌方单位所属波次索引（0-based），玩家单位恒为 -1
	WaveIndex int
}

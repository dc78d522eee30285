// Package entities 提供实体工厂：把配置属性组装成带组件的实体
package entities

import (
	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/ecs"
	"github.com/gonewx/castlewar/pkg/types"
)

// CreatePlayerUnit 创建一个玩家单位实体
// 属性由经济系统按当前升级等级算好后传入，出生点在城堡前方，向右推进
func CreatePlayerUnit(em *ecs.EntityManager, t types.UnitType, stats config.UnitStats, x float64) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.UnitComponent{
		Type:      t,
		IsPlayer:  true,
		WaveIndex: -1,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x})
	ecs.AddComponent(em, id, &components.MovementComponent{
		Speed:     stats.Speed,
		Direction: 1,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		Current: stats.Health,
		Max:     stats.Health,
	})
	ecs.AddComponent(em, id, &components.AttackComponent{
		Damage:   stats.Damage,
		Range:    stats.AttackRange,
		Cooldown: stats.AttackCooldown,
	})

	return id
}

// CreateEnemyUnit 创建一个敌方单位实体
// 属性完全来自波次配置，出生点在战场右端，向左逼近城堡
func CreateEnemyUnit(em *ecs.EntityManager, wave config.WaveConfig, waveIndex int, x float64) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.UnitComponent{
		Type:      types.UnitSword,
		IsPlayer:  false,
		WaveIndex: waveIndex,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x})
	ecs.AddComponent(em, id, &components.MovementComponent{
		Speed:     wave.BaseSpeed,
		Direction: -1,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		Current: wave.BaseHealth,
		Max:     wave.BaseHealth,
	})
	ecs.AddComponent(em, id, &components.AttackComponent{
		Damage:   wave.BaseDamage,
		Range:    wave.AttackRange,
		Cooldown: wave.AttackCooldown,
	})

	return id
}

// CreateWaveState 创建波次状态实体（每场战斗恰好一个）
func CreateWaveState(em *ecs.EntityManager, totalWaves int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.WaveStateComponent{
		Phase:      components.WavePhaseIdle,
		TotalWaves: totalWaves,
	})
	return id
}

// CreateStatusMessage 创建一条带显示时长的状态消息实体
// 到期后由 MessageSystem 自动清除
func CreateStatusMessage(em *ecs.EntityManager, text string, duration float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.StatusMessageComponent{
		Text:      text,
		Remaining: duration,
	})
	return id
}

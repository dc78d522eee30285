// Package systems 实现战斗模拟的各个 per-tick 系统
package systems

import (
	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/ecs"
)

// liveUnits 查询指定阵营的所有存活单位
// 返回按实体ID升序（即创建顺序）排序的列表，保证结算顺序确定
func liveUnits(em *ecs.EntityManager, isPlayer bool) []ecs.EntityID {
	candidates := ecs.GetEntitiesWith3[
		*components.UnitComponent,
		*components.PositionComponent,
		*components.HealthComponent,
	](em)

	result := make([]ecs.EntityID, 0, len(candidates))
	for _, id := range candidates {
		unit, ok := ecs.GetComponent[*components.UnitComponent](em, id)
		if !ok || unit.IsPlayer != isPlayer {
			continue
		}
		health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
		if !ok || !health.Alive() {
			continue
		}
		result = append(result, id)
	}

	return ecs.SortEntityIDs(result)
}

// LivePlayerUnits 查询所有存活的玩家单位（创建顺序）
func LivePlayerUnits(em *ecs.EntityManager) []ecs.EntityID {
	return liveUnits(em, true)
}

// LiveEnemyUnits 查询所有存活的敌方单位（创建顺序）
func LiveEnemyUnits(em *ecs.EntityManager) []ecs.EntityID {
	return liveUnits(em, false)
}

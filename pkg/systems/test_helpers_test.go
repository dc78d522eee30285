package systems

import (
	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/ecs"
	"github.com/gonewx/castlewar/pkg/entities"
	"github.com/gonewx/castlewar/pkg/game"
	"github.com/gonewx/castlewar/pkg/types"
)

// newTestEnv 创建系统测试共用的实体管理器、状态与默认战场配置
func newTestEnv() (*ecs.EntityManager, *game.GameState, *config.BattleConfig) {
	cfg := config.DefaultBattleConfig()
	return ecs.NewEntityManager(), game.NewGameState(cfg), cfg
}

// spawnStaticPlayer 创建一个速度为 0 的玩家单位（交战测试用，保持站位）
func spawnStaticPlayer(em *ecs.EntityManager, x, health, damage, attackRange, cooldown float64) ecs.EntityID {
	return entities.CreatePlayerUnit(em, types.UnitSword, config.UnitStats{
		Health:         health,
		Speed:          0,
		Damage:         damage,
		AttackRange:    attackRange,
		AttackCooldown: cooldown,
	}, x)
}

// spawnStaticEnemy 创建一个速度为 0 的敌方单位（交战测试用）
func spawnStaticEnemy(em *ecs.EntityManager, x, health, damage, attackRange, cooldown float64) ecs.EntityID {
	return entities.CreateEnemyUnit(em, config.WaveConfig{
		Count:          1,
		BaseHealth:     health,
		BaseSpeed:      0.000001, // 近似静止
		BaseDamage:     damage,
		AttackRange:    attackRange,
		AttackCooldown: cooldown,
	}, 0, x)
}

// healthOf 读取实体生命值组件（测试断言用）
func healthOf(em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	return h
}

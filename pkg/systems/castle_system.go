package systems

import (
	"log"

	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/ecs"
	"github.com/gonewx/castlewar/pkg/entities"
	"github.com/gonewx/castlewar/pkg/game"
)

// CastleSystem 城堡抵达判定系统
//
// 每 tick 检查所有存活敌人：越过城堡判定边界的敌人被城堡"吸收"——
// 对城堡造成一次自身伤害后即被移除，不会留在原地持续输出。
// 城堡生命值归零时置结束标志并发出陷落通知（仅一次）。
type CastleSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	battleConfig  *config.BattleConfig
}

// NewCastleSystem 创建城堡判定系统
func NewCastleSystem(em *ecs.EntityManager, gs *game.GameState, battleConfig *config.BattleConfig) *CastleSystem {
	return &CastleSystem{
		entityManager: em,
		gameState:     gs,
		battleConfig:  battleConfig,
	}
}

// Update 执行一个 tick 的城堡抵达判定
func (s *CastleSystem) Update(deltaTime float64) {
	boundary := s.battleConfig.CastleBoundary()

	for _, enemyID := range LiveEnemyUnits(s.entityManager) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
		if !ok || pos.X >= boundary {
			continue
		}

		attack, ok := ecs.GetComponent[*components.AttackComponent](s.entityManager, enemyID)
		if !ok {
			continue
		}

		s.gameState.DamageCastle(int(attack.Damage))
		s.entityManager.DestroyEntity(enemyID)
		log.Printf("[CastleSystem] enemy %d reached the castle, castle health %d/%d",
			enemyID, s.gameState.CastleHealth, s.gameState.MaxCastleHealth)

		if s.gameState.CastleFallen() && s.gameState.MarkGameOver() {
			entities.CreateStatusMessage(s.entityManager,
				"The castle has fallen!", s.battleConfig.MessageDuration)
			log.Printf("[CastleSystem] castle has fallen")
		}
	}
}

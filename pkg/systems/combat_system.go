package systems

import (
	"log"
	"math"

	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/ecs"
	"github.com/gonewx/castlewar/pkg/game"
)

// CombatSystem 近距交战结算系统
//
// 每 tick 对所有存活的 玩家单位 x 敌方单位 组合做距离判定：
// 两者横向距离小于双方攻击距离的较大值时双方各自尝试出手，
// 本单位的冷却决定这次出手是否真正命中。
//
// 结算顺序按实体ID升序（创建顺序）枚举。tick 内生命值降到 0 的
// 单位立即退出战斗：既不再出手，也不再承受后续伤害，
// tick 收尾时统一标记清除，消灭敌人按配置发放击杀奖励。
type CombatSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	battleConfig  *config.BattleConfig
}

// NewCombatSystem 创建交战结算系统
func NewCombatSystem(em *ecs.EntityManager, gs *game.GameState, battleConfig *config.BattleConfig) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		gameState:     gs,
		battleConfig:  battleConfig,
	}
}

// Update 执行一个 tick 的交战结算
// 冷却计时不在这里递减（由 MovementSystem 随时间推进），
// deltaTime 参数保留以统一系统接口
func (s *CombatSystem) Update(deltaTime float64) {
	players := LivePlayerUnits(s.entityManager)
	enemies := LiveEnemyUnits(s.entityManager)
	if len(players) == 0 || len(enemies) == 0 {
		return
	}

	for _, playerID := range players {
		playerHealth, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
		if !ok {
			continue
		}
		// 本 tick 内先阵亡的玩家单位不再参与后续组合
		if !playerHealth.Alive() {
			continue
		}

		playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
		playerAttack, _ := ecs.GetComponent[*components.AttackComponent](s.entityManager, playerID)

		for _, enemyID := range enemies {
			enemyHealth, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
			if !ok || !enemyHealth.Alive() {
				continue
			}

			enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
			enemyAttack, _ := ecs.GetComponent[*components.AttackComponent](s.entityManager, enemyID)

			distance := math.Abs(playerPos.X - enemyPos.X)
			if distance >= math.Max(playerAttack.Range, enemyAttack.Range) {
				continue
			}

			// 交战：双方各自尝试出手，先结算玩家一方
			tryAttack(playerAttack, enemyHealth)
			// 刚被打死的敌人不再反击
			if enemyHealth.Alive() {
				tryAttack(enemyAttack, playerHealth)
			}

			// 玩家单位阵亡后退出本 tick 的全部交战
			if !playerHealth.Alive() {
				break
			}
		}
	}

	s.collectDead(players, enemies)
}

// tryAttack 尝试一次攻击
// 冷却未结束或目标已死亡时为空操作；命中后重置冷却
func tryAttack(attacker *components.AttackComponent, target *components.HealthComponent) {
	if !attacker.Ready() || !target.Alive() {
		return
	}
	target.Current -= attacker.Damage
	attacker.CooldownTimer = attacker.Cooldown
}

// collectDead 收集并标记本 tick 阵亡的单位
// 每个被消灭的敌人发放击杀奖励
func (s *CombatSystem) collectDead(players, enemies []ecs.EntityID) {
	for _, enemyID := range enemies {
		health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
		if !ok || health.Alive() {
			continue
		}
		s.entityManager.DestroyEntity(enemyID)
		s.gameState.AddCoins(s.battleConfig.KillReward)
		s.gameState.Kills++
		log.Printf("[CombatSystem] enemy %d slain, +%d coins", enemyID, s.battleConfig.KillReward)
	}

	for _, playerID := range players {
		health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
		if !ok || health.Alive() {
			continue
		}
		s.entityManager.DestroyEntity(playerID)
		log.Printf("[CombatSystem] player unit %d lost", playerID)
	}
}

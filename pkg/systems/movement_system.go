package systems

import (
	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/ecs"
)

// MovementSystem 移动与冷却推进系统
//
// 每 tick 把所有单位沿各自方向匀速推进，并递减攻击冷却计时。
// 移动是连续的，与交战结算互不干扰：交战中的单位也照常走位
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{entityManager: em}
}

// Update 推进所有实体的位置与冷却
//
// 参数：
//
//	deltaTime - 自上一 tick 以来经过的时间（秒）
func (s *MovementSystem) Update(deltaTime float64) {
	// 位置推进
	movers := ecs.GetEntitiesWith2[*components.PositionComponent, *components.MovementComponent](s.entityManager)
	for _, id := range movers {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		move, ok := ecs.GetComponent[*components.MovementComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos.X += move.Speed * move.Direction * deltaTime
	}

	// 冷却递减，下限 0
	attackers := ecs.GetEntitiesWith1[*components.AttackComponent](s.entityManager)
	for _, id := range attackers {
		attack, ok := ecs.GetComponent[*components.AttackComponent](s.entityManager, id)
		if !ok {
			continue
		}
		attack.CooldownTimer -= deltaTime
		if attack.CooldownTimer < 0 {
			attack.CooldownTimer = 0
		}
	}
}

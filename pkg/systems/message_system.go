package systems

import (
	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/ecs"
)

// MessageSystem 状态消息生命周期系统
// 随 tick 递减每条消息的剩余显示时长，到期即标记清除。
// 消息不使用独立的异步定时器，完全由 tick 驱动
type MessageSystem struct {
	entityManager *ecs.EntityManager
}

// NewMessageSystem 创建消息系统
func NewMessageSystem(em *ecs.EntityManager) *MessageSystem {
	return &MessageSystem{entityManager: em}
}

// Update 推进所有消息的剩余显示时长
func (s *MessageSystem) Update(deltaTime float64) {
	messages := ecs.GetEntitiesWith1[*components.StatusMessageComponent](s.entityManager)

	for _, id := range messages {
		msg, ok := ecs.GetComponent[*components.StatusMessageComponent](s.entityManager, id)
		if !ok {
			continue
		}

		msg.Remaining -= deltaTime
		if msg.Remaining <= 0 {
			msg.Expired = true
		}

		if msg.Expired {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// ActiveMessages 返回所有未过期消息的文本（创建顺序）
// 供展示层轮询显示
func ActiveMessages(em *ecs.EntityManager) []string {
	ids := ecs.SortEntityIDs(ecs.GetEntitiesWith1[*components.StatusMessageComponent](em))

	texts := make([]string, 0, len(ids))
	for _, id := range ids {
		msg, ok := ecs.GetComponent[*components.StatusMessageComponent](em, id)
		if !ok || msg.Expired {
			continue
		}
		texts = append(texts, msg.Text)
	}
	return texts
}

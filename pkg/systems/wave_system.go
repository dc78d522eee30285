package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/ecs"
	"github.com/gonewx/castlewar/pkg/entities"
	"github.com/gonewx/castlewar/pkg/game"
)

// WaveSystem 波次推进系统
//
// 职责：
//   - 驱动波次状态机 Idle -> Spawning -> Cleared -> {下一波 Spawning | Victory}
//   - 按生成间隔逐个生成当前波次的敌人（每 tick 至多一个）
//   - 检测清波条件：本波已生成满且场上无存活敌人
//   - 结算清波奖励并在最后一波清空后判定战役胜利
//
// 架构说明：
//   - 状态存储在 WaveStateComponent 中，系统本身无状态
//   - 通过 GameState 结算金币与结束标志，不直接调用其他系统
type WaveSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	campaign      *config.CampaignConfig
	battleConfig  *config.BattleConfig

	// waveEntityID 波次状态组件所在的实体ID
	waveEntityID ecs.EntityID
}

// NewWaveSystem 创建波次推进系统并初始化波次状态实体
func NewWaveSystem(em *ecs.EntityManager, gs *game.GameState, campaign *config.CampaignConfig, battleConfig *config.BattleConfig) *WaveSystem {
	s := &WaveSystem{
		entityManager: em,
		gameState:     gs,
		campaign:      campaign,
		battleConfig:  battleConfig,
	}
	s.waveEntityID = entities.CreateWaveState(em, campaign.TotalWaves())
	return s
}

// State 返回波次状态组件（供战斗外壳和测试读取）
func (s *WaveSystem) State() *components.WaveStateComponent {
	ws, _ := ecs.GetComponent[*components.WaveStateComponent](s.entityManager, s.waveEntityID)
	return ws
}

// Update 推进波次状态机
//
// 参数：
//
//	deltaTime - 自上一 tick 以来经过的时间（秒）
func (s *WaveSystem) Update(deltaTime float64) {
	ws := s.State()
	if ws == nil {
		return
	}

	switch ws.Phase {
	case components.WavePhaseIdle:
		// 战斗开始：首个 tick 直接进入第一波
		s.enterSpawning(ws, 0)
	case components.WavePhaseSpawning:
		s.updateSpawning(ws, deltaTime)
	case components.WavePhaseCleared, components.WavePhaseVictory:
		// Cleared 是瞬态阶段，正常流程不会停留在这里
	}
}

// enterSpawning 进入指定波次的生成阶段
// 重置计数器与计时器，并发出开波通知（波次编号 = 索引+1）
func (s *WaveSystem) enterSpawning(ws *components.WaveStateComponent, index int) {
	ws.Phase = components.WavePhaseSpawning
	ws.WaveIndex = index
	ws.SpawnedInWave = 0
	ws.SpawnTimer = 0

	entities.CreateStatusMessage(s.entityManager,
		fmt.Sprintf("Wave %d incoming!", index+1),
		s.battleConfig.MessageDuration)

	log.Printf("[WaveSystem] wave %d/%d started", index+1, ws.TotalWaves)
}

// updateSpawning 生成阶段的每 tick 逻辑
func (s *WaveSystem) updateSpawning(ws *components.WaveStateComponent, deltaTime float64) {
	wave, ok := s.campaign.Wave(ws.WaveIndex)
	if !ok {
		return
	}

	// 按间隔生成敌人，每 tick 至多生成一个
	ws.SpawnTimer += deltaTime
	if ws.SpawnedInWave < wave.Count && ws.SpawnTimer >= s.battleConfig.SpawnInterval {
		entities.CreateEnemyUnit(s.entityManager, wave, ws.WaveIndex, s.battleConfig.FieldWidth)
		ws.SpawnTimer = 0
		ws.SpawnedInWave++
		log.Printf("[WaveSystem] spawned enemy %d/%d of wave %d",
			ws.SpawnedInWave, wave.Count, ws.WaveIndex+1)
	}

	// 清波条件：本波已生成满且场上无存活敌人
	if ws.SpawnedInWave == wave.Count && len(LiveEnemyUnits(s.entityManager)) == 0 {
		s.clearWave(ws)
	}
}

// clearWave 结算清波：发放奖励，推进到下一波或判定胜利
func (s *WaveSystem) clearWave(ws *components.WaveStateComponent) {
	ws.Phase = components.WavePhaseCleared

	bounty := s.battleConfig.WaveClearBounty + s.battleConfig.WaveClearBountyStep*ws.WaveIndex
	s.gameState.AddCoins(bounty)
	s.gameState.WavesCleared++

	entities.CreateStatusMessage(s.entityManager,
		fmt.Sprintf("Wave %d cleared! +%d coins", ws.WaveIndex+1, bounty),
		s.battleConfig.MessageDuration)

	log.Printf("[WaveSystem] wave %d cleared, bounty %d coins", ws.WaveIndex+1, bounty)

	if ws.WaveIndex+1 < ws.TotalWaves {
		s.enterSpawning(ws, ws.WaveIndex+1)
		return
	}

	// 最后一波清空：战役胜利
	ws.Phase = components.WavePhaseVictory
	if s.gameState.MarkGameOver() {
		entities.CreateStatusMessage(s.entityManager,
			"Campaign won!", s.battleConfig.MessageDuration)
		log.Printf("[WaveSystem] campaign won after %d waves", ws.TotalWaves)
	}
}

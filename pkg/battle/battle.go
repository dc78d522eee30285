// Package battle 把各个系统组装为一场完整战斗，并提供外部驱动接口：
// 外部调用方按帧钟调用 Update(deltaSeconds)，通过 BuyUnit / UpgradeUnit
// 下达指令，通过只读访问器获取金币、城堡生命值与状态消息
package battle

import (
	"log"

	"github.com/google/uuid"
	"github.com/gonewx/castlewar/pkg/components"
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/ecs"
	"github.com/gonewx/castlewar/pkg/entities"
	"github.com/gonewx/castlewar/pkg/game"
	"github.com/gonewx/castlewar/pkg/systems"
	"github.com/gonewx/castlewar/pkg/types"
)

// Battle 一场战斗会话
// 独占持有实体集合与全局状态，所有修改都发生在单线程的 tick 内
type Battle struct {
	// id 会话标识，用于日志与战报
	id string

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	economy       *game.Economy

	unitConfig   *config.UnitConfig
	battleConfig *config.BattleConfig

	// 每 tick 按固定顺序执行的系统
	waveSystem     *systems.WaveSystem
	combatSystem   *systems.CombatSystem
	castleSystem   *systems.CastleSystem
	movementSystem *systems.MovementSystem
	messageSystem  *systems.MessageSystem

	paused  bool
	elapsed float64
}

// Report 战报摘要
type Report struct {
	BattleID     string  // 会话标识
	Victory      bool    // 是否战役胜利
	WavesCleared int     // 清空的波次数
	Kills        int     // 消灭的敌人数
	Coins        int     // 结束时的金币
	CoinsEarned  int     // 累计获得金币
	CoinsSpent   int     // 累计花费金币
	CastleHealth int     // 结束时的城堡生命值
	Elapsed      float64 // 模拟时长（秒）
}

// New 创建一场战斗
// 任一配置传 nil 时使用内置默认配置
func New(unitConfig *config.UnitConfig, campaign *config.CampaignConfig, battleConfig *config.BattleConfig) *Battle {
	if unitConfig == nil {
		unitConfig = config.DefaultUnitConfig()
	}
	if campaign == nil {
		campaign = config.DefaultCampaignConfig()
	}
	if battleConfig == nil {
		battleConfig = config.DefaultBattleConfig()
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(battleConfig)

	b := &Battle{
		id:            uuid.NewString(),
		entityManager: em,
		gameState:     gs,
		economy:       game.NewEconomy(gs, unitConfig),
		unitConfig:    unitConfig,
		battleConfig:  battleConfig,

		waveSystem:     systems.NewWaveSystem(em, gs, campaign, battleConfig),
		combatSystem:   systems.NewCombatSystem(em, gs, battleConfig),
		castleSystem:   systems.NewCastleSystem(em, gs, battleConfig),
		movementSystem: systems.NewMovementSystem(em),
		messageSystem:  systems.NewMessageSystem(em),
	}

	log.Printf("[Battle %s] created: %d waves, castle health %d, %d coins",
		b.id, campaign.TotalWaves(), battleConfig.MaxCastleHealth, battleConfig.InitialCoins)
	return b
}

// ID 返回会话标识
func (b *Battle) ID() string {
	return b.id
}

// Update 推进一个模拟 tick
//
// 固定执行顺序：
//  1. 结束或暂停时整个 tick 为空操作
//  2. 波次推进（生成敌人、清波结算）
//  3. 交战结算
//  4. 城堡抵达判定
//  5. 位置与冷却推进（移动连续，与交战结算互不干扰）
//  6. 消息时长推进，随后统一清除本 tick 标记删除的实体
func (b *Battle) Update(deltaSeconds float64) {
	if b.gameState.IsGameOver || b.paused || deltaSeconds <= 0 {
		return
	}

	b.elapsed += deltaSeconds

	b.waveSystem.Update(deltaSeconds)
	b.combatSystem.Update(deltaSeconds)
	b.castleSystem.Update(deltaSeconds)
	b.movementSystem.Update(deltaSeconds)
	b.messageSystem.Update(deltaSeconds)

	b.entityManager.RemoveMarkedEntities()
}

// BuyUnit 尝试生产一个指定兵种的玩家单位
// 金币不足时发出提示消息并返回 *game.InsufficientCoinsError，状态不变
func (b *Battle) BuyUnit(t types.UnitType) error {
	if b.gameState.IsGameOver {
		return game.ErrBattleOver
	}

	stats, err := b.economy.TryBuyUnit(t)
	if err != nil {
		entities.CreateStatusMessage(b.entityManager, err.Error(), b.battleConfig.MessageDuration)
		return err
	}

	entities.CreatePlayerUnit(b.entityManager, t, stats, b.battleConfig.PlayerSpawnX)
	log.Printf("[Battle %s] bought %s (level %d), %d coins left",
		b.id, t, b.gameState.UpgradeLevel(t), b.gameState.Coins)
	return nil
}

// UpgradeUnit 尝试升级指定兵种，返回升级后的等级
// 金币不足时发出提示消息并返回 *game.InsufficientCoinsError，状态不变
func (b *Battle) UpgradeUnit(t types.UnitType) (int, error) {
	if b.gameState.IsGameOver {
		return b.gameState.UpgradeLevel(t), game.ErrBattleOver
	}

	level, err := b.economy.TryUpgrade(t)
	if err != nil {
		entities.CreateStatusMessage(b.entityManager, err.Error(), b.battleConfig.MessageDuration)
		return level, err
	}

	log.Printf("[Battle %s] upgraded %s to level %d, %d coins left",
		b.id, t, level, b.gameState.Coins)
	return level, nil
}

// SetPaused 暂停/恢复战斗，暂停期间 tick 为空操作
func (b *Battle) SetPaused(paused bool) {
	b.paused = paused
}

// IsPaused 返回是否处于暂停状态
func (b *Battle) IsPaused() bool {
	return b.paused
}

// Coins 返回当前金币
func (b *Battle) Coins() int {
	return b.gameState.Coins
}

// CastleHealth 返回城堡当前生命值
func (b *Battle) CastleHealth() int {
	return b.gameState.CastleHealth
}

// MaxCastleHealth 返回城堡最大生命值
func (b *Battle) MaxCastleHealth() int {
	return b.gameState.MaxCastleHealth
}

// IsGameOver 返回战斗是否已结束
func (b *Battle) IsGameOver() bool {
	return b.gameState.IsGameOver
}

// Victory 返回战役是否胜利（全部波次清空）
func (b *Battle) Victory() bool {
	ws := b.waveSystem.State()
	return ws != nil && ws.Phase == components.WavePhaseVictory
}

// CurrentWave 返回当前波次编号（1-based，供显示）
func (b *Battle) CurrentWave() int {
	ws := b.waveSystem.State()
	if ws == nil {
		return 0
	}
	return ws.WaveIndex + 1
}

// UpgradeLevel 返回指定兵种的当前升级等级
func (b *Battle) UpgradeLevel(t types.UnitType) int {
	return b.gameState.UpgradeLevel(t)
}

// Messages 返回当前可见的状态消息（创建顺序）
func (b *Battle) Messages() []string {
	return systems.ActiveMessages(b.entityManager)
}

// PlayerUnitCount 返回场上存活的玩家单位数
func (b *Battle) PlayerUnitCount() int {
	return len(systems.LivePlayerUnits(b.entityManager))
}

// EnemyUnitCount 返回场上存活的敌方单位数
func (b *Battle) EnemyUnitCount() int {
	return len(systems.LiveEnemyUnits(b.entityManager))
}

// Elapsed 返回累计模拟时长（秒）
func (b *Battle) Elapsed() float64 {
	return b.elapsed
}

// Report 汇总当前战报
func (b *Battle) Report() Report {
	return Report{
		BattleID:     b.id,
		Victory:      b.Victory(),
		WavesCleared: b.gameState.WavesCleared,
		Kills:        b.gameState.Kills,
		Coins:        b.gameState.Coins,
		CoinsEarned:  b.gameState.CoinsEarned,
		CoinsSpent:   b.gameState.CoinsSpent,
		CastleHealth: b.gameState.CastleHealth,
		Elapsed:      b.elapsed,
	}
}

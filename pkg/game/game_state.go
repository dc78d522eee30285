package game

import (
	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/types"
)

// GameState 存储一场战斗的全局状态
// 金币、城堡生命值、升级等级与结束标志都在这里
// 每场战斗持有独立实例，状态只在 tick 内被拥有它的战斗单线程修改
type GameState struct {
	// Coins 当前金币，恒 >= 0
	Coins int

	// CastleHealth 城堡当前生命值，裁剪在 [0, MaxCastleHealth]
	CastleHealth int

	// MaxCastleHealth 城堡最大生命值
	MaxCastleHealth int

	// IsGameOver 战斗是否已结束（城堡陷落或战役胜利）
	// 只会从 false 变为 true 一次，之后所有 tick 都是空操作
	IsGameOver bool

	// UpgradeLevels 按兵种静态索引的升级等级表
	UpgradeLevels [types.UnitTypeCount]int

	// 战报统计
	Kills        int // 消灭的敌人总数
	CoinsEarned  int // 累计获得金币（含击杀与清波奖励）
	CoinsSpent   int // 累计花费金币
	WavesCleared int // 已清空的波次数
}

// NewGameState 根据战场配置创建初始状态
func NewGameState(cfg *config.BattleConfig) *GameState {
	return &GameState{
		Coins:           cfg.InitialCoins,
		CastleHealth:    cfg.MaxCastleHealth,
		MaxCastleHealth: cfg.MaxCastleHealth,
	}
}

// AddCoins 增加金币并计入累计收入
func (gs *GameState) AddCoins(amount int) {
	if amount <= 0 {
		return
	}
	gs.Coins += amount
	gs.CoinsEarned += amount
}

// SpendCoins 扣除金币，金币不足时返回 false 且不扣除
func (gs *GameState) SpendCoins(amount int) bool {
	if gs.Coins < amount {
		return false
	}
	gs.Coins -= amount
	gs.CoinsSpent += amount
	return true
}

// DamageCastle 对城堡造成伤害，生命值裁剪在 0
func (gs *GameState) DamageCastle(amount int) {
	if amount <= 0 {
		return
	}
	gs.CastleHealth -= amount
	if gs.CastleHealth < 0 {
		gs.CastleHealth = 0
	}
}

// CastleFallen 判断城堡是否已陷落
func (gs *GameState) CastleFallen() bool {
	return gs.CastleHealth <= 0
}

// MarkGameOver 置结束标志，仅首次调用生效
// 返回是否发生了 false -> true 的转换，调用方据此保证
// 结束通知只发出一次
func (gs *GameState) MarkGameOver() bool {
	if gs.IsGameOver {
		return false
	}
	gs.IsGameOver = true
	return true
}

// UpgradeLevel 返回指定兵种的当前升级等级
func (gs *GameState) UpgradeLevel(t types.UnitType) int {
	if !t.Valid() {
		return 0
	}
	return gs.UpgradeLevels[t]
}

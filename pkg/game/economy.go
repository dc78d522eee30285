package game

import (
	"errors"
	"fmt"

	"github.com/gonewx/castlewar/pkg/config"
	"github.com/gonewx/castlewar/pkg/types"
)

// ErrBattleOver 战斗结束后所有指令都被拒绝
var ErrBattleOver = errors.New("battle is already over")

// InsufficientCoinsError 金币不足错误
// 这是经济系统唯一的失败类型：动作被拒绝，状态不发生任何变化，
// 错误携带所需金额供展示层提示玩家
type InsufficientCoinsError struct {
	Action string // 被拒绝的动作描述，如 "buy sword"
	Need   int    // 所需金币
	Have   int    // 当前金币
}

// Error 实现 error 接口
func (e *InsufficientCoinsError) Error() string {
	return fmt.Sprintf("not enough coins to %s: need %d, have %d", e.Action, e.Need, e.Have)
}

// Economy 经济操作：生产单位与升级兵种
// 持有 GameState 与兵种配置表，所有花费与成长公式都来自配置
type Economy struct {
	gameState  *GameState
	unitConfig *config.UnitConfig
}

// NewEconomy 创建经济操作对象
func NewEconomy(gs *GameState, unitConfig *config.UnitConfig) *Economy {
	return &Economy{
		gameState:  gs,
		unitConfig: unitConfig,
	}
}

// TryBuyUnit 尝试生产一个指定兵种的单位
// 成功时扣除金币并返回按当前升级等级生效的属性；
// 金币不足时返回 *InsufficientCoinsError 且状态不变
func (e *Economy) TryBuyUnit(t types.UnitType) (config.UnitStats, error) {
	if !t.Valid() {
		return config.UnitStats{}, fmt.Errorf("invalid unit type %d", int(t))
	}

	cost := e.unitConfig.BuyCost(t)
	if e.gameState.Coins < cost {
		return config.UnitStats{}, &InsufficientCoinsError{
			Action: fmt.Sprintf("buy %s", t),
			Need:   cost,
			Have:   e.gameState.Coins,
		}
	}

	e.gameState.SpendCoins(cost)
	return e.unitConfig.StatsFor(t, e.gameState.UpgradeLevel(t)), nil
}

// TryUpgrade 尝试将指定兵种升一级
// 花费 = 升级基础花费 * (当前等级+1)；
// 成功时扣除金币、等级+1 并返回新等级；
// 金币不足时返回 *InsufficientCoinsError 且等级和金币都不变
func (e *Economy) TryUpgrade(t types.UnitType) (int, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("invalid unit type %d", int(t))
	}

	level := e.gameState.UpgradeLevel(t)
	cost := e.unitConfig.UpgradeCostFor(t, level)
	if e.gameState.Coins < cost {
		return level, &InsufficientCoinsError{
			Action: fmt.Sprintf("upgrade %s", t),
			Need:   cost,
			Have:   e.gameState.Coins,
		}
	}

	e.gameState.SpendCoins(cost)
	e.gameState.UpgradeLevels[t]++
	return e.gameState.UpgradeLevels[t], nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BattleConfig 战场常量配置
// 城堡位置、波次节奏、经济参数都在这里，数值是配置而非写死的规则
type BattleConfig struct {
	// CastleX 城堡横坐标（战场左端）
	CastleX float64 `yaml:"castleX"`

	// CastleRadius 城堡判定半径：敌人 X < CastleX + CastleRadius 即视为抵达
	CastleRadius float64 `yaml:"castleRadius"`

	// MaxCastleHealth 城堡最大生命值
	MaxCastleHealth int `yaml:"maxCastleHealth"`

	// FieldWidth 战场宽度，敌人在右端 x = FieldWidth 处进场
	FieldWidth float64 `yaml:"fieldWidth"`

	// PlayerSpawnX 玩家单位出生点横坐标（城堡前方）
	PlayerSpawnX float64 `yaml:"playerSpawnX"`

	// SpawnInterval 波次内敌人生成间隔（秒）
	SpawnInterval float64 `yaml:"spawnInterval"`

	// InitialCoins 开局金币
	InitialCoins int `yaml:"initialCoins"`

	// KillReward 每消灭一个敌人奖励的金币
	KillReward int `yaml:"killReward"`

	// WaveClearBounty 清空一波的基础奖励金币
	WaveClearBounty int `yaml:"waveClearBounty"`

	// WaveClearBountyStep 清空奖励随波次索引的增量
	// 第 N 波（0-based）奖励 = WaveClearBounty + WaveClearBountyStep * N
	WaveClearBountyStep int `yaml:"waveClearBountyStep"`

	// MessageDuration 状态消息显示时长（秒）
	MessageDuration float64 `yaml:"messageDuration"`
}

// DefaultBattleConfig 返回内置的默认战场配置
func DefaultBattleConfig() *BattleConfig {
	return &BattleConfig{
		CastleX:             0,
		CastleRadius:        20,
		MaxCastleHealth:     100,
		FieldWidth:          800,
		PlayerSpawnX:        60,
		SpawnInterval:       1.2,
		InitialCoins:        50,
		KillReward:          5,
		WaveClearBounty:     20,
		WaveClearBountyStep: 10,
		MessageDuration:     3.0,
	}
}

// LoadBattleConfig 从 YAML 文件加载战场配置
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*BattleConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadBattleConfig(filepath string) (*BattleConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read battle config file %s: %w", filepath, err)
	}

	// 以默认配置为基底解析，未填写的字段保持默认值
	config := DefaultBattleConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse battle config YAML from %s: %w", filepath, err)
	}

	if err := validateBattleConfig(config); err != nil {
		return nil, fmt.Errorf("invalid battle config in %s: %w", filepath, err)
	}

	return config, nil
}

// validateBattleConfig 验证战场配置的合法性
func validateBattleConfig(config *BattleConfig) error {
	if config.CastleRadius <= 0 {
		return fmt.Errorf("castleRadius must be positive, got %f", config.CastleRadius)
	}
	if config.MaxCastleHealth <= 0 {
		return fmt.Errorf("maxCastleHealth must be positive, got %d", config.MaxCastleHealth)
	}
	if config.FieldWidth <= config.CastleX+config.CastleRadius {
		return fmt.Errorf("fieldWidth %f must exceed the castle boundary %f",
			config.FieldWidth, config.CastleX+config.CastleRadius)
	}
	if config.PlayerSpawnX < config.CastleX {
		return fmt.Errorf("playerSpawnX %f cannot be behind the castle at %f",
			config.PlayerSpawnX, config.CastleX)
	}
	if config.SpawnInterval <= 0 {
		return fmt.Errorf("spawnInterval must be positive, got %f", config.SpawnInterval)
	}
	if config.InitialCoins < 0 {
		return fmt.Errorf("initialCoins cannot be negative, got %d", config.InitialCoins)
	}
	if config.KillReward < 0 {
		return fmt.Errorf("killReward cannot be negative, got %d", config.KillReward)
	}
	if config.WaveClearBounty < 0 || config.WaveClearBountyStep < 0 {
		return fmt.Errorf("wave clear bounty values cannot be negative")
	}
	if config.MessageDuration <= 0 {
		return fmt.Errorf("messageDuration must be positive, got %f", config.MessageDuration)
	}
	return nil
}

// CastleBoundary 返回城堡判定边界：敌人越过此线即视为抵达城堡
func (c *BattleConfig) CastleBoundary() float64 {
	return c.CastleX + c.CastleRadius
}

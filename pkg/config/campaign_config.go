package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 敌方单位属性默认值
// 波次配置未填写攻击距离/冷却时使用（敌人默认是近战）
const (
	// DefaultEnemyAttackRange 敌方单位默认攻击距离
	DefaultEnemyAttackRange = 15.0

	// DefaultEnemyAttackCooldown 敌方单位默认攻击冷却（秒）
	DefaultEnemyAttackCooldown = 1.0
)

// WaveConfig 单个敌方波次配置
// 波次序列定义后不可变，按顺序推进
type WaveConfig struct {
	Count          int     `yaml:"count"`          // 本波敌人数量
	BaseHealth     float64 `yaml:"baseHealth"`     // 敌人生命值
	BaseSpeed      float64 `yaml:"baseSpeed"`      // 敌人移动速度（单位/秒）
	BaseDamage     float64 `yaml:"baseDamage"`     // 敌人单次攻击伤害
	AttackRange    float64 `yaml:"attackRange"`    // 可选：敌人攻击距离，默认 15
	AttackCooldown float64 `yaml:"attackCooldown"` // 可选：敌人攻击冷却，默认 1.0
}

// CampaignConfig 战役配置：按顺序推进的波次列表
type CampaignConfig struct {
	Name  string       `yaml:"name"`  // 战役名称（可选）
	Waves []WaveConfig `yaml:"waves"` // 波次列表
}

// DefaultCampaignConfig 返回内置的三波默认战役
// 波次强度递增：数量、血量、速度、伤害逐波提升
func DefaultCampaignConfig() *CampaignConfig {
	return &CampaignConfig{
		Name: "default",
		Waves: []WaveConfig{
			{Count: 3, BaseHealth: 40, BaseSpeed: 25, BaseDamage: 5},
			{Count: 5, BaseHealth: 60, BaseSpeed: 28, BaseDamage: 8},
			{Count: 7, BaseHealth: 85, BaseSpeed: 32, BaseDamage: 12},
		},
	}
}

// LoadCampaignConfig 从 YAML 文件加载战役配置
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*CampaignConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadCampaignConfig(filepath string) (*CampaignConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign config file %s: %w", filepath, err)
	}

	var config CampaignConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse campaign config YAML from %s: %w", filepath, err)
	}

	applyCampaignDefaults(&config)

	if err := validateCampaignConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid campaign config in %s: %w", filepath, err)
	}

	return &config, nil
}

// applyCampaignDefaults 为波次中缺失的可选字段设置默认值
func applyCampaignDefaults(config *CampaignConfig) {
	for i := range config.Waves {
		if config.Waves[i].AttackRange == 0 {
			config.Waves[i].AttackRange = DefaultEnemyAttackRange
		}
		if config.Waves[i].AttackCooldown == 0 {
			config.Waves[i].AttackCooldown = DefaultEnemyAttackCooldown
		}
	}
}

// validateCampaignConfig 验证战役配置的完整性和合法性
func validateCampaignConfig(config *CampaignConfig) error {
	if len(config.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}

	for i, wave := range config.Waves {
		if wave.Count <= 0 {
			return fmt.Errorf("wave %d: count must be positive, got %d", i+1, wave.Count)
		}
		if wave.BaseHealth <= 0 {
			return fmt.Errorf("wave %d: baseHealth must be positive, got %f", i+1, wave.BaseHealth)
		}
		if wave.BaseSpeed <= 0 {
			return fmt.Errorf("wave %d: baseSpeed must be positive, got %f", i+1, wave.BaseSpeed)
		}
		if wave.BaseDamage <= 0 {
			return fmt.Errorf("wave %d: baseDamage must be positive, got %f", i+1, wave.BaseDamage)
		}
		if wave.AttackRange <= 0 {
			return fmt.Errorf("wave %d: attackRange must be positive, got %f", i+1, wave.AttackRange)
		}
		if wave.AttackCooldown <= 0 {
			return fmt.Errorf("wave %d: attackCooldown must be positive, got %f", i+1, wave.AttackCooldown)
		}
	}

	return nil
}

// Wave 返回指定索引的波次配置
func (c *CampaignConfig) Wave(index int) (WaveConfig, bool) {
	if index < 0 || index >= len(c.Waves) {
		return WaveConfig{}, false
	}
	return c.Waves[index], true
}

// TotalWaves 返回战役总波次数
func (c *CampaignConfig) TotalWaves() int {
	return len(c.Waves)
}

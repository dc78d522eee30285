package config

import (
	"fmt"
	"os"

	"github.com/gonewx/castlewar/pkg/types"
	"gopkg.in/yaml.v3"
)

// UnitStats 一组单位属性值
// 既用作兵种基础属性，也用作每级成长增量
type UnitStats struct {
	Health         float64 `yaml:"health"`         // 生命值
	Speed          float64 `yaml:"speed"`          // 移动速度（单位/秒）
	Damage         float64 `yaml:"damage"`         // 单次攻击伤害
	AttackRange    float64 `yaml:"attackRange"`    // 攻击距离
	AttackCooldown float64 `yaml:"attackCooldown"` // 攻击冷却（秒）
}

// UnitSpec 单个兵种的完整配置
type UnitSpec struct {
	Cost        int       `yaml:"cost"`        // 生产花费（金币）
	UpgradeCost int       `yaml:"upgradeCost"` // 升级基础花费，实际花费 = UpgradeCost * (当前等级+1)
	Base        UnitStats `yaml:"base"`        // 0级基础属性
	Growth      UnitStats `yaml:"growth"`      // 每升一级的属性增量（线性成长）
}

// UnitConfig 兵种属性配置表
// YAML 中以兵种名字符串为键，加载时校验所有键都是合法兵种名
// 且三个兵种齐全，之后的查询全部走 types.UnitType 静态枚举
type UnitConfig struct {
	Units map[string]UnitSpec `yaml:"units"`
}

// DefaultUnitConfig 返回内置的默认兵种配置表
// 数值与原版战役平衡一致：剑士近战抗线、弓手远程输出、法师高伤低速
func DefaultUnitConfig() *UnitConfig {
	return &UnitConfig{
		Units: map[string]UnitSpec{
			"sword": {
				Cost:        10,
				UpgradeCost: 10,
				Base:        UnitStats{Health: 60, Speed: 40, Damage: 8, AttackRange: 15, AttackCooldown: 1.0},
				Growth:      UnitStats{Health: 15, Speed: 2, Damage: 2, AttackRange: 0, AttackCooldown: 0},
			},
			"archer": {
				Cost:        15,
				UpgradeCost: 15,
				Base:        UnitStats{Health: 40, Speed: 35, Damage: 6, AttackRange: 120, AttackCooldown: 1.2},
				Growth:      UnitStats{Health: 8, Speed: 2, Damage: 2, AttackRange: 10, AttackCooldown: 0},
			},
			"mage": {
				Cost:        20,
				UpgradeCost: 20,
				Base:        UnitStats{Health: 30, Speed: 30, Damage: 14, AttackRange: 90, AttackCooldown: 1.8},
				Growth:      UnitStats{Health: 6, Speed: 1, Damage: 4, AttackRange: 5, AttackCooldown: 0},
			},
		},
	}
}

// LoadUnitConfig 从 YAML 文件加载兵种配置
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*UnitConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadUnitConfig(filepath string) (*UnitConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit config file %s: %w", filepath, err)
	}

	var config UnitConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse unit config YAML from %s: %w", filepath, err)
	}

	if err := validateUnitConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid unit config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateUnitConfig 验证兵种配置的完整性和合法性
func validateUnitConfig(config *UnitConfig) error {
	// 不允许出现未知兵种名
	for name := range config.Units {
		if _, ok := types.UnitTypeFromString(name); !ok {
			return fmt.Errorf("unknown unit type %q", name)
		}
	}

	// 三个兵种必须齐全
	for _, ut := range types.AllUnitTypes() {
		spec, ok := config.Units[ut.String()]
		if !ok {
			return fmt.Errorf("unit type %q is missing", ut.String())
		}

		if spec.Cost <= 0 {
			return fmt.Errorf("unit %s: cost must be positive, got %d", ut, spec.Cost)
		}
		if spec.UpgradeCost <= 0 {
			return fmt.Errorf("unit %s: upgradeCost must be positive, got %d", ut, spec.UpgradeCost)
		}
		if spec.Base.Health <= 0 {
			return fmt.Errorf("unit %s: base health must be positive, got %f", ut, spec.Base.Health)
		}
		if spec.Base.Speed <= 0 {
			return fmt.Errorf("unit %s: base speed must be positive, got %f", ut, spec.Base.Speed)
		}
		if spec.Base.Damage <= 0 {
			return fmt.Errorf("unit %s: base damage must be positive, got %f", ut, spec.Base.Damage)
		}
		if spec.Base.AttackRange <= 0 {
			return fmt.Errorf("unit %s: base attackRange must be positive, got %f", ut, spec.Base.AttackRange)
		}
		if spec.Base.AttackCooldown <= 0 {
			return fmt.Errorf("unit %s: base attackCooldown must be positive, got %f", ut, spec.Base.AttackCooldown)
		}
		if spec.Growth.Health < 0 || spec.Growth.Speed < 0 || spec.Growth.Damage < 0 ||
			spec.Growth.AttackRange < 0 || spec.Growth.AttackCooldown < 0 {
			return fmt.Errorf("unit %s: growth values cannot be negative", ut)
		}
	}

	return nil
}

// Spec 返回指定兵种的完整配置
func (c *UnitConfig) Spec(t types.UnitType) (UnitSpec, bool) {
	spec, ok := c.Units[t.String()]
	return spec, ok
}

// BuyCost 返回指定兵种的生产花费
// 兵种不存在时返回 0（调用方应保证配置已通过校验）
func (c *UnitConfig) BuyCost(t types.UnitType) int {
	if spec, ok := c.Units[t.String()]; ok {
		return spec.Cost
	}
	return 0
}

// UpgradeCostFor 返回指定兵种从 level 升到 level+1 的花费
// 花费随等级线性增长：UpgradeCost * (level + 1)
func (c *UnitConfig) UpgradeCostFor(t types.UnitType, level int) int {
	if spec, ok := c.Units[t.String()]; ok {
		return spec.UpgradeCost * (level + 1)
	}
	return 0
}

// StatsFor 返回指定兵种在指定升级等级下的生效属性
// 每项属性 = 基础值 + 成长值 * 等级
func (c *UnitConfig) StatsFor(t types.UnitType, level int) UnitStats {
	spec, ok := c.Units[t.String()]
	if !ok {
		return UnitStats{}
	}

	lv := float64(level)
	return UnitStats{
		Health:         spec.Base.Health + spec.Growth.Health*lv,
		Speed:          spec.Base.Speed + spec.Growth.Speed*lv,
		Damage:         spec.Base.Damage + spec.Growth.Damage*lv,
		AttackRange:    spec.Base.AttackRange + spec.Growth.AttackRange*lv,
		AttackCooldown: spec.Base.AttackCooldown + spec.Growth.AttackCooldown*lv,
	}
}

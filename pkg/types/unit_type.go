// Package types 定义共享的基础类型
package types

// UnitType 定义玩家可生产的兵种类型
// 作为封闭枚举使用：所有按兵种索引的表（升级等级、配置表）
// 都以 UnitType 作为静态下标，避免字符串键查找
type UnitType int

const (
	// UnitSword 剑士：近战单位，血厚、攻击距离短
	UnitSword UnitType = iota
	// UnitArcher 弓手：远程单位，攻击距离长、血量中等
	UnitArcher
	// UnitMage 法师：施法单位，伤害高、攻速慢
	UnitMage

	// UnitTypeCount 兵种数量，用于按类型静态索引数组
	UnitTypeCount
)

// unitTypeStringMap 兵种类型到配置字符串的映射
var unitTypeStringMap = map[UnitType]string{
	UnitSword:  "sword",
	UnitArcher: "archer",
	UnitMage:   "mage",
}

// stringToUnitTypeMap 配置字符串到兵种类型的反向映射
var stringToUnitTypeMap map[string]UnitType

func init() {
	stringToUnitTypeMap = make(map[string]UnitType)
	for ut, s := range unitTypeStringMap {
		stringToUnitTypeMap[s] = ut
	}
}

// String 返回兵种类型的配置字符串表示（用于配置文件匹配和日志输出）
func (t UnitType) String() string {
	if s, ok := unitTypeStringMap[t]; ok {
		return s
	}
	return "unknown"
}

// UnitTypeFromString 将配置字符串转换为 UnitType
// 第二个返回值表示字符串是否为合法兵种名
func UnitTypeFromString(s string) (UnitType, bool) {
	ut, ok := stringToUnitTypeMap[s]
	return ut, ok
}

// AllUnitTypes 按枚举顺序返回所有兵种类型
func AllUnitTypes() []UnitType {
	return []UnitType{UnitSword, UnitArcher, UnitMage}
}

// Valid 判断类型值是否在合法枚举范围内
func (t UnitType) Valid() bool {
	return t >= 0 && t < UnitTypeCount
}

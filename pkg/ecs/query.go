package ecs

import (
	"reflect"
	"sort"
)

// typeOf 返回类型参数 T 的 reflect.Type
// 组件以指针形式存储，因此 T 通常是 *SomeComponent
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加组件的泛型包装
func AddComponent(em *EntityManager, id EntityID, component interface{}) {
	em.AddComponentRaw(id, component)
}

// GetComponent 获取实体的特定类型组件（泛型版本）
// 用法: comp, ok := ecs.GetComponent[*components.HealthComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, found := em.GetComponentRaw(id, typeOf[T]())
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// GetEntitiesWith1 查询拥有指定单一组件类型的所有实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T]())
}

// GetEntitiesWith2 查询同时拥有两种组件类型的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有三种组件类型的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

// SortEntityIDs 将实体ID列表按升序排序（即创建顺序）
// GetEntitiesWith 基于 map 遍历，顺序不稳定；
// 战斗结算等需要确定性枚举顺序的场景先排序再遍历
func SortEntityIDs(ids []EntityID) []EntityID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

package ecs

import "reflect"

// EntityID 是实体的唯一标识符
// 0 保留为无效ID
type EntityID uint64

// EntityManager 按组件类型存储实体数据
//
// 时间轴画面的实体在启动时一次性创建，生命周期与进程相同，
// 因此只支持创建和覆盖写入，不支持销毁。
type EntityManager struct {
	nextID EntityID
	// 创建顺序，查询结果按此顺序返回（即绘制顺序）
	order []EntityID
	// ComponentType -> EntityID -> Component实例
	stores map[reflect.Type]map[EntityID]any
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1,
		stores: make(map[reflect.Type]map[EntityID]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.order = append(em.order, id)
	return id
}

// exists 判断ID是否由本管理器创建
func (em *EntityManager) exists(id EntityID) bool {
	return id > 0 && id < em.nextID
}

// AddComponent 为实体写入组件，同类型组件被覆盖
// 未创建的实体ID被忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if !em.exists(id) {
		return
	}
	componentType := reflect.TypeOf(component)
	store, ok := em.stores[componentType]
	if !ok {
		store = make(map[EntityID]any)
		em.stores[componentType] = store
	}
	store[id] = component
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.stores[componentType][id]
	return comp, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.stores[componentType][id]
	return ok
}

// EntityCount 返回已创建的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// GetEntitiesWith 按创建顺序返回同时拥有全部指定组件的实体
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	stores := make([]map[EntityID]any, 0, len(componentTypes))
	for _, ct := range componentTypes {
		store, ok := em.stores[ct]
		if !ok {
			return nil
		}
		stores = append(stores, store)
	}

	var result []EntityID
	for _, id := range em.order {
		if hasAll(stores, id) {
			result = append(result, id)
		}
	}
	return result
}

func hasAll(stores []map[EntityID]any, id EntityID) bool {
	for _, store := range stores {
		if _, ok := store[id]; !ok {
			return false
		}
	}
	return true
}

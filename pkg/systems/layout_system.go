package systems

import (
	"github.com/decker502/timelinecursor/pkg/components"
	"github.com/decker502/timelinecursor/pkg/config"
	"github.com/decker502/timelinecursor/pkg/ecs"
)

// LayoutSystem 把布局结果写入各实体的组件
//
// 每次 resize 调用一次 Apply；几何整体覆盖，不保留上一次尺寸的任何数据。
type LayoutSystem struct {
	entityManager *ecs.EntityManager
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(em *ecs.EntityManager) *LayoutSystem {
	return &LayoutSystem{
		entityManager: em,
	}
}

// Apply 按角色写入线段端点和文本锚点
func (s *LayoutSystem) Apply(geometry config.LayoutGeometry) {
	for _, id := range ecs.GetEntitiesWith1[*components.RoleComponent](s.entityManager) {
		role, ok := ecs.GetComponent[*components.RoleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		switch role.Role {
		case components.RoleTopLine:
			s.setLine(id, geometry.TopLine)
		case components.RoleBottomLine:
			s.setLine(id, geometry.BottomLine)
		case components.RoleCursor:
			s.setLine(id, geometry.Cursor)
		case components.RoleStatusText:
			if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
				txt.X = geometry.TextAnchor.X
				txt.Y = geometry.TextAnchor.Y
			}
		}
	}
}

// setLine 写入线段端点
func (s *LayoutSystem) setLine(id ecs.EntityID, seg config.LineSegment) {
	line, ok := ecs.GetComponent[*components.LineComponent](s.entityManager, id)
	if !ok {
		return
	}
	line.X1, line.Y1 = seg.X1, seg.Y1
	line.X2, line.Y2 = seg.X2, seg.Y2
}

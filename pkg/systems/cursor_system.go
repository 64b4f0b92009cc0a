package systems

import (
	"github.com/decker502/timelinecursor/pkg/components"
	"github.com/decker502/timelinecursor/pkg/ecs"
	"github.com/decker502/timelinecursor/pkg/game"
)

// CursorSystem 把每帧结果写入游标偏移和状态文本
type CursorSystem struct {
	entityManager *ecs.EntityManager
}

// NewCursorSystem 创建游标系统
func NewCursorSystem(em *ecs.EntityManager) *CursorSystem {
	return &CursorSystem{
		entityManager: em,
	}
}

// Apply 移动游标并替换状态文本
func (s *CursorSystem) Apply(result game.FrameResult) {
	for _, id := range ecs.GetEntitiesWith1[*components.RoleComponent](s.entityManager) {
		role, ok := ecs.GetComponent[*components.RoleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		switch role.Role {
		case components.RoleCursor:
			if offset, ok := ecs.GetComponent[*components.OffsetComponent](s.entityManager, id); ok {
				offset.X = result.CursorX
			}
		case components.RoleStatusText:
			if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
				txt.Content = result.Text
			}
		}
	}
}

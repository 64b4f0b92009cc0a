package entities

import (
	"image/color"
	"testing"

	"github.com/decker502/timelinecursor/pkg/components"
	"github.com/decker502/timelinecursor/pkg/config"
	"github.com/decker502/timelinecursor/pkg/ecs"
)

// TestNewTimelineEntities 测试创建全部实体及其组件
func TestNewTimelineEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	ents := NewTimelineEntities(em, config.DefaultStyleConfig())

	if em.EntityCount() != 4 {
		t.Fatalf("EntityCount() = %d, want 4", em.EntityCount())
	}

	roles := map[ecs.EntityID]components.Role{
		ents.TopLine:    components.RoleTopLine,
		ents.BottomLine: components.RoleBottomLine,
		ents.Cursor:     components.RoleCursor,
		ents.StatusText: components.RoleStatusText,
	}
	for id, want := range roles {
		role, ok := ecs.GetComponent[*components.RoleComponent](em, id)
		if !ok {
			t.Errorf("entity %d missing RoleComponent", id)
			continue
		}
		if role.Role != want {
			t.Errorf("entity %d role = %v, want %v", id, role.Role, want)
		}
	}

	// 绘制顺序：游标最后创建，叠加在其他元素之上
	if ents.Cursor < ents.StatusText || ents.StatusText < ents.BottomLine {
		t.Errorf("unexpected creation order: %+v", ents)
	}
}

// TestNewCursorEntity 测试游标实体的线帽、混合方式和偏移组件
func TestNewCursorEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	clr := color.RGBA{R: 255, A: 255}
	id := NewCursorEntity(em, clr)

	line, ok := ecs.GetComponent[*components.LineComponent](em, id)
	if !ok {
		t.Fatal("cursor missing LineComponent")
	}
	if !line.RoundCap || !line.Additive {
		t.Errorf("cursor line = %+v, want round cap + additive", line)
	}
	if line.StrokeWidth != config.StrokeWidth {
		t.Errorf("stroke width = %.1f, want %.1f", line.StrokeWidth, config.StrokeWidth)
	}
	if line.Color != clr {
		t.Errorf("color = %v, want %v", line.Color, clr)
	}
	if !ecs.HasComponent[*components.OffsetComponent](em, id) {
		t.Error("cursor missing OffsetComponent")
	}
}

// TestNewReferenceLineEntity 测试参考线实体没有偏移组件
func TestNewReferenceLineEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewReferenceLineEntity(em, components.RoleBottomLine, color.White)

	line, ok := ecs.GetComponent[*components.LineComponent](em, id)
	if !ok || line.RoundCap || line.Additive {
		t.Errorf("reference line = %+v, %v", line, ok)
	}
	if ecs.HasComponent[*components.OffsetComponent](em, id) {
		t.Error("reference line should not have OffsetComponent")
	}
}

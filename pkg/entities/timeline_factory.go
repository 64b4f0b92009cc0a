package entities

import (
	"image/color"
	"log"

	"github.com/decker502/timelinecursor/pkg/components"
	"github.com/decker502/timelinecursor/pkg/config"
	"github.com/decker502/timelinecursor/pkg/ecs"
)

// TimelineEntities 时间轴画面的全部实体ID
type TimelineEntities struct {
	TopLine    ecs.EntityID
	BottomLine ecs.EntityID
	Cursor     ecs.EntityID
	StatusText ecs.EntityID
}

// NewReferenceLineEntity 创建参考线实体
//
// 参数：
//   - em: 实体管理器
//   - role: components.RoleTopLine 或 components.RoleBottomLine
//   - clr: 线条颜色
//
// 端点为零值，由 LayoutSystem 在首次布局时写入
func NewReferenceLineEntity(em *ecs.EntityManager, role components.Role, clr color.Color) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RoleComponent{Role: role})
	ecs.AddComponent(em, id, &components.LineComponent{
		StrokeWidth: config.StrokeWidth,
		Color:       clr,
	})
	return id
}

// NewCursorEntity 创建游标实体
// 游标使用圆形线帽并以加法混合叠加，水平位置通过 OffsetComponent 每帧更新
func NewCursorEntity(em *ecs.EntityManager, clr color.Color) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RoleComponent{Role: components.RoleCursor})
	ecs.AddComponent(em, id, &components.LineComponent{
		StrokeWidth: config.StrokeWidth,
		Color:       clr,
		RoundCap:    true,
		Additive:    true,
	})
	ecs.AddComponent(em, id, &components.OffsetComponent{})
	return id
}

// NewStatusTextEntity 创建状态文本实体
func NewStatusTextEntity(em *ecs.EntityManager, clr color.Color) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RoleComponent{Role: components.RoleStatusText})
	ecs.AddComponent(em, id, &components.TextComponent{Color: clr})
	return id
}

// NewTimelineEntities 按样式创建时间轴画面的全部实体
//
// 创建顺序即绘制顺序：参考线 → 状态文本 → 游标
func NewTimelineEntities(em *ecs.EntityManager, style *config.StyleConfig) TimelineEntities {
	lineColor := config.MustColor(style.Colors.ReferenceLine)

	ents := TimelineEntities{
		TopLine:    NewReferenceLineEntity(em, components.RoleTopLine, lineColor),
		BottomLine: NewReferenceLineEntity(em, components.RoleBottomLine, lineColor),
		StatusText: NewStatusTextEntity(em, config.MustColor(style.Colors.Text)),
		Cursor:     NewCursorEntity(em, config.MustColor(style.Colors.Cursor)),
	}

	log.Printf("[Timeline Factory] 创建实体: top=%d bottom=%d text=%d cursor=%d",
		ents.TopLine, ents.BottomLine, ents.StatusText, ents.Cursor)
	return ents
}

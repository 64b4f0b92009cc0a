package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/timelinecursor/pkg/config"
	"github.com/decker502/timelinecursor/pkg/ecs"
	"github.com/decker502/timelinecursor/pkg/entities"
	"github.com/decker502/timelinecursor/pkg/game"
	"github.com/decker502/timelinecursor/pkg/systems"
	"github.com/decker502/timelinecursor/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TimelineScene 时间轴游标场景
//
// 职责：
//   - 把事件交给 game.Timeline 计算
//   - resize 后用 LayoutSystem 写入新几何，帧更新后用 CursorSystem 写入游标和文本
//   - Draw 时由 RenderSystem 绘制
type TimelineScene struct {
	timeline      *game.Timeline
	entityManager *ecs.EntityManager
	entities      entities.TimelineEntities

	layoutSystem *systems.LayoutSystem
	cursorSystem *systems.CursorSystem
	renderSystem *systems.RenderSystem

	background color.RGBA
}

// NewTimelineScene 创建场景
//
// 参数：
//   - style: 外观配置
//   - width, height: 初始画布尺寸
//
// 返回：
//   - *TimelineScene: 场景实例
//   - error: 字体加载失败时返回
func NewTimelineScene(style *config.StyleConfig, width, height float64) (*TimelineScene, error) {
	face, err := utils.LoadMonoFace(style.Font.Size)
	if err != nil {
		return nil, fmt.Errorf("状态文本字体加载失败: %w", err)
	}

	em := ecs.NewEntityManager()
	s := &TimelineScene{
		timeline:      game.NewTimeline(width, height),
		entityManager: em,
		entities:      entities.NewTimelineEntities(em, style),
		layoutSystem:  systems.NewLayoutSystem(em),
		cursorSystem:  systems.NewCursorSystem(em),
		renderSystem:  systems.NewRenderSystem(em, face),
		background:    config.MustColor(style.Colors.Background),
	}

	s.layoutSystem.Apply(s.timeline.Geometry())
	log.Printf("[TimelineScene] 初始布局 %.0f x %.0f", width, height)
	return s, nil
}

// HandleEvent 处理 resize/帧事件并同步到实体组件
func (s *TimelineScene) HandleEvent(ev game.Event) {
	if !s.timeline.HandleEvent(ev) {
		return
	}

	switch ev.Kind {
	case game.EventResize:
		s.layoutSystem.Apply(s.timeline.Geometry())
	case game.EventFrame:
		s.cursorSystem.Apply(s.timeline.LastFrame())
	}
}

// Draw 绘制背景、参考线、状态文本和游标
func (s *TimelineScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)
}

// Timeline 返回场景持有的时间轴状态
func (s *TimelineScene) Timeline() *game.Timeline {
	return s.timeline
}

// Entities 返回场景中的实体ID
func (s *TimelineScene) Entities() entities.TimelineEntities {
	return s.entities
}

// EntityManager 返回场景的实体管理器
func (s *TimelineScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

package systems

import (
	"github.com/decker502/timelinecursor/pkg/components"
	"github.com/decker502/timelinecursor/pkg/ecs"
	"github.com/decker502/timelinecursor/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 绘制时间轴画面的线段和文本
//
// 绘制顺序按实体ID升序（即创建顺序）。
// Additive 线段先画到叠加层，再以 BlendLighter 混合到屏幕上。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face

	additiveLayer *ebiten.Image // 加法混合层，随屏幕尺寸重建
	textOpts      text.DrawOptions
}

// NewRenderSystem 创建渲染系统
// face 为 nil 时跳过文本绘制
func NewRenderSystem(em *ecs.EntityManager, face text.Face) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		face:          face,
	}
}

// Draw 绘制所有线段和文本实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	layer := s.prepareAdditiveLayer(screen)
	hasAdditive := false

	for _, id := range ecs.GetEntitiesWith1[*components.LineComponent](s.entityManager) {
		line, _ := ecs.GetComponent[*components.LineComponent](s.entityManager, id)

		var dx, dy float64
		if offset, ok := ecs.GetComponent[*components.OffsetComponent](s.entityManager, id); ok {
			dx, dy = offset.X, offset.Y
		}

		target := screen
		if line.Additive {
			target = layer
			hasAdditive = true
		}
		drawLine(target, line, dx, dy)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.TextComponent](s.entityManager) {
		txt, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
		s.drawText(screen, txt)
	}

	if hasAdditive {
		op := &ebiten.DrawImageOptions{}
		op.Blend = ebiten.BlendLighter
		screen.DrawImage(layer, op)
	}
}

// prepareAdditiveLayer 返回与屏幕同尺寸且已清空的叠加层
func (s *RenderSystem) prepareAdditiveLayer(screen *ebiten.Image) *ebiten.Image {
	b := screen.Bounds()
	if s.additiveLayer == nil || s.additiveLayer.Bounds().Size() != b.Size() {
		if s.additiveLayer != nil {
			s.additiveLayer.Deallocate()
		}
		s.additiveLayer = ebiten.NewImage(b.Dx(), b.Dy())
	}
	s.additiveLayer.Clear()
	return s.additiveLayer
}

// drawLine 按组件数据描边线段，端点加上平移量
// 倒置或零长度的线段按算术结果照常绘制
func drawLine(dst *ebiten.Image, line *components.LineComponent, dx, dy float64) {
	x1, y1 := float32(line.X1+dx), float32(line.Y1+dy)
	x2, y2 := float32(line.X2+dx), float32(line.Y2+dy)
	w := float32(line.StrokeWidth)

	vector.StrokeLine(dst, x1, y1, x2, y2, w, line.Color, true)

	if line.RoundCap {
		vector.DrawFilledCircle(dst, x1, y1, w/2, line.Color, true)
		vector.DrawFilledCircle(dst, x2, y2, w/2, line.Color, true)
	}
}

// drawText 以基线锚点绘制文本
func (s *RenderSystem) drawText(screen *ebiten.Image, txt *components.TextComponent) {
	if s.face == nil || txt.Content == "" {
		return
	}

	s.textOpts.GeoM.Reset()
	s.textOpts.GeoM.Translate(txt.X, txt.Y-utils.BaselineOffset(s.face))
	s.textOpts.ColorScale.Reset()
	if txt.Color != nil {
		s.textOpts.ColorScale.ScaleWithColor(txt.Color)
	}
	text.Draw(screen, txt.Content, s.face, &s.textOpts)
}

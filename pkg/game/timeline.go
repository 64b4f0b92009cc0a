package game

import (
	"log"
	"time"

	"github.com/decker502/timelinecursor/pkg/config"
)

// Clock 返回当前时间戳（毫秒）
// 测试中可注入合成时钟
type Clock func() int64

// SystemClock 基于系统时间的时钟
func SystemClock() int64 {
	return time.Now().UnixMilli()
}

// Directives 交给表现层的声明式绘制指令
// 表现层只负责把它们画出来，不做任何计算
type Directives struct {
	TopLine    config.LineSegment // 顶部参考线端点
	BottomLine config.LineSegment // 底部参考线端点
	Cursor     config.LineSegment // 游标线段（未偏移）

	// CursorOffsetX 游标的水平偏移
	CursorOffsetX float64

	// Text 状态文本内容，TextAnchor 为其基线锚点
	Text       string
	TextAnchor config.Point
}

// Timeline 时间轴核心状态
//
// 持有画布尺寸、动画状态、最近一次布局和帧结果。
// 所有事件在同一个逻辑线程上通过 HandleEvent 串行处理。
type Timeline struct {
	width, height float64
	state         AnimationState
	geometry      config.LayoutGeometry
	lastFrame     FrameResult

	resizing      bool   // 最近一次 begin/end 信号（仅用于日志和查询）
	skippedFrames uint64 // 因缩放而跳过的帧数
}

// NewTimeline 以初始画布尺寸创建时间轴
func NewTimeline(width, height float64) *Timeline {
	return &Timeline{
		width:    width,
		height:   height,
		geometry: config.ComputeLayout(width, height),
	}
}

// HandleEvent 处理一个事件
//
// 返回：
//   - bool: 绘制指令是否发生变化（需要重绘）
func (tl *Timeline) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventResizeBegin:
		tl.resizing = true
		log.Printf("[Timeline] resize begin")
		return false

	case EventResizeEnd:
		tl.resizing = false
		log.Printf("[Timeline] resize end (%d frames skipped so far)", tl.skippedFrames)
		return false

	case EventResize:
		tl.width, tl.height = ev.Width, ev.Height
		tl.geometry = config.ComputeLayout(ev.Width, ev.Height)
		log.Printf("[Timeline] %.1f x %.1f", ev.Width, ev.Height)
		return true

	case EventFrame:
		// 交互式缩放期间不更新，避免读到过渡中的几何造成抖动
		if ev.Resizing {
			tl.skippedFrames++
			return false
		}
		tl.lastFrame = OnFrame(ev.NowMillis, tl.width, tl.height, &tl.state)
		return true

	default:
		log.Printf("[Timeline] 忽略未知事件: %v", ev.Kind)
		return false
	}
}

// Directives 返回当前的绘制指令
func (tl *Timeline) Directives() Directives {
	return Directives{
		TopLine:       tl.geometry.TopLine,
		BottomLine:    tl.geometry.BottomLine,
		Cursor:        tl.geometry.Cursor,
		CursorOffsetX: tl.lastFrame.CursorX,
		Text:          tl.lastFrame.Text,
		TextAnchor:    tl.geometry.TextAnchor,
	}
}

// Geometry 返回最近一次布局
func (tl *Timeline) Geometry() config.LayoutGeometry {
	return tl.geometry
}

// LastFrame 返回最近一帧的结果
func (tl *Timeline) LastFrame() FrameResult {
	return tl.lastFrame
}

// State 返回动画状态的副本
func (tl *Timeline) State() AnimationState {
	return tl.state
}

// Size 返回当前画布尺寸
func (tl *Timeline) Size() (float64, float64) {
	return tl.width, tl.height
}

// Resizing 返回最近一次 begin/end 信号对应的状态
func (tl *Timeline) Resizing() bool {
	return tl.resizing
}

// SkippedFrames 返回因缩放跳过的帧数
func (tl *Timeline) SkippedFrames() uint64 {
	return tl.skippedFrames
}

// Package tui 提供时间轴游标的终端前端
//
// 与图形前端共享同一套核心：终端尺寸变化即 resize 通知，
// 固定间隔的 tick 即帧通知，画面由 Canvas 把绘制指令栅格化为字符。
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/timelinecursor/pkg/config"
	"github.com/decker502/timelinecursor/pkg/game"
)

// FrameInterval 帧通知间隔（约 60Hz）
const FrameInterval = time.Second / 60

// tickMsg 帧通知
type tickMsg time.Time

// Model 终端前端的 bubbletea 模型
type Model struct {
	timeline *game.Timeline
	tracker  *game.ResizeTracker
	queue    *game.EventQueue
	canvas   *Canvas
	styles   Styles

	cellW, cellH float64
	ready        bool // 是否已收到首个终端尺寸
}

// NewModel 按外观配置创建模型
// 首个 WindowSizeMsg 到达之前不处理帧
func NewModel(style *config.StyleConfig) Model {
	return Model{
		timeline: game.NewTimeline(0, 0),
		queue:    game.NewEventQueue(),
		canvas:   NewCanvas(0, 0, style.Cell.Width, style.Cell.Height),
		styles:   NewStyles(style),
		cellW:    style.Cell.Width,
		cellH:    style.Cell.Height,
	}
}

// Init 启动帧通知
func (m Model) Init() tea.Cmd {
	return tick()
}

// tick 在下一个帧间隔后发送 tickMsg
func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update 把终端事件转换为核心事件并分发
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		if m.ready {
			m.queue.Push(m.tracker.Tick()...)
			m.queue.Push(game.FrameEvent(time.Time(msg).UnixMilli(), m.tracker.Resizing()))
			m.dispatch()
		}
		return m, tick()

	case tea.KeyMsg:
		// 只响应退出，其余按键忽略
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// resize 处理终端尺寸变化
//
// 首次尺寸视为初始布局（直接 Resize，不进入缩放状态），
// 之后的变化交给 ResizeTracker 产生 begin/resize/end。
func (m Model) resize(cols, rows int) Model {
	width := float64(cols) * m.cellW
	height := float64(rows) * m.cellH

	if !m.ready {
		m.tracker = game.NewResizeTracker(width, height)
		m.queue.Push(game.ResizeEvent(width, height))
		m.ready = true
	} else {
		m.queue.Push(m.tracker.Observe(width, height)...)
	}

	m.canvas = NewCanvas(cols, rows, m.cellW, m.cellH)
	m.dispatch()
	return m
}

// dispatch 按顺序处理队列中的事件
func (m Model) dispatch() {
	m.queue.Drain(func(ev game.Event) {
		m.timeline.HandleEvent(ev)
	})
}

// View 栅格化当前绘制指令
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	m.canvas.Rasterize(m.timeline.Directives())
	return m.canvas.Render(m.styles)
}

// Timeline 返回模型持有的时间轴状态
func (m Model) Timeline() *game.Timeline {
	return m.timeline
}

// Resizing 返回终端是否处于缩放过程中
func (m Model) Resizing() bool {
	return m.ready && m.tracker.Resizing()
}

package game

import "fmt"

// EventKind 事件类型
type EventKind int

const (
	// EventResizeBegin 开始一次交互式缩放（打开 resizing 窗口）
	EventResizeBegin EventKind = iota
	// EventResize 画布尺寸变化，携带新的宽高
	EventResize
	// EventResizeEnd 缩放结束（关闭 resizing 窗口）
	EventResizeEnd
	// EventFrame 每次显示刷新的帧通知，携带时间戳和入队时的 resizing 标志
	EventFrame
)

// String 返回事件类型名称（用于日志）
func (k EventKind) String() string {
	switch k {
	case EventResizeBegin:
		return "ResizeBegin"
	case EventResize:
		return "Resize"
	case EventResizeEnd:
		return "ResizeEnd"
	case EventFrame:
		return "Frame"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event 宿主环境投递给核心的通知
//
// 不同类型只使用部分字段：
//   - EventResize: Width, Height
//   - EventFrame: NowMillis, Resizing
type Event struct {
	Kind      EventKind
	Width     float64
	Height    float64
	NowMillis int64

	// Resizing 帧事件入队时的缩放状态
	// 作为显式参数传给帧处理，而不是在处理时读取共享字段
	Resizing bool
}

// ResizeEvent 构造尺寸变化事件
func ResizeEvent(width, height float64) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// FrameEvent 构造帧事件
func FrameEvent(nowMillis int64, resizing bool) Event {
	return Event{Kind: EventFrame, NowMillis: nowMillis, Resizing: resizing}
}

// EventQueue 单线程事件队列
//
// 宿主回调（Layout/Update、WindowSizeMsg/Tick）只负责入队，
// 同一个逻辑线程在每次循环中按 FIFO 顺序取出并分发。
// 不加锁：入队和出队都发生在同一个逻辑线程上。
type EventQueue struct {
	events []Event
}

// NewEventQueue 创建事件队列
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]Event, 0, 8),
	}
}

// Push 追加事件
func (q *EventQueue) Push(events ...Event) {
	q.events = append(q.events, events...)
}

// Len 返回待处理事件数
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain 按入队顺序把所有事件交给 handle，并清空队列
// handle 内再次入队的事件会在本次 Drain 中继续处理
func (q *EventQueue) Drain(handle func(Event)) {
	for i := 0; i < len(q.events); i++ {
		handle(q.events[i])
	}
	q.events = q.events[:0]
}

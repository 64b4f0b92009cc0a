package game

// ResizeSettleTicks 尺寸连续保持不变多少个 tick 后视为缩放结束
// 宿主环境（Ebitengine、终端）不提供拖拽开始/结束信号，只能从尺寸变化推断
const ResizeSettleTicks = 10

// ResizeTracker 把宿主上报的原始尺寸转换为 begin/resize/end 事件
//
// 规则：
//   - 尺寸首次变化：ResizeBegin + Resize，进入 resizing 状态
//   - resizing 状态下继续变化：Resize，并重置静置计数
//   - 连续 ResizeSettleTicks 个 tick 未变化：ResizeEnd，退出 resizing 状态
type ResizeTracker struct {
	width, height float64
	resizing      bool
	stableTicks   int
	settleTicks   int
}

// NewResizeTracker 以初始尺寸创建跟踪器
// 初始尺寸视为已布局，不产生事件
func NewResizeTracker(width, height float64) *ResizeTracker {
	return &ResizeTracker{
		width:       width,
		height:      height,
		settleTicks: ResizeSettleTicks,
	}
}

// SetSettleTicks 修改静置判定的 tick 数（至少为 1）
func (t *ResizeTracker) SetSettleTicks(ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	t.settleTicks = ticks
}

// Observe 上报当前宿主尺寸，返回需要入队的事件（尺寸未变化时为 nil）
func (t *ResizeTracker) Observe(width, height float64) []Event {
	if width == t.width && height == t.height {
		return nil
	}

	t.width, t.height = width, height
	t.stableTicks = 0

	if !t.resizing {
		t.resizing = true
		return []Event{{Kind: EventResizeBegin}, ResizeEvent(width, height)}
	}
	return []Event{ResizeEvent(width, height)}
}

// Tick 推进一个 tick，静置足够久时返回 ResizeEnd 事件
func (t *ResizeTracker) Tick() []Event {
	if !t.resizing {
		return nil
	}

	t.stableTicks++
	if t.stableTicks < t.settleTicks {
		return nil
	}

	t.resizing = false
	t.stableTicks = 0
	return []Event{{Kind: EventResizeEnd}}
}

// Resizing 返回当前是否处于缩放过程中
func (t *ResizeTracker) Resizing() bool {
	return t.resizing
}

// Size 返回最近一次上报的尺寸
func (t *ResizeTracker) Size() (float64, float64) {
	return t.width, t.height
}

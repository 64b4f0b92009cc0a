package game

import (
	"strings"
	"testing"

	"github.com/decker502/timelinecursor/pkg/config"
)

// TestNewTimeline 测试初始布局
func TestNewTimeline(t *testing.T) {
	tl := NewTimeline(config.InitialSurfaceWidth, config.InitialSurfaceHeight)

	if tl.Geometry() != config.ComputeLayout(1024, 800) {
		t.Errorf("initial geometry = %+v", tl.Geometry())
	}
	if tl.State() != (AnimationState{}) {
		t.Errorf("initial state = %+v, want zero", tl.State())
	}
	d := tl.Directives()
	if d.Text != "" || d.CursorOffsetX != 0 {
		t.Errorf("initial directives = %+v", d)
	}
}

// TestTimelineFrame 测试帧事件推进动画
func TestTimelineFrame(t *testing.T) {
	tl := NewTimeline(180, 300)

	if !tl.HandleEvent(FrameEvent(1000, false)) {
		t.Fatal("frame should request redraw")
	}
	if !tl.HandleEvent(FrameEvent(1016, false)) {
		t.Fatal("frame should request redraw")
	}

	d := tl.Directives()
	if d.CursorOffsetX != 2 {
		t.Errorf("cursor offset = %.1f, want 2", d.CursorOffsetX)
	}
	if !strings.HasPrefix(d.Text, " 16, fps=62.5, (180.00 x 300.00)") {
		t.Errorf("text = %q", d.Text)
	}
	if d.TextAnchor != (config.Point{X: 10, Y: 280}) {
		t.Errorf("text anchor = %+v", d.TextAnchor)
	}
	if tl.State().LastFrameMillis != 1016 {
		t.Errorf("LastFrameMillis = %d", tl.State().LastFrameMillis)
	}
}

// TestTimelineSuppressesFramesWhileResizing 测试缩放期间的帧被跳过
func TestTimelineSuppressesFramesWhileResizing(t *testing.T) {
	tl := NewTimeline(360, 300)
	tl.HandleEvent(FrameEvent(100, false))
	before := tl.State()

	tl.HandleEvent(Event{Kind: EventResizeBegin})
	if !tl.Resizing() {
		t.Error("Resizing() should be true after begin")
	}
	if tl.HandleEvent(FrameEvent(116, true)) {
		t.Error("suppressed frame should not request redraw")
	}
	if tl.State() != before {
		t.Errorf("state changed during resize: %+v -> %+v", before, tl.State())
	}
	if tl.SkippedFrames() != 1 {
		t.Errorf("SkippedFrames() = %d, want 1", tl.SkippedFrames())
	}

	tl.HandleEvent(Event{Kind: EventResizeEnd})
	tl.HandleEvent(FrameEvent(132, false))
	if tl.State().FrameCount != 2 {
		t.Errorf("FrameCount = %d, want 2", tl.State().FrameCount)
	}
}

// TestTimelineFrameFlagIsExplicit 测试帧是否跳过只取决于事件自带的标志
// 边界处的帧按入队时的标志处理，与 begin/end 信号的到达顺序无关
func TestTimelineFrameFlagIsExplicit(t *testing.T) {
	tl := NewTimeline(360, 300)

	// begin 已处理，但帧在 begin 之前入队（Resizing=false）：照常更新
	tl.HandleEvent(Event{Kind: EventResizeBegin})
	if !tl.HandleEvent(FrameEvent(10, false)) {
		t.Error("frame enqueued before resize began should be processed")
	}

	// end 已处理，但帧在 end 之前入队（Resizing=true）：跳过
	tl.HandleEvent(Event{Kind: EventResizeEnd})
	if tl.HandleEvent(FrameEvent(20, true)) {
		t.Error("frame enqueued during resize should be skipped")
	}
}

// TestTimelineConsecutiveResizes 测试连续两次缩放各自产生正确的几何
func TestTimelineConsecutiveResizes(t *testing.T) {
	tl := NewTimeline(1024, 800)

	tl.HandleEvent(ResizeEvent(640, 480))
	if tl.Geometry() != config.ComputeLayout(640, 480) {
		t.Errorf("geometry after first resize = %+v", tl.Geometry())
	}

	tl.HandleEvent(ResizeEvent(1920, 1080))
	g := tl.Geometry()
	if g != config.ComputeLayout(1920, 1080) {
		t.Errorf("geometry after second resize = %+v", g)
	}
	if g.BottomLine.Y1 != 1025 || g.TopLine.X2 != 1920 {
		t.Errorf("stale geometry: %+v", g)
	}

	// 帧计算使用最新尺寸
	tl.HandleEvent(FrameEvent(50, false))
	if tl.LastFrame().PixelsPerFrame != 1920.0/180.0 {
		t.Errorf("ppf = %.4f, want %.4f", tl.LastFrame().PixelsPerFrame, 1920.0/180.0)
	}
	w, h := tl.Size()
	if w != 1920 || h != 1080 {
		t.Errorf("Size() = %.0fx%.0f", w, h)
	}
}

// TestTimelineDegenerateResize 测试缩放到 0x0 不会出错
func TestTimelineDegenerateResize(t *testing.T) {
	tl := NewTimeline(1024, 800)
	tl.HandleEvent(ResizeEvent(0, 0))
	tl.HandleEvent(FrameEvent(0, false))

	d := tl.Directives()
	if d.Cursor.Y1 != 20 || d.Cursor.Y2 != -56 {
		t.Errorf("cursor = %+v, want Y (20, -56)", d.Cursor)
	}
	if d.CursorOffsetX != 0 {
		t.Errorf("cursor offset = %.1f, want 0", d.CursorOffsetX)
	}
	if !strings.Contains(d.Text, "fps=+Inf") {
		t.Errorf("text = %q, want fps=+Inf", d.Text)
	}
}

// TestTimelineUnknownEvent 测试未知事件被忽略
func TestTimelineUnknownEvent(t *testing.T) {
	tl := NewTimeline(100, 100)
	if tl.HandleEvent(Event{Kind: EventKind(99)}) {
		t.Error("unknown event should not request redraw")
	}
}

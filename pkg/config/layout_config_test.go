package config

import (
	"testing"
)

// TestComputeLayout 测试常规尺寸下的布局计算
func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name           string
		width, height  float64
		wantBottomY    float64
		wantCursorEndY float64
		wantTextY      float64
	}{
		{
			name:           "初始窗口 1024x800",
			width:          InitialSurfaceWidth,
			height:         InitialSurfaceHeight,
			wantBottomY:    745,
			wantCursorEndY: 744,
			wantTextY:      780,
		},
		{
			name:           "窄而高 300x1200",
			width:          300,
			height:         1200,
			wantBottomY:    1145,
			wantCursorEndY: 1144,
			wantTextY:      1180,
		},
		{
			name:           "临界高度 76",
			width:          640,
			height:         76,
			wantBottomY:    21,
			wantCursorEndY: 20,
			wantTextY:      56,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ComputeLayout(tt.width, tt.height)

			if g.TopLine != (LineSegment{X1: 0, Y1: 20, X2: tt.width, Y2: 20}) {
				t.Errorf("TopLine = %+v", g.TopLine)
			}
			if g.BottomLine != (LineSegment{X1: 0, Y1: tt.wantBottomY, X2: tt.width, Y2: tt.wantBottomY}) {
				t.Errorf("BottomLine = %+v, want Y=%.1f", g.BottomLine, tt.wantBottomY)
			}
			if g.Cursor != (LineSegment{X1: 0, Y1: 20, X2: 0, Y2: tt.wantCursorEndY}) {
				t.Errorf("Cursor = %+v, want endY=%.1f", g.Cursor, tt.wantCursorEndY)
			}
			if g.TextAnchor != (Point{X: 10, Y: tt.wantTextY}) {
				t.Errorf("TextAnchor = %+v, want Y=%.1f", g.TextAnchor, tt.wantTextY)
			}
			if g.TravelMinX != 0 || g.TravelMaxX != tt.width {
				t.Errorf("travel bounds = [%.1f, %.1f), want [0, %.1f)", g.TravelMinX, g.TravelMaxX, tt.width)
			}
			if g.IsCursorInverted() {
				t.Error("cursor should not be inverted")
			}
		})
	}
}

// TestComputeLayoutDegenerate 测试 (0,0) 尺寸不会出错，游标端点为 (20, -56)
func TestComputeLayoutDegenerate(t *testing.T) {
	g := ComputeLayout(0, 0)

	if g.Cursor.Y1 != 20 || g.Cursor.Y2 != -56 {
		t.Errorf("cursor bounds = (%.1f, %.1f), want (20, -56)", g.Cursor.Y1, g.Cursor.Y2)
	}
	if !g.IsCursorInverted() {
		t.Error("cursor should be inverted at height 0")
	}
	if g.TopLine.X1 != g.TopLine.X2 {
		t.Errorf("top line should have zero length, got %+v", g.TopLine)
	}
	if g.BottomLine.Y1 != -55 {
		t.Errorf("bottom line Y = %.1f, want -55", g.BottomLine.Y1)
	}
	if g.TextAnchor.Y != -20 {
		t.Errorf("text anchor Y = %.1f, want -20", g.TextAnchor.Y)
	}
}

// TestComputeLayoutShortSurface 测试高度小于 76 时游标倒置但仍返回算术结果
func TestComputeLayoutShortSurface(t *testing.T) {
	g := ComputeLayout(500, 60)

	if g.Cursor.Y2 != 4 {
		t.Errorf("cursor end Y = %.1f, want 4", g.Cursor.Y2)
	}
	if !g.IsCursorInverted() {
		t.Error("cursor should be inverted when height < CursorMinHeight")
	}
}

// TestComputeLayoutIdempotent 测试相同输入得到相同结果
func TestComputeLayoutIdempotent(t *testing.T) {
	first := ComputeLayout(1280, 720)
	second := ComputeLayout(1280, 720)
	if first != second {
		t.Errorf("ComputeLayout not deterministic: %+v vs %+v", first, second)
	}
}

// TestComputeLayoutNoStaleSize 测试连续两次不同尺寸的计算互不影响
func TestComputeLayoutNoStaleSize(t *testing.T) {
	a := ComputeLayout(800, 600)
	b := ComputeLayout(1920, 1080)

	if b.TopLine.X2 != 1920 || b.BottomLine.Y1 != 1025 || b.Cursor.Y2 != 1024 {
		t.Errorf("second layout leaked previous size: %+v", b)
	}
	if a.TopLine.X2 != 800 || a.BottomLine.Y1 != 545 {
		t.Errorf("first layout changed after second call: %+v", a)
	}
}

// TestFramesPerCycle 测试扫描周期常量
func TestFramesPerCycle(t *testing.T) {
	if FramesPerCycle != 180 {
		t.Errorf("FramesPerCycle = %d, want 180", FramesPerCycle)
	}
	if CursorMinHeight != 76 {
		t.Errorf("CursorMinHeight = %.1f, want 76", CursorMinHeight)
	}
}

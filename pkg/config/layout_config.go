package config

// 布局配置常量
// 本文件定义了时间轴画面的布局参数：参考线偏移、游标行程、状态文本锚点等
// 所有坐标使用"画布坐标系"（相对于画布左上角，单位为像素）

// Timeline Layout Configuration (时间轴布局配置)
const (
	// TopLineY 是顶部参考线的Y坐标，距画布顶部固定 20px，与宽度无关
	TopLineY = 20.0

	// BottomLineInset 是底部参考线距画布底部的距离
	// 底部参考线 Y = height - 55
	BottomLineInset = 55.0

	// CursorBottomInset 是游标下端距画布底部的距离
	// 比底部参考线多 1px，游标下端 Y = height - 56，不与参考线重叠
	CursorBottomInset = 56.0

	// TextAnchorX 是状态文本锚点的X坐标
	TextAnchorX = 10.0

	// TextBaselineInset 是状态文本基线距画布底部的距离
	// 文本基线 Y = height - 20
	TextBaselineInset = 20.0

	// StrokeWidth 是所有线条的描边宽度
	StrokeWidth = 3.0

	// CursorMinHeight 是游标线段不倒置所需的最小画布高度
	// height < 76 时 height-56 < 20，游标线段倒置（按算术结果绘制，不报错）
	CursorMinHeight = TopLineY + CursorBottomInset
)

// Surface Configuration (画布配置)
const (
	// InitialSurfaceWidth 是窗口的初始宽度（仅作建议，实际尺寸由 resize 通知决定）
	InitialSurfaceWidth = 1024

	// InitialSurfaceHeight 是窗口的初始高度
	InitialSurfaceHeight = 800
)

// Sweep Configuration (扫描周期配置)
const (
	// SweepSeconds 是游标扫过整个画布宽度的设计时长（秒）
	SweepSeconds = 6

	// DesignFPS 是扫描周期计算所假设的帧率
	// 注意：实际帧率由显示器刷新率决定（通常 60Hz），与此值不要求一致
	// 扫描周期按帧计数，实际扫描时长会随实际帧率漂移
	DesignFPS = 30

	// FramesPerCycle 是一个扫描周期的帧数：6 秒 × 30 帧 = 180 帧
	FramesPerCycle = SweepSeconds * DesignFPS
)

// LineSegment 表示一条线段的两个端点
type LineSegment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Point 表示画布上的一个点
type Point struct {
	X, Y float64
}

// LayoutGeometry 是一次布局计算的结果
// 每次 resize 整体重算，不缓存
type LayoutGeometry struct {
	// Width, Height 是计算本布局所用的画布尺寸
	Width, Height float64

	// TopLine 顶部参考线，横跨整个宽度
	TopLine LineSegment

	// BottomLine 底部参考线，横跨整个宽度
	BottomLine LineSegment

	// Cursor 游标线段（X 恒为 0，水平偏移由每帧的 FrameResult 提供）
	Cursor LineSegment

	// TravelMinX, TravelMaxX 游标水平行程 [TravelMinX, TravelMaxX)
	TravelMinX, TravelMaxX float64

	// TextAnchor 状态文本锚点（文本基线左端）
	TextAnchor Point
}

// ComputeLayout 根据画布尺寸计算所有可视元素的位置
//
// 纯函数：无副作用、可重复调用、结果只取决于两个参数。
// 尺寸为 0 时得到零长度线段；height < 76 时游标线段倒置，均按算术结果返回。
//
// 参数：
//   - width: 画布宽度（有限、非负）
//   - height: 画布高度（有限、非负）
//
// 返回：
//   - LayoutGeometry: 参考线、游标线段、行程边界和文本锚点
func ComputeLayout(width, height float64) LayoutGeometry {
	bottomY := height - BottomLineInset

	return LayoutGeometry{
		Width:  width,
		Height: height,
		TopLine: LineSegment{
			X1: 0, Y1: TopLineY,
			X2: width, Y2: TopLineY,
		},
		BottomLine: LineSegment{
			X1: 0, Y1: bottomY,
			X2: width, Y2: bottomY,
		},
		Cursor: LineSegment{
			X1: 0, Y1: TopLineY,
			X2: 0, Y2: height - CursorBottomInset,
		},
		TravelMinX: 0,
		TravelMaxX: width,
		TextAnchor: Point{
			X: TextAnchorX,
			Y: height - TextBaselineInset,
		},
	}
}

// IsCursorInverted 判断当前布局下游标线段是否倒置（下端在上端之上）
func (g LayoutGeometry) IsCursorInverted() bool {
	return g.Cursor.Y2 < g.Cursor.Y1
}

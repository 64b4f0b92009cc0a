package components

import "image/color"

// LineComponent 线段绘制数据(纯数据)
//
// 端点使用画布坐标，由 LayoutSystem 在每次 resize 时整体重写。
type LineComponent struct {
	X1, Y1 float64
	X2, Y2 float64

	// StrokeWidth 描边宽度
	StrokeWidth float64

	// Color 描边颜色
	Color color.Color

	// RoundCap 是否绘制圆形线帽
	RoundCap bool

	// Additive 是否使用加法混合叠加到画面上
	Additive bool
}

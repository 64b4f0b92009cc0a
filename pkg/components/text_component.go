package components

import "image/color"

// TextComponent 单行文本(纯数据)
type TextComponent struct {
	// Content 文本内容，每帧整体替换
	Content string

	// X, Y 文本基线左端的锚点
	X, Y float64

	// Color 文本颜色
	Color color.Color
}

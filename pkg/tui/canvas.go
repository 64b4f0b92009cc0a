package tui

import (
	"math"
	"strings"

	"github.com/decker502/timelinecursor/pkg/config"
	"github.com/decker502/timelinecursor/pkg/game"
)

// cellKind 单元格内容类型，决定使用哪种样式
type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellLine
	cellCursor
	cellText
)

// 线条字符
const (
	runeHorizontal = '─'
	runeVertical   = '│'
	runeCross      = '┼'
)

// cell 单个字符单元
type cell struct {
	r    rune
	kind cellKind
}

// Canvas 字符画布
//
// 把像素坐标的绘制指令栅格化到 cols × rows 的字符网格上，
// 每个字符单元对应 cellW × cellH 像素。
type Canvas struct {
	cols, rows   int
	cellW, cellH float64
	cells        []cell
}

// NewCanvas 创建空画布
func NewCanvas(cols, rows int, cellW, cellH float64) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	c := &Canvas{
		cols:  cols,
		rows:  rows,
		cellW: cellW,
		cellH: cellH,
		cells: make([]cell, cols*rows),
	}
	c.Clear()
	return c
}

// Clear 清空画布
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', kind: cellEmpty}
	}
}

// Size 返回画布的列数和行数
func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows
}

// at 返回 (col,row) 处的单元，越界时返回 nil
func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// colOf 像素 X 所在的列
func (c *Canvas) colOf(x float64) int {
	return int(math.Floor(x / c.cellW))
}

// rowOf 像素 Y 所在的行
func (c *Canvas) rowOf(y float64) int {
	return int(math.Floor(y / c.cellH))
}

// DrawHorizontal 绘制水平线段 [x1, x2) 于 y 所在行
func (c *Canvas) DrawHorizontal(seg config.LineSegment) {
	row := c.rowOf(seg.Y1)
	x1, x2 := math.Min(seg.X1, seg.X2), math.Max(seg.X1, seg.X2)
	end := int(math.Ceil(x2 / c.cellW))
	for col := c.colOf(x1); col < end; col++ {
		if p := c.at(col, row); p != nil {
			p.r, p.kind = runeHorizontal, cellLine
		}
	}
}

// DrawVertical 绘制平移 dx 后的竖直线段
// 倒置线段按两个端点之间的行绘制；与水平线相交处画十字
func (c *Canvas) DrawVertical(seg config.LineSegment, dx float64) {
	col := c.colOf(seg.X1 + dx)
	top := c.rowOf(math.Min(seg.Y1, seg.Y2))
	bottom := c.rowOf(math.Max(seg.Y1, seg.Y2))
	for row := top; row <= bottom; row++ {
		p := c.at(col, row)
		if p == nil {
			continue
		}
		if p.kind == cellLine {
			p.r = runeCross
		} else {
			p.r = runeVertical
		}
		p.kind = cellCursor
	}
}

// DrawText 以基线锚点写入单行文本，超出右边界的部分被裁剪
func (c *Canvas) DrawText(s string, anchor config.Point) {
	row := int(math.Ceil(anchor.Y/c.cellH)) - 1
	col := c.colOf(anchor.X)
	for _, r := range s {
		if p := c.at(col, row); p != nil {
			p.r, p.kind = r, cellText
		}
		col++
	}
}

// Rasterize 把绘制指令整体画到画布上
// 顺序与图形前端一致：参考线 → 状态文本 → 游标
func (c *Canvas) Rasterize(d game.Directives) {
	c.Clear()
	c.DrawHorizontal(d.TopLine)
	c.DrawHorizontal(d.BottomLine)
	c.DrawText(d.Text, d.TextAnchor)
	c.DrawVertical(d.Cursor, d.CursorOffsetX)
}

// PlainString 返回不带样式的文本（每行末尾空白保留）
func (c *Canvas) PlainString() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			b.WriteRune(c.cells[row*c.cols+col].r)
		}
	}
	return b.String()
}

// Render 按单元类型分段套用样式后输出
func (c *Canvas) Render(st Styles) string {
	var b strings.Builder
	var run strings.Builder

	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		runKind := cellEmpty
		run.Reset()
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if col > 0 && cl.kind != runKind {
				b.WriteString(st.For(runKind).Render(run.String()))
				run.Reset()
			}
			runKind = cl.kind
			run.WriteRune(cl.r)
		}
		if run.Len() > 0 {
			b.WriteString(st.For(runKind).Render(run.String()))
		}
	}
	return b.String()
}

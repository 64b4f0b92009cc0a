package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/timelinecursor/pkg/config"
)

// Styles 各类单元格的终端样式
type Styles struct {
	Empty  lipgloss.Style
	Line   lipgloss.Style
	Cursor lipgloss.Style
	Text   lipgloss.Style
}

// NewStyles 按外观配置创建终端样式
// 所有样式共享背景色，游标加粗以便在参考线上可辨认
func NewStyles(style *config.StyleConfig) Styles {
	bg := lipgloss.Color(style.Colors.Background)
	base := lipgloss.NewStyle().Background(bg)

	return Styles{
		Empty:  base,
		Line:   base.Foreground(lipgloss.Color(style.Colors.ReferenceLine)),
		Cursor: base.Foreground(lipgloss.Color(style.Colors.Cursor)).Bold(true),
		Text:   base.Foreground(lipgloss.Color(style.Colors.Text)),
	}
}

// For 返回单元类型对应的样式
func (s Styles) For(kind cellKind) lipgloss.Style {
	switch kind {
	case cellLine:
		return s.Line
	case cellCursor:
		return s.Cursor
	case cellText:
		return s.Text
	default:
		return s.Empty
	}
}

// Package main runs the timeline cursor in a terminal.
//
// Usage:
//
//	go run ./cmd/timeline-tui
//
// The terminal size drives the layout (one character cell = 8x16 pixels);
// resizing the terminal pauses the sweep until the size settles.
// Ctrl+C quits.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/timelinecursor/pkg/config"
	"github.com/decker502/timelinecursor/pkg/tui"
)

func main() {
	// 终端由 bubbletea 接管，日志输出会破坏画面
	log.SetOutput(io.Discard)

	// 样式文件嵌入在图形前端的 main 包中，终端前端使用相同的默认样式
	model := tui.NewModel(config.DefaultStyleConfig())

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "timeline-tui: %v\n", err)
		os.Exit(1)
	}
}

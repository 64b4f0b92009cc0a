// Package main validates the embedded style document before it is compiled in.
//
// Usage:
//
//	go run ./cmd/validate_style [path]
//
// path defaults to data/timeline_style.yaml.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/decker502/timelinecursor/pkg/config"
)

func main() {
	path := config.StyleConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	if err := validateStyle(data, os.Stdout); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

// validateStyle 解析并校验样式数据，校验通过时向 w 输出摘要
func validateStyle(data []byte, w io.Writer) error {
	style, err := config.ParseStyleConfig(data)
	if err != nil {
		return fmt.Errorf("样式校验失败: %w", err)
	}

	fmt.Fprintf(w, "✅ YAML 格式正确\n")
	fmt.Fprintf(w, "✅ 窗口标题: %s\n", style.Window.Title)
	fmt.Fprintf(w, "✅ 颜色: 背景 %s, 参考线 %s, 游标 %s, 文本 %s\n",
		style.Colors.Background, style.Colors.ReferenceLine, style.Colors.Cursor, style.Colors.Text)
	fmt.Fprintf(w, "✅ 字号: %.0f, 终端单元: %.0fx%.0f\n", style.Font.Size, style.Cell.Width, style.Cell.Height)
	return nil
}

package config

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/decker502/timelinecursor/pkg/embedded"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// StyleConfigPath 是嵌入的样式文件路径
const StyleConfigPath = "data/timeline_style.yaml"

// StyleConfig 时间轴画面的外观配置
// 注意：该文件随程序一起嵌入，运行时不可覆盖，只描述外观，不影响布局和时序
type StyleConfig struct {
	Window WindowStyle `yaml:"window"` // 窗口配置
	Colors ColorStyle  `yaml:"colors"` // 颜色配置（十六进制 #RRGGBB）
	Font   FontStyle   `yaml:"font"`   // 状态文本字体配置
	Cell   CellStyle   `yaml:"cell"`   // 终端前端的单元格像素尺寸
}

// WindowStyle 窗口配置
type WindowStyle struct {
	Title string `yaml:"title"`
}

// ColorStyle 各元素颜色
type ColorStyle struct {
	Background    string `yaml:"background"`
	ReferenceLine string `yaml:"referenceLine"`
	Cursor        string `yaml:"cursor"`
	Text          string `yaml:"text"`
}

// FontStyle 字体配置
type FontStyle struct {
	Size float64 `yaml:"size"`
}

// CellStyle 终端单元格尺寸（像素）
// 终端前端以 "列数 × Width, 行数 × Height" 作为画布尺寸，复用同一套像素布局
type CellStyle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultStyleConfig 返回默认样式
// 嵌入文件缺失或解析失败时使用（降级模式）
func DefaultStyleConfig() *StyleConfig {
	return &StyleConfig{
		Window: WindowStyle{Title: "Timeline Cursors"},
		Colors: ColorStyle{
			Background:    "#101418",
			ReferenceLine: "#C8CCD0",
			Cursor:        "#FF8C1A",
			Text:          "#E8E8E8",
		},
		Font: FontStyle{Size: 24},
		Cell: CellStyle{Width: 8, Height: 16},
	}
}

// LoadStyleConfig 从嵌入资源加载样式配置
//
// embedded 未初始化或文件不存在时返回默认样式（降级模式，不报错）；
// 文件存在但内容非法时返回错误。
func LoadStyleConfig(path string) (*StyleConfig, error) {
	if !embedded.IsInitialized() || !embedded.Exists(path) {
		log.Printf("[Config] 样式文件 %s 不可用，使用默认样式", path)
		return DefaultStyleConfig(), nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取样式配置失败 %s: %w", path, err)
	}

	cfg, err := ParseStyleConfig(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载样式配置: %s", path)
	return cfg, nil
}

// ParseStyleConfig 解析 YAML 样式数据
// 未填写的字段使用默认值
func ParseStyleConfig(data []byte) (*StyleConfig, error) {
	var cfg StyleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析样式配置失败: %w", err)
	}

	// 设置默认值
	def := DefaultStyleConfig()
	if cfg.Window.Title == "" {
		cfg.Window.Title = def.Window.Title
	}
	if cfg.Colors.Background == "" {
		cfg.Colors.Background = def.Colors.Background
	}
	if cfg.Colors.ReferenceLine == "" {
		cfg.Colors.ReferenceLine = def.Colors.ReferenceLine
	}
	if cfg.Colors.Cursor == "" {
		cfg.Colors.Cursor = def.Colors.Cursor
	}
	if cfg.Colors.Text == "" {
		cfg.Colors.Text = def.Colors.Text
	}
	if cfg.Font.Size <= 0 {
		cfg.Font.Size = def.Font.Size
	}
	if cfg.Cell.Width <= 0 {
		cfg.Cell.Width = def.Cell.Width
	}
	if cfg.Cell.Height <= 0 {
		cfg.Cell.Height = def.Cell.Height
	}

	// 校验颜色格式
	for name, hex := range map[string]string{
		"background":    cfg.Colors.Background,
		"referenceLine": cfg.Colors.ReferenceLine,
		"cursor":        cfg.Colors.Cursor,
		"text":          cfg.Colors.Text,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			return nil, fmt.Errorf("颜色 %s 无效: %w", name, err)
		}
	}

	return &cfg, nil
}

// ParseHexColor 解析 #RRGGBB 格式的颜色，结果不透明
func ParseHexColor(hex string) (color.RGBA, error) {
	s := strings.TrimSpace(hex)
	// colorful.Hex 基于 Sscanf，不校验长度和末尾字符，解析后再回写比对
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: want #RRGGBB", hex)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	if c.Hex() != strings.ToLower(s) {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustColor 解析已校验过的颜色，失败时返回不透明白色
func MustColor(hex string) color.RGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}

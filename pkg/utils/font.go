package utils

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// LoadMonoFace 创建等宽字体 face
// 使用内置的 Go Mono 字体，状态文本的各列宽度固定，数字跳动时不会左右抖动
//
// 参数:
//   - size: 字号（像素）
//
// 返回:
//   - *text.GoTextFace: 字体 face
//   - error: 字体数据解析失败时返回
func LoadMonoFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("无法创建字体源 gomono: %w", err)
	}

	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// BaselineOffset 返回从文本顶部到基线的距离
// text.Draw 以文本顶部为原点，按基线锚点绘制时需要向上平移这个距离
func BaselineOffset(face text.Face) float64 {
	if face == nil {
		return 0
	}
	return face.Metrics().HAscent
}

package game

import (
	"fmt"

	"github.com/decker502/timelinecursor/pkg/config"
)

// AnimationState 动画计时状态
//
// 由调用方显式持有并传入 OnFrame，不存在包级单例，便于用合成时钟测试。
// 零值即启动状态 {0, 0}。
type AnimationState struct {
	// FrameCount 已处理的帧数（每帧 +1）
	FrameCount uint64

	// LastFrameMillis 上一帧的时间戳（毫秒）
	LastFrameMillis int64
}

// FrameResult 单帧计算结果，交给表现层应用
type FrameResult struct {
	FrameCount     uint64  // 本帧序号（已自增）
	DeltaMillis    int64   // 距上一帧的毫秒数
	FPS            float64 // 瞬时帧率，delta 为 0 时为 +Inf
	PixelsPerFrame float64 // 每帧水平位移
	CursorX        float64 // 游标水平偏移，位于 [0, width)
	Text           string  // 诊断文本
}

// DiagnosticFormat 诊断文本格式：delta, fps, (宽 x 高), 游标X, 每帧像素
const DiagnosticFormat = "%3d, fps=%.1f, (%.2f x %.2f), cx=%4.1f, ppf=%.2f"

// PixelsPerFrame 返回画布宽度下每帧的水平位移
func PixelsPerFrame(width float64) float64 {
	return width / float64(config.FramesPerCycle)
}

// CursorX 返回第 frameCount 帧时游标的水平偏移
// 锯齿形扫描：每 180 帧从 0 走到接近 width 后回到 0
func CursorX(frameCount uint64, width float64) float64 {
	return float64(frameCount%config.FramesPerCycle) * PixelsPerFrame(width)
}

// FrameRate 根据帧间隔估算瞬时帧率
// 浮点除法：delta 为 0 时得到 +Inf，不会 panic
func FrameRate(deltaMillis int64) float64 {
	return 1000.0 / float64(deltaMillis)
}

// FormatDiagnostic 格式化单行诊断文本
// +Inf/NaN 按 fmt 的默认形式输出
func FormatDiagnostic(deltaMillis int64, fps, width, height, cursorX, ppf float64) string {
	return fmt.Sprintf(DiagnosticFormat, deltaMillis, fps, width, height, cursorX, ppf)
}

// OnFrame 执行一帧的更新
//
// 执行顺序：
//  1. 帧计数 +1
//  2. 计算距上一帧的毫秒数（首帧 LastFrameMillis 为 0，得到一个很大的 delta，属于可接受的启动瞬态）
//  3. 按 180 帧周期计算游标位置（按帧计数，与实际经过的时间无关）
//  4. 计算瞬时帧率并格式化诊断文本
//  5. 记录本帧时间戳
//
// 对任意有限输入都不会失败。
func OnFrame(nowMillis int64, width, height float64, state *AnimationState) FrameResult {
	state.FrameCount++

	delta := nowMillis - state.LastFrameMillis
	ppf := PixelsPerFrame(width)
	cx := CursorX(state.FrameCount, width)
	fps := FrameRate(delta)

	result := FrameResult{
		FrameCount:     state.FrameCount,
		DeltaMillis:    delta,
		FPS:            fps,
		PixelsPerFrame: ppf,
		CursorX:        cx,
		Text:           FormatDiagnostic(delta, fps, width, height, cx, ppf),
	}

	state.LastFrameMillis = nowMillis
	return result
}

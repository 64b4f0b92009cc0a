package main

import (
	"log"

	"github.com/decker502/timelinecursor/pkg/app"
	"github.com/decker502/timelinecursor/pkg/config"
	"github.com/decker502/timelinecursor/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	timelineApp, err := app.NewApp(app.Config{})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 设置窗口
	ebiten.SetWindowSize(config.InitialSurfaceWidth, config.InitialSurfaceHeight)
	ebiten.SetWindowTitle(timelineApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Update 与显示刷新同步：每次刷新恰好一次帧通知
	// 扫描周期按 30fps 设计，实际帧率通常为 60Hz，两者不要求一致
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	log.Println("=== 启动完成，开始运行 ===")

	// 运行，直到窗口关闭
	if err := ebiten.RunGame(timelineApp); err != nil {
		log.Fatal(err)
	}
}

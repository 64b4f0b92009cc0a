// Package app 提供时间轴应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"log"

	"github.com/decker502/timelinecursor/pkg/config"
	"github.com/decker502/timelinecursor/pkg/game"
	"github.com/decker502/timelinecursor/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Style 外观配置，为 nil 时从嵌入资源加载
	Style *config.StyleConfig
	// Clock 毫秒时钟，为 nil 时使用系统时间
	Clock game.Clock
}

// App 是时间轴应用的核心包装器，实现 ebiten.Game 接口
//
// 宿主回调只负责产生事件：
//   - Layout: 上报窗口尺寸 → ResizeTracker → ResizeBegin/Resize
//   - Update: 推进 ResizeTracker（可能产生 ResizeEnd），再入队一个携带 resizing 标志的帧事件
//
// 然后由 SceneManager 在同一个逻辑线程上按顺序分发。
type App struct {
	sceneManager  *game.SceneManager
	resizeTracker *game.ResizeTracker
	clock         game.Clock
	style         *config.StyleConfig
}

// NewApp 创建并初始化应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时使用默认样式。
func NewApp(cfg Config) (*App, error) {
	style := cfg.Style
	if style == nil {
		var err error
		style, err = config.LoadStyleConfig(config.StyleConfigPath)
		if err != nil {
			return nil, fmt.Errorf("样式配置加载失败: %w", err)
		}
	}

	clock := cfg.Clock
	if clock == nil {
		clock = game.SystemClock
	}

	scene, err := scenes.NewTimelineScene(style, config.InitialSurfaceWidth, config.InitialSurfaceHeight)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	log.Printf("[App] 初始画布 %dx%d，扫描周期 %d 帧", config.InitialSurfaceWidth, config.InitialSurfaceHeight, config.FramesPerCycle)

	return &App{
		sceneManager:  sceneManager,
		resizeTracker: game.NewResizeTracker(config.InitialSurfaceWidth, config.InitialSurfaceHeight),
		clock:         clock,
		style:         style,
	}, nil
}

// Update 推进一帧
// TPS 与显示刷新同步时，每次显示刷新调用一次
func (a *App) Update() error {
	a.sceneManager.Post(a.resizeTracker.Tick()...)
	a.sceneManager.Post(game.FrameEvent(a.clock(), a.resizeTracker.Resizing()))
	a.sceneManager.Update()
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 上报窗口尺寸并返回逻辑屏幕尺寸
//
// 逻辑尺寸与窗口尺寸一致（1:1），画面随窗口缩放重新布局而不是拉伸。
// Ebitengine 要求返回正数，因此向引擎返回至少 1x1，但向核心上报原始尺寸。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Post(a.resizeTracker.Observe(float64(outsideWidth), float64(outsideHeight))...)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// WindowTitle 返回窗口标题
func (a *App) WindowTitle() string {
	return a.style.Window.Title
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Resizing 返回当前是否处于交互式缩放中
func (a *App) Resizing() bool {
	return a.resizeTracker.Resizing()
}

package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active and feeds it queued events.
// It ensures only one scene's HandleEvent and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	queue        *EventQueue
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
		queue:        NewEventQueue(),
	}
}

// SwitchTo changes the active scene to the provided scene.
// Pending events are delivered to the new scene on the next Update.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	log.Printf("[SceneManager] 切换场景: %T", scene)
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Post 把事件加入队列，等待下一次 Update 分发
func (sm *SceneManager) Post(events ...Event) {
	sm.queue.Push(events...)
}

// Pending 返回尚未分发的事件数
func (sm *SceneManager) Pending() int {
	return sm.queue.Len()
}

// Update delivers all queued events to the active scene in order.
// If no scene is active, queued events are dropped.
func (sm *SceneManager) Update() {
	sm.queue.Drain(func(ev Event) {
		if sm.currentScene != nil {
			sm.currentScene.HandleEvent(ev)
		}
	})
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

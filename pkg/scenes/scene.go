package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen with its own update and rendering logic.
type Scene interface {
	// Update advances the scene.
	// now is a monotonic host timestamp in seconds.
	Update(now float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] Switching to %T", scene)
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(now float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(now)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

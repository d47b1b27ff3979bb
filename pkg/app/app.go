// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/embedded"
	"github.com/decker502/watchninja/pkg/engine"
	"github.com/decker502/watchninja/pkg/game"
	"github.com/decker502/watchninja/pkg/scenes"
	"github.com/decker502/watchninja/pkg/types"
	"github.com/decker502/watchninja/pkg/utils"
)

// GameConfigPath 嵌入的默认玩法配置
const GameConfigPath = "data/game.yaml"

// storageName 存档目录名（gdata 按应用名区分）
const storageName = "watchninja"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 覆盖配置文件路径，为空则只使用嵌入的默认配置
	ConfigPath string
	// Mode 覆盖玩法变体（"market" / "arcade"），为空则使用配置文件中的值
	Mode string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	gameConfig               *config.GameConfig
	start                    time.Time
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadGameConfig 读取嵌入配置并依次叠加覆盖文件和玩法变体
func LoadGameConfig(cfg Config) (*config.GameConfig, error) {
	data, err := embedded.ReadFile(GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取默认配置失败: %w", err)
	}
	gameCfg, err := config.Parse(data, nil)
	if err != nil {
		return nil, fmt.Errorf("解析默认配置失败: %w", err)
	}

	if cfg.ConfigPath != "" {
		gameCfg, err = config.LoadFile(cfg.ConfigPath, gameCfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载覆盖配置: %s", cfg.ConfigPath)
	}

	if cfg.Mode != "" {
		gameCfg.Mode = types.GameMode(cfg.Mode)
	}
	if err := gameCfg.Validate(); err != nil {
		return nil, err
	}
	return gameCfg, nil
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameCfg, err := LoadGameConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[App] Mode=%s playfield=%.0fx%.0f act1=%.0fs act2=%.0fs",
		gameCfg.Mode, gameCfg.Playfield.Width, gameCfg.Playfield.Height,
		gameCfg.Timing.Act1Duration, gameCfg.Timing.Act2Duration)

	store := game.NewBestScoreManager(game.OpenStorage(storageName))

	eng, err := engine.New(gameCfg, nil, store)
	if err != nil {
		return nil, fmt.Errorf("引擎初始化失败: %w", err)
	}

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewRoundScene(eng, gameCfg.Playfield.Width, gameCfg.Playfield.Height))

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameCfg,
		start:        time.Now(),
		verbose:      cfg.Verbose,
	}, nil
}

// WindowSize 窗口的默认尺寸（等于逻辑场地尺寸）
func (a *App) WindowSize() (int, int) {
	return int(a.gameConfig.Playfield.Width), int(a.gameConfig.Playfield.Height)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 引擎自己根据单调时间戳计算帧间隔
	a.sceneManager.Update(time.Since(a.start).Seconds())
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

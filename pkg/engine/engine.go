// Package engine 驱动一局游戏的模拟
//
// Engine 是宿主（ebiten 场景、测试）与模拟核心之间唯一的接口：
// 宿主把手势和帧时间戳交给 Engine，每帧读取 View 绘制画面，
// 并通过 DrainEvents 取走离散事件驱动音效与震动。
package engine

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/events"
	"github.com/decker502/watchninja/pkg/game"
	"github.com/decker502/watchninja/pkg/systems"
	"github.com/decker502/watchninja/pkg/types"
)

// BestScoreStore 最高分持久化协作者
// 实现必须吞掉存储错误，把不可用或损坏的存储视为"没有纪录"
type BestScoreStore interface {
	LoadBestScore() (int, bool)
	SaveBestScore(score int) bool
}

// Engine 一局游戏的循环驱动器
//
// 所有状态只在帧回调中访问，不需要加锁。
type Engine struct {
	cfg   *config.GameConfig
	rng   game.RandomSource
	store BestScoreStore
	clock *game.FrameClock
	now   float64 // 最近一次宿主时间戳（秒），轨迹寿命按它计算

	world      *game.World
	trail      *systems.TrailSystem
	score      *systems.ScoreSystem
	difficulty *systems.DifficultyEngine
	spawn      *systems.SpawnSystem
	offers     *systems.OfferSpawnSystem
	physics    *systems.PhysicsSystem
	slash      *systems.SlashSystem
	effects    *systems.EffectSystem

	final     int
	finalized bool
	newBest   bool
	best      int
	hasBest   bool
}

// New 创建 Engine，处于 Start 阶段
//
// 参数:
//   - cfg: 游戏配置，为 nil 时使用默认配置；非法配置直接返回错误
//   - rng: 随机源，为 nil 时使用按时间播种的随机源
//   - store: 最高分存储，可为 nil（仅保存在内存中）
func New(cfg *config.GameConfig, rng game.RandomSource, store BestScoreStore) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if rng == nil {
		rng = game.NewRandomSource()
	}

	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		store: store,
		clock: game.NewFrameClock(cfg.Timing.MaxFrameDelta),
	}
	if store != nil {
		e.best, e.hasBest = store.LoadBestScore()
	}
	e.newRound()

	log.Printf("[Engine] Initialized: mode=%s act1=%.0fs act2=%.0fs", cfg.Mode, cfg.Timing.Act1Duration, cfg.Timing.Act2Duration)
	return e, nil
}

// newRound 丢弃上一局的全部状态，重新组装各系统
func (e *Engine) newRound() {
	w := game.NewWorld(e.cfg, e.rng)
	e.world = w
	e.trail = systems.NewTrailSystem(e.cfg.Trail)
	e.score = systems.NewScoreSystem(w)
	e.difficulty = systems.NewDifficultyEngine(e.cfg.Spawn, e.cfg.Timing.Act1Duration)
	e.spawn = systems.NewSpawnSystem(w, e.difficulty)
	e.offers = systems.NewOfferSpawnSystem(w)
	e.effects = systems.NewEffectSystem(w)
	e.physics = systems.NewPhysicsSystem(w, e.score, e.effects)
	e.slash = systems.NewSlashSystem(w, e.trail, e.score, e.effects)
	e.final, e.finalized, e.newBest = 0, false, false
}

// Play 开始游戏：Start → Act1
func (e *Engine) Play() error {
	if err := e.enter(types.PhaseAct1); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// StartSelling 幕间结束：Transition → Act2
// 库存为空时直接进入 Over
func (e *Engine) StartSelling() error {
	if cur := e.world.Phase.Current(); cur != types.PhaseTransition {
		return fmt.Errorf("start selling from %v: %w", cur, game.ErrInvalidTransition)
	}
	if e.world.Economy.Len() == 0 {
		log.Printf("[Engine] Inventory empty, skipping act 2")
		return e.finish()
	}
	return e.enter(types.PhaseAct2)
}

// Restart 丢弃当前一局，回到 Start
func (e *Engine) Restart() {
	log.Printf("[Engine] Round %s discarded at %v", shortID(e.world), e.world.Phase.Current())
	e.newRound()
}

// enter 切换阶段并发出 PhaseChanged 事件
func (e *Engine) enter(to types.RoundPhase) error {
	from := e.world.Phase.Current()
	if err := e.world.Phase.Transition(to); err != nil {
		return err
	}
	e.world.Emit(events.Event{Type: events.PhaseChanged})
	log.Printf("[Engine] Round %s: %v → %v", shortID(e.world), from, to)
	return nil
}

// GestureStart 手势按下
func (e *Engine) GestureStart(x, y, t float64) {
	e.observe(t)
	e.trail.GestureStart(vec(x, y), t)
}

// GestureMove 手势移动，未按下时忽略
func (e *Engine) GestureMove(x, y, t float64) {
	e.observe(t)
	e.trail.GestureMove(vec(x, y), t)
}

// GestureEnd 手势抬起
func (e *Engine) GestureEnd(x, y, t float64) {
	e.observe(t)
	e.trail.GestureMove(vec(x, y), t)
	e.trail.GestureEnd()
}

func vec(x, y float64) components.Vec2 {
	return components.Vec2{X: x, Y: y}
}

func (e *Engine) observe(t float64) {
	if t > e.now {
		e.now = t
	}
}

// Frame 宿主每帧调用一次，now 为单调时间戳（秒）
// 返回本帧是否推进了模拟（启动/恢复后的第一帧和暂停期间不推进）
func (e *Engine) Frame(now float64) bool {
	dt, ok := e.clock.Advance(now)
	if !ok {
		return false
	}
	e.observe(now)
	e.step(dt)
	return true
}

// Tick 直接推进 dt 秒模拟时间
// 与 Frame 一样，单步最多推进 MaxFrameDelta
func (e *Engine) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if limit := e.cfg.Timing.MaxFrameDelta; dt > limit {
		dt = limit
	}
	e.now += dt
	e.step(dt)
}

// Pause 宿主失去焦点
func (e *Engine) Pause() {
	if e.clock.Paused() {
		return
	}
	e.clock.Pause()
	e.trail.GestureEnd()
	log.Printf("[Engine] Paused")
}

// Resume 宿主恢复焦点，下一帧只重新记录时间戳
func (e *Engine) Resume() {
	if !e.clock.Paused() {
		return
	}
	e.clock.Resume()
	log.Printf("[Engine] Resumed")
}

// Paused 是否处于暂停状态
func (e *Engine) Paused() bool {
	return e.clock.Paused()
}

// step 按当前阶段的固定顺序推进各系统
func (e *Engine) step(dt float64) {
	switch e.world.Phase.Current() {
	case types.PhaseAct1:
		e.stepAct1(dt)
	case types.PhaseAct2:
		e.stepAct2(dt)
	default:
		e.trail.Prune(e.now)
		e.effects.Update(dt)
	}
}

func (e *Engine) stepAct1(dt float64) {
	e.trail.Prune(e.now)
	e.slash.UpdateCollectibles()
	e.spawn.Update(dt, e.world.Phase.Elapsed())
	e.physics.UpdateCollectibles(dt)
	e.effects.Update(dt)

	e.world.Phase.Advance(dt)
	if e.world.Phase.Reached(e.cfg.Timing.Act1Duration) {
		e.endAct1()
	}
}

func (e *Engine) stepAct2(dt float64) {
	e.trail.Prune(e.now)
	e.slash.UpdateOffers()
	e.offers.Update(dt, e.world.Phase.Elapsed())
	e.physics.UpdateOffers(dt)
	e.effects.Update(dt)

	e.world.Phase.Advance(dt)
	// 全部售出时提前结束，每帧都要检查
	if e.world.Phase.Reached(e.cfg.Timing.Act2Duration) || e.world.Economy.AllSold() {
		e.endAct2()
	}
}

// endAct1 第一幕计时结束，丢弃在场手表和残留的切片效果
func (e *Engine) endAct1() {
	e.world.Collectibles.Clear()
	e.effects.Clear()
	log.Printf("[Engine] Act 1 over: bought=%d spent=%d score=%d",
		e.world.Economy.Len(), e.world.Ledger.Act1Spending, e.world.Ledger.Score)

	if !e.world.IsMarket() {
		if err := e.finish(); err != nil {
			log.Printf("[Engine] Error: %v", err)
		}
		return
	}
	if err := e.enter(types.PhaseTransition); err != nil {
		log.Printf("[Engine] Error: %v", err)
	}
}

// endAct2 第二幕结束，在场卡片对应的商品全部释放
func (e *Engine) endAct2() {
	for _, o := range e.world.Offers.Items() {
		if !o.Resolved {
			e.world.Economy.Release(o.TargetIndex)
		}
	}
	e.world.Offers.Clear()
	if err := e.finish(); err != nil {
		log.Printf("[Engine] Error: %v", err)
	}
}

// finish 进入 Over 并固定最终结果，最高分只在这里保存一次
func (e *Engine) finish() error {
	if err := e.enter(types.PhaseOver); err != nil {
		return err
	}

	ledger := e.world.Ledger
	if e.world.IsMarket() {
		e.final = ledger.Profit()
	} else {
		e.final = ledger.Score
	}
	e.finalized = true

	improved := !e.hasBest || e.final > e.best
	if e.store != nil {
		improved = e.store.SaveBestScore(e.final)
	}
	if improved {
		e.best, e.hasBest, e.newBest = e.final, true, true
		e.world.Emit(events.Event{Type: events.NewBestScore, Amount: e.final})
	}

	rating := e.score.Rating(ledger.Score)
	log.Printf("[Engine] Round %s over: mode=%s score=%d spent=%d revenue=%d sold=%d/%d final=%d best=%d rating=%s",
		shortID(e.world), e.cfg.Mode, ledger.Score, ledger.Act1Spending, ledger.Act2Revenue,
		e.world.Economy.SoldCount(), e.world.Economy.Len(), e.final, e.best, rating.Label)
	return nil
}

// Final 最终结果，进入 Over 之前返回 false
func (e *Engine) Final() (int, bool) {
	return e.final, e.finalized
}

// DrainEvents 取走本帧之前累积的全部事件
func (e *Engine) DrainEvents() []events.Event {
	return e.world.Events.Drain()
}

// Phase 当前阶段
func (e *Engine) Phase() types.RoundPhase {
	return e.world.Phase.Current()
}

// RoundID 当前一局的标识，Restart 后更换
func (e *Engine) RoundID() uuid.UUID {
	return e.world.RoundID
}

func shortID(w *game.World) string {
	return w.RoundID.String()[:8]
}

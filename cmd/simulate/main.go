// simulate 无窗口模拟器：用一个简单的机器人跑完若干局，输出每局的结算
//
// 用法：
//
//	go run ./cmd/simulate -rounds 20 -mode market
//	go run ./cmd/simulate -config my.yaml -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/watchninja/pkg/config"
	"github.com/decker502/watchninja/pkg/engine"
	"github.com/decker502/watchninja/pkg/events"
	"github.com/decker502/watchninja/pkg/types"
)

const (
	frameDelta = 1.0 / 60.0
	// maxFramesPerRound 防止配置错误导致死循环
	maxFramesPerRound = 60 * 60 * 30
	swipeHalfWidth    = 60.0
)

var (
	rounds     = flag.Int("rounds", 10, "模拟局数")
	mode       = flag.String("mode", "", "玩法变体: market 或 arcade")
	configPath = flag.String("config", "", "覆盖默认配置的 YAML 文件")
	seed       = flag.Int64("seed", 1, "随机种子")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// bot 简单策略：第一幕只切正品，第二幕只接受盈利报价
type bot struct {
	e      *engine.Engine
	height float64
	now    float64
	counts map[events.Type]int
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *mode != "" {
		cfg.Mode = types.GameMode(*mode)
	}

	e, err := engine.New(cfg, rand.New(rand.NewSource(*seed)), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "引擎初始化失败: %v\n", err)
		os.Exit(1)
	}

	b := &bot{e: e, height: cfg.Playfield.Height}
	total := 0
	for i := 0; i < *rounds; i++ {
		final, err := b.playRound()
		if err != nil {
			fmt.Fprintf(os.Stderr, "第 %d 局: %v\n", i+1, err)
			os.Exit(1)
		}
		total += final
		v := e.View()
		fmt.Printf("round %2d  %s  final=%5d  spend=%4d  revenue=%4d  items=%2d  rating=%s  slashes=%d misses=%d fakes=%d\n",
			i+1, v.RoundID.String()[:8], final, v.Ledger.Act1Spending, v.Ledger.Act2Revenue, len(v.Inventory),
			v.Rating.Label, b.counts[events.SlashGenuine], b.counts[events.Miss], b.counts[events.SlashCounterfeit])
		e.Restart()
	}
	if *rounds > 0 {
		fmt.Printf("mode=%s rounds=%d average=%.1f\n", cfg.Mode, *rounds, float64(total)/float64(*rounds))
	}
}

// playRound 从 Start 跑到 Over，返回最终结果
func (b *bot) playRound() (int, error) {
	b.counts = make(map[events.Type]int)
	if err := b.e.Play(); err != nil {
		return 0, err
	}

	for frame := 0; frame < maxFramesPerRound; frame++ {
		switch b.e.Phase() {
		case types.PhaseAct1:
			b.act1()
		case types.PhaseAct2:
			b.act2()
		case types.PhaseTransition:
			if err := b.e.StartSelling(); err != nil {
				return 0, err
			}
		case types.PhaseOver:
			final, _ := b.e.Final()
			return final, nil
		}

		b.now += frameDelta
		b.e.Tick(frameDelta)
		for _, ev := range b.e.DrainEvents() {
			b.counts[ev.Type]++
		}
	}
	return 0, fmt.Errorf("round did not finish after %d frames", maxFramesPerRound)
}

// act1 每帧最多一次横划，目标是最先看到的正品
func (b *bot) act1() {
	v := b.e.View()
	for _, c := range v.Collectibles {
		if c.IsCounterfeit || c.Position.Y < 0 || c.Position.Y > b.height {
			continue
		}
		b.swipe(c.Position.X-swipeHalfWidth, c.Position.X+swipeHalfWidth, c.Position.Y)
		return
	}
}

// act2 亏本的报价向左划掉，其余向右接受
func (b *bot) act2() {
	v := b.e.View()
	for _, o := range v.Offers {
		if o.Resolved || o.Position.Y < 0 || o.Position.Y > b.height {
			continue
		}
		x, y := o.Position.X, o.Position.Y
		if o.Margin() > 0 {
			b.swipe(x-swipeHalfWidth, x+swipeHalfWidth, y)
		} else {
			b.swipe(x+swipeHalfWidth, x-swipeHalfWidth, y)
		}
		return
	}
}

func (b *bot) swipe(fromX, toX, y float64) {
	midX := (fromX + toX) / 2
	b.e.GestureStart(fromX, y, b.now)
	b.e.GestureMove(midX, y, b.now)
	b.e.GestureEnd(toX, y, b.now)
}

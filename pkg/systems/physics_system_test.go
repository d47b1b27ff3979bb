package systems

import (
	"math"
	"testing"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/events"
	"github.com/decker502/watchninja/pkg/types"
)

// TestIntegrateGravityScale 速度倍数 s 对应重力 s²，顶点高度不变
func TestIntegrateGravityScale(t *testing.T) {
	apex := func(s float64) float64 {
		k := components.Kinematics{
			Position:     components.Vec2{Y: 0},
			Velocity:     components.Vec2{Y: -600 * s},
			GravityScale: s * s,
		}
		minY := 0.0
		for i := 0; i < 20000 && k.Velocity.Y < 0; i++ {
			Integrate(&k, 600, 0.0005)
			minY = math.Min(minY, k.Position.Y)
		}
		return minY
	}

	base := apex(1)
	fast := apex(1.5)
	if math.Abs(base-fast) > 1 {
		t.Errorf("apex should not depend on speed scale: %v vs %v", base, fast)
	}
}

func TestOutOfBounds(t *testing.T) {
	ps := NewPhysicsSystem(newTestWorld(t, nil), nil, nil)

	tests := []struct {
		name string
		pos  components.Vec2
		vel  components.Vec2
		want bool
	}{
		{"on screen", components.Vec2{X: 200, Y: 400}, components.Vec2{Y: 100}, false},
		{"below bottom rising", components.Vec2{X: 200, Y: 900}, components.Vec2{Y: -100}, false},
		{"below bottom falling", components.Vec2{X: 200, Y: 945}, components.Vec2{Y: 100}, true},
		{"past right margin", components.Vec2{X: 591, Y: 400}, components.Vec2{}, true},
		{"past left margin", components.Vec2{X: -201, Y: 400}, components.Vec2{}, true},
		{"inside side margin", components.Vec2{X: -150, Y: 400}, components.Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := &components.Kinematics{Position: tt.pos, Velocity: tt.vel}
			if got := ps.OutOfBounds(k); got != tt.want {
				t.Errorf("OutOfBounds(%+v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

// TestMissPenaltyAppliedOnce 正品从右边界飞出只扣一次分
func TestMissPenaltyAppliedOnce(t *testing.T) {
	w := newTestWorld(t, nil, types.PhaseAct1)
	score := NewScoreSystem(w)
	ps := NewPhysicsSystem(w, score, NewEffectSystem(w))
	score.RegisterGenuine(15)

	w.Collectibles.Add(&components.CollectibleComponent{
		Kinematics: components.Kinematics{
			Position: components.Vec2{X: 585, Y: 300},
			Velocity: components.Vec2{X: 400},
		},
		Size: 60,
	})

	for i := 0; i < 10; i++ {
		ps.UpdateCollectibles(0.016)
	}

	if w.Collectibles.Len() != 0 {
		t.Fatalf("collectible should be removed, %d left", w.Collectibles.Len())
	}
	if w.Ledger.Score != 10 {
		t.Errorf("score = %d, want 10 (15 - 5)", w.Ledger.Score)
	}
	if w.Ledger.ComboCount != 0 {
		t.Errorf("miss should reset combo, got %d", w.Ledger.ComboCount)
	}

	evs := w.Events.Drain()
	if len(evs) != 1 || evs[0].Type != events.Miss || evs[0].Amount != -5 {
		t.Errorf("expected a single miss event, got %+v", evs)
	}
}

// TestMissShowsPenaltyPopup 漏接在可见区域内显示一条扣分飘字
func TestMissShowsPenaltyPopup(t *testing.T) {
	tests := []struct {
		name  string
		pos   components.Vec2
		vel   components.Vec2
		wantX float64
	}{
		{"right edge", components.Vec2{X: 585, Y: 300}, components.Vec2{X: 400}, 360},
		{"left edge", components.Vec2{X: -195, Y: 300}, components.Vec2{X: -400}, 30},
		{"bottom", components.Vec2{X: 150, Y: 940}, components.Vec2{Y: 200}, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, nil, types.PhaseAct1)
			ps := NewPhysicsSystem(w, NewScoreSystem(w), NewEffectSystem(w))
			w.Collectibles.Add(&components.CollectibleComponent{
				Kinematics: components.Kinematics{Position: tt.pos, Velocity: tt.vel},
				Size:       60,
			})

			for i := 0; i < 10; i++ {
				ps.UpdateCollectibles(0.016)
			}

			if w.Ledger.Score != -5 {
				t.Errorf("score = %d, want -5", w.Ledger.Score)
			}
			if w.Popups.Len() != 1 {
				t.Fatalf("expected 1 popup, got %d", w.Popups.Len())
			}
			p := w.Popups.At(0)
			if !p.Negative || p.Text != "-5€" {
				t.Errorf("popup = %q negative=%v, want -5€ negative", p.Text, p.Negative)
			}
			field := w.Config.Playfield
			if p.Position.X != tt.wantX || p.Position.Y != field.Height-30 {
				t.Errorf("popup at %+v, want (%v, %v)", p.Position, tt.wantX, field.Height-30)
			}
		})
	}
}

func TestGravityFor(t *testing.T) {
	phys := newTestWorld(t, nil).Config.Physics
	if got := GravityFor(phys, &components.ParticleComponent{}); got != phys.ParticleGravity {
		t.Errorf("particle gravity = %v, want %v", got, phys.ParticleGravity)
	}
	for _, e := range []components.Entity{
		&components.CollectibleComponent{},
		&components.BuyerOfferComponent{},
		&components.SplitHalfComponent{},
	} {
		if got := GravityFor(phys, e); got != phys.Gravity {
			t.Errorf("%v gravity = %v, want %v", e.Kind(), got, phys.Gravity)
		}
	}
}

func TestCounterfeitExitIsFree(t *testing.T) {
	w := newTestWorld(t, nil, types.PhaseAct1)
	ps := NewPhysicsSystem(w, NewScoreSystem(w), NewEffectSystem(w))

	w.Collectibles.Add(&components.CollectibleComponent{
		Kinematics:    components.Kinematics{Position: components.Vec2{X: 200, Y: 1000}, Velocity: components.Vec2{Y: 50}},
		IsCounterfeit: true,
	})
	ps.UpdateCollectibles(0.016)

	if w.Ledger.Score != 0 || w.Events.Len() != 0 || w.Popups.Len() != 0 {
		t.Errorf("counterfeit leaving screen should not score, score=%d events=%d popups=%d",
			w.Ledger.Score, w.Events.Len(), w.Popups.Len())
	}
}

// TestUnresolvedOfferReleasesItem 未处理的报价飞出屏幕后商品回到报价池
func TestUnresolvedOfferReleasesItem(t *testing.T) {
	w := newTestWorld(t, nil, types.PhaseAct1, types.PhaseTransition, types.PhaseAct2)
	ps := NewPhysicsSystem(w, NewScoreSystem(w), NewEffectSystem(w))

	w.Economy.Purchase(components.InventoryItem{Brand: "Montignac", DisplayPrice: 40, Cost: 40})
	idx, ok := w.Economy.NextEligible()
	if !ok {
		t.Fatal("expected an eligible item")
	}
	if _, ok := w.Economy.NextEligible(); ok {
		t.Fatal("pending item should not be eligible twice")
	}

	w.Offers.Add(&components.BuyerOfferComponent{
		Kinematics:  components.Kinematics{Position: components.Vec2{X: 200, Y: 1000}, Velocity: components.Vec2{Y: 100}},
		TargetIndex: idx,
	})
	ps.UpdateOffers(0.016)

	if w.Offers.Len() != 0 {
		t.Fatal("offer should be removed")
	}
	if again, ok := w.Economy.NextEligible(); !ok || again != idx {
		t.Errorf("released item should be eligible again, got %d/%v", again, ok)
	}
}

func TestResolvedOfferDoesNotReleaseTwice(t *testing.T) {
	w := newTestWorld(t, nil, types.PhaseAct1, types.PhaseTransition, types.PhaseAct2)
	ps := NewPhysicsSystem(w, NewScoreSystem(w), NewEffectSystem(w))

	w.Economy.Purchase(components.InventoryItem{Cost: 40})
	idx, _ := w.Economy.NextEligible()
	w.Economy.Release(idx)
	// 释放后立即被新卡片占用
	idx, _ = w.Economy.NextEligible()

	w.Offers.Add(&components.BuyerOfferComponent{
		Kinematics:  components.Kinematics{Position: components.Vec2{X: -300, Y: 300}},
		TargetIndex: idx,
		Resolved:    true,
	})
	ps.UpdateOffers(0.016)

	item, _ := w.Economy.Item(idx)
	if !item.OfferPending {
		t.Error("resolved offer leaving screen must not release the item again")
	}
}

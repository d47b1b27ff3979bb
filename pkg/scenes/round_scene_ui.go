package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/watchninja/pkg/engine"
	"github.com/decker502/watchninja/pkg/systems"
	"github.com/decker502/watchninja/pkg/types"
)

var (
	colorOverlay = color.RGBA{A: 170}
	colorFlash   = color.RGBA{R: 200, A: 255}
)

// maxInventoryLines 幕间列表最多显示的商品行数
const maxInventoryLines = 18

// Draw 绘制场景
func (s *RoundScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	v := s.engine.View()
	s.drawEntities(screen, &v)

	switch v.Phase {
	case types.PhaseStart:
		s.drawStart(screen, &v)
	case types.PhaseAct1, types.PhaseAct2:
		s.drawHUD(screen, &v)
	case types.PhaseTransition:
		s.drawTransition(screen, &v)
	case types.PhaseOver:
		s.drawOver(screen, &v)
	}

	if s.flash > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), fade(colorFlash, 0.35*s.flash/flashDuration), false)
	}
	if v.Paused {
		s.drawOverlay(screen)
		printCentered(screen, "PAUSE", s.width/2, s.height/2, colorText)
	}
}

func (s *RoundScene) drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), colorOverlay, false)
}

// drawHUD 两幕中的顶部信息栏
func (s *RoundScene) drawHUD(screen *ebiten.Image, v *engine.View) {
	l := v.Ledger
	lines := []string{fmt.Sprintf("%.0fs", v.Remaining+0.5)}

	switch {
	case v.Phase == types.PhaseAct2:
		sold := 0
		for _, it := range v.Inventory {
			if it.Sold {
				sold++
			}
		}
		lines = append(lines,
			fmt.Sprintf("Revenu %d EUR  Depense %d EUR", l.Act2Revenue, l.Act1Spending),
			fmt.Sprintf("Vendus %d/%d", sold, len(v.Inventory)),
			"-> accepter   <- refuser")
	case v.Mode == types.ModeMarket:
		lines = append(lines,
			fmt.Sprintf("Score %d  x%d (combo %d)", l.Score, l.ComboMultiplier, l.ComboCount),
			fmt.Sprintf("Achats %d  Depense %d EUR", len(v.Inventory), l.Act1Spending))
	default:
		lines = append(lines, fmt.Sprintf("Score %d  x%d (combo %d)", l.Score, l.ComboMultiplier, l.ComboCount))
	}

	for i, line := range lines {
		drawText(screen, line, 10, float64(10+i*16), colorText)
	}
}

func (s *RoundScene) drawStart(screen *ebiten.Image, v *engine.View) {
	s.drawOverlay(screen)
	cx, cy := s.width/2, s.height/2
	printCentered(screen, "WATCH NINJA", cx, cy-80, colorText)
	if v.Mode == types.ModeMarket {
		printCentered(screen, "Acte 1: achetez les vraies montres", cx, cy-40, colorText)
		printCentered(screen, "Acte 2: revendez-les avec profit", cx, cy-20, colorText)
	} else {
		printCentered(screen, "Tranchez les vraies, evitez les fausses", cx, cy-30, colorText)
	}
	if v.HasBest {
		printCentered(screen, fmt.Sprintf("Record: %d", v.BestScore), cx, cy+20, colorText)
	}
	printCentered(screen, "Touchez pour jouer", cx, cy+60, colorText)
}

// drawTransition 幕间：列出买入的库存
func (s *RoundScene) drawTransition(screen *ebiten.Image, v *engine.View) {
	s.drawOverlay(screen)
	cx := s.width / 2
	y := 80.0
	printCentered(screen, fmt.Sprintf("Inventaire: %d montres", len(v.Inventory)), cx, y, colorText)
	printCentered(screen, fmt.Sprintf("Depense totale: %d EUR", v.Ledger.Act1Spending), cx, y+20, colorText)

	y += 60
	for i, it := range v.Inventory {
		if i == maxInventoryLines {
			printCentered(screen, fmt.Sprintf("... +%d", len(v.Inventory)-i), cx, y, colorText)
			y += 18
			break
		}
		tag := ""
		switch {
		case it.IsPremium:
			tag = " [or]"
		case it.IsCounterfeit:
			tag = " [faux]"
		}
		printCentered(screen, fmt.Sprintf("%-11s %3d EUR%s", it.Brand, it.Cost, tag), cx, y, colorText)
		y += 18
	}

	if len(v.Inventory) == 0 {
		printCentered(screen, "Rien a vendre", cx, y, colorText)
	}
	printCentered(screen, "Touchez pour vendre", cx, s.height-80, colorText)
}

func (s *RoundScene) drawOver(screen *ebiten.Image, v *engine.View) {
	s.drawOverlay(screen)
	cx, cy := s.width/2, s.height/2

	if v.Mode == types.ModeMarket {
		clr := colorText
		if v.Final < 0 {
			clr = colorLoss
		}
		printCentered(screen, fmt.Sprintf("Profit: %+d EUR", v.Final), cx, cy-80, clr)
		printCentered(screen, fmt.Sprintf("Achats %d EUR  Ventes %d EUR", v.Ledger.Act1Spending, v.Ledger.Act2Revenue), cx, cy-60, colorText)
	} else {
		printCentered(screen, fmt.Sprintf("Score: %d", v.Final), cx, cy-80, colorText)
	}

	stars := strings.Repeat("*", v.Rating.Stars) + strings.Repeat(".", 5-min(v.Rating.Stars, 5))
	printCentered(screen, fmt.Sprintf("%s  %s", stars, v.Rating.Label), cx, cy-30, colorText)

	if v.NewBest {
		printCentered(screen, "NOUVEAU RECORD!", cx, cy+10, systems.ColorPremium)
	} else if v.HasBest {
		printCentered(screen, fmt.Sprintf("Record: %d", v.BestScore), cx, cy+10, colorText)
	}
	printCentered(screen, "Touchez pour rejouer", cx, cy+60, colorText)
}

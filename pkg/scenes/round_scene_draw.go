package scenes

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/watchninja/pkg/components"
	"github.com/decker502/watchninja/pkg/engine"
	"github.com/decker502/watchninja/pkg/systems"
)

var (
	colorBackground = color.RGBA{R: 18, G: 22, B: 30, A: 255}
	colorTrail      = color.RGBA{R: 230, G: 240, B: 255, A: 255}
	colorCard       = color.RGBA{R: 245, G: 240, B: 228, A: 255}
	colorCardBorder = color.RGBA{R: 60, G: 50, B: 40, A: 255}
	colorDial       = color.RGBA{R: 250, G: 250, B: 245, A: 255}
	colorText       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	colorInk        = color.RGBA{R: 40, G: 34, B: 28, A: 255}
	colorLoss       = color.RGBA{R: 255, G: 90, B: 80, A: 255}
)

// hudFace 界面文字使用的位图字体（只有 ASCII 字形）
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// fade 按透明度缩放颜色（color.RGBA 为预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// drawText 以 (x, y) 为左上角绘制文字
func drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, asciiText(str), hudFace, opts)
}

// printCentered 以 (x, y) 为中心绘制文字
func printCentered(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	opts.PrimaryAlign = text.AlignCenter
	opts.SecondaryAlign = text.AlignCenter
	text.Draw(screen, asciiText(str), hudFace, opts)
}

// asciiReplacer 位图字体缺少的字形（欧元符号、法语重音）改写为 ASCII
var asciiReplacer = strings.NewReplacer(
	"€", " EUR",
	"é", "e", "è", "e", "ê", "e",
	"à", "a", "â", "a",
	"ç", "c", "ô", "o", "î", "i", "û", "u",
)

func asciiText(str string) string {
	return asciiReplacer.Replace(str)
}

// caseColor 表壳颜色：偷偷使用正品配色的假货只能靠品牌名分辨
func caseColor(fake, premium, sneaky bool) color.RGBA {
	switch {
	case premium:
		return systems.ColorPremium
	case fake && !sneaky:
		return systems.ColorCounterfeit
	default:
		return systems.ColorGenuine
	}
}

// drawEntities 按 背景效果 → 实体 → 轨迹 → 飘字 的顺序绘制
func (s *RoundScene) drawEntities(screen *ebiten.Image, v *engine.View) {
	for _, h := range v.Halves {
		s.drawHalf(screen, h)
	}
	for _, c := range v.Collectibles {
		s.drawWatch(screen, c)
	}
	for _, o := range v.Offers {
		s.drawOffer(screen, o)
	}
	for _, p := range v.Particles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), fade(p.Color, p.Alpha()), true)
	}
	s.drawTrail(screen, v.Trail)
	for _, p := range v.Popups {
		if p.Alpha <= 0.05 {
			continue
		}
		clr := colorText
		if p.Negative {
			clr = colorLoss
		}
		printCentered(screen, p.Text, p.Position.X, p.Position.Y, fade(clr, p.Alpha))
	}
}

func (s *RoundScene) drawWatch(screen *ebiten.Image, c *components.CollectibleComponent) {
	x, y := float32(c.Position.X), float32(c.Position.Y)
	r := float32(c.Size / 2)
	body := caseColor(c.IsCounterfeit, c.IsPremium, c.Sneaky)

	switch c.Style {
	case components.StyleSquare:
		vector.DrawFilledRect(screen, x-r, y-r, 2*r, 2*r, body, true)
		vector.DrawFilledRect(screen, x-r*0.75, y-r*0.75, 1.5*r, 1.5*r, colorDial, true)
	case components.StyleSport:
		vector.DrawFilledCircle(screen, x, y, r, body, true)
		vector.DrawFilledCircle(screen, x, y, r*0.7, colorDial, true)
		vector.StrokeCircle(screen, x, y, r*0.85, 3, colorCardBorder, true)
	default:
		vector.DrawFilledCircle(screen, x, y, r, body, true)
		vector.DrawFilledCircle(screen, x, y, r*0.78, colorDial, true)
	}

	// 表针随旋转角转动
	hx := x + float32(math.Cos(c.Rotation))*r*0.55
	hy := y + float32(math.Sin(c.Rotation))*r*0.55
	vector.StrokeLine(screen, x, y, hx, hy, 2, colorCardBorder, true)

	printCentered(screen, c.Brand, c.Position.X, c.Position.Y+c.Size/2+10, colorText)
	printCentered(screen, fmt.Sprintf("%d€", c.DisplayPrice), c.Position.X, c.Position.Y-c.Size/2-8, colorText)
}

func (s *RoundScene) drawHalf(screen *ebiten.Image, h *components.SplitHalfComponent) {
	body := fade(caseColor(h.Fake, h.Premium, h.Sneaky), h.FadeAlpha)
	dial := fade(colorDial, h.FadeAlpha)

	// 用偏向切线一侧的小圆近似半块表盘
	offset := h.Size / 4
	if h.Side == components.ClipLeft {
		offset = -offset
	}
	cx := h.Position.X - math.Sin(h.CutAngle)*offset
	cy := h.Position.Y + math.Cos(h.CutAngle)*offset
	r := float32(h.Size / 2 * 0.7)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, body, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r*0.7, dial, true)
}

func (s *RoundScene) drawOffer(screen *ebiten.Image, o *components.BuyerOfferComponent) {
	x := float32(o.Position.X - o.Width/2)
	y := float32(o.Position.Y - o.Height/2)
	w, h := float32(o.Width), float32(o.Height)

	border := colorCardBorder
	if o.IsCounterfeit {
		border = systems.ColorCounterfeit
	} else if o.IsPremium {
		border = systems.ColorPremium
	}
	vector.DrawFilledRect(screen, x, y, w, h, colorCard, true)
	vector.StrokeRect(screen, x, y, w, h, 3, border, true)

	printCentered(screen, o.Brand, o.Position.X, o.Position.Y-18, colorInk)
	printCentered(screen, fmt.Sprintf("Paye %d€", o.Cost), o.Position.X, o.Position.Y, colorInk)
	offer := colorInk
	if o.Margin() < 0 {
		offer = colorLoss
	}
	printCentered(screen, fmt.Sprintf("Offre %d€", o.OfferPrice), o.Position.X, o.Position.Y+18, offer)
}

// drawTrail 轨迹越新越粗
func (s *RoundScene) drawTrail(screen *ebiten.Image, pts []components.TrailPoint) {
	n := len(pts)
	for i := 1; i < n; i++ {
		a, b := pts[i-1].Position, pts[i].Position
		k := float64(i) / float64(n)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(2+6*k), fade(colorTrail, 0.3+0.7*k), true)
	}
}

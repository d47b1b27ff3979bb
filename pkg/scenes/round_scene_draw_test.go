package scenes

import (
	"image/color"
	"testing"

	"github.com/decker502/watchninja/pkg/systems"
)

func TestASCIIText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"+15€", "+15 EUR"},
		{"Négociant", "Negociant"},
		{"Légende", "Legende"},
		{"Montignac", "Montignac"},
	}
	for _, tt := range tests {
		if got := asciiText(tt.in); got != tt.want {
			t.Errorf("asciiText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	tests := []struct {
		alpha float64
		want  color.RGBA
	}{
		{1, c},
		{2, c},
		{0, color.RGBA{}},
		{-1, color.RGBA{}},
		{0.5, color.RGBA{R: 100, G: 50, B: 25, A: 127}},
	}
	for _, tt := range tests {
		if got := fade(c, tt.alpha); got != tt.want {
			t.Errorf("fade(%v) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestCaseColor(t *testing.T) {
	tests := []struct {
		name                  string
		fake, premium, sneaky bool
		want                  color.RGBA
	}{
		{"genuine", false, false, false, systems.ColorGenuine},
		{"premium", false, true, false, systems.ColorPremium},
		{"counterfeit", true, false, false, systems.ColorCounterfeit},
		{"sneaky counterfeit looks genuine", true, false, true, systems.ColorGenuine},
	}
	for _, tt := range tests {
		if got := caseColor(tt.fake, tt.premium, tt.sneaky); got != tt.want {
			t.Errorf("%s: caseColor = %v, want %v", tt.name, got, tt.want)
		}
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/decker502/watchninja/pkg/types"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

// TestEmbeddedDefaultsMatch data/game.yaml 必须与 Default() 完全一致
func TestEmbeddedDefaultsMatch(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "game.yaml"))
	if err != nil {
		t.Fatalf("failed to read data/game.yaml: %v", err)
	}

	cfg, err := Parse(data, &GameConfig{})
	if err != nil {
		t.Fatalf("Parse(data/game.yaml) error: %v", err)
	}

	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("data/game.yaml differs from Default():\n got: %+v\nwant: %+v", cfg, Default())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "override keeps unspecified defaults",
			yamlContent: `
mode: arcade
timing:
  act1Duration: 30
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Mode != types.ModeArcade {
					t.Errorf("expected mode arcade, got %q", cfg.Mode)
				}
				if cfg.Timing.Act1Duration != 30 {
					t.Errorf("expected act1Duration = 30, got %v", cfg.Timing.Act1Duration)
				}
				if cfg.Timing.Act2Duration != DefaultAct2Duration {
					t.Errorf("expected act2Duration default, got %v", cfg.Timing.Act2Duration)
				}
				if cfg.Physics.Gravity != 600 {
					t.Errorf("expected default gravity 600, got %v", cfg.Physics.Gravity)
				}
			},
		},
		{
			name: "zero duration fails fast",
			yamlContent: `
timing:
  act1Duration: 0
`,
			wantErr:     true,
			errContains: "timing.act1Duration must be > 0",
		},
		{
			name: "negative act2 duration",
			yamlContent: `
timing:
  act2Duration: -5
`,
			wantErr:     true,
			errContains: "timing.act2Duration must be > 0",
		},
		{
			name: "unknown mode",
			yamlContent: `
mode: coop
`,
			wantErr:     true,
			errContains: "unknown mode",
		},
		{
			name: "combo must start at zero",
			yamlContent: `
scoring:
  combo:
    - { minCombo: 3, multiplier: 2 }
`,
			wantErr:     true,
			errContains: "must start at minCombo 0",
		},
		{
			name: "combo thresholds increasing",
			yamlContent: `
scoring:
  combo:
    - { minCombo: 0, multiplier: 1 }
    - { minCombo: 5, multiplier: 2 }
    - { minCombo: 5, multiplier: 3 }
`,
			wantErr:     true,
			errContains: "strictly increasing",
		},
		{
			name: "combo multiplier below one",
			yamlContent: `
scoring:
  combo:
    - { minCombo: 0, multiplier: 0 }
`,
			wantErr:     true,
			errContains: "multiplier must be >= 1",
		},
		{
			name: "probability out of range",
			yamlContent: `
spawn:
  counterfeitBase: 0.8
  counterfeitRange: 0.5
`,
			wantErr:     true,
			errContains: "within [0, 1]",
		},
		{
			name: "negative interval range",
			yamlContent: `
spawn:
  intervalRange: -0.5
`,
			wantErr:     true,
			errContains: "spawn.intervalRange must be >= 0",
		},
		{
			name: "negative speed range",
			yamlContent: `
spawn:
  speedRange: -0.2
`,
			wantErr:     true,
			errContains: "spawn.speedRange must be >= 0",
		},
		{
			name: "negative counterfeit range",
			yamlContent: `
spawn:
  counterfeitRange: -0.1
`,
			wantErr:     true,
			errContains: "spawn.counterfeitRange must be >= 0",
		},
		{
			name: "negative bad chance range",
			yamlContent: `
offers:
  badChanceRange: -0.1
`,
			wantErr:     true,
			errContains: "offers.badChanceRange must be >= 0",
		},
		{
			name: "empty fake name tier",
			yamlContent: `
spawn:
  fakeNameTiers:
    - []
`,
			wantErr:     true,
			errContains: "fakeNameTiers[0] cannot be empty",
		},
		{
			name: "inverted price range",
			yamlContent: `
prices:
  genuine: { min: 60, max: 30 }
`,
			wantErr:     true,
			errContains: "prices.genuine",
		},
		{
			name:        "malformed yaml",
			yamlContent: "timing: [",
			wantErr:     true,
			errContains: "failed to parse game config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yamlContent), Default())

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestValidationErrorsAreSentinel(t *testing.T) {
	cfg := Default()
	cfg.Offers.Interval = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseDoesNotMutateBase(t *testing.T) {
	base := Default()
	if _, err := Parse([]byte("timing:\n  act1Duration: 10\n"), base); err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if base.Timing.Act1Duration != DefaultAct1Duration {
		t.Errorf("base was mutated: act1Duration = %v", base.Timing.Act1Duration)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  premiumChance: 0.1\n"), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadFile(path, Default())
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Spawn.PremiumChance != 0.1 {
		t.Errorf("expected premiumChance 0.1, got %v", cfg.Spawn.PremiumChance)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml"), Default()); err == nil {
		t.Error("expected error for missing file")
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"musicbingo/internal/domain"
)

// Rule is the JSON form of one place's win requirement.
type Rule struct {
	Place    string   `json:"place"`
	Lines    int      `json:"lines"`
	FullCard bool     `json:"full_card"`
	Shapes   []string `json:"shapes"` // "row", "column", "diagonal"; empty means rows and columns
}

// RulePreset is a named house rule set.
type RulePreset struct {
	ID    string `json:"id"`
	Rules []Rule `json:"rules"`
}

// EngineConfig tunes scheduling and names the available rule presets.
type EngineConfig struct {
	DefaultPreset string       `json:"default_preset"`
	Presets       []RulePreset `json:"presets"`
	// MaxSteeringAttempts bounds the resample loop for target rounds.
	MaxSteeringAttempts int `json:"max_steering_attempts"`
	// CallAttemptsPerDeck is how many call-sequence reshuffles to try before
	// regenerating the card set.
	CallAttemptsPerDeck int `json:"call_attempts_per_deck"`
}

var (
	cfg      *EngineConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadEngineConfig loads the engine configuration from the given path.
func LoadEngineConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read engine config: %w", err)
			return
		}

		var c EngineConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal engine config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetEngineConfig returns the global engine configuration, or nil if unloaded.
func GetEngineConfig() *EngineConfig {
	return cfg
}

// MaxSteeringAttempts returns the configured attempt budget for target-round
// steering.
func MaxSteeringAttempts() int {
	if cfg == nil || cfg.MaxSteeringAttempts <= 0 {
		return 200 // Safe default
	}
	return cfg.MaxSteeringAttempts
}

// CallAttemptsPerDeck returns how many call sequences to try per card set
// during steering.
func CallAttemptsPerDeck() int {
	if cfg == nil || cfg.CallAttemptsPerDeck <= 0 {
		return 25
	}
	return cfg.CallAttemptsPerDeck
}

// GetRules returns the win rules for a preset ID, falling back to the default
// preset and finally to the built-in house rules.
func GetRules(presetID string) []domain.WinRule {
	if cfg == nil {
		return builtinRules(presetID)
	}

	target := presetID
	if target == "" {
		target = cfg.DefaultPreset
	}

	for _, p := range cfg.Presets {
		if p.ID == target {
			return toWinRules(p.Rules)
		}
	}
	for _, p := range cfg.Presets {
		if p.ID == cfg.DefaultPreset {
			return toWinRules(p.Rules)
		}
	}
	return builtinRules(presetID)
}

func builtinRules(presetID string) []domain.WinRule {
	if presetID == "diagonals" {
		return domain.DiagonalRules()
	}
	return domain.DefaultRules()
}

func toWinRules(rules []Rule) []domain.WinRule {
	out := make([]domain.WinRule, len(rules))
	for i, r := range rules {
		out[i] = domain.WinRule{
			Place:    r.Place,
			Lines:    r.Lines,
			FullCard: r.FullCard,
			Allowed:  toShapes(r.Shapes),
		}
	}
	return out
}

func toShapes(names []string) []domain.ShapeKind {
	if len(names) == 0 {
		return nil
	}
	out := make([]domain.ShapeKind, 0, len(names))
	for _, n := range names {
		switch n {
		case "row":
			out = append(out, domain.ShapeRow)
		case "column":
			out = append(out, domain.ShapeColumn)
		case "diagonal":
			out = append(out, domain.ShapeDiagonal)
		}
	}
	return out
}

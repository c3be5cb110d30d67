package config

import (
	"sort"

	"github.com/san-kum/algoviz/internal/dataset"
)

type Preset struct {
	Description string
	apply       func(*Config)
}

var Presets = map[string]Preset{
	"classroom": {
		Description: "ten values at half speed, easy to follow aloud",
		apply: func(c *Config) {
			c.ArraySize, c.Speed = 10, 0.5
		},
	},
	"worst_case": {
		Description: "reversed input, every pair is an inversion",
		apply: func(c *Config) {
			c.Algorithm, c.ArraySize, c.Pattern = "bubble", 12, dataset.PatternReversed
		},
	},
	"nearly_sorted": {
		Description: "a few swaps away from sorted, shows the early exit",
		apply: func(c *Config) {
			c.Algorithm, c.ArraySize, c.Pattern = "bubble", 20, dataset.PatternNearlySorted
		},
	},
	"duplicates": {
		Description: "thirty values drawn from three keys",
		apply: func(c *Config) {
			c.Algorithm, c.ArraySize, c.Pattern = "insertion", 30, dataset.PatternFewUnique
		},
	},
	"stress": {
		Description: "largest input at top speed",
		apply: func(c *Config) {
			c.ArraySize, c.Speed, c.ValueMax = dataset.MaxSize, 3.0, 50
		},
	},
	"lopsided_tree": {
		Description: "a right-leaning tree for post-order",
		apply: func(c *Config) {
			c.Algorithm, c.Variant = TreeAlgorithm, "Post-Order"
			c.Tree = TreeConfig{Root: 1, Nodes: []dataset.Node{
				{Key: 1, Left: 0, Right: 3, Pos: dataset.Point{X: 0.2, Y: 0.9}},
				{Key: 0, Left: dataset.None, Right: dataset.None, Pos: dataset.Point{X: 0.1, Y: 0.7}},
				{Key: 3, Left: 2, Right: 5, Pos: dataset.Point{X: 0.4, Y: 0.7}},
				{Key: 2, Left: dataset.None, Right: dataset.None, Pos: dataset.Point{X: 0.3, Y: 0.5}},
				{Key: 5, Left: 4, Right: 6, Pos: dataset.Point{X: 0.6, Y: 0.5}},
				{Key: 4, Left: dataset.None, Right: dataset.None, Pos: dataset.Point{X: 0.5, Y: 0.3}},
				{Key: 6, Left: dataset.None, Right: dataset.None, Pos: dataset.Point{X: 0.8, Y: 0.3}},
			}}
		},
	},
}

// GetPreset returns the defaults with the named preset applied, nil when
// the name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	p.apply(cfg)
	return cfg
}

// ApplyPreset layers the named preset over cfg. It reports false when the
// name is unknown.
func ApplyPreset(cfg *Config, name string) bool {
	p, ok := Presets[name]
	if ok {
		p.apply(cfg)
	}
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

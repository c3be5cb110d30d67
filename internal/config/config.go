package config

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/viz"
)

const (
	// TreeAlgorithm selects the traversal in the configured variant.
	TreeAlgorithm    = "tree"
	DefaultAlgorithm = TreeAlgorithm
	DefaultTheme     = "classic"
)

type Config struct {
	Algorithm string          `yaml:"algorithm"`
	Variant   string          `yaml:"variant"`
	Speed     float64         `yaml:"speed"`
	ArraySize int             `yaml:"array_size"`
	ValueMin  int             `yaml:"value_min"`
	ValueMax  int             `yaml:"value_max"`
	Pattern   dataset.Pattern `yaml:"pattern"`
	Seed      int64           `yaml:"seed"`
	Theme     string          `yaml:"theme"`
	Tree      TreeConfig      `yaml:"tree"`
}

// TreeConfig overrides the built-in tree. With no nodes the reference BST
// is used.
type TreeConfig struct {
	Root  int            `yaml:"root"`
	Nodes []dataset.Node `yaml:"nodes,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Variant:   algo.InOrder.String(),
		Speed:     float64(player.DefaultSpeed),
		ArraySize: dataset.DefaultSize,
		ValueMin:  dataset.DefaultMinValue,
		ValueMax:  dataset.DefaultMaxValue,
		Pattern:   dataset.PatternRandom,
		Theme:     DefaultTheme,
		Tree:      TreeConfig{Root: dataset.ReferenceRoot},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Tree.Nodes = append([]dataset.Node(nil), c.Tree.Nodes...)
	return &out
}

// Clamp pulls size and speed back into their ranges. Other fields are left
// to Validate.
func (c *Config) Clamp() *Config {
	c.ArraySize = dataset.ClampSize(c.ArraySize)
	c.Speed = float64(player.ClampSpeed(c.Speed))
	return c
}

// Validate reports every problem with the sorting and traversal settings.
// The tree definition is checked separately by Tree so that a bad tree
// only disables the traversal view.
func (c *Config) Validate() error {
	var err error
	if c.ValueMin > c.ValueMax {
		err = multierr.Append(err, fmt.Errorf("%w: value_min %d > value_max %d", dataset.ErrValueRange, c.ValueMin, c.ValueMax))
	}
	if !knownPattern(c.Pattern) {
		err = multierr.Append(err, fmt.Errorf("%w: %q", dataset.ErrUnknownPattern, c.Pattern))
	}
	if _, verr := algo.ParseVariant(c.Variant); verr != nil {
		err = multierr.Append(err, verr)
	}
	if _, aerr := c.AlgorithmInfo(); aerr != nil {
		err = multierr.Append(err, aerr)
	}
	if _, terr := viz.LookupTheme(c.Theme); terr != nil {
		err = multierr.Append(err, terr)
	}
	return err
}

// BuildTree builds the traversal subject.
func (c *Config) BuildTree() (*dataset.Tree, error) {
	if len(c.Tree.Nodes) == 0 {
		return dataset.ReferenceTree(), nil
	}
	return dataset.NewTree(c.Tree.Root, c.Tree.Nodes)
}

func (c *Config) SpeedValue() player.Speed { return player.ClampSpeed(c.Speed) }

// VariantValue falls back to in-order when the name is not recognised.
func (c *Config) VariantValue() algo.Variant {
	v, err := algo.ParseVariant(c.Variant)
	if err != nil {
		return algo.InOrder
	}
	return v
}

// AlgorithmInfo resolves Algorithm. TreeAlgorithm and an empty name stand
// for the traversal in the configured variant.
func (c *Config) AlgorithmInfo() (algo.Info, error) {
	name := c.Algorithm
	if name == "" || name == TreeAlgorithm {
		name = c.VariantValue().String()
	}
	return algo.NewRegistry().Lookup(name)
}

func knownPattern(p dataset.Pattern) bool {
	for _, known := range dataset.Patterns() {
		if p == known {
			return true
		}
	}
	return false
}

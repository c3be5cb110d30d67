package tui

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/player"
)

type tab int

const (
	tabTree tab = iota
	tabBubble
	tabInsertion
)

var tabTitles = [...]string{
	tabTree:      "Tree Traversal",
	tabBubble:    "Bubble Sort",
	tabInsertion: "Insertion Sort",
}

func (t tab) String() string { return tabTitles[t] }

// panel is one tab: its own data, driver and metrics.
type panel struct {
	kind     tab
	driver   *player.Driver
	recorder *metrics.Recorder
	chart    string
	trend    string
	size     int
	variant  algo.Variant
	tree     *dataset.Tree
	// err disables the panel; only a rejected tree definition sets it.
	err error
}

func (p *panel) sorting() bool { return p.kind != tabTree }

func (p *panel) usable() bool { return p.err == nil && p.driver != nil }

func newTreePanel(tree *dataset.Tree, treeErr error, v algo.Variant, speed player.Speed, log *zap.Logger) *panel {
	p := &panel{kind: tabTree, variant: v, tree: tree, err: treeErr, chart: "visited", trend: "path_depth"}
	if treeErr != nil {
		return p
	}
	p.recorder = metrics.NewRecorder(metrics.DefaultCapacity, metrics.ForTree()...)
	p.driver = player.NewDriver(algo.NewTraversal(tree, v), log)
	p.driver.AddObserver(p.recorder)
	p.driver.SetSpeed(speed)
	return p
}

func newSortPanel(kind tab, seq *dataset.Sequence, speed player.Speed, log *zap.Logger) *panel {
	p := &panel{kind: kind, size: seq.Len(), chart: "inversions", trend: "swaps"}
	p.recorder = metrics.NewRecorder(metrics.DefaultCapacity, metrics.ForSequence()...)
	p.driver = player.NewDriver(sortEngine(kind, seq), log)
	p.driver.AddObserver(p.recorder)
	p.driver.SetSpeed(speed)
	p.announce(seq)
	return p
}

// announce logs freshly generated data; the next Start clears it.
func (p *panel) announce(seq *dataset.Sequence) {
	p.driver.Transcript().Append("Generated new array: " + seq.String())
}

func sortEngine(kind tab, seq *dataset.Sequence) algo.Engine {
	if kind == tabInsertion {
		return algo.NewInsertion(seq)
	}
	return algo.NewBubble(seq)
}

// regenerate draws new data of the panel's size, abandoning any run.
func (p *panel) regenerate(rng *rand.Rand, cfg *config.Config) error {
	seq, err := dataset.GeneratePattern(rng, cfg.Pattern, p.size, cfg.ValueMin, cfg.ValueMax)
	if err != nil {
		return err
	}
	p.driver.Reset()
	if err := p.driver.Replace(sortEngine(p.kind, seq)); err != nil {
		return err
	}
	p.announce(seq)
	return nil
}

// cycleVariant switches the traversal to the next order, abandoning any run.
func (p *panel) cycleVariant() error {
	vs := algo.Variants()
	p.variant = vs[(int(p.variant)+1)%len(vs)]
	p.driver.Reset()
	return p.driver.Replace(algo.NewTraversal(p.tree, p.variant))
}

func (p *panel) describe() string {
	if p.sorting() {
		return fmt.Sprintf("%d values", p.size)
	}
	return p.variant.String()
}

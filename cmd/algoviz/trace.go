package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/viz"
)

const (
	plotWidth  = 60
	plotHeight = 8
	treeWidth  = 40
	treeHeight = 12
)

type traceOptions struct {
	Realtime bool
	Plot     bool
	NoColor  bool
}

// palette colors trace lines by the action that produced them.
type palette struct {
	title, compare, move, visit, done, muted, bad *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		title:   color.New(color.Bold),
		compare: color.New(color.FgHiYellow),
		move:    color.New(color.FgHiRed),
		visit:   color.New(color.FgHiMagenta),
		done:    color.New(color.FgHiGreen, color.Bold),
		muted:   color.New(color.FgHiBlack),
		bad:     color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.compare, p.move, p.visit, p.done, p.muted, p.bad} {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) forAction(a algo.Action) *color.Color {
	switch a {
	case algo.ActionStart, algo.ActionBegin:
		return p.title
	case algo.ActionCompare:
		return p.compare
	case algo.ActionSwap, algo.ActionShift, algo.ActionPlace:
		return p.move
	case algo.ActionVisit:
		return p.visit
	case algo.ActionFinish:
		return p.done
	}
	return p.muted
}

// runTrace plays one algorithm to completion and prints every log line.
// The name "tree" traverses in the configured variant.
func runTrace(ctx context.Context, w io.Writer, cfg *config.Config, name string, opts traceOptions, log *zap.Logger) error {
	pal := newPalette(opts.NoColor)
	reg := algo.NewRegistry()
	if name == "" || name == config.TreeAlgorithm {
		name = cfg.VariantValue().String()
	}
	info, err := reg.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w (try `algoviz list`)", err)
	}

	var (
		subject algo.Subject
		rec     *metrics.Recorder
	)
	if info.Tree {
		tree, err := cfg.BuildTree()
		if err != nil {
			printProblems(w, pal, err)
			return err
		}
		subject.Tree = tree
		rec = metrics.NewRecorder(metrics.DefaultCapacity, metrics.ForTree()...)
	} else {
		s := cfg.Seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		seq, err := dataset.GeneratePattern(rand.New(rand.NewSource(s)), cfg.Pattern, dataset.ClampSize(cfg.ArraySize), cfg.ValueMin, cfg.ValueMax)
		if err != nil {
			return err
		}
		subject.Sequence = seq
		rec = metrics.NewRecorder(metrics.DefaultCapacity, metrics.ForSequence()...)
		pal.muted.Fprintf(w, "input %s (seed %d)\n", seq, s)
	}

	engine, err := reg.New(info.Name, subject)
	if err != nil {
		return err
	}
	d := player.NewDriver(engine, log)
	d.SetSpeed(cfg.SpeedValue())
	d.AddObserver(rec)

	wait := player.Instant
	if opts.Realtime {
		wait = player.Sleep
	}
	err = d.Run(ctx, wait, func(s algo.Step) {
		c := pal.forAction(s.Action)
		for _, line := range s.Log {
			c.Fprintln(w, line)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	last, _ := d.Last()
	pal.title.Fprintf(w, "%s: %d steps at %s\n", engine.Name(), last.Index+1, d.Speed())
	for _, m := range rec.Names() {
		v, _ := rec.Value(m)
		fmt.Fprintf(w, "  %-12s %g\n", m, v)
	}
	if opts.Plot {
		for _, m := range rec.Names() {
			if chart := viz.Chart(rec.History(m), m, plotWidth, plotHeight); chart != "" {
				fmt.Fprintf(w, "\n%s\n", chart)
			}
		}
	}
	return nil
}

// printTree validates the configured tree and draws it.
func printTree(w io.Writer, cfg *config.Config, noColor bool) error {
	pal := newPalette(noColor)
	tree, err := cfg.BuildTree()
	if err != nil {
		printProblems(w, pal, err)
		return err
	}
	pal.title.Fprintf(w, "root %d, %d nodes, depth %d\n", tree.Root(), tree.Len(), tree.Depth())
	for _, n := range tree.Nodes() {
		fmt.Fprintf(w, "  %3d  left %-4s right %-4s at (%.2f, %.2f)\n", n.Key, childLabel(n.Left), childLabel(n.Right), n.Pos.X, n.Pos.Y)
	}
	frame, _ := algo.NewTraversal(tree, algo.InOrder).Frame().(algo.TreeFrame)
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimRight(viz.TreeCanvas(tree, frame, treeWidth, treeHeight).String(), "\n"))
	return nil
}

func printProblems(w io.Writer, pal palette, err error) {
	pal.bad.Fprintln(w, "tree definition rejected:")
	for _, p := range dataset.Problems(err) {
		pal.bad.Fprintf(w, "  - %v\n", p)
	}
}

func childLabel(key int) string {
	if key == dataset.None {
		return "-"
	}
	return fmt.Sprint(key)
}

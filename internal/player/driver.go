// Package player drives a step engine: it owns the run state, the speed
// and the transcript, and hands each step to whoever renders it. It never
// sleeps itself; the host decides how a pause is spent.
package player

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/algo"
)

type State uint8

const (
	Idle State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Observer is told about every step of a run and reset when a new run
// begins.
type Observer interface {
	OnStep(algo.Step)
	Reset()
}

// Driver sequences one engine. Each Start opens a new run epoch; a step can
// only be pulled with the epoch of the current run, so a reset makes every
// pending tick for the old run fail with ErrStaleRun.
type Driver struct {
	engine     algo.Engine
	speed      Speed
	state      State
	epoch      uint64
	transcript Transcript
	observers  []Observer
	last       algo.Step
	stepped    bool
	base       *zap.Logger
	log        *zap.Logger
}

func NewDriver(e algo.Engine, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{engine: e, speed: DefaultSpeed, base: log, log: log.With(zap.String("engine", e.Name()))}
}

func (d *Driver) Engine() algo.Engine     { return d.engine }
func (d *Driver) State() State            { return d.state }
func (d *Driver) Epoch() uint64           { return d.epoch }
func (d *Driver) Speed() Speed            { return d.speed }
func (d *Driver) Transcript() *Transcript { return &d.transcript }
func (d *Driver) AddObserver(o Observer)  { d.observers = append(d.observers, o) }

func (d *Driver) Delay(s algo.Step) time.Duration { return d.speed.Delay(s.Delay) }

// SetSpeed applies the clamped speed; it takes effect from the next pause.
func (d *Driver) SetSpeed(s Speed) {
	d.speed = ClampSpeed(float64(s))
}

// Last is the most recent step of the current run.
func (d *Driver) Last() (algo.Step, bool) { return d.last, d.stepped }

// Frame is what should be on screen: the last step's snapshot, or the
// untouched subject before any step.
func (d *Driver) Frame() algo.Frame {
	if d.stepped {
		return d.last.Frame
	}
	return d.engine.Frame()
}

// Start begins a run from the engine's initial data and returns its first
// step with the run's epoch. A finished run is replayed from the start.
func (d *Driver) Start() (algo.Step, uint64, error) {
	if d.state == Running {
		return algo.Step{}, d.epoch, ErrRunning
	}
	d.engine.Reset()
	d.transcript.Clear()
	for _, o := range d.observers {
		o.Reset()
	}
	d.epoch++
	d.state = Running
	d.log.Info("run started", zap.Uint64("epoch", d.epoch), zap.Stringer("speed", d.speed))
	return d.pull(), d.epoch, nil
}

// Advance pulls the next step of the run identified by epoch.
func (d *Driver) Advance(epoch uint64) (algo.Step, error) {
	if epoch != d.epoch {
		return algo.Step{}, fmt.Errorf("%w: got %d, current %d", ErrStaleRun, epoch, d.epoch)
	}
	if d.state != Running {
		return algo.Step{}, ErrNotRunning
	}
	return d.pull(), nil
}

func (d *Driver) pull() algo.Step {
	step := d.engine.Next()
	d.transcript.Append(step.Log...)
	for _, o := range d.observers {
		o.OnStep(step)
	}
	d.last, d.stepped = step, true
	if step.Done {
		d.state = Finished
		d.log.Info("run finished", zap.Uint64("epoch", d.epoch), zap.Int("steps", step.Index+1))
	} else {
		d.log.Debug("step", zap.Int("index", step.Index), zap.Stringer("action", step.Action))
	}
	return step
}

// Reset abandons any run, clears the transcript and restores the subject.
func (d *Driver) Reset() {
	if d.state == Running {
		d.log.Info("run aborted", zap.Uint64("epoch", d.epoch))
	}
	d.epoch++
	d.engine.Reset()
	d.transcript.Clear()
	for _, o := range d.observers {
		o.Reset()
	}
	d.state = Idle
	d.last, d.stepped = algo.Step{}, false
}

// Replace swaps in a new engine, for new data or another variant.
func (d *Driver) Replace(e algo.Engine) error {
	if d.state == Running {
		return ErrRunning
	}
	d.engine = e
	d.log = d.base.With(zap.String("engine", e.Name()))
	d.Reset()
	return nil
}

// WaitFunc spends the pause between two steps.
type WaitFunc func(ctx context.Context, pause time.Duration) error

// Sleep waits in real time.
func Sleep(ctx context.Context, pause time.Duration) error {
	if pause <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Instant skips every pause.
func Instant(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// Run plays a whole run headless: render is called once per step and wait
// once between steps. A canceled context abandons the run.
func (d *Driver) Run(ctx context.Context, wait WaitFunc, render func(algo.Step)) error {
	step, epoch, err := d.Start()
	if err != nil {
		return err
	}
	for {
		if render != nil {
			render(step)
		}
		if step.Done {
			return nil
		}
		if err := wait(ctx, d.Delay(step)); err != nil {
			d.abandon()
			return err
		}
		select {
		case <-ctx.Done():
			d.abandon()
			return ctx.Err()
		default:
		}
		if step, err = d.Advance(epoch); err != nil {
			return err
		}
	}
}

func (d *Driver) abandon() {
	d.log.Info("run canceled", zap.Uint64("epoch", d.epoch))
	d.epoch++
	d.state = Idle
}

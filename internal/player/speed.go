package player

import (
	"fmt"
	"math"
	"time"
)

const (
	MinSpeed     Speed = 0.1
	MaxSpeed     Speed = 3.0
	DefaultSpeed Speed = 1.0
	SpeedStep    Speed = 0.1
)

// Speed scales every base delay: the pause after a step is base/speed.
type Speed float64

// ClampSpeed keeps v inside [MinSpeed, MaxSpeed], rounded to one decimal.
func ClampSpeed(v float64) Speed {
	s := Speed(math.Round(v*10) / 10)
	switch {
	case s < MinSpeed:
		return MinSpeed
	case s > MaxSpeed:
		return MaxSpeed
	}
	return s
}

// Delay converts a base delay in seconds into the pause at this speed.
func (s Speed) Delay(base float64) time.Duration {
	if base <= 0 {
		return 0
	}
	if s <= 0 {
		s = MinSpeed
	}
	return time.Duration(base * float64(time.Second) / float64(s))
}

func (s Speed) Faster() Speed { return ClampSpeed(float64(s + SpeedStep)) }
func (s Speed) Slower() Speed { return ClampSpeed(float64(s - SpeedStep)) }

func (s Speed) String() string { return fmt.Sprintf("%.1fx", float64(s)) }

// Package system wires the CPU, Timer, and PPU together in the fixed
// per-step order the core's determinism depends on: interrupt check and
// fetch/execute, then timers, then PPU, with anything either of those raises
// only becoming visible at the next step's interrupt check.
package system

import (
	"errors"
	"fmt"

	"github.com/hejops/gone-dmg/cpu"
	"github.com/hejops/gone-dmg/ppu"
	"github.com/hejops/gone-dmg/timer"
)

// FrameCycles is the number of M-cycles in one full 154-scanline frame
// (114 M-cycles/scanline x 154 scanlines).
const FrameCycles = 17556

// Cpu is the slice of *cpu.Cpu the driver needs.
type Cpu interface {
	Step() (int, error)
	Stuck() bool
}

// Timer is the slice of *timer.Timer the driver needs.
type Timer interface {
	Advance(mCycles int)
}

// Ppu is the slice of *ppu.Screen the driver needs.
type Ppu interface {
	Advance(mCycles int, sink ppu.PixelSink)
}

// Driver is the sole caller of cpu.Step/timer.Advance/ppu.Advance, always in
// that order, for exactly one CPU step at a time.
type Driver struct {
	Cpu   Cpu
	Timer Timer
	Ppu   Ppu
}

// New builds a Driver from already-constructed components sharing one bus.
func New(c *cpu.Cpu, t *timer.Timer, p *ppu.Screen) *Driver {
	return &Driver{Cpu: c, Timer: t, Ppu: p}
}

// ErrHalted is returned by Step/Run when the CPU is halted with IE entirely
// clear, so no interrupt is able to wake it: a terminal condition for a ROM
// with no external input source.
var ErrHalted = errors.New("system: cpu halted with no pending interrupt")

// Step runs exactly one CPU step, then advances the timer and PPU by the
// M-cycles it consumed, in that fixed order. Any interrupt either of those
// raises only becomes visible at the next call's interrupt check.
func (d *Driver) Step(sink ppu.PixelSink) (int, error) {
	if d.Cpu.Stuck() {
		return 0, ErrHalted
	}
	m, err := d.Cpu.Step()
	if err != nil {
		return 0, fmt.Errorf("system: step: %w", err)
	}
	d.Timer.Advance(m)
	d.Ppu.Advance(m, sink)
	return m, nil
}

// RunFrame steps the driver until at least one frame's worth of M-cycles has
// elapsed, then returns. It never sleeps; frame pacing is the caller's job.
func (d *Driver) RunFrame(sink ppu.PixelSink) error {
	spent := 0
	for spent < FrameCycles {
		m, err := d.Step(sink)
		if err != nil {
			return err
		}
		spent += m
	}
	return nil
}

// Run steps the driver indefinitely, forwarding each frame's scanlines to
// sink, until a fatal decoder error or a terminal HALT is reached.
func (d *Driver) Run(sink ppu.PixelSink) error {
	for {
		if err := d.RunFrame(sink); err != nil {
			return err
		}
	}
}

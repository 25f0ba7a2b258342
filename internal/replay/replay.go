// Package replay re-simulates journaled runs. A run is fully described by
// its seed, tick rate and the ticks at which jump was pressed, so feeding
// the same frames to a fresh game reproduces it exactly.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// ErrDiverged is returned when a re-simulation does not reproduce the
// journaled outcome.
var ErrDiverged = errors.New("replay: run diverged")

// Script yields the recorded input frame for each tick of a run.
type Script struct {
	jumps map[int]bool
	ticks int
}

// NewScript builds the input script for a run.
func NewScript(run core.RunLog) *Script {
	jumps := make(map[int]bool, len(run.Jumps))
	for _, t := range run.Jumps {
		jumps[t] = true
	}
	return &Script{jumps: jumps, ticks: run.Ticks}
}

// Len returns the number of ticks in the run.
func (s *Script) Len() int {
	return s.ticks
}

// Frame returns the input for the given session tick.
func (s *Script) Frame(tick int) core.InputFrame {
	in := core.NewInputFrame()
	if s.jumps[tick] {
		in.Set(core.ActionJump)
	}
	return in
}

// RuntimeConfig returns the runtime the run must be replayed with.
func RuntimeConfig(run core.RunLog, screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: run.TickRate,
		Seed:     run.Seed,
	}
}

// Verify replays run headlessly on a new instance of the registered game
// and returns the log the re-simulation produced. It returns ErrDiverged
// when that log does not match the journaled one.
func Verify(gameID string, run core.RunLog) (core.RunLog, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return core.RunLog{}, fmt.Errorf("replay: %w", err)
	}
	game.Reset(RuntimeConfig(run, core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH))

	script := NewScript(run)
	for tick := 0; tick < script.Len(); tick++ {
		res := game.Step(script.Frame(tick))
		if res.Ended == nil {
			continue
		}
		got := *res.Ended
		if err := compare(got, run); err != nil {
			return got, err
		}
		return got, nil
	}
	return core.RunLog{}, fmt.Errorf("%w: no ending after %d ticks", ErrDiverged, script.Len())
}

func compare(got, want core.RunLog) error {
	switch {
	case got.Ticks != want.Ticks:
		return fmt.Errorf("%w: ended at tick %d, journal says %d", ErrDiverged, got.Ticks, want.Ticks)
	case got.Score != want.Score:
		return fmt.Errorf("%w: score %d, journal says %d", ErrDiverged, got.Score, want.Score)
	case got.Reason != want.Reason:
		return fmt.Errorf("%w: ended by %s, journal says %s", ErrDiverged, got.Reason, want.Reason)
	}
	return nil
}

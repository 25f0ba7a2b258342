package replay

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
	_ "github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// record plays a game with a jump every tenth tick from tick 10 on and
// returns the log of the first run.
func record(t *testing.T, gameID string) core.RunLog {
	t.Helper()
	game, err := registry.Create(gameID)
	if err != nil {
		t.Fatalf("Create(%q): %v", gameID, err)
	}
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99})

	for tick := 0; tick < 10000; tick++ {
		in := core.NewInputFrame()
		if tick >= 10 && tick%10 == 0 {
			in.Set(core.ActionJump)
		}
		if res := game.Step(in); res.Ended != nil {
			return *res.Ended
		}
	}
	t.Fatal("run never ended")
	return core.RunLog{}
}

func TestScriptFrames(t *testing.T) {
	s := NewScript(core.RunLog{Ticks: 5, Jumps: []int{0, 3}})
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	for tick, want := range []bool{true, false, false, true, false} {
		if got := s.Frame(tick).Has(core.ActionJump); got != want {
			t.Errorf("Frame(%d) jump = %v, want %v", tick, got, want)
		}
	}
}

func TestVerifyReproducesRun(t *testing.T) {
	for _, id := range []string{"dodge", "dodge_classic"} {
		run := record(t, id)
		got, err := Verify(id, run)
		if err != nil {
			t.Fatalf("%s: Verify() failed: %v", id, err)
		}
		if !reflect.DeepEqual(got, run) {
			t.Errorf("%s: replayed log = %+v, want %+v", id, got, run)
		}
	}
}

func TestVerifyDetectsDivergence(t *testing.T) {
	run := record(t, "dodge")

	tests := []struct {
		name   string
		mutate func(*core.RunLog)
	}{
		{"score", func(r *core.RunLog) { r.Score++ }},
		{"reason", func(r *core.RunLog) { r.Reason = "something_else" }},
		{"truncated", func(r *core.RunLog) { r.Ticks-- }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := run
			tampered.Jumps = append([]int(nil), run.Jumps...)
			tt.mutate(&tampered)
			if _, err := Verify("dodge", tampered); !errors.Is(err, ErrDiverged) {
				t.Errorf("Verify() error = %v, want ErrDiverged", err)
			}
		})
	}
}

func TestVerifyUnknownGame(t *testing.T) {
	if _, err := Verify("nope", core.RunLog{Ticks: 1}); err == nil {
		t.Error("Verify() accepted an unknown game")
	}
}

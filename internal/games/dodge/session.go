package dodge

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/arcade"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Phase is the controller state of a session.
type Phase int

const (
	PhaseWaiting Phase = iota // player frozen, waiting for the first jump
	PhaseRunning              // timers running, collisions checked
	PhaseEnding               // run over, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseRunning:
		return "running"
	case PhaseEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// EndReason records why a run ended.
type EndReason string

const (
	EndOutOfBounds EndReason = "out_of_bounds"
	EndCollision   EndReason = "collision"
)

// Obstacle is a pooled body scrolling toward the player.
type Obstacle struct {
	Body arcade.Body

	// RetireOutOfBounds returns the obstacle to the pool once it has been
	// inside the world and then left it.
	RetireOutOfBounds bool
	entered           bool
}

// Session is everything one playthrough owns. A restart builds a new
// Session instead of resetting fields of the old one.
type Session struct {
	phase         Phase
	player        arcade.Body
	playerVisible bool
	obstacles     *arcade.Pool[Obstacle]
	score         int

	spawnTimer arcade.Interval
	scoreTimer arcade.Interval

	scoreLabel arcade.Label
	prompt     arcade.Label

	jumpEnabled bool
	rng         *rand.Rand
	seed        int64

	tick    int           // steps taken by this session
	elapsed time.Duration // run time since the start press
	jumps   []int         // tick indices of applied jumps
	spawned int
	reason  EndReason
}

func newSession(cfg config.DodgeConfig, seed int64) *Session {
	pc := cfg.Player
	player := arcade.NewBody(pc.X, pc.Y, pc.Width, pc.Height)
	player.SetHitbox(pc.Hitbox.Width, pc.Hitbox.Height, pc.Hitbox.OffsetX, pc.Hitbox.OffsetY)
	player.Gravity.Y = pc.Gravity
	player.Enabled = false

	return &Session{
		phase:         PhaseWaiting,
		player:        player,
		playerVisible: true,
		obstacles:     arcade.NewPool[Obstacle](cfg.Obstacles.PoolSize),
		spawnTimer:    arcade.NewInterval(cfg.SpawnInterval()),
		scoreTimer:    arcade.NewInterval(cfg.ScoreInterval()),
		scoreLabel: arcade.Label{
			Text: scoreText(0),
			Pos:  arcade.Vec2{X: 20, Y: 20},
		},
		prompt: arcade.Label{
			Text:    cfg.Labels.Start,
			Pos:     arcade.Vec2{X: 20, Y: 36},
			Visible: true,
		},
		jumpEnabled: true,
		rng:         rand.New(rand.NewSource(seed)),
		seed:        seed,
	}
}

// freezePlayer parks the player off-stage with physics off.
func (s *Session) freezePlayer() {
	s.player.Enabled = false
	s.player.Vel = arcade.Vec2{}
	s.player.Gravity = arcade.Vec2{}
	s.player.Pos = arcade.Vec2{X: -2 * s.player.Size.X, Y: -2 * s.player.Size.Y}
	s.playerVisible = false
}

func (s *Session) runLog(tickRate int) core.RunLog {
	jumps := make([]int, len(s.jumps))
	copy(jumps, s.jumps)
	return core.RunLog{
		Seed:     s.seed,
		TickRate: tickRate,
		Ticks:    s.tick,
		Jumps:    jumps,
		Score:    s.score,
		Reason:   string(s.reason),
		Duration: s.elapsed,
	}
}

func scoreText(score int) string {
	return fmt.Sprintf("SCORE: %d", score)
}

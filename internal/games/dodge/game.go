// Package dodge implements an endless dodge game.
// The player falls under gravity and jumps to avoid obstacles that spawn at
// the right edge and scroll left. Score counts whole seconds survived.
package dodge

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/arcade"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// RestartPolicy selects what happens once a run ends.
type RestartPolicy int

const (
	// RestartDeferred parks the player and lets the field clear before
	// accepting a restart press.
	RestartDeferred RestartPolicy = iota
	// RestartImmediate rebuilds the session within the ending tick.
	RestartImmediate
)

// String returns the policy name.
func (p RestartPolicy) String() string {
	if p == RestartImmediate {
		return "immediate"
	}
	return "deferred"
}

var activeConfig = config.DefaultDodgeConfig()

// SetConfig sets the configuration used by games created after the call
// on their next Reset. The CLI calls it once after loading the config file.
func SetConfig(cfg config.DodgeConfig) {
	activeConfig = cfg
}

// Game is the game loop controller. It owns one Session at a time and
// replaces it wholesale on restart.
type Game struct {
	id     string
	policy RestartPolicy

	override *config.DodgeConfig // tests only
	cfg      config.DodgeConfig
	runtime  core.RuntimeConfig
	world    arcade.World
	logger   *log.Logger

	sess     *Session
	sessions int64 // sessions built since Reset; offsets the session seed
	paused   bool
}

// New creates a dodge game with the given registry id and restart policy.
func New(id string, policy RestartPolicy) *Game {
	return &Game{id: id, policy: policy}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.policy == RestartImmediate {
		return "Dodge (classic)"
	}
	return "Dodge"
}

// Policy returns the restart policy.
func (g *Game) Policy() RestartPolicy {
	return g.policy
}

// Reset initializes the game and builds the first session. The first
// session is seeded with cfg.Seed; each restart adds one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.cfg = activeConfig
	if g.override != nil {
		g.cfg = *g.override
	}
	g.world = arcade.World{W: g.cfg.World.Width, H: g.cfg.World.Height}
	g.logger = log.Default().WithPrefix(g.id)
	g.paused = false
	g.sessions = 0
	g.newSession()
}

func (g *Game) newSession() {
	seed := g.runtime.Seed + g.sessions
	g.sessions++
	g.sess = newSession(g.cfg, seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.sess

	// Handle pause toggle
	if in.Has(core.ActionPause) && s.phase == PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	tick := s.tick
	s.tick++
	dt := g.runtime.TickDuration()

	var ended *core.RunLog
	switch s.phase {
	case PhaseWaiting:
		// The starting tick does not advance run time.
		if in.Has(core.ActionJump) && s.jumpEnabled {
			g.start()
			g.jump(tick)
		}
	case PhaseRunning:
		if in.Has(core.ActionJump) && s.jumpEnabled {
			g.jump(tick)
		}
		ended = g.run(dt)
	case PhaseEnding:
		g.drain(dt, in)
	}

	return core.StepResult{State: g.State(), Ended: ended}
}

// start moves a waiting session into Running.
func (g *Game) start() {
	s := g.sess
	s.phase = PhaseRunning
	s.player.Enabled = true
	s.spawnTimer.Start()
	s.scoreTimer.Start()
	s.prompt.Visible = false
	s.scoreLabel.Visible = true
	g.logger.Debug("run started", "seed", s.seed, "policy", g.policy)
}

// jump overwrites the player's vertical velocity.
func (g *Game) jump(tick int) {
	s := g.sess
	s.player.Vel.Y = g.cfg.Player.JumpVelocity
	s.jumps = append(s.jumps, tick)
}

// run steps a running session: physics, timers, then the end checks.
func (g *Game) run(dt time.Duration) *core.RunLog {
	s := g.sess
	s.player.Step(dt)
	g.moveObstacles(dt)
	s.elapsed += dt

	for n := s.spawnTimer.Advance(dt); n > 0; n-- {
		g.addObstacle()
	}
	for n := s.scoreTimer.Advance(dt); n > 0; n-- {
		g.addScore()
	}

	if !g.world.InWorld(s.player.Bounds()) {
		return g.end(EndOutOfBounds)
	}
	if g.collides() {
		return g.end(EndCollision)
	}
	return nil
}

// moveObstacles steps every live obstacle and retires the ones that have
// left the world.
func (g *Game) moveObstacles(dt time.Duration) {
	pool := g.sess.obstacles
	pool.EachLive(func(idx int, o *Obstacle) {
		o.Body.Step(dt)
		if g.world.InWorld(o.Body.Bounds()) {
			o.entered = true
			return
		}
		if o.entered && o.RetireOutOfBounds {
			pool.Release(idx)
		}
	})
}

// addObstacle spawns one obstacle at the right edge at a random height
// with a random leftward speed in [base, 2*base).
func (g *Game) addObstacle() {
	s := g.sess
	_, o, ok := s.obstacles.Acquire()
	if !ok {
		panic(fmt.Errorf("dodge: spawn with %d live obstacles: %w", s.obstacles.Live(), arcade.ErrPoolExhausted))
	}

	oc := g.cfg.Obstacles
	y := (g.world.H - oc.Height) * s.rng.Float64()
	body := arcade.NewBody(g.world.W, y, oc.Width, oc.Height)
	body.SetHitbox(oc.Hitbox.Width, oc.Hitbox.Height, oc.Hitbox.OffsetX, oc.Hitbox.OffsetY)
	body.Vel.X = -oc.BaseSpeed * (1 + s.rng.Float64())

	*o = Obstacle{
		Body:              body,
		RetireOutOfBounds: true,
		entered:           g.world.InWorld(body.Bounds()),
	}
	s.spawned++
}

func (g *Game) addScore() {
	s := g.sess
	s.score++
	s.scoreLabel.Text = scoreText(s.score)
}

// collides reports whether the player's hitbox overlaps any live obstacle.
func (g *Game) collides() bool {
	hb := g.sess.player.Hitbox()
	hit := false
	g.sess.obstacles.EachLive(func(_ int, o *Obstacle) {
		if !hit && hb.Overlaps(o.Body.Hitbox()) {
			hit = true
		}
	})
	return hit
}

// end finishes the run and applies the restart policy. It returns the
// log of the finished run.
func (g *Game) end(reason EndReason) *core.RunLog {
	s := g.sess
	s.spawnTimer.Stop()
	s.scoreTimer.Stop()
	s.phase = PhaseEnding
	s.reason = reason

	run := s.runLog(g.runtime.TickRate)
	g.logger.Debug("run ended",
		"reason", reason,
		"score", s.score,
		"ticks", s.tick,
		"elapsed", s.elapsed)

	switch g.policy {
	case RestartImmediate:
		g.newSession()
	default:
		s.freezePlayer()
		s.jumpEnabled = false
	}
	return &run
}

// drain runs the deferred-restart ending: obstacles keep moving until the
// pool is empty, then a jump press starts a fresh session.
func (g *Game) drain(dt time.Duration, in core.InputFrame) {
	s := g.sess
	if s.jumpEnabled {
		if in.Has(core.ActionJump) {
			g.logger.Debug("restart")
			g.newSession()
		}
		return
	}

	g.moveObstacles(dt)
	if s.obstacles.Live() == 0 {
		s.prompt.Text = g.cfg.Labels.Restart
		s.prompt.Visible = true
		s.jumpEnabled = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.sess
	return core.GameState{
		Score:    s.score,
		Phase:    s.phase.String(),
		GameOver: s.phase == PhaseEnding,
		Paused:   g.paused,
	}
}

// Register both restart variants with the registry.
func init() {
	registry.Register("dodge", "Wait for the field to clear, then jump to play again", func() registry.Game {
		return New("dodge", RestartDeferred)
	})
	registry.Register("dodge_classic", "Start over the moment you crash", func() registry.Game {
		return New("dodge_classic", RestartImmediate)
	})
}

// internal/app/game.go
package app

import (
	"log/slog"
	"math"

	"go-delivery-canvas/internal/config"
	"go-delivery-canvas/internal/event"
	"go-delivery-canvas/internal/portrayal"
	"go-delivery-canvas/internal/scene"
	"go-delivery-canvas/internal/sim"
	"go-delivery-canvas/internal/utils"
	"go-delivery-canvas/pkg/render"
)

// Game ties the delivery world to a renderer: Update advances the world at a
// fixed rate, Draw renders the current state from scratch.
type Game struct {
	World           *sim.World
	Portrayer       *portrayal.Portrayer
	Renderer        *scene.Renderer
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	SpeedMultiplier float64

	cfg         config.Config
	logger      *slog.Logger
	frame       int
	accumulator float64
	isPaused    bool
	speedState  int
	completed   int
	finished    bool
}

// NewGame builds a world from cfg and a renderer drawing on surface.
func NewGame(cfg config.Config, surface render.Surface, logger *slog.Logger) *Game {
	if logger == nil {
		logger = render.Logger()
	}
	rng := utils.NewPRNGService(cfg.Seed)
	dispatcher := event.NewDispatcher()
	g := &Game{
		World:           sim.NewWorld(cfg, rng),
		Portrayer:       portrayal.New(cfg),
		EventDispatcher: dispatcher,
		Rng:             rng,
		SpeedMultiplier: 1.0,
		cfg:             cfg,
		logger:          logger,
	}
	g.Renderer = scene.NewRenderer(surface,
		scene.WithPalette(cfg.RenderPalette()),
		scene.WithSkipHook(event.SkipHook(dispatcher, &g.frame)),
		scene.WithLogger(logger),
	)
	return g
}

// Update advances the world by as many fixed steps as deltaTime covers.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.finished {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.accumulator += deltaTime * g.SpeedMultiplier
	tick := 1.0 / float64(g.cfg.TPS)
	for g.accumulator >= tick && !g.finished {
		g.accumulator -= tick
		g.Step()
	}
}

// Step advances the world exactly once.
func (g *Game) Step() {
	if g.finished {
		return
	}
	g.World.Step()

	if done := g.World.TasksCompleted(); done > g.completed {
		for i := g.completed; i < done; i++ {
			g.EventDispatcher.Dispatch(event.Event{Type: event.TaskCompleted, Data: g.World.Steps()})
		}
		g.completed = done
	}
	if !g.World.Running() {
		g.finished = true
		g.logger.Info("run finished", "steps", g.World.Steps(), "score", g.World.Score())
		g.EventDispatcher.Dispatch(event.Event{Type: event.RunFinished, Data: g.World.Score()})
	}
}

// Draw renders the current world state as a complete frame.
func (g *Game) Draw() {
	entities := g.Portrayer.Frame(g.World.Agents())
	g.Renderer.Render(entities)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.FrameRendered,
		Data: event.FrameData{Frame: g.frame, Entities: len(entities)},
	})
	g.frame++
}

func (g *Game) Frame() int           { return g.frame }
func (g *Game) Finished() bool       { return g.finished }
func (g *Game) IsPaused() bool       { return g.isPaused }
func (g *Game) HandlePauseClick()    { g.isPaused = !g.isPaused }
func (g *Game) Logger() *slog.Logger { return g.logger }

// HandleSpeedClick cycles the speed through x1, x2 and x4.
func (g *Game) HandleSpeedClick() {
	g.speedState = (g.speedState + 1) % 3
	g.SpeedMultiplier = math.Pow(2, float64(g.speedState))
}

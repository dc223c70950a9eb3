package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-delivery-canvas/internal/config"
	"go-delivery-canvas/internal/event"
	"go-delivery-canvas/pkg/render"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 21
	return cfg
}

func TestGameDrawRendersFullFrames(t *testing.T) {
	cfg := testConfig()
	rec := render.NewRecorder(cfg.Width, cfg.Height)
	g := NewGame(cfg, rec, nil)
	counter := event.NewCounter()
	g.EventDispatcher.Subscribe(event.FrameRendered, counter)
	g.EventDispatcher.Subscribe(event.EntitySkipped, counter)

	g.Draw()
	g.Step()
	g.Draw()

	frames := rec.Frames()
	require.Len(t, frames, 2)
	assert.Len(t, rec.Ops(), len(frames[0])+len(frames[1]))
	assert.Equal(t, 2, g.Frame())
	assert.Equal(t, 2, counter.Count(event.FrameRendered))
	assert.Zero(t, counter.Count(event.EntitySkipped))
}

func TestGameUpdateUsesFixedTicks(t *testing.T) {
	cfg := testConfig()
	cfg.TPS = 16 // tick of 0.0625s
	g := NewGame(cfg, render.NewRecorder(cfg.Width, cfg.Height), nil)

	g.Update(0.03125)
	assert.Equal(t, 0, g.World.Steps())
	g.Update(0.03125)
	assert.Equal(t, 1, g.World.Steps())

	// large gaps are clamped to MaxDeltaTime, which is below one tick
	g.Update(10)
	assert.Equal(t, 1, g.World.Steps())

	g.HandleSpeedClick()
	assert.Equal(t, 2.0, g.SpeedMultiplier)
	g.Update(0.03125)
	assert.Equal(t, 2, g.World.Steps())

	g.HandlePauseClick()
	assert.True(t, g.IsPaused())
	g.Update(0.06)
	assert.Equal(t, 2, g.World.Steps())

	g.HandleSpeedClick()
	g.HandleSpeedClick()
	assert.Equal(t, 1.0, g.SpeedMultiplier)
}

func TestGameFinishes(t *testing.T) {
	cfg := testConfig()
	cfg.SpaceSize = 5
	cfg.Agents = 2
	cfg.Split = 0.5
	cfg.Jobs = 2
	cfg.Warehouses = 1
	g := NewGame(cfg, render.NewRecorder(cfg.Width, cfg.Height), nil)
	counter := event.NewCounter()
	g.EventDispatcher.Subscribe(event.TaskCompleted, counter)
	g.EventDispatcher.Subscribe(event.RunFinished, counter)

	for i := 0; i < 20000 && !g.Finished(); i++ {
		g.Step()
	}

	require.True(t, g.Finished())
	assert.Equal(t, 2, counter.Count(event.TaskCompleted))
	assert.Equal(t, 1, counter.Count(event.RunFinished))

	steps := g.World.Steps()
	g.Step()
	g.Update(1)
	assert.Equal(t, steps, g.World.Steps())
}

package portrayal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-delivery-canvas/internal/config"
	"go-delivery-canvas/internal/scene"
	"go-delivery-canvas/internal/sim"
	"go-delivery-canvas/internal/utils"
	"go-delivery-canvas/pkg/render"
)

func TestPortray(t *testing.T) {
	p := New(config.Default())
	pos := utils.Vec2{X: 5, Y: 15}

	cases := []struct {
		name  string
		agent sim.Agent
		want  scene.Entity
	}{
		{
			name:  "job",
			agent: sim.Agent{Kind: sim.KindJob, Pos: pos, Value: 7, Priority: 1},
			want:  scene.Entity{Shape: scene.ShapeTriangle, X: 0.25, Y: 0.75, Radius: 18.75, Value: "7", Color: config.PriorityColors[1]},
		},
		{
			name:  "warehouse",
			agent: sim.Agent{Kind: sim.KindWarehouse, Pos: pos},
			want:  scene.Entity{Shape: scene.ShapeRect, X: 0.25, Y: 0.75, W: 25, H: 25, Color: config.WarehouseColor},
		},
		{
			name:  "car",
			agent: sim.Agent{Kind: sim.KindCar, Pos: pos, Load: 1, Capacity: 1},
			want:  scene.Entity{Shape: scene.ShapeCircle, X: 0.25, Y: 0.75, Radius: 12.5, Load: 1, MaxLoad: 1, Color: config.CarColor},
		},
		{
			name:  "truck",
			agent: sim.Agent{Kind: sim.KindTruck, Pos: pos, Load: 2, Capacity: 3},
			want:  scene.Entity{Shape: scene.ShapeCircle, X: 0.25, Y: 0.75, Radius: 12.5, Load: 2, MaxLoad: 3, Color: config.TruckColor},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := p.Portray(c.agent)
			require.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestPortrayUnknown(t *testing.T) {
	p := New(config.Default())

	_, ok := p.Portray(sim.Agent{Kind: sim.KindJob, Priority: 9})
	assert.False(t, ok)
	_, ok = p.Portray(sim.Agent{Kind: sim.Kind(42)})
	assert.False(t, ok)
}

func TestFrameRendersWholeWorld(t *testing.T) {
	cfg := config.Default()
	world := sim.NewWorld(cfg, utils.NewPRNGService(3))
	p := New(cfg)

	entities := p.Frame(world.Agents())
	require.Len(t, entities, len(world.Agents()))

	var skipped int
	rec := render.NewRecorder(cfg.Width, cfg.Height)
	r := scene.NewRenderer(rec, scene.WithSkipHook(func(int, scene.Entity, error) { skipped++ }))
	r.Render(entities)

	assert.Zero(t, skipped)
	frames := rec.Frames()
	require.Len(t, frames, 1)
	var circles, triangles int
	for _, op := range frames[0] {
		switch op.Kind {
		case render.OpCircle:
			circles++
		case render.OpFillPolygon:
			triangles++
		}
	}
	assert.Equal(t, cfg.Agents, circles)
	assert.Equal(t, cfg.Jobs, triangles)
}

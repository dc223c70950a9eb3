package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-delivery-canvas/internal/config"
	"go-delivery-canvas/internal/utils"
)

func countKinds(agents []Agent) map[Kind]int {
	out := make(map[Kind]int)
	for _, a := range agents {
		out[a.Kind]++
	}
	return out
}

func TestNewWorldPlacesAgents(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(cfg, utils.NewPRNGService(11))

	agents := w.Agents()
	kinds := countKinds(agents)
	assert.Equal(t, 2, kinds[KindTruck])
	assert.Equal(t, 3, kinds[KindCar])
	assert.Equal(t, cfg.Jobs, kinds[KindJob])
	assert.Equal(t, cfg.Warehouses, kinds[KindWarehouse])
	assert.True(t, w.Running())
	assert.Equal(t, cfg.Jobs, w.TasksLeft())

	// paint order: warehouses first, vehicles last
	assert.Equal(t, KindWarehouse, agents[0].Kind)
	last := agents[len(agents)-1].Kind
	assert.Contains(t, []Kind{KindCar, KindTruck}, last)

	for _, a := range agents {
		assert.GreaterOrEqual(t, a.Pos.X, 0.5, "agent %d", a.ID)
		assert.LessOrEqual(t, a.Pos.X, cfg.SpaceSize-0.5, "agent %d", a.ID)
		assert.GreaterOrEqual(t, a.Pos.Y, 0.5, "agent %d", a.ID)
		assert.LessOrEqual(t, a.Pos.Y, cfg.SpaceSize-0.5, "agent %d", a.ID)
		if a.Kind == KindJob {
			assert.GreaterOrEqual(t, a.Value, config.JobMinValue)
			assert.LessOrEqual(t, a.Value, config.JobMaxValue)
			assert.GreaterOrEqual(t, a.Priority, 1)
			assert.LessOrEqual(t, a.Priority, config.JobPriorities)
		}
	}
}

func TestWorldIsReplayable(t *testing.T) {
	cfg := config.Default()
	a := NewWorld(cfg, utils.NewPRNGService(5))
	b := NewWorld(cfg, utils.NewPRNGService(5))
	for i := 0; i < 50; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Agents(), b.Agents())
	assert.Equal(t, 50, a.Steps())
}

func TestWorldCompletesJobs(t *testing.T) {
	cfg := config.Default()
	cfg.SpaceSize = 5
	cfg.Agents = 1
	cfg.Split = 0
	cfg.Jobs = 1
	cfg.Warehouses = 1
	w := NewWorld(cfg, utils.NewPRNGService(9))

	for i := 0; i < 10000 && w.Running(); i++ {
		w.Step()
		for _, a := range w.Agents() {
			if a.Kind == KindCar {
				require.GreaterOrEqual(t, a.Load, 0)
				require.LessOrEqual(t, a.Load, a.Capacity)
			}
		}
	}

	require.False(t, w.Running())
	assert.Equal(t, 1, w.TasksCompleted())
	assert.Equal(t, 0, w.TasksLeft())
	assert.Positive(t, w.Score())

	steps := w.Steps()
	w.Step()
	assert.Equal(t, steps, w.Steps(), "finished world does not advance")
}

func TestWorldWithoutWarehouseIdles(t *testing.T) {
	cfg := config.Default()
	cfg.Warehouses = 0
	w := NewWorld(cfg, utils.NewPRNGService(2))
	before := w.Agents()

	w.Step()

	// empty vehicles have nowhere to load, so nothing moves
	assert.Equal(t, before, w.Agents())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "truck", KindTruck.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
	assert.Equal(t, 20.0, NewWorld(config.Default(), utils.NewPRNGService(1)).Size())
}

// internal/portrayal/portrayal.go
package portrayal

import (
	"image/color"
	"strconv"

	"go-delivery-canvas/internal/config"
	"go-delivery-canvas/internal/scene"
	"go-delivery-canvas/internal/sim"
)

// Portrayer turns world agents into drawable entities for one canvas size.
type Portrayer struct {
	spaceSize float64
	cell      float64 // pixels per space unit
}

func New(cfg config.Config) *Portrayer {
	return &Portrayer{spaceSize: cfg.SpaceSize, cell: cfg.CellSize()}
}

// Normalize maps a world coordinate to a fraction of the space.
func (p *Portrayer) Normalize(v float64) float64 {
	return v / p.spaceSize
}

// Portray returns the entity for a. ok is false for agents that have no
// portrayal, such as jobs with an unknown priority.
func (p *Portrayer) Portray(a sim.Agent) (scene.Entity, bool) {
	e := scene.Entity{X: p.Normalize(a.Pos.X), Y: p.Normalize(a.Pos.Y)}
	switch a.Kind {
	case sim.KindJob:
		c, ok := config.PriorityColors[a.Priority]
		if !ok {
			return scene.Entity{}, false
		}
		e.Shape = scene.ShapeTriangle
		e.Radius = p.cell * config.JobRadiusScale
		e.Value = strconv.Itoa(a.Value)
		e.Color = c
	case sim.KindWarehouse:
		e.Shape = scene.ShapeRect
		e.W, e.H = p.cell, p.cell
		e.Color = config.WarehouseColor
	case sim.KindCar, sim.KindTruck:
		e.Shape = scene.ShapeCircle
		e.Radius = p.cell / 2
		e.Load = a.Load
		e.MaxLoad = a.Capacity
		e.Color = vehicleColor(a.Kind)
	default:
		return scene.Entity{}, false
	}
	return e, true
}

func vehicleColor(k sim.Kind) color.Color {
	if k == sim.KindTruck {
		return config.TruckColor
	}
	return config.CarColor
}

// Frame portrays every agent, keeping their order.
func (p *Portrayer) Frame(agents []sim.Agent) []scene.Entity {
	out := make([]scene.Entity, 0, len(agents))
	for _, a := range agents {
		if e, ok := p.Portray(a); ok {
			out = append(out, e)
		}
	}
	return out
}

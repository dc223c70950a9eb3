// internal/sim/world.go
package sim

import (
	"fmt"
	"math"

	"go-delivery-canvas/internal/config"
	"go-delivery-canvas/internal/utils"
)

// Kind is the type of agent in the delivery world.
type Kind int

const (
	KindCar Kind = iota
	KindTruck
	KindJob
	KindWarehouse
)

func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindTruck:
		return "truck"
	case KindJob:
		return "job"
	case KindWarehouse:
		return "warehouse"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const maxPlacementAttempts = 100

// Agent is a snapshot of one thing in the world.
type Agent struct {
	ID   int
	Kind Kind
	Pos  utils.Vec2

	// vehicles
	Load, Capacity int
	Speed          float64

	// jobs
	Value, Priority int
}

type vehicle struct {
	Agent
	target *job
	depot  *Agent
}

type job struct {
	Agent
	waiting int // steps since creation
}

// World is a continuous square space with vehicles delivering to jobs.
type World struct {
	size       float64
	prng       *utils.PRNGService
	vehicles   []*vehicle
	jobs       []*job
	warehouses []*Agent
	steps      int
	completed  int
	score      int
}

// NewWorld places cfg.Agents vehicles, cfg.Jobs jobs and cfg.Warehouses
// warehouses at random, non-overlapping positions.
func NewWorld(cfg config.Config, prng *utils.PRNGService) *World {
	w := &World{size: cfg.SpaceSize, prng: prng}
	nextID := 0

	for i := 0; i < cfg.Agents; i++ {
		v := &vehicle{Agent: Agent{ID: nextID, Kind: KindCar, Capacity: config.CarCapacity, Speed: config.CarSpeed}}
		if float64(i) < cfg.Split*float64(cfg.Agents) {
			v.Kind = KindTruck
			v.Capacity = config.TruckCapacity
			v.Speed = config.TruckSpeed
		}
		v.Pos = w.place(0.5, config.AgentDiameter, w.vehiclePositions())
		w.vehicles = append(w.vehicles, v)
		nextID++
	}

	for i := 0; i < cfg.Jobs; i++ {
		j := &job{Agent: Agent{
			ID:       nextID,
			Kind:     KindJob,
			Value:    prng.IntRange(config.JobMinValue, config.JobMaxValue),
			Priority: prng.IntRange(1, config.JobPriorities),
		}}
		j.Pos = w.place(0.75, w.size/20, w.jobPositions())
		w.jobs = append(w.jobs, j)
		nextID++
	}

	for i := 0; i < cfg.Warehouses; i++ {
		taken := append(w.jobPositions(), w.warehousePositions()...)
		pos := w.place(0.5, w.size/20, taken)
		w.warehouses = append(w.warehouses, &Agent{ID: nextID, Kind: KindWarehouse, Pos: pos})
		nextID++
	}
	return w
}

// place draws a random position at least margin from the edges whose
// bounding box, grown by dist, does not touch any taken position. After
// maxPlacementAttempts the last draw is used as is.
func (w *World) place(margin, dist float64, taken []utils.Vec2) utils.Vec2 {
	var pos utils.Vec2
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		pos = utils.Vec2{
			X: w.prng.Float64()*(w.size-2*margin) + margin,
			Y: w.prng.Float64()*(w.size-2*margin) + margin,
		}
		if !collides(pos, taken, dist) {
			break
		}
	}
	return pos
}

func collides(pos utils.Vec2, taken []utils.Vec2, dist float64) bool {
	for _, t := range taken {
		if math.Abs(t.X-pos.X) < dist && math.Abs(t.Y-pos.Y) < dist {
			return true
		}
	}
	return false
}

func (w *World) vehiclePositions() []utils.Vec2 {
	out := make([]utils.Vec2, 0, len(w.vehicles))
	for _, v := range w.vehicles {
		out = append(out, v.Pos)
	}
	return out
}

func (w *World) jobPositions() []utils.Vec2 {
	out := make([]utils.Vec2, 0, len(w.jobs))
	for _, j := range w.jobs {
		out = append(out, j.Pos)
	}
	return out
}

func (w *World) warehousePositions() []utils.Vec2 {
	out := make([]utils.Vec2, 0, len(w.warehouses))
	for _, a := range w.warehouses {
		out = append(out, a.Pos)
	}
	return out
}

// Running reports whether jobs are left.
func (w *World) Running() bool {
	return len(w.jobs) > 0
}

func (w *World) Size() float64       { return w.size }
func (w *World) Steps() int          { return w.steps }
func (w *World) TasksLeft() int      { return len(w.jobs) }
func (w *World) TasksCompleted() int { return w.completed }

// Score is the priority-weighted waiting time of all completed jobs. Lower is better.
func (w *World) Score() int {
	return w.score
}

// Step advances every vehicle once, then ages the remaining jobs.
func (w *World) Step() {
	if !w.Running() {
		return
	}
	for _, v := range w.vehicles {
		w.stepVehicle(v)
	}
	for _, j := range w.jobs {
		j.waiting++
	}
	w.steps++
}

func (w *World) stepVehicle(v *vehicle) {
	if v.target != nil && !w.hasJob(v.target) {
		v.target = nil
	}
	if v.target == nil && v.depot == nil {
		w.assign(v)
	}

	var dest utils.Vec2
	switch {
	case v.depot != nil:
		dest = v.depot.Pos
	case v.target != nil:
		dest = v.target.Pos
	default:
		return
	}

	if utils.Dist(v.Pos, dest) > config.ArrivalRadius {
		v.Pos = utils.MoveTowards(v.Pos, dest, v.Speed)
		return
	}

	if v.depot != nil {
		v.Load = v.Capacity
		v.depot = nil
		return
	}
	work := min(v.Load, v.target.Value)
	v.target.Value -= work
	v.Load -= work
	if v.target.Value <= 0 {
		w.finish(v.target)
	}
	v.target = nil
}

// assign sends a vehicle that is half empty or worse to the nearest
// warehouse, and any other vehicle to a job drawn by priority weight.
func (w *World) assign(v *vehicle) {
	if float64(v.Load) <= float64(v.Capacity)*0.5 {
		if depot := w.closestWarehouse(v.Pos); depot != nil {
			v.depot = depot
			return
		}
		if v.Load == 0 {
			return
		}
	}
	if len(w.jobs) == 0 {
		return
	}
	weights := make([]int, len(w.jobs))
	for i, j := range w.jobs {
		weights[i] = config.PriorityWeights[j.Priority]
	}
	v.target = w.jobs[w.prng.ChooseWeighted(weights)]
}

func (w *World) closestWarehouse(pos utils.Vec2) *Agent {
	var best *Agent
	bestDist := math.Inf(1)
	for _, a := range w.warehouses {
		if d := utils.Dist(pos, a.Pos); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}

func (w *World) hasJob(j *job) bool {
	for _, o := range w.jobs {
		if o == j {
			return true
		}
	}
	return false
}

func (w *World) finish(j *job) {
	for i, o := range w.jobs {
		if o == j {
			w.jobs = append(w.jobs[:i], w.jobs[i+1:]...)
			break
		}
	}
	w.completed++
	w.score += j.waiting * config.PriorityWeights[j.Priority]
}

// Agents returns a snapshot in paint order: warehouses, jobs, then vehicles.
func (w *World) Agents() []Agent {
	out := make([]Agent, 0, len(w.warehouses)+len(w.jobs)+len(w.vehicles))
	for _, a := range w.warehouses {
		out = append(out, *a)
	}
	for _, j := range w.jobs {
		out = append(out, j.Agent)
	}
	for _, v := range w.vehicles {
		out = append(out, v.Agent)
	}
	return out
}

// internal/event/types.go
package event

import "go-delivery-canvas/internal/scene"

const (
	EntitySkipped EventType = "EntitySkipped" // an entity was left out of a frame
	FrameRendered EventType = "FrameRendered"
	TaskCompleted EventType = "TaskCompleted"
	RunFinished   EventType = "RunFinished" // no jobs left
)

// SkipData is the payload of EntitySkipped.
type SkipData struct {
	Frame  int
	Index  int
	Entity scene.Entity
	Reason error
}

// FrameData is the payload of FrameRendered.
type FrameData struct {
	Frame    int
	Entities int
}

// SkipHook returns a renderer skip hook that dispatches EntitySkipped events.
// frame is read at dispatch time.
func SkipHook(d *Dispatcher, frame *int) scene.SkipFunc {
	return func(index int, e scene.Entity, reason error) {
		d.Dispatch(Event{
			Type: EntitySkipped,
			Data: SkipData{Frame: *frame, Index: index, Entity: e, Reason: reason},
		})
	}
}

// internal/state/pause_state.go
package state

import (
	"image/color"
	"time"

	"go-delivery-canvas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PauseState)(nil)

var pauseLabelColor = color.RGBA{200, 30, 30, 255}

const pauseLabelSize = 18

// PauseState freezes the simulation. N advances it by a single step.
type PauseState struct {
	sm       *StateMachine
	previous *PlayState
}

func NewPauseState(sm *StateMachine, prev *PlayState) *PauseState {
	return &PauseState{sm: sm, previous: prev}
}

func (s *PauseState) Enter() {
	if !s.previous.game.IsPaused() {
		s.previous.game.HandlePauseClick()
	}
	s.previous.pauseButton.SetPaused(true)
}

func (s *PauseState) Exit() {
	if s.previous.game.IsPaused() {
		s.previous.game.HandlePauseClick()
	}
	s.previous.pauseButton.SetPaused(false)
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Resume()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.HandleClick(float64(x), float64(y))
	}
}

// HandleClick resumes when the pause button is hit.
func (s *PauseState) HandleClick(x, y float64) {
	if s.previous.pauseButton.IsClicked(x, y) {
		s.Resume()
	}
}

// Resume hands control back to the state that was paused.
func (s *PauseState) Resume() {
	s.previous.pauseButton.TogglePause(time.Now())
	s.sm.SetState(s.previous)
}

func (s *PauseState) StepOnce() {
	s.previous.game.Step()
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	surface := s.previous.surface
	surface.DrawText("PAUSED", float64(surface.Width())/2, pauseLabelSize+6, pauseLabelSize, pauseLabelColor, render.AlignCenter)
}

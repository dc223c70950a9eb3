// internal/state/play_state.go
package state

import (
	"time"

	"go-delivery-canvas/internal/app"
	"go-delivery-canvas/internal/config"
	"go-delivery-canvas/internal/ui"
	"go-delivery-canvas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PlayState)(nil)

// PlayState advances the simulation and draws it onto the window.
type PlayState struct {
	sm          *StateMachine
	game        *app.Game
	surface     *render.EbitenSurface
	pauseButton *ui.PauseButton
	speedButton *ui.SpeedButton
	reload      <-chan config.Config
}

func NewPlayState(sm *StateMachine, game *app.Game, surface *render.EbitenSurface) *PlayState {
	width := float64(game.Renderer.Surface().Width())
	return &PlayState{
		sm:          sm,
		game:        game,
		surface:     surface,
		pauseButton: ui.NewPauseButton(width-config.PauseButtonOffsetX, config.ButtonY, config.ButtonSize, config.PauseColor, config.PlayColor),
		speedButton: ui.NewSpeedButton(width-config.SpeedButtonOffsetX, config.ButtonY, config.ButtonSize, config.SpeedButtonColors),
	}
}

// WatchConfig applies the palette of every config received on ch. Only the
// palette is hot-reloaded; the world keeps running with its original layout.
func (s *PlayState) WatchConfig(ch <-chan config.Config) {
	s.reload = ch
}

func (s *PlayState) applyReloads() {
	for {
		select {
		case cfg, ok := <-s.reload:
			if !ok {
				s.reload = nil
				return
			}
			s.game.Renderer.SetPalette(cfg.RenderPalette())
			s.game.Logger().Info("palette reloaded")
		default:
			return
		}
	}
}

func (s *PlayState) Enter() {}
func (s *PlayState) Exit()  {}

func (s *PlayState) Update(deltaTime float64) {
	s.applyReloads()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.Pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.ToggleSpeed()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.HandleClick(float64(x), float64(y)) {
			return
		}
	}
	s.game.Update(deltaTime)
}

// HandleClick routes a click to the HUD buttons. It reports whether the state
// was switched.
func (s *PlayState) HandleClick(x, y float64) bool {
	switch {
	case s.pauseButton.IsClicked(x, y):
		s.Pause()
		return true
	case s.speedButton.IsClicked(x, y):
		s.ToggleSpeed()
	}
	return false
}

// Pause switches the machine to a PauseState that returns here.
func (s *PlayState) Pause() {
	s.pauseButton.TogglePause(time.Now())
	s.sm.SetState(NewPauseState(s.sm, s))
}

func (s *PlayState) ToggleSpeed() {
	s.speedButton.ToggleState(time.Now())
	s.game.HandleSpeedClick()
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.surface.SetTarget(screen)
	s.game.Draw()
	s.drawHUD(s.surface)
}

func (s *PlayState) drawHUD(surface render.Surface) {
	now := time.Now()
	s.pauseButton.Draw(surface, now)
	s.speedButton.Draw(surface, now)
}

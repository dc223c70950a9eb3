// cmd/canvas/view.go
package main

import (
	"time"

	"go-delivery-canvas/internal/app"
	"go-delivery-canvas/internal/config"
	"go-delivery-canvas/internal/state"
	"go-delivery-canvas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// AppGame adapts the state machine to ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	cfg            config.Config
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Run the simulation in a window (space pauses, S changes speed, N steps while paused)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		faces, err := render.NewFaceCache(nil)
		if err != nil {
			return err
		}
		defer faces.Close()

		// the screen image is handed over on every Draw
		surface := render.NewEbitenSurface(nil, cfg.Width, cfg.Height, faces)
		surface.Background = config.BackgroundColor
		sm := state.NewStateMachine()
		play := state.NewPlayState(sm, app.NewGame(cfg, surface, render.Logger()), surface)
		if watch && configPath != "" {
			watcher, err := config.NewWatcher(configPath)
			if err != nil {
				return err
			}
			defer watcher.Close()
			go logWatchErrors(watcher.Errors)
			play.WatchConfig(watcher.Configs)
		}
		sm.SetState(play)

		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle("Delivery")
		return ebiten.RunGame(&AppGame{
			stateMachine:   sm,
			cfg:            cfg,
			lastUpdateTime: time.Now(),
		})
	},
}

var watch bool

func init() {
	viewCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the palette when the config file changes")
	rootCmd.AddCommand(viewCmd)
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		render.Logger().Warn("config reload failed", "err", err)
	}
}

// cmd/canvas/render.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go-delivery-canvas/internal/app"
	"go-delivery-canvas/internal/config"
	"go-delivery-canvas/internal/event"
	"go-delivery-canvas/pkg/render"

	"github.com/spf13/cobra"
)

var (
	outDir string
	frames int
	trace  bool
)

// renderCmd writes one PNG per simulation step.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render simulation steps to PNG files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if frames <= 0 {
			frames = cfg.Steps
		}
		return renderFrames(cmd, cfg)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outDir, "out", "o", "frames", "output directory")
	renderCmd.Flags().IntVarP(&frames, "frames", "n", 0, "number of frames (default: steps from config)")
	renderCmd.Flags().BoolVar(&trace, "trace", false, "print every primitive draw call")
	rootCmd.AddCommand(renderCmd)
}

func renderFrames(cmd *cobra.Command, cfg config.Config) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	surface, err := render.NewGGSurface(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer surface.Close()

	var target render.Surface = surface
	var rec *render.Recorder
	if trace {
		rec = render.Tee(surface)
		target = rec
	}

	g := app.NewGame(cfg, target, render.Logger())
	skipped := event.NewCounter()
	g.EventDispatcher.Subscribe(event.EntitySkipped, skipped)

	out := cmd.OutOrStdout()
	for i := 0; i < frames; i++ {
		g.Draw()
		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", i))
		if err := surface.SavePNG(path); err != nil {
			return err
		}
		if rec != nil {
			for _, op := range rec.Ops() {
				fmt.Fprintf(out, "%d %s\n", i, op)
			}
			rec.Reset()
		}
		if g.Finished() {
			break
		}
		g.Step()
	}

	fmt.Fprintf(out, "Rendered %d frames to %s (%d tasks done, %d left, %d entities skipped)\n",
		g.Frame(), outDir, g.World.TasksCompleted(), g.World.TasksLeft(), skipped.Count(event.EntitySkipped))
	return nil
}

package cmd

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/wearkit/wearface/cmd/wearface/internal/config"
	"github.com/wearkit/wearface/cmd/wearface/internal/term"
	"github.com/wearkit/wearface/pkg/clock"
	"github.com/wearkit/wearface/pkg/face"
)

var (
	flagRunAmbient bool
	flagRunLowBit  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the watch face live in the terminal",
	Long: `Run renders the watch face into the terminal, one cell per dial unit.

Keys: a toggles ambient mode, h toggles visibility, q or Escape quits.
Resizing the terminal rederives the dial geometry.`,
	RunE: runFace,
}

func init() {
	runCmd.Flags().BoolVar(&flagRunAmbient, "ambient", false, "Start in ambient mode")
	runCmd.Flags().BoolVar(&flagRunLowBit, "low-bit", false, "Treat the display as low-bit in ambient mode")
	rootCmd.AddCommand(runCmd)
}

func runFace(cmd *cobra.Command, args []string) error {
	resolved, err := config.Resolve(flagConfigDir)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// All face work funnels through jobs so state transitions, timer
	// callbacks and redraws share one goroutine.
	jobs := make(chan func(), 16)
	timers := &face.SystemTimers{Post: func(fn func()) { jobs <- fn }}

	f := face.New(term.NewSurface(screen), clock.NewSystemClock(), timers, face.Options{
		ShowSeconds: resolved.ShowSeconds,
		// Cell grid: one cell of font size keeps the baseline shift
		// inside the glyph row.
		TextSize: 1,
		Palette:  resolved.Palette,
	})

	w, h := screen.Size()
	f.OnCapabilitiesChanged(flagRunLowBit)
	f.OnSurfaceSizeChanged(float64(w), float64(h))
	if flagRunAmbient {
		f.OnAmbientModeChanged(true)
	}
	f.OnVisibilityChanged(true)
	screen.Show()

	// The host's periodic time tick; in ambient mode it is the only
	// refresh the face gets.
	minuteTick := time.NewTicker(time.Minute)
	defer minuteTick.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	visible := true
	ambient := flagRunAmbient
	for {
		select {
		case fn := <-jobs:
			fn()
			screen.Show()
		case <-minuteTick.C:
			f.OnTimeTick()
			screen.Show()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				f.OnSurfaceSizeChanged(float64(w), float64(h))
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					f.OnVisibilityChanged(false)
					return nil
				case ev.Rune() == 'a':
					ambient = !ambient
					f.OnAmbientModeChanged(ambient)
				case ev.Rune() == 'h':
					visible = !visible
					f.OnVisibilityChanged(visible)
					if !visible {
						screen.Clear()
					}
				}
				screen.Show()
			}
		}
	}
}

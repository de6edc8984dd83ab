// Command sigilweave renders the looping sigil animation: to a GIF or PNG
// sequence, live in the terminal, or as a frame parameter dump.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aubryn/sigilweave/audio"
	"github.com/aubryn/sigilweave/geometry"
	"github.com/aubryn/sigilweave/overlay"
	"github.com/aubryn/sigilweave/param"
	"github.com/aubryn/sigilweave/phase"
	"github.com/aubryn/sigilweave/preset"
	"github.com/aubryn/sigilweave/render"
)

var (
	flagPreset     string
	flagPresetFile string
	flagFigure     string
	flagFrames     int
	flagSeed       int64
)

func main() {
	root := &cobra.Command{
		Use:           "sigilweave",
		Short:         "Looping four-phase sigil animation renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagPreset, "preset", "classic", "built-in preset name")
	root.PersistentFlags().StringVar(&flagPresetFile, "preset-file", "", "TOML preset file (overrides --preset)")
	root.PersistentFlags().StringVar(&flagFigure, "figure", "sigilweave", "figure geometry name")
	root.PersistentFlags().IntVar(&flagFrames, "frames", 120, "frames per loop")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "randomize per-phase easings with this seed (0 = keep preset easings)")

	root.AddCommand(renderCmd(), previewCmd(), paramsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sigilweave:", err)
		os.Exit(1)
	}
}

// buildPipeline assembles config, figure and overlays from the shared flags.
func buildPipeline() (*render.Pipeline, error) {
	var settings param.Settings
	var err error
	if flagPresetFile != "" {
		settings, err = preset.LoadFile(flagPresetFile)
	} else {
		settings, err = preset.Get(flagPreset)
	}
	if err != nil {
		return nil, err
	}

	// Authoring-time randomization only; the engine below is deterministic.
	if flagSeed != 0 {
		preset.RandomizeEasings(&settings, rand.New(rand.NewSource(flagSeed)))
	}

	cfg, err := param.NewConfig(settings)
	if err != nil {
		return nil, err
	}
	figure, err := geometry.ByName(flagFigure)
	if err != nil {
		return nil, err
	}
	return render.NewPipeline(cfg, figure, &overlay.Energy{Pulses: 2}, &overlay.Symbol{})
}

func renderCmd() *cobra.Command {
	var (
		out    string
		pngDir string
		size   int
		delay  int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the loop to a looping GIF or a PNG frame sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync()

			p, err := buildPipeline()
			if err != nil {
				return err
			}

			start := time.Now()
			frames, err := render.RenderSequence(p, size, size, flagFrames, "", log)
			if err != nil {
				return err
			}

			if pngDir != "" {
				if err := render.WritePNGFrames(pngDir, frames); err != nil {
					return err
				}
				log.Info("wrote png frames",
					zap.String("dir", pngDir),
					zap.Int("frames", len(frames)),
					zap.Duration("elapsed", time.Since(start)))
				return nil
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := render.EncodeGIF(f, frames, delay); err != nil {
				return err
			}
			log.Info("wrote gif",
				zap.String("path", out),
				zap.Int("frames", len(frames)),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "sigilweave.gif", "output GIF path")
	cmd.Flags().StringVar(&pngDir, "png-dir", "", "write numbered PNG frames here instead of a GIF")
	cmd.Flags().IntVar(&size, "size", 512, "output width and height in pixels")
	cmd.Flags().IntVar(&delay, "delay", 4, "GIF frame delay in 1/100s")
	return cmd
}

func previewCmd() *cobra.Command {
	var (
		fps   int
		chime bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Play the loop live in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline()
			if err != nil {
				return err
			}
			var cue *audio.Cue
			if chime {
				if cue, err = audio.NewCue(); err != nil {
					// Preview is still useful without sound.
					fmt.Fprintln(os.Stderr, "sigilweave: audio unavailable:", err)
					cue = nil
				}
				defer cue.Close()
			}
			return runPreview(p, flagFrames, fps, cue)
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 30, "playback frame rate")
	cmd.Flags().BoolVar(&chime, "chime", false, "play a tone on each phase entry")
	return cmd
}

func runPreview(p *render.Pipeline, totalFrames, fps int, cue *audio.Cue) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	if fps < 1 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	frame := 0
	paused := false
	lastPhase := phase.Descent

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					paused = !paused
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if paused {
				continue
			}
			cols, rows := screen.Size()
			if cols < 2 || rows < 2 {
				continue
			}
			surface, err := render.NewRaster(cols*2, rows*4)
			if err != nil {
				return err
			}
			if err := surface.Clear("#0a0a14"); err != nil {
				return err
			}
			if err := p.RenderFrame(surface, frame, totalFrames); err != nil {
				return err
			}
			render.Blit(screen, surface.Image())
			screen.Show()

			if fp := p.Params(frame, totalFrames); fp.Phase != lastPhase {
				lastPhase = fp.Phase
				cue.Play(fp.Phase)
			}
			frame = (frame + 1) % totalFrames
		}
	}
}

func paramsCmd() *cobra.Command {
	var every int
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Dump synthesized frame parameters as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "frame\tprogress\tphase\tlocal\tblend\tnodeAlpha\tpathIntensity\tpathAnimSpeed")
			for frame := 0; frame < flagFrames; frame += every {
				fp := p.Params(frame, flagFrames)
				blend := "-"
				if fp.Transition.InTransition {
					blend = fmt.Sprintf("%.3f→%s", fp.Transition.Blend, fp.Transition.Next)
				}
				fmt.Fprintf(w, "%d\t%.4f\t%s\t%.4f\t%s\t%.4f\t%.4f\t%.4f\n",
					frame, fp.Progress, fp.Phase, fp.Local, blend,
					fp.NodeAlpha(), fp.PathIntensity(), fp.PathAnimSpeed())
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&every, "every", 1, "print every Nth frame")
	return cmd
}

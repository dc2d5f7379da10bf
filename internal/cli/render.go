package cli

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/phanxgames/zoomer"
)

const (
	renderDT       = float32(1.0 / 60) // simulated frame interval
	maxScriptFrame = 100000            // cap for --frames 0 with a script
	maxSettle      = 1000              // frames allowed to finish deferred work
)

type renderOpts struct {
	output      string
	script      string
	screenshots string
	frames      int
	scale       int
	smooth      bool
}

func newRenderCmd() *cobra.Command {
	s := defaultSession()
	opts := renderOpts{output: "zoomer.png", scale: 1}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a fractal headless and write a PNG",
		Long: `Run a session without a window. With --script the zoom script is
replayed frame by frame; script screenshots go to --screenshots. The final
frame is completed and written to --output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.resolve(cmd); err != nil {
				return err
			}
			if opts.scale < 1 {
				return fmt.Errorf("--scale must be at least 1, got %d", opts.scale)
			}
			z, err := s.build()
			if err != nil {
				return err
			}
			if opts.screenshots != "" {
				z.ScreenshotDir = opts.screenshots
			}
			var script *zoomer.ScriptRunner
			if opts.script != "" {
				if script, err = zoomer.LoadScriptFile(opts.script); err != nil {
					return err
				}
				z.SetScript(script)
			}
			totals, err := runRender(cmd.Context(), z, script, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Rendered %s", s.preset)
			printFile(out, opts.output)
			fmt.Fprintln(out, renderTable([]string{"Frames", styleTitle.Render(strconv.Itoa(totals.frames))}, totals.rows()))
			return nil
		},
	}

	s.bind(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG path")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON zoom script to replay")
	cmd.Flags().StringVar(&opts.screenshots, "screenshots", "", "directory for script screenshots")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "frames to run (0 runs the script to the end)")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "upscale the output by this factor")
	cmd.Flags().BoolVar(&opts.smooth, "smooth", false, "use bilinear instead of nearest-neighbor upscaling")
	return cmd
}

// runRender drives z headless and writes the final frame.
func runRender(ctx context.Context, z *zoomer.Zoomer, script *zoomer.ScriptRunner, opts renderOpts) (*renderTotals, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	totals := &renderTotals{}
	z.SetFrameObserver(zoomer.FrameObserverFunc(totals.add))

	frames := opts.frames
	if frames == 0 && script != nil {
		frames = maxScriptFrame
	}
	z.DrawFrame(true)
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if script != nil && script.Done() && opts.frames == 0 {
			break
		}
		if z.Update(renderDT, zoomer.PointerDelta{}) {
			z.DrawFrame(false)
		}
	}
	settle(z)
	logger.Debug("session finished", "frames", totals.frames, "reuse", totals.reuseRatio())

	img := scaleImage(z.Snapshot(), opts.scale, opts.smooth)
	f, err := os.Create(opts.output)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return nil, fmt.Errorf("render %s: %w", opts.output, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.output, err)
	}
	prog.done("Wrote " + opts.output)
	return totals, nil
}

// settle stops motion and draws until no work is deferred.
func settle(z *zoomer.Zoomer) {
	z.Stop()
	for i := 0; i < maxSettle && z.Incomplete(); i++ {
		z.DrawFrame(false)
	}
	if z.Incomplete() {
		z.DrawFrame(true)
	}
}

func scaleImage(src *image.NRGBA, scale int, smooth bool) image.Image {
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	var s draw.Scaler = draw.NearestNeighbor
	if smooth {
		s = draw.BiLinear
	}
	s.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// renderTotals accumulates frame stats over a session.
type renderTotals struct {
	frames   int
	resets   int
	reused   int
	mirrored int
	computed int
	deferred int
	lines    int
	formula  int
	guessed  int
	moved    int
	elapsed  time.Duration
	maxFudge time.Duration
}

func (t *renderTotals) add(s zoomer.FrameStats) {
	t.frames++
	if s.FullReset {
		t.resets++
	}
	t.reused += s.Reused
	t.mirrored += s.Mirrored
	t.computed += s.Computed
	t.deferred += s.Deferred
	t.lines += s.Lines
	t.formula += s.FormulaCalls
	t.guessed += s.GuessedPixels
	t.moved += s.MovedPixels
	t.elapsed += s.Elapsed
	t.maxFudge = max(t.maxFudge, s.Fudge)
}

func (t *renderTotals) reuseRatio() float64 {
	if t.lines == 0 {
		return 0
	}
	return float64(t.reused+t.mirrored) / float64(t.lines)
}

func (t *renderTotals) rows() [][]string {
	itoa := strconv.Itoa
	return [][]string{
		{"Full resets", itoa(t.resets)},
		{"Reused lines", itoa(t.reused)},
		{"Mirrored lines", itoa(t.mirrored)},
		{"Computed lines", itoa(t.computed)},
		{"Deferred lines", itoa(t.deferred)},
		{"Line reuse", fmt.Sprintf("%.1f%%", 100*t.reuseRatio())},
		{"Formula calls", itoa(t.formula)},
		{"Guessed pixels", itoa(t.guessed)},
		{"Moved pixels", itoa(t.moved)},
		{"Frame time", t.elapsed.Round(time.Microsecond).String()},
		{"Max fudge", t.maxFudge.String()},
	}
}

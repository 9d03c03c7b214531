package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-drift/colorring/pkg/animation"
	"github.com/go-drift/colorring/pkg/config"
	"github.com/go-drift/colorring/pkg/errors"
	"github.com/go-drift/colorring/pkg/graphics"
	"github.com/go-drift/colorring/pkg/progress"
	"github.com/go-drift/colorring/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the ring animation to PNG frames",
		Long: `Simulate one run of the ring and write every frame as a PNG image.

Time is simulated, so rendering a 60 second run does not take 60 seconds.

Flags:
  --out DIR          Output directory (default: frames)
  --size PX          Image width and height in pixels (default: 200)
  --fps N            Frames per simulated second (default: 10)
  --duration MS      Override the configured duration in milliseconds
  --background HEX   Fill each frame before drawing (default: transparent)
  --trace            Print the arcs drawn in every frame`,
		Usage: "colorring render [config.yaml] [flags]",
		Run:   runRender,
	})
}

// renderOptions holds the parsed render flags.
type renderOptions struct {
	configPath string
	outDir     string
	size       int
	fps        int
	duration   time.Duration
	background graphics.Color
	trace      bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{outDir: "frames", size: 200, fps: 10}

	next := func(i *int, name string) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		*i++
		return args[*i], nil
	}
	positiveInt := func(name, v string) (int, error) {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%s must be a positive integer (got %q)", name, v)
		}
		return n, nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		if name == "--trace" && !hasValue {
			opts.trace = true
			continue
		}
		if !strings.HasPrefix(name, "--") {
			if opts.configPath != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.configPath = arg
			continue
		}
		if !hasValue {
			v, err := next(&i, name)
			if err != nil {
				return opts, err
			}
			value = v
		}

		var err error
		switch name {
		case "--out":
			opts.outDir = value
		case "--size":
			opts.size, err = positiveInt(name, value)
		case "--fps":
			opts.fps, err = positiveInt(name, value)
		case "--duration":
			var ms int
			ms, err = strconv.Atoi(value)
			if err != nil || ms < 0 {
				err = fmt.Errorf("--duration must be a non-negative integer (got %q)", value)
			}
			opts.duration = time.Duration(ms) * time.Millisecond
		case "--background":
			opts.background, err = config.ParseColor(value)
		default:
			err = fmt.Errorf("unknown flag %s", name)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.duration > 0 {
		cfg.Duration = opts.duration
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return &errors.Error{Op: "render", Kind: errors.KindRender, Path: opts.outDir, Err: err}
	}

	frames, err := renderFrames(cfg, opts, func(i int, c *raster.Canvas) error {
		path := filepath.Join(opts.outDir, fmt.Sprintf("frame_%05d.png", i))
		if err := writeFrame(path, c); err != nil {
			return &errors.Error{Op: "render", Kind: errors.KindRender, Path: path, Err: err}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Printf("wrote %d frames to %s", frames, opts.outDir)
	return nil
}

func writeFrame(path string, c *raster.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderFrames simulates one run of cfg at opts.fps and hands every frame
// to emit. It returns the number of frames produced.
func renderFrames(cfg progress.Config, opts renderOptions, emit func(int, *raster.Canvas) error) (int, error) {
	clk := &simClock{now: time.Unix(0, 0)}
	scheduler := animation.NewScheduler(clk)

	finished := false
	indicator, err := progress.New(cfg,
		progress.WithTickerProvider(scheduler),
		progress.WithLogger(logger),
		progress.WithDrawingStatusListener(func() { finished = true }),
	)
	if err != nil {
		return 0, err
	}
	indicator.SizeChanged(opts.size, opts.size)
	if !cfg.AutoPlay {
		indicator.Animate(cfg.Duration)
	}

	var recorder graphics.PictureRecorder
	size := graphics.Size{Width: float64(opts.size), Height: float64(opts.size)}
	frame := time.Second / time.Duration(opts.fps)
	for i := 0; ; i++ {
		indicator.Draw(recorder.BeginRecording(size))
		list := recorder.EndRecording()
		if opts.trace {
			for _, a := range list.Arcs() {
				fmt.Fprintf(stdout, "frame %d: start %.1f° sweep %.1f° %s\n", i, a.StartAngle, a.SweepAngle, a.Paint.Color)
			}
		}

		canvas := raster.NewCanvas(opts.size, opts.size)
		if opts.background != graphics.ColorTransparent {
			canvas.Clear(opts.background)
		}
		list.Paint(canvas)
		if err := emit(i, canvas); err != nil {
			return i, err
		}
		if finished {
			return i + 1, nil
		}
		clk.advance(frame)
		scheduler.Step()
	}
}

// simClock is a manually advanced animation clock.
type simClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *simClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *simClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

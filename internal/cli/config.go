package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/phanxgames/zoomer"
)

var errBadPair = errors.New("want two numbers")

// fileConfig is the layout of a --config TOML file.
//
//	[view]
//	width = 800
//	height = 600
//	symmetry = true
//
//	[fractal]
//	preset = "julia"
//	seed = [-0.8, 0.156]
type fileConfig struct {
	View    viewConfig    `toml:"view"`
	Fractal fractalConfig `toml:"fractal"`
}

type viewConfig struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	MinFPS      float64 `toml:"min_fps"`
	IdleFPS     float64 `toml:"idle_fps"`
	Symmetry    *bool   `toml:"symmetry"`
	SolidGuess  *bool   `toml:"solid_guess"`
	Incremental *bool   `toml:"incremental"`
}

type fractalConfig struct {
	Preset  string    `toml:"preset"`
	MaxIter int       `toml:"max_iter"`
	Bailout float64   `toml:"bailout"`
	Center  []float64 `toml:"center"`
	Radius  float64   `toml:"radius"`
	Seed    []float64 `toml:"seed"`
}

// loadConfig decodes a TOML file. An empty path yields an empty config.
// Keys the file sets that no field takes are an error.
func loadConfig(path string) (*fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return &fc, nil
	}
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	for name, v := range map[string][]float64{"center": fc.Fractal.Center, "seed": fc.Fractal.Seed} {
		if v != nil && len(v) != 2 {
			return nil, fmt.Errorf("load config %s: fractal.%s: %w", path, name, errBadPair)
		}
	}
	return &fc, nil
}

// session holds everything needed to build a Zoomer. Command flags write
// into it; file values fill in whatever the user did not pass on the
// command line.
type session struct {
	configPath string

	width, height   int
	minFPS, idleFPS float64
	symmetry        bool
	solidGuess      bool
	incremental     bool
	preset          string
	maxIter         int
	bailout         float64
	center          []float64
	radius          float64
	seed            []float64
	debug           bool
}

func defaultSession() session {
	return session{
		width:       640,
		height:      480,
		minFPS:      zoomer.DefaultMinFPS,
		idleFPS:     zoomer.DefaultIdleFPS,
		symmetry:    true,
		solidGuess:  true,
		incremental: true,
		preset:      "mandelbrot",
	}
}

// bind registers the session flags on cmd.
func (s *session) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.configPath, "config", "", "TOML settings file")
	f.IntVar(&s.width, "width", s.width, "canvas width in pixels")
	f.IntVar(&s.height, "height", s.height, "canvas height in pixels")
	f.Float64Var(&s.minFPS, "min-fps", s.minFPS, "frame rate held while zooming")
	f.Float64Var(&s.idleFPS, "idle-fps", s.idleFPS, "frame rate while the view is still")
	f.BoolVar(&s.symmetry, "symmetry", s.symmetry, "mirror lines across symmetry axes")
	f.BoolVar(&s.solidGuess, "solid-guess", s.solidGuess, "skip pixels inside solid areas")
	f.BoolVar(&s.incremental, "incremental", s.incremental, "reuse lines between frames")
	f.StringVarP(&s.preset, "preset", "p", s.preset, "fractal preset ("+strings.Join(zoomer.Presets(), ", ")+")")
	f.IntVar(&s.maxIter, "max-iter", 0, "iteration limit (0 keeps the preset's)")
	f.Float64Var(&s.bailout, "bailout", 0, "escape radius squared (0 keeps the preset's)")
	f.Float64SliceVar(&s.center, "center", nil, "view center as re,im")
	f.Float64Var(&s.radius, "radius", 0, "view radius (0 keeps the preset's)")
	f.Float64SliceVar(&s.seed, "seed", nil, "fractal seed as re,im")
	f.BoolVar(&s.debug, "debug-frames", false, "log stats for every frame")
}

// merge fills fields from fc unless changed reports the flag was set.
func (s *session) merge(fc *fileConfig, changed func(name string) bool) {
	v, fr := fc.View, fc.Fractal
	setInt := func(dst *int, val int, name string) {
		if val != 0 && !changed(name) {
			*dst = val
		}
	}
	setFloat := func(dst *float64, val float64, name string) {
		if val != 0 && !changed(name) {
			*dst = val
		}
	}
	setBool := func(dst *bool, val *bool, name string) {
		if val != nil && !changed(name) {
			*dst = *val
		}
	}
	setPair := func(dst *[]float64, val []float64, name string) {
		if val != nil && !changed(name) {
			*dst = val
		}
	}

	setInt(&s.width, v.Width, "width")
	setInt(&s.height, v.Height, "height")
	setFloat(&s.minFPS, v.MinFPS, "min-fps")
	setFloat(&s.idleFPS, v.IdleFPS, "idle-fps")
	setBool(&s.symmetry, v.Symmetry, "symmetry")
	setBool(&s.solidGuess, v.SolidGuess, "solid-guess")
	setBool(&s.incremental, v.Incremental, "incremental")
	if fr.Preset != "" && !changed("preset") {
		s.preset = fr.Preset
	}
	setInt(&s.maxIter, fr.MaxIter, "max-iter")
	setFloat(&s.bailout, fr.Bailout, "bailout")
	setPair(&s.center, fr.Center, "center")
	setFloat(&s.radius, fr.Radius, "radius")
	setPair(&s.seed, fr.Seed, "seed")
}

// resolve loads the config file and applies it under the flags of cmd.
func (s *session) resolve(cmd *cobra.Command) error {
	fc, err := loadConfig(s.configPath)
	if err != nil {
		return err
	}
	s.merge(fc, cmd.Flags().Changed)
	return nil
}

// parameters builds the fractal named by the session.
func (s *session) parameters() (*zoomer.FractalParameters, error) {
	p, err := zoomer.Preset(s.preset)
	if err != nil {
		return nil, err
	}
	if s.maxIter > 0 {
		p.MaxIter = s.maxIter
	}
	if s.bailout > 0 {
		p.Bailout = s.bailout
	}
	if s.seed != nil {
		if len(s.seed) != 2 {
			return nil, fmt.Errorf("seed: %w", errBadPair)
		}
		p.Seed = zoomer.Vec2{X: s.seed[0], Y: s.seed[1]}
	}
	if s.center != nil {
		if len(s.center) != 2 {
			return nil, fmt.Errorf("center: %w", errBadPair)
		}
		p.Region.Center = zoomer.Vec2{X: s.center[0], Y: s.center[1]}
	}
	if s.radius > 0 {
		p.Region.Radius = zoomer.Vec2{X: s.radius, Y: s.radius}
	}
	return p, nil
}

func (s *session) config() zoomer.Config {
	cfg := zoomer.DefaultConfig(s.width, s.height)
	cfg.MinFPS = s.minFPS
	cfg.IdleFPS = s.idleFPS
	cfg.Symmetry = s.symmetry
	cfg.SolidGuess = s.solidGuess
	cfg.Incremental = s.incremental
	cfg.Debug = s.debug
	return cfg
}

// build creates the engine described by the session.
func (s *session) build() (*zoomer.Zoomer, error) {
	p, err := s.parameters()
	if err != nil {
		return nil, err
	}
	return zoomer.New(s.config(), p)
}

package zoomer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// scriptStep is a single action in a zoom script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Dir     float64 `json:"dir,omitempty"`
	CenterX float64 `json:"centerX,omitempty"`
	CenterY float64 `json:"centerY,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Seconds float32 `json:"seconds,omitempty"`
}

// script is the top-level JSON structure of a zoom script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a zoom script across frames: injected zooms and
// pans, waits, fly-tos, resets and screenshots. Attach it with SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON zoom script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse zoom script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse zoom script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "zoom", "pan", "wait", "flyto", "reset", "screenshot":
		default:
			return nil, fmt.Errorf("parse zoom script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScriptFile reads and parses a zoom script from disk.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zoom script: %w", err)
	}
	return LoadScript(data)
}

// SetScript attaches a runner; Update advances it once per frame.
func (z *Zoomer) SetScript(r *ScriptRunner) { z.script = r }

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool { return r.done }

// step advances the runner by one frame.
func (r *ScriptRunner) step(z *Zoomer) {
	if r.done {
		return
	}
	// Let injected input and flights finish before the next step.
	if len(z.injectQueue) > 0 || z.fly != nil {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	Logger().Debug("script step", slog.Int("step", r.cursor), slog.String("action", st.Action))

	switch st.Action {
	case "screenshot":
		z.Screenshot(st.Label)
	case "zoom":
		dir := st.Dir
		if dir == 0 {
			dir = 1
		}
		z.InjectZoom(st.X, st.Y, st.Frames, dir)
	case "pan":
		z.InjectPan(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "flyto":
		radius := Vec2{X: st.Radius, Y: st.Radius}
		z.FlyTo(Region{Center: Vec2{X: st.CenterX, Y: st.CenterY}, Radius: radius}, st.Seconds, nil)
	case "reset":
		z.Reset()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(z.injectQueue) == 0 && z.fly == nil {
		r.done = true
	}
}

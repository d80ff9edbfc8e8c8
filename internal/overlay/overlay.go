// Package overlay holds the single draggable text annotation. One State
// value is the source of truth for every render path; nothing keeps a
// per-view copy.
package overlay

// State is the text annotation placed over the source image. X and Y are
// percentages of the full, uncropped image and stay within [0,100] after
// every update.
type State struct {
    Text     string  `json:"text"`
    Color    string  `json:"color"`
    Font     string  `json:"font"`
    X        float64 `json:"x"`
    Y        float64 `json:"y"`
    Enabled  bool    `json:"enabled"`
    Dragging bool    `json:"-"`
}

// Default returns the annotation a fresh editor starts with: centered,
// white, enabled, no text yet.
func Default() State {
    return State{Color: "#ffffff", Font: "sans", X: 50, Y: 50, Enabled: true}
}

func (s *State) SetText(t string)  { s.Text = t }
func (s *State) SetColor(c string) { s.Color = c }
func (s *State) SetFont(f string)  { s.Font = f }

// SetPosition clamps both coordinates into [0,100]. Inputs are sanitized,
// never rejected.
func (s *State) SetPosition(x, y float64) {
    s.X = clamp(x, 0, 100)
    s.Y = clamp(y, 0, 100)
}

func (s *State) SetDragging(d bool) { s.Dragging = d }

func (s *State) SetEnabled(e bool) { s.Enabled = e }

func clamp(v, lo, hi float64) float64 {
    if v < lo {
        return lo
    }
    if v > hi {
        return hi
    }
    return v
}

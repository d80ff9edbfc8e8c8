package overlay

import "testing"

func TestDefault(t *testing.T) {
    t.Parallel()

    s := Default()
    if s.X != 50 || s.Y != 50 {
        t.Errorf("default position = (%v,%v), want (50,50)", s.X, s.Y)
    }
    if !s.Enabled {
        t.Error("default overlay should be enabled")
    }
    if s.Text != "" {
        t.Errorf("default text = %q, want empty", s.Text)
    }
}

func TestSetPositionClamps(t *testing.T) {
    t.Parallel()

    cases := []struct {
        inX, inY     float64
        wantX, wantY float64
    }{
        {50, 50, 50, 50},
        {-5, 150, 0, 100},
        {120, -0.1, 100, 0},
        {0, 100, 0, 100},
    }
    for _, c := range cases {
        s := Default()
        s.SetPosition(c.inX, c.inY)
        if s.X != c.wantX || s.Y != c.wantY {
            t.Errorf("SetPosition(%v,%v) = (%v,%v), want (%v,%v)",
                c.inX, c.inY, s.X, s.Y, c.wantX, c.wantY)
        }
    }
}

func TestSetters(t *testing.T) {
    t.Parallel()

    s := Default()
    s.SetText("Launch Day")
    s.SetColor("#ff0000")
    s.SetFont("mono")
    s.SetDragging(true)
    s.SetEnabled(false)

    if s.Text != "Launch Day" || s.Color != "#ff0000" || s.Font != "mono" {
        t.Errorf("setters: got %+v", s)
    }
    if !s.Dragging || s.Enabled {
        t.Errorf("flags: dragging=%v enabled=%v", s.Dragging, s.Enabled)
    }
}

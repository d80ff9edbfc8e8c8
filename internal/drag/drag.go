// Package drag converts pointer events over the on-screen image element into
// normalized overlay coordinates. It is a two-state machine (idle/dragging);
// every transition is a synchronous reaction to a single pointer event.
package drag

import "sync"

// Box is the bounding rectangle of the draggable image element in client
// coordinates, reported by the front end with each pointer event.
type Box struct {
    Left   float64 `json:"left"`
    Top    float64 `json:"top"`
    Width  float64 `json:"width"`
    Height float64 `json:"height"`
}

// Target receives position updates while a drag is in progress.
type Target interface {
    SetPosition(x, y float64)
    SetDragging(bool)
}

// Window is the process-wide pointer bus standing in for window-level event
// listeners. Controllers subscribe to the global pointer-up so a drag that
// ends outside the tracked element is never stuck in the dragging state.
type Window struct {
    mu       sync.Mutex
    next     int
    handlers map[int]func()
}

func NewWindow() *Window {
    return &Window{handlers: make(map[int]func())}
}

// OnPointerUp registers a handler and returns its cancel function. The
// cancel must be called when the subscriber is torn down.
func (w *Window) OnPointerUp(fn func()) (cancel func()) {
    w.mu.Lock()
    id := w.next
    w.next++
    w.handlers[id] = fn
    w.mu.Unlock()
    return func() {
        w.mu.Lock()
        delete(w.handlers, id)
        w.mu.Unlock()
    }
}

// PointerUp dispatches a window-level release to every subscriber.
func (w *Window) PointerUp() {
    w.mu.Lock()
    hs := make([]func(), 0, len(w.handlers))
    for _, fn := range w.handlers {
        hs = append(hs, fn)
    }
    w.mu.Unlock()
    for _, fn := range hs {
        fn()
    }
}

// Controller tracks one draggable region and feeds clamped percentage
// positions into its target while dragging.
type Controller struct {
    target   Target
    enabled  func() bool
    box      Box
    dragging bool
    cancel   func()
}

// NewController builds a controller over the given target. enabled gates the
// idle-to-dragging transition; pass nil for always enabled.
func NewController(target Target, enabled func() bool) *Controller {
    if enabled == nil {
        enabled = func() bool { return true }
    }
    return &Controller{target: target, enabled: enabled}
}

// Attach subscribes the controller to window-level pointer-up events.
func (c *Controller) Attach(w *Window) {
    c.Detach()
    c.cancel = w.OnPointerUp(c.release)
}

// Detach removes the window-level subscription. Must be called when the
// editor view is torn down.
func (c *Controller) Detach() {
    if c.cancel != nil {
        c.cancel()
        c.cancel = nil
    }
}

// SetBox records the tracked element's current bounding rectangle.
func (c *Controller) SetBox(b Box) { c.box = b }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// PointerDown starts a drag when the press lands inside the tracked box and
// the overlay is enabled.
func (c *Controller) PointerDown(clientX, clientY float64) {
    if !c.enabled() {
        return
    }
    if clientX < c.box.Left || clientX > c.box.Left+c.box.Width ||
        clientY < c.box.Top || clientY > c.box.Top+c.box.Height {
        return
    }
    c.dragging = true
    c.target.SetDragging(true)
    c.PointerMove(clientX, clientY)
}

// PointerMove updates the target with the pointer position as a clamped
// percentage of the box. Each move is handled independently with the latest
// coordinates; moves while idle are ignored. The controller's output is
// always within [0,100] no matter where the pointer is, regardless of what
// the target does with it.
func (c *Controller) PointerMove(clientX, clientY float64) {
    if !c.dragging || c.box.Width <= 0 || c.box.Height <= 0 {
        return
    }
    x := clamp((clientX-c.box.Left)/c.box.Width*100, 0, 100)
    y := clamp((clientY-c.box.Top)/c.box.Height*100, 0, 100)
    c.target.SetPosition(x, y)
}

func clamp(v, lo, hi float64) float64 {
    if v < lo {
        return lo
    }
    if v > hi {
        return hi
    }
    return v
}

// PointerUp ends the drag on release inside the region.
func (c *Controller) PointerUp() { c.release() }

// PointerLeave ends the drag when the pointer exits the region.
func (c *Controller) PointerLeave() { c.release() }

// release resets the drag flag unconditionally; pointer-up must clear a
// stale flag even when no drag is tracked here.
func (c *Controller) release() {
    c.dragging = false
    c.target.SetDragging(false)
}

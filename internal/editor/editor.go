// Package editor owns the application state for one editing session: the
// decoded source image, the raw bytes it came from (for the refine loop),
// and the overlay annotation. Handlers run concurrently, so all access goes
// through the mutex; render paths read immutable snapshots.
package editor

import (
    "image"
    "sync"

    "github.com/youruser/coverforge/internal/overlay"
)

type Editor struct {
    mu       sync.Mutex
    src      image.Image
    srcBytes []byte
    srcMime  string
    overlay  overlay.State
}

func New() *Editor {
    return &Editor{overlay: overlay.Default()}
}

// SetSource installs a newly generated image. The source is immutable once
// set; replacing it leaves the overlay untouched because the overlay
// position is resolution independent. Callers only reach this on a fully
// successful generation, so a failure never leaves half-set state.
func (e *Editor) SetSource(img image.Image, raw []byte, mime string) {
    e.mu.Lock()
    defer e.mu.Unlock()
    e.src = img
    e.srcBytes = raw
    e.srcMime = mime
}

// Source returns the current image, or false when nothing has been
// generated yet.
func (e *Editor) Source() (image.Image, bool) {
    e.mu.Lock()
    defer e.mu.Unlock()
    return e.src, e.src != nil
}

// LastGenerated returns the raw bytes of the current source for the refine
// loop, where the previous output becomes the next reference.
func (e *Editor) LastGenerated() (data []byte, mime string, ok bool) {
    e.mu.Lock()
    defer e.mu.Unlock()
    if e.srcBytes == nil {
        return nil, "", false
    }
    return e.srcBytes, e.srcMime, true
}

// UpdateOverlay applies a mutation to the overlay under the lock.
func (e *Editor) UpdateOverlay(fn func(*overlay.State)) {
    e.mu.Lock()
    defer e.mu.Unlock()
    fn(&e.overlay)
}

// Overlay returns a copy of the overlay state.
func (e *Editor) Overlay() overlay.State {
    e.mu.Lock()
    defer e.mu.Unlock()
    return e.overlay
}

// DragTarget adapts the editor to the drag controller's target interface.
type DragTarget struct{ E *Editor }

func (t DragTarget) SetPosition(x, y float64) {
    t.E.UpdateOverlay(func(s *overlay.State) { s.SetPosition(x, y) })
}

func (t DragTarget) SetDragging(d bool) {
    t.E.UpdateOverlay(func(s *overlay.State) { s.SetDragging(d) })
}

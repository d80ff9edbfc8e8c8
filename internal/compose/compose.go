// Package compose renders the final export rasters: the cropped source
// pixels scaled onto a destination canvas with the overlay text re-projected
// into the cropped coordinate space.
package compose

import (
    "bytes"
    "fmt"
    "image"
    "image/color"
    "image/png"
    "math"
    "strconv"
    "strings"
    "time"

    "github.com/disintegration/imaging"
    "github.com/fogleman/gg"

    "github.com/youruser/coverforge/internal/geometry"
    "github.com/youruser/coverforge/internal/overlay"
)

// Font size relative to the destination height. The cropped kinds are viewed
// small in a feed, so their text is relatively larger.
const (
    fontScaleCropped = 0.15
    fontScaleFull    = 0.08
)

// Shadow style is fixed: near-opaque black, blur and vertical offset
// proportional to the font size, for legibility over arbitrary image content.
const (
    shadowAlpha       = 0.8
    shadowBlurRatio   = 0.15
    shadowOffsetRatio = 0.07
)

// Render composites one export: crop, scale to the kind's target size, then
// draw the overlay text if it is enabled and non-empty. The result is PNG
// bytes; identical inputs produce identical bytes.
func Render(src image.Image, ov overlay.State, kind geometry.Kind) ([]byte, error) {
    if src == nil {
        return nil, fmt.Errorf("no source image")
    }
    b := src.Bounds()
    srcW, srcH := b.Dx(), b.Dy()
    g := geometry.Plan(kind, srcW, srcH)

    rect := image.Rect(
        b.Min.X+int(math.Round(g.SX)),
        b.Min.Y+int(math.Round(g.SY)),
        b.Min.X+int(math.Round(g.SX+g.SW)),
        b.Min.Y+int(math.Round(g.SY+g.SH)),
    )
    cropped := imaging.Crop(src, rect)
    scaled := imaging.Resize(cropped, g.TargetW, g.TargetH, imaging.Lanczos)

    dc := gg.NewContext(g.TargetW, g.TargetH)
    dc.DrawImage(scaled, 0, 0)

    if ov.Enabled && ov.Text != "" {
        if err := drawText(dc, ov, srcW, srcH, g, kind); err != nil {
            return nil, err
        }
    }

    var buf bytes.Buffer
    if err := png.Encode(&buf, dc.Image()); err != nil {
        return nil, fmt.Errorf("encode png: %w", err)
    }
    return buf.Bytes(), nil
}

func drawText(dc *gg.Context, ov overlay.State, srcW, srcH int, g geometry.CropGeometry, kind geometry.Kind) error {
    scale := fontScaleCropped
    if kind == geometry.KindFull {
        scale = fontScaleFull
    }
    fontSize := float64(g.TargetH) * scale

    face, err := faceFor(ov.Font, fontSize)
    if err != nil {
        return err
    }
    dc.SetFontFace(face)

    tx, ty := geometry.ProjectIntoCrop(ov.X, ov.Y, srcW, srcH, g)

    // Shadow: a small cluster of low-alpha passes around the offset point
    // approximates the blur without a full gaussian.
    blur := fontSize * shadowBlurRatio
    offY := fontSize * shadowOffsetRatio
    passes := []struct{ dx, dy, a float64 }{
        {0, 0, shadowAlpha / 2},
        {-blur / 2, 0, shadowAlpha / 8},
        {blur / 2, 0, shadowAlpha / 8},
        {0, -blur / 2, shadowAlpha / 8},
        {0, blur / 2, shadowAlpha / 8},
    }
    for _, p := range passes {
        dc.SetRGBA(0, 0, 0, p.a)
        dc.DrawStringAnchored(ov.Text, tx+p.dx, ty+offY+p.dy, 0.5, 0.5)
    }

    dc.SetColor(parseHexColor(ov.Color))
    dc.DrawStringAnchored(ov.Text, tx, ty, 0.5, 0.5)
    return nil
}

// parseHexColor converts a "#rrggbb" string to a color, defaulting to white
// on any malformed input.
func parseHexColor(hex string) color.RGBA {
    white := color.RGBA{255, 255, 255, 255}
    hex = strings.TrimPrefix(hex, "#")
    if len(hex) != 6 {
        return white
    }
    r, err1 := strconv.ParseUint(hex[0:2], 16, 8)
    g, err2 := strconv.ParseUint(hex[2:4], 16, 8)
    b, err3 := strconv.ParseUint(hex[4:6], 16, 8)
    if err1 != nil || err2 != nil || err3 != nil {
        return white
    }
    return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

// Filename names a downloadable export. The timestamp is for uniqueness,
// not ordering.
func Filename(kind geometry.Kind) string {
    return fmt.Sprintf("%s-%d.png", kind, time.Now().UnixMilli())
}

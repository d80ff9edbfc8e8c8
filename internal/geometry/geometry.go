// Package geometry holds the pure crop and coordinate math shared by every
// render path: the live editor, the feed preview, and the raster exports.
// Positions are normalized percentages (0-100) of the full source image so a
// single overlay placement survives cropping and rescaling.
package geometry

// Kind selects one of the fixed export outputs.
type Kind string

const (
    KindFull  Kind = "full"
    KindCover Kind = "cover"
    KindIcon  Kind = "icon"
)

// Fixed target dimensions for the cropped export kinds.
const (
    CoverWidth  = 900
    CoverHeight = 383
    IconSide    = 500
)

// ParseKind maps a request string to an export kind.
func ParseKind(s string) (Kind, bool) {
    switch Kind(s) {
    case KindFull, KindCover, KindIcon:
        return Kind(s), true
    }
    return "", false
}

// CropGeometry describes one export: the source sub-rectangle to cut and the
// destination canvas size it is scaled onto. Recomputed per export request,
// never stored.
type CropGeometry struct {
    SX, SY, SW, SH   float64
    TargetW, TargetH int
}

// Plan computes the crop geometry for a kind against the source's natural
// dimensions. Non-positive dimensions are the caller's bug; guard at the
// boundary.
func Plan(kind Kind, srcW, srcH int) CropGeometry {
    w := float64(srcW)
    h := float64(srcH)

    switch kind {
    case KindCover:
        // Fit the source width to the 900px target and cut a vertically
        // centered band of matching proportion.
        scale := w / CoverWidth
        cropH := CoverHeight * scale
        if cropH > h {
            // Source is shorter than the 16:9 assumption. Fit height
            // instead and center horizontally rather than emitting a
            // negative offset.
            scale = h / CoverHeight
            cropW := CoverWidth * scale
            return CropGeometry{
                SX: (w - cropW) / 2, SY: 0, SW: cropW, SH: h,
                TargetW: CoverWidth, TargetH: CoverHeight,
            }
        }
        return CropGeometry{
            SX: 0, SY: (h - cropH) / 2, SW: w, SH: cropH,
            TargetW: CoverWidth, TargetH: CoverHeight,
        }
    case KindIcon:
        // Largest centered square.
        side := w
        if h < w {
            side = h
        }
        return CropGeometry{
            SX: (w - side) / 2, SY: (h - side) / 2, SW: side, SH: side,
            TargetW: IconSide, TargetH: IconSide,
        }
    default:
        return CropGeometry{SX: 0, SY: 0, SW: w, SH: h, TargetW: srcW, TargetH: srcH}
    }
}

// PixelPosition converts a normalized position to pixels within an uncropped
// bounding box (the identity mapping the live editor uses).
func PixelPosition(x, y, boxW, boxH float64) (float64, float64) {
    return x / 100 * boxW, y / 100 * boxH
}

// ProjectIntoCrop maps a normalized position over the full source image into
// the destination space of a crop. Positions outside the crop land off-canvas
// rather than erroring; the caller draws them and they simply are not visible.
func ProjectIntoCrop(x, y float64, srcW, srcH int, g CropGeometry) (float64, float64) {
    pX := x / 100 * float64(srcW)
    pY := y / 100 * float64(srcH)
    tx := (pX - g.SX) * (float64(g.TargetW) / g.SW)
    ty := (pY - g.SY) * (float64(g.TargetH) / g.SH)
    return tx, ty
}

// previewVisibleFrac is the fraction of the source height visible in the
// 2.35:1 feed preview, derived from the crop ratio alone. The preview never
// knows the real source dimensions; the exported raster is authoritative.
const previewVisibleFrac = (16.0 / 9.0) / 2.35

// ProjectIntoPreview re-projects a normalized position into the feed
// preview's visible band. This is a deliberate constant-scale approximation
// of the cover crop, not its exact inverse.
func ProjectIntoPreview(x, y float64) (float64, float64) {
    hidden := (1 - previewVisibleFrac) / 2 * 100
    return x, (y - hidden) / previewVisibleFrac
}

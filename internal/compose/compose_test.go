package compose

import (
    "bytes"
    "image"
    "image/color"
    "image/png"
    "strings"
    "testing"

    "github.com/youruser/coverforge/internal/geometry"
    "github.com/youruser/coverforge/internal/overlay"
)

// testImage builds a deterministic gradient so renders are comparable
// byte-for-byte.
func testImage(w, h int) image.Image {
    img := image.NewNRGBA(image.Rect(0, 0, w, h))
    for y := 0; y < h; y++ {
        for x := 0; x < w; x++ {
            img.SetNRGBA(x, y, color.NRGBA{
                R: uint8(x * 255 / w),
                G: uint8(y * 255 / h),
                B: uint8((x + y) % 256),
                A: 255,
            })
        }
    }
    return img
}

func decodeSize(t *testing.T, data []byte) (int, int) {
    t.Helper()
    cfg, err := png.DecodeConfig(bytes.NewReader(data))
    if err != nil {
        t.Fatalf("output is not a valid PNG: %v", err)
    }
    return cfg.Width, cfg.Height
}

func TestRenderTargetDimensions(t *testing.T) {
    t.Parallel()

    src := testImage(1600, 900)
    ov := overlay.Default()
    ov.SetText("Hello")

    cases := []struct {
        kind geometry.Kind
        w, h int
    }{
        {geometry.KindFull, 1600, 900},
        {geometry.KindCover, 900, 383},
        {geometry.KindIcon, 500, 500},
    }
    for _, c := range cases {
        data, err := Render(src, ov, c.kind)
        if err != nil {
            t.Fatalf("Render(%s): %v", c.kind, err)
        }
        w, h := decodeSize(t, data)
        if w != c.w || h != c.h {
            t.Errorf("Render(%s) = %dx%d, want %dx%d", c.kind, w, h, c.w, c.h)
        }
    }
}

func TestRenderIdempotent(t *testing.T) {
    t.Parallel()

    src := testImage(640, 360)
    ov := overlay.Default()
    ov.SetText("Launch Day")
    ov.SetColor("#ffcc00")

    for _, kind := range []geometry.Kind{geometry.KindFull, geometry.KindCover, geometry.KindIcon} {
        a, err := Render(src, ov, kind)
        if err != nil {
            t.Fatalf("first render (%s): %v", kind, err)
        }
        b, err := Render(src, ov, kind)
        if err != nil {
            t.Fatalf("second render (%s): %v", kind, err)
        }
        if !bytes.Equal(a, b) {
            t.Errorf("Render(%s) is not deterministic", kind)
        }
    }
}

func TestDisabledOverlaySuppressesText(t *testing.T) {
    t.Parallel()

    src := testImage(640, 360)

    for _, kind := range []geometry.Kind{geometry.KindFull, geometry.KindCover, geometry.KindIcon} {
        disabled := overlay.Default()
        disabled.SetText("Hello")
        disabled.SetEnabled(false)

        empty := overlay.Default()

        withText, err := Render(src, disabled, kind)
        if err != nil {
            t.Fatalf("render disabled (%s): %v", kind, err)
        }
        bare, err := Render(src, empty, kind)
        if err != nil {
            t.Fatalf("render empty (%s): %v", kind, err)
        }
        if !bytes.Equal(withText, bare) {
            t.Errorf("disabled overlay still drew text for kind %s", kind)
        }

        enabled := overlay.Default()
        enabled.SetText("Hello")
        drawn, err := Render(src, enabled, kind)
        if err != nil {
            t.Fatalf("render enabled (%s): %v", kind, err)
        }
        if bytes.Equal(drawn, bare) {
            t.Errorf("enabled overlay did not draw text for kind %s", kind)
        }
    }
}

func TestRenderNilSource(t *testing.T) {
    t.Parallel()

    if _, err := Render(nil, overlay.Default(), geometry.KindFull); err == nil {
        t.Error("nil source should error")
    }
}

func TestParseHexColor(t *testing.T) {
    t.Parallel()

    if c := parseHexColor("#ff8000"); c.R != 255 || c.G != 128 || c.B != 0 {
        t.Errorf("parseHexColor(#ff8000) = %v", c)
    }
    // Malformed input falls back to white, including six-character strings
    // that are not hex digits.
    for _, bad := range []string{"red", "#zzzzzz", "zzzzzz", "#12345g", ""} {
        if c := parseHexColor(bad); c.R != 255 || c.G != 255 || c.B != 255 {
            t.Errorf("parseHexColor(%q) = %v, want white", bad, c)
        }
    }
}

func TestFilename(t *testing.T) {
    t.Parallel()

    name := Filename(geometry.KindCover)
    if !strings.HasPrefix(name, "cover-") || !strings.HasSuffix(name, ".png") {
        t.Errorf("Filename = %q, want cover-<timestamp>.png", name)
    }
}

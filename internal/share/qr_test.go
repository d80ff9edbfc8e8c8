package share

import (
    "bytes"
    "image/png"
    "testing"
)

func TestQRPNG(t *testing.T) {
    t.Parallel()

    data, err := QRPNG("http://localhost:8080/api/export/cover", 200)
    if err != nil {
        t.Fatal(err)
    }
    cfg, err := png.DecodeConfig(bytes.NewReader(data))
    if err != nil {
        t.Fatalf("not a PNG: %v", err)
    }
    if cfg.Width != 200 || cfg.Height != 200 {
        t.Errorf("qr size = %dx%d, want 200x200", cfg.Width, cfg.Height)
    }
}

func TestQRPNGEmptyURL(t *testing.T) {
    t.Parallel()

    if _, err := QRPNG("", 200); err == nil {
        t.Error("empty url should error")
    }
}

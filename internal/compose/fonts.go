package compose

import (
    "fmt"
    "sync"

    "golang.org/x/image/font"
    "golang.org/x/image/font/gofont/gobold"
    "golang.org/x/image/font/gofont/gomonobold"
    "golang.org/x/image/font/opentype"
)

// Overlay text is always drawn bold; the font field selects between the
// embedded bold faces. Unknown names fall back to the default sans face.
var fontData = map[string][]byte{
    "sans": gobold.TTF,
    "mono": gomonobold.TTF,
}

var (
    fontMu     sync.Mutex
    fontParsed = map[string]*opentype.Font{}
)

func parsedFont(name string) (*opentype.Font, error) {
    ttf, ok := fontData[name]
    if !ok {
        name, ttf = "sans", fontData["sans"]
    }
    fontMu.Lock()
    defer fontMu.Unlock()
    if f, ok := fontParsed[name]; ok {
        return f, nil
    }
    f, err := opentype.Parse(ttf)
    if err != nil {
        return nil, fmt.Errorf("parse font %q: %w", name, err)
    }
    fontParsed[name] = f
    return f, nil
}

// faceFor returns a bold font.Face for the overlay's font name at the given
// pixel size.
func faceFor(name string, size float64) (font.Face, error) {
    f, err := parsedFont(name)
    if err != nil {
        return nil, err
    }
    face, err := opentype.NewFace(f, &opentype.FaceOptions{
        Size:    size,
        DPI:     72,
        Hinting: font.HintingFull,
    })
    if err != nil {
        return nil, fmt.Errorf("font face: %w", err)
    }
    return face, nil
}

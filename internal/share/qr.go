// Package share renders the "open on phone" QR code the preview screen
// shows next to an export link.
package share

import (
    "bytes"
    "fmt"
    "image/png"

    qrcode "github.com/skip2/go-qrcode"
)

// QRPNG returns PNG bytes of a QR code for the given URL. The result is
// decoded once as a sanity check before being handed to the client.
func QRPNG(url string, size int) ([]byte, error) {
    if url == "" {
        return nil, fmt.Errorf("empty share url")
    }
    if size <= 0 {
        size = 400
    }
    data, err := qrcode.Encode(url, qrcode.Medium, size)
    if err != nil {
        return nil, fmt.Errorf("encode qr: %w", err)
    }
    if _, err := png.Decode(bytes.NewReader(data)); err != nil {
        return nil, fmt.Errorf("invalid qr png: %w", err)
    }
    return data, nil
}

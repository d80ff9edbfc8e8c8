// Package upload is the reference-image boundary: it turns a data URI into
// raw bytes and rejects oversized payloads before they reach the editor.
package upload

import (
    "encoding/base64"
    "errors"
    "fmt"
    "strings"
)

// MaxReferenceBytes caps accepted reference images at 4 MiB.
const MaxReferenceBytes = 4 << 20

// ErrTooLarge marks an upload over the size cap.
var ErrTooLarge = errors.New("reference image exceeds 4 MiB limit")

// DecodeDataURI parses a "data:<mime>;base64,<payload>" string. The size cap
// is enforced on the decoded length before any bytes are handed out, so an
// oversized upload never touches editor state.
func DecodeDataURI(uri string) (data []byte, mime string, err error) {
    if !strings.HasPrefix(uri, "data:") {
        return nil, "", fmt.Errorf("not a data URI")
    }
    rest := uri[len("data:"):]
    sep := strings.Index(rest, ",")
    if sep < 0 {
        return nil, "", fmt.Errorf("malformed data URI")
    }
    meta, payload := rest[:sep], rest[sep+1:]
    if !strings.HasSuffix(meta, ";base64") {
        return nil, "", fmt.Errorf("data URI is not base64 encoded")
    }
    mime = strings.TrimSuffix(meta, ";base64")
    if mime == "" {
        mime = "application/octet-stream"
    }

    if base64.StdEncoding.DecodedLen(len(payload)) > MaxReferenceBytes {
        return nil, "", ErrTooLarge
    }
    data, err = base64.StdEncoding.DecodeString(payload)
    if err != nil {
        return nil, "", fmt.Errorf("decode data URI: %w", err)
    }
    if len(data) > MaxReferenceBytes {
        return nil, "", ErrTooLarge
    }
    return data, mime, nil
}

// Package genai is the generation collaborator boundary. The core only
// requires "give me bytes decodable as a raster image, or tell me it
// failed"; this client speaks to an HTTP image-generation endpoint.
package genai

import (
    "bytes"
    "context"
    "encoding/base64"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"
)

// Request carries one generation call: a prompt and an optional reference
// image the model should riff on.
type Request struct {
    Prompt        string
    Reference     []byte
    ReferenceMime string
}

// Generator produces raster image bytes for a request or fails.
type Generator interface {
    Generate(ctx context.Context, req Request) ([]byte, error)
}

// Client calls an HTTP generation endpoint with a JSON body and expects
// image bytes back.
type Client struct {
    endpoint string
    apiKey   string
    http     *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
    return &Client{
        endpoint: endpoint,
        apiKey:   apiKey,
        http:     &http.Client{Timeout: 60 * time.Second},
    }
}

type wireRequest struct {
    Prompt        string `json:"prompt"`
    Reference     string `json:"reference,omitempty"`
    ReferenceMime string `json:"reference_mime,omitempty"`
}

// Generate posts the request and returns the response body as image bytes.
// Any non-200 status or empty body is an error; the caller decodes the
// bytes and decides what to surface to the user.
func (c *Client) Generate(ctx context.Context, req Request) ([]byte, error) {
    wr := wireRequest{Prompt: req.Prompt}
    if len(req.Reference) > 0 {
        wr.Reference = base64.StdEncoding.EncodeToString(req.Reference)
        wr.ReferenceMime = req.ReferenceMime
    }
    body, err := json.Marshal(wr)
    if err != nil {
        return nil, fmt.Errorf("encode request: %w", err)
    }

    hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
    if err != nil {
        return nil, err
    }
    hreq.Header.Set("Content-Type", "application/json")
    if c.apiKey != "" {
        hreq.Header.Set("Authorization", "Bearer "+c.apiKey)
    }

    resp, err := c.http.Do(hreq)
    if err != nil {
        return nil, fmt.Errorf("generation request: %w", err)
    }
    defer resp.Body.Close()

    data, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, fmt.Errorf("read generation response: %w", err)
    }
    if resp.StatusCode != http.StatusOK {
        msg := strings.TrimSpace(string(data))
        if len(msg) > 200 {
            msg = msg[:200]
        }
        return nil, fmt.Errorf("generation failed: %s: %s", resp.Status, msg)
    }
    if len(data) == 0 {
        return nil, fmt.Errorf("generation returned no image")
    }
    return data, nil
}

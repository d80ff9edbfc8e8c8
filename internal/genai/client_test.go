package genai

import (
    "context"
    "encoding/base64"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
)

func TestClientGenerate(t *testing.T) {
    t.Parallel()

    want := []byte("raster bytes")
    ref := []byte{0x89, 0x50, 0x4e, 0x47}

    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.Method != http.MethodPost {
            t.Errorf("method = %s", r.Method)
        }
        if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
            t.Errorf("auth = %q", auth)
        }
        var body struct {
            Prompt        string `json:"prompt"`
            Reference     string `json:"reference"`
            ReferenceMime string `json:"reference_mime"`
        }
        if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
            t.Errorf("bad request body: %v", err)
        }
        if body.Prompt != "a lighthouse" {
            t.Errorf("prompt = %q", body.Prompt)
        }
        if body.Reference != base64.StdEncoding.EncodeToString(ref) {
            t.Errorf("reference = %q", body.Reference)
        }
        if body.ReferenceMime != "image/png" {
            t.Errorf("reference mime = %q", body.ReferenceMime)
        }
        w.Write(want)
    }))
    defer srv.Close()

    c := NewClient(srv.URL, "secret")
    got, err := c.Generate(context.Background(), Request{
        Prompt:        "a lighthouse",
        Reference:     ref,
        ReferenceMime: "image/png",
    })
    if err != nil {
        t.Fatal(err)
    }
    if string(got) != string(want) {
        t.Errorf("response = %q, want %q", got, want)
    }
}

func TestClientGenerateErrors(t *testing.T) {
    t.Parallel()

    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, "model overloaded", http.StatusServiceUnavailable)
    }))
    defer srv.Close()

    c := NewClient(srv.URL, "")
    if _, err := c.Generate(context.Background(), Request{Prompt: "x"}); err == nil {
        t.Error("non-200 response should error")
    }
}

func TestClientGenerateEmptyBody(t *testing.T) {
    t.Parallel()

    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
    }))
    defer srv.Close()

    c := NewClient(srv.URL, "")
    if _, err := c.Generate(context.Background(), Request{Prompt: "x"}); err == nil {
        t.Error("empty body should error")
    }
}

package api

import (
    "bytes"
    "errors"
    "fmt"
    "log"
    "net/http"
    "strconv"
    "sync"

    "github.com/disintegration/imaging"
    "github.com/gin-gonic/gin"

    "github.com/youruser/coverforge/internal/compose"
    "github.com/youruser/coverforge/internal/config"
    "github.com/youruser/coverforge/internal/drag"
    "github.com/youruser/coverforge/internal/editor"
    "github.com/youruser/coverforge/internal/genai"
    "github.com/youruser/coverforge/internal/geometry"
    "github.com/youruser/coverforge/internal/overlay"
    "github.com/youruser/coverforge/internal/share"
    "github.com/youruser/coverforge/internal/upload"
)

// Server wires the editor state, drag controller, and generation client
// behind the HTTP handlers.
type Server struct {
    editor *editor.Editor
    drag   *drag.Controller
    window *drag.Window
    gen    genai.Generator
    cfg    *config.Config

    // dragMu serializes pointer events; the controller itself assumes
    // synchronous event delivery.
    dragMu sync.Mutex
}

func NewServer(gen genai.Generator, cfg *config.Config) *Server {
    e := editor.New()
    w := drag.NewWindow()
    ctl := drag.NewController(editor.DragTarget{E: e}, func() bool { return e.Overlay().Enabled })
    ctl.Attach(w)
    return &Server{editor: e, drag: ctl, window: w, gen: gen, cfg: cfg}
}

// Close tears down the editor view, dropping the window-level pointer
// subscription.
func (s *Server) Close() {
    s.drag.Detach()
}

// health
func (s *Server) health(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generate runs one generation call and, only on full success, installs the
// result as the new source image. Any failure leaves the prior source and
// overlay untouched so the user can retry without losing work.
func (s *Server) generateHandler(c *gin.Context) {
    var req struct {
        Prompt    string `json:"prompt"`
        Reference string `json:"reference"`
    }
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if req.Prompt == "" && req.Reference == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "enter a prompt or attach a reference image"})
        return
    }

    var ref []byte
    var refMime string
    if req.Reference != "" {
        var err error
        ref, refMime, err = upload.DecodeDataURI(req.Reference)
        if err != nil {
            status := http.StatusBadRequest
            if errors.Is(err, upload.ErrTooLarge) {
                status = http.StatusRequestEntityTooLarge
            }
            c.JSON(status, gin.H{"error": err.Error()})
            return
        }
    }

    s.runGeneration(c, req.Prompt, ref, refMime)
}

// refine re-uses the last generated image as the next reference.
func (s *Server) refineHandler(c *gin.Context) {
    var req struct {
        Prompt string `json:"prompt"`
    }
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    ref, mime, ok := s.editor.LastGenerated()
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "no generated image to refine"})
        return
    }
    s.runGeneration(c, req.Prompt, ref, mime)
}

func (s *Server) runGeneration(c *gin.Context, prompt string, ref []byte, refMime string) {
    data, err := s.gen.Generate(c.Request.Context(), genai.Request{
        Prompt:        prompt,
        Reference:     ref,
        ReferenceMime: refMime,
    })
    if err != nil {
        log.Println("generation error:", err)
        c.JSON(http.StatusBadGateway, gin.H{"error": "image generation failed, please try again"})
        return
    }
    img, err := imaging.Decode(bytes.NewReader(data))
    if err != nil {
        log.Println("decode error:", err)
        c.JSON(http.StatusBadGateway, gin.H{"error": "image generation failed, please try again"})
        return
    }
    s.editor.SetSource(img, data, http.DetectContentType(data))

    b := img.Bounds()
    c.JSON(http.StatusOK, gin.H{"width": b.Dx(), "height": b.Dy()})
}

// overlay field updates; absent fields are left alone
func (s *Server) overlayHandler(c *gin.Context) {
    var req struct {
        Text    *string `json:"text"`
        Color   *string `json:"color"`
        Font    *string `json:"font"`
        Enabled *bool   `json:"enabled"`
    }
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    s.editor.UpdateOverlay(func(ov *overlay.State) {
        if req.Text != nil {
            ov.SetText(*req.Text)
        }
        if req.Color != nil {
            ov.SetColor(*req.Color)
        }
        if req.Font != nil {
            ov.SetFont(*req.Font)
        }
        if req.Enabled != nil {
            ov.SetEnabled(*req.Enabled)
        }
    })
    c.JSON(http.StatusOK, s.editor.Overlay())
}

func (s *Server) positionHandler(c *gin.Context) {
    var req struct {
        X float64 `json:"x"`
        Y float64 `json:"y"`
    }
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    s.editor.UpdateOverlay(func(ov *overlay.State) { ov.SetPosition(req.X, req.Y) })
    c.JSON(http.StatusOK, s.editor.Overlay())
}

// pointer feeds raw pointer events into the drag controller
func (s *Server) pointerHandler(c *gin.Context) {
    var req struct {
        Event   string    `json:"event"`
        ClientX float64   `json:"clientX"`
        ClientY float64   `json:"clientY"`
        Box     *drag.Box `json:"box"`
    }
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    s.dragMu.Lock()
    if req.Box != nil {
        s.drag.SetBox(*req.Box)
    }
    switch req.Event {
    case "down":
        s.drag.PointerDown(req.ClientX, req.ClientY)
    case "move":
        s.drag.PointerMove(req.ClientX, req.ClientY)
    case "up":
        s.drag.PointerUp()
    case "leave":
        s.drag.PointerLeave()
    case "windowup":
        s.window.PointerUp()
    default:
        s.dragMu.Unlock()
        c.JSON(http.StatusBadRequest, gin.H{"error": "unknown pointer event: " + req.Event})
        return
    }
    dragging := s.drag.Dragging()
    s.dragMu.Unlock()

    ov := s.editor.Overlay()
    c.JSON(http.StatusOK, gin.H{"dragging": dragging, "x": ov.X, "y": ov.Y})
}

// preview returns the overlay position re-projected into the approximate
// feed-preview band; the export endpoints stay authoritative
func (s *Server) previewHandler(c *gin.Context) {
    ov := s.editor.Overlay()
    x, y := geometry.ProjectIntoPreview(ov.X, ov.Y)
    c.JSON(http.StatusOK, gin.H{
        "x":       x,
        "y":       y,
        "visible": y >= 0 && y <= 100,
    })
}

// export composites one kind and offers it as a download
func (s *Server) exportHandler(c *gin.Context) {
    kind, ok := geometry.ParseKind(c.Param("kind"))
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export kind: " + c.Param("kind")})
        return
    }
    src, ok := s.editor.Source()
    if !ok {
        c.JSON(http.StatusConflict, gin.H{"error": "generate an image first"})
        return
    }
    data, err := compose.Render(src, s.editor.Overlay(), kind)
    if err != nil {
        log.Println("compose error:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, compose.Filename(kind)))
    c.Data(http.StatusOK, "image/png", data)
}

// qr returns a scannable link to an export endpoint
func (s *Server) qrHandler(c *gin.Context) {
    kind := c.DefaultQuery("kind", string(geometry.KindCover))
    if _, ok := geometry.ParseKind(kind); !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export kind: " + kind})
        return
    }
    size := 400
    if v := c.Query("size"); v != "" {
        if n, err := strconv.Atoi(v); err == nil {
            size = n
        }
    }
    b, err := share.QRPNG(s.cfg.ShareBaseURL+"/api/export/"+kind, size)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.Data(http.StatusOK, "image/png", b)
}

package main

import (
    "flag"
    "log"
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/youruser/coverforge/internal/api"
    "github.com/youruser/coverforge/internal/config"
    "github.com/youruser/coverforge/internal/genai"
)

func main() {
    configPath := flag.String("config", "config.json", "path to JSON config file")
    flag.Parse()

    cfg, err := config.Load(*configPath)
    if err != nil {
        log.Fatal(err)
    }
    if cfg.Generator.Endpoint == "" {
        log.Println("Warning: no generator endpoint configured, /api/generate will fail")
    }

    gen := genai.NewClient(cfg.Generator.Endpoint, cfg.Generator.APIKey)
    srv := api.NewServer(gen, cfg)
    defer srv.Close()

    r := gin.Default()
    api.RegisterRoutes(r, srv)

    log.Println("starting server on http://localhost:" + cfg.Port)
    if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
        log.Fatal(err)
    }
}

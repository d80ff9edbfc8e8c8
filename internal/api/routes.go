package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
    api := r.Group("/api")
    {
        api.GET("/health", s.health)
        api.POST("/generate", s.generateHandler)
        api.POST("/refine", s.refineHandler)
        api.POST("/overlay", s.overlayHandler)
        api.POST("/overlay/position", s.positionHandler)
        api.GET("/overlay/preview", s.previewHandler)
        api.POST("/pointer", s.pointerHandler)
        api.GET("/export/:kind", s.exportHandler)
        api.GET("/share/qr", s.qrHandler)
    }
}

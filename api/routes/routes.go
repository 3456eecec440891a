package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/specwise/spec-analyzer/api/handlers"
	"github.com/specwise/spec-analyzer/api/middleware"
)

// SetupRoutes wires every endpoint onto the engine.
func SetupRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1.GET("/capabilities", h.Analysis.Capabilities)

	specs := v1.Group("/specs")
	{
		specs.POST("/analyze", h.Analysis.AnalyzeDocument)
		specs.POST("/extract", h.Analysis.ExtractDocument)
	}

	views := v1.Group("/views")
	{
		views.POST("/summary", h.Analysis.Summary)
		views.POST("/flags", h.Analysis.ComplianceFlags)
		views.POST("/submittal", h.Analysis.SubmittalLog)
		views.POST("/submittal/export", h.Analysis.ExportSubmittalLog)
		views.POST("/bidnotes", h.Analysis.BidNotes)
	}
}

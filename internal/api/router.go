package api

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册全部路由；pprof 方便调试和监测性能问题
func RegisterRoutes(r *gin.Engine, analysis *AnalysisHandler, sync *SyncHandler) {
	pprof.Register(r)

	apiGroup := r.Group("/api")
	apiGroup.POST("/analyze", analysis.Analyze)
	apiGroup.POST("/scan", analysis.Scan)
	apiGroup.POST("/scan/live", analysis.ScanLive)
	apiGroup.GET("/events", analysis.ListEvents)
	apiGroup.GET("/events/:id", analysis.GetEvent)
	apiGroup.POST("/events/:id/analyze", analysis.AnalyzeByID)
	apiGroup.GET("/snapshots", sync.ListSnapshots)

	r.POST("/sync/polymarket", sync.SyncPolymarket)
}

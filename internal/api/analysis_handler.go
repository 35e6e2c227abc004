package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"MarketLens/internal/model"
	"MarketLens/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Analyzer 分析管道（由 service.AnalysisService 实现）
type Analyzer interface {
	Analyze(ctx context.Context, event *model.EventRecord) (*model.AnalysisResult, error)
	Scan(ctx context.Context, events []model.EventRecord) (*model.ScanResult, error)
	AnalyzeByID(ctx context.Context, id string) (*model.AnalysisResult, error)
	ScanLive(ctx context.Context, limit int) (*model.ScanResult, error)
	ActiveEvents(ctx context.Context, limit int) ([]model.EventRecord, error)
	Event(ctx context.Context, id string) (*model.EventRecord, error)
}

var _ Analyzer = (*service.AnalysisService)(nil)

// AnalysisHandler 错价分析接口
type AnalysisHandler struct {
	analyzer Analyzer
	logger   *logrus.Logger
}

func NewAnalysisHandler(analyzer Analyzer, logger *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, logger: logger}
}

type analyzeRequest struct {
	Event *model.EventRecord `json:"event"`
}

type scanRequest struct {
	Events []model.EventRecord `json:"events"`
}

// Analyze 单事件分析
// POST /api/analyze {"event": {...}}
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	result, err := h.analyzer.Analyze(c.Request.Context(), req.Event)
	if err != nil {
		abortWithError(c, h.logger, "analyze", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Scan 批量扫描调用方提供的事件
// POST /api/scan {"events": [...]}
func (h *AnalysisHandler) Scan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	result, err := h.analyzer.Scan(c.Request.Context(), req.Events)
	if err != nil {
		abortWithError(c, h.logger, "scan", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListEvents 实时拉取未关闭事件
// GET /api/events?limit=50
func (h *AnalysisHandler) ListEvents(c *gin.Context) {
	events, err := h.analyzer.ActiveEvents(c.Request.Context(), queryLimit(c))
	if err != nil {
		abortWithError(c, h.logger, "list_events", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// GetEvent 单个事件
// GET /api/events/:id
func (h *AnalysisHandler) GetEvent(c *gin.Context) {
	event, err := h.analyzer.Event(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, h.logger, "get_event", err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// AnalyzeByID 拉取事件后分析
// POST /api/events/:id/analyze
func (h *AnalysisHandler) AnalyzeByID(c *gin.Context) {
	result, err := h.analyzer.AnalyzeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, h.logger, "analyze_by_id", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ScanLive 拉取未关闭事件后批量扫描
// POST /api/scan/live?limit=50
func (h *AnalysisHandler) ScanLive(c *gin.Context) {
	result, err := h.analyzer.ScanLive(c.Request.Context(), queryLimit(c))
	if err != nil {
		abortWithError(c, h.logger, "scan_live", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// queryLimit 非法或缺省时返回 0，由服务层取默认值
func queryLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit < 0 {
		return 0
	}
	return limit
}

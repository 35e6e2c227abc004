package api

import (
	"context"
	"fmt"
	"net/http"

	"MarketLens/internal/model"
	"MarketLens/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Syncer 行情快照同步（由 service.SyncService 实现）
type Syncer interface {
	Sync(ctx context.Context, limit int) (int, error)
	Snapshots(ctx context.Context, limit int) ([]model.EventRecord, error)
}

var _ Syncer = (*service.SyncService)(nil)

type SyncHandler struct {
	syncer Syncer
	logger *logrus.Logger
}

func NewSyncHandler(syncer Syncer, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{syncer: syncer, logger: logger}
}

// SyncPolymarket 同步 Polymarket 行情快照
// POST /sync/polymarket?limit=50
func (h *SyncHandler) SyncPolymarket(c *gin.Context) {
	n, err := h.syncer.Sync(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.logger.Errorf("同步%s失败: %v", model.PlatformPolymarket, err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s同步成功", model.PlatformPolymarket),
		"count":   n,
	})
}

// ListSnapshots 已同步的事件
// GET /api/snapshots?limit=50
func (h *SyncHandler) ListSnapshots(c *gin.Context) {
	events, err := h.syncer.Snapshots(c.Request.Context(), queryLimit(c))
	if err != nil {
		abortWithError(c, h.logger, "list_snapshots", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

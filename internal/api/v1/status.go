package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/shaping"
)

// RecordCounts 已加载记录的条目数
type RecordCounts struct {
	Channels   int `json:"channels"`
	Categories int `json:"categories"`
	Stores     int `json:"stores"`
	Months     int `json:"months"`
}

// StatusResponse 系统状态响应
type StatusResponse struct {
	Loaded    bool              `json:"loaded"`
	BaseMonth string            `json:"baseMonth"`
	LoadedAt  time.Time         `json:"loadedAt"`
	Sources   map[string]string `json:"sources"`
	Counts    RecordCounts      `json:"counts"`
	Gaps      []shaping.Gap     `json:"gaps"` // 无来源、按 0 处理的 (月份, 品类)
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{Loaded: false})
		return
	}

	rec := snap.Records
	net := shaping.NetSalesSeries(rec)
	gross := shaping.GrossSalesSeries(rec)
	gaps := append(append([]shaping.Gap{}, net.Gaps...), gross.Gaps...)

	c.JSON(http.StatusOK, StatusResponse{
		Loaded:    true,
		BaseMonth: rec.SalesInventory.BaseMonth,
		LoadedAt:  snap.LoadedAt,
		Sources:   snap.Sources,
		Counts: RecordCounts{
			Channels:   len(rec.SalesInventory.Channels),
			Categories: len(rec.SalesInventory.Categories),
			Stores:     len(rec.SalesInventory.Stores),
			Months:     len(model.Months),
		},
		Gaps: gaps,
	})
}

// Reload 重新读取数据文件
// POST /api/reload
func (h *Handler) Reload(c *gin.Context) {
	if err := h.store.Reload(); err != nil {
		h.logger.Warn("reload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "重新加载失败: " + err.Error()})
		return
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"loadedAt": snap.LoadedAt,
		"sources":  snap.Sources,
	})
}

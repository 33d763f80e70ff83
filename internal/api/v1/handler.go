package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/config"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/exporter"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/uistate"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/store"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/view"
)

// Handler JSON API 处理器
type Handler struct {
	store     *store.MemoryStore
	report    config.ReportConfig
	excel     *exporter.ExcelExporter
	pdf       *exporter.PDFExporter
	downloads *exportDownloadStore
	exportTTL time.Duration
	logger    *zap.Logger
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.MemoryStore, report config.ReportConfig, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := time.Duration(report.ExportTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Handler{
		store:     st,
		report:    report,
		excel:     exporter.NewExcelExporter(),
		pdf:       exporter.NewPDFExporter(),
		downloads: newExportDownloadStore(),
		exportTTL: ttl,
		logger:    logger,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	router.POST("/reload", h.Reload)

	// 报表数据
	router.GET("/series", h.GetSeries)
	router.GET("/yoy/:table", h.GetYOY)
	router.GET("/finance/:section", h.GetFinance)

	// 页面状态
	router.POST("/state/reduce", h.ReduceState)

	// 数据导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}

// snapshot 取当前快照；未加载时直接写 503
func (h *Handler) snapshot(c *gin.Context) (*store.Snapshot, bool) {
	snap, err := h.store.Snapshot()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotLoaded) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}
	return snap, true
}

// page 按查询串状态组装页面
func (h *Handler) page(snap *store.Snapshot, state uistate.State) *view.Page {
	return view.BuildPage(snap.Records, state, view.OptionsFrom(h.report, snap.Sources, snap.LoadedAt))
}

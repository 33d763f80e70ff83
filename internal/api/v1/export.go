package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/exporter"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/uistate"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/view"
)

// 导出格式
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

var contentTypes = map[string]string{
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatPDF:  "application/pdf",
}

type exportRequest struct {
	Format string `json:"format"`
	Query  string `json:"query"` // 页面状态查询串，决定费用期间等
}

// ExportResponse 导出结果（下载令牌）
type ExportResponse struct {
	Token     string    `json:"token"`
	FileName  string    `json:"fileName"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Export 生成导出文件，返回一次性下载链接
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}
	if req.Format == "" {
		req.Format = FormatXLSX
	}
	contentType, ok := contentTypes[req.Format]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "不支持的导出格式: " + req.Format})
		return
	}

	q, err := url.ParseQuery(strings.TrimPrefix(req.Query, "?"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query 无效"})
		return
	}

	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	page := h.page(snap, uistate.Decode(q))

	data, err := h.render(req.Format, snap.Records, page)
	if err != nil {
		h.logger.Error("export failed", zap.String("format", req.Format), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}

	fileName := exporter.FileName(page.BaseMonth, req.Format)
	token, expiresAt := h.downloads.put(exportDownload{
		data:        data,
		fileName:    fileName,
		contentType: contentType,
	}, h.exportTTL)

	h.logger.Info("export ready",
		zap.String("format", req.Format),
		zap.Int("bytes", len(data)),
		zap.Time("expiresAt", expiresAt),
	)
	c.JSON(http.StatusOK, ExportResponse{
		Token:     token,
		FileName:  fileName,
		URL:       "/api/export/download/" + token,
		ExpiresAt: expiresAt,
	})
}

func (h *Handler) render(format string, rec *model.Records, page *view.Page) ([]byte, error) {
	if format == FormatPDF {
		return h.pdf.Export(page)
	}

	f, err := h.excel.Export(exporter.ExportOptions{
		Records: rec,
		Page:    page,
		Progress: func(e exporter.ProgressEvent) {
			h.logger.Debug("export progress", zap.Int("percent", e.Percent), zap.String("stage", e.Stage))
		},
	})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("写入 Excel 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// DownloadExport 下载导出文件（一次性）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 token"})
		return
	}

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接已失效"})
		return
	}

	c.Header("Content-Disposition", buildContentDisposition(item.fileName))
	c.Data(http.StatusOK, item.contentType, item.data)
	h.downloads.delete(token)
}

// buildContentDisposition ASCII 文件名 + RFC 5987 编码的原文件名
func buildContentDisposition(fileName string) string {
	ascii := "monthly-report"
	if _, rest, ok := strings.Cut(fileName, "-"); ok {
		ascii += "-" + rest
	}
	return fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", ascii, url.PathEscape(fileName))
}

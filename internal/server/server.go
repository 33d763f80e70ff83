package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/zbwbabe-source/FNFHK-dash-sub005/internal/api/v1"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/config"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/store"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/util"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.MemoryStore
	api    *v1.Handler
	report config.ReportConfig
	tmpl   *template.Template
	logger *zap.Logger
}

var templateFuncs = template.FuncMap{
	"amount":  util.FormatAmount,
	"percent": util.FormatPercent,
	"signed":  util.FormatSigned,
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, st *store.MemoryStore, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := template.New("report").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("解析页面模板失败: %w", err)
	}

	s := &Server{
		router: gin.New(),
		store:  st,
		api:    v1.NewHandler(st, cfg.Report, logger.Named("api")),
		report: cfg.Report,
		tmpl:   tmpl,
		logger: logger,
	}
	s.setupRoutes(cfg.Server.DevMode)
	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	s.router.Use(gin.Recovery())
	s.router.Use(zapLoggerMiddleware(s.logger.Named("http")))

	// 开发模式下允许前端调试工具跨域访问 API
	if devMode {
		s.router.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.Next()
		})
	}

	s.router.GET("/", s.handleReport)
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		s.api.RegisterRoutes(api)
	}
}

// zapLoggerMiddleware 每个请求一条访问日志
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// Handler 返回 http.Handler（测试用）
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer 构建带超时设置的 http.Server
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

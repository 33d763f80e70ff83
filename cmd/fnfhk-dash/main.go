package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/config"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/server"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/store"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/util"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/pkg/logger"
)

var (
	port        = flag.Int("port", 0, "服务端口 (config.toml 优先；仅当未显式配置 port 时生效)")
	devMode     = flag.Bool("dev", false, "开发模式")
	dataDir     = flag.String("dataDir", "", "数据目录 (覆盖配置文件；为空时使用内置样例)")
	openBrowser = flag.Bool("open", false, "启动后打开浏览器")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  HK/MC 월간 경영실적 리포트")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *openBrowser {
		cfg.Server.OpenBrowser = true
	}

	zl := logger.Must(logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Server.DevMode,
	}))
	defer func() { _ = zl.Sync() }()

	if info.Path != "" {
		zl.Info("config loaded", zap.String("path", info.Path))
	}

	files := store.FileNames{
		SalesInventory: cfg.Data.SalesInventoryFile,
		Financial:      cfg.Data.FinancialFile,
		ItemSales:      cfg.Data.ItemSalesFile,
	}
	st := store.NewMemoryStore(store.NewLoader(config.ResolveDataDir(cfg), files), logger.Named(zl, "store"))
	if err := st.Load(); err != nil {
		zl.Fatal("load records failed", zap.Error(err))
	}

	srv, err := server.NewServer(cfg, st, zl)
	if err != nil {
		zl.Fatal("create server failed", zap.Error(err))
	}

	// 未显式配置端口时，被占用则顺延
	listenPort := cfg.Server.Port
	if !info.PortSpecified && *port == 0 {
		if p, err := util.FindAvailablePort(cfg.Server.Port, 20); err == nil {
			listenPort = p
		}
	}

	addr := fmt.Sprintf(":%d", listenPort)
	url := fmt.Sprintf("http://localhost:%d", listenPort)
	httpSrv := srv.HTTPServer(addr)

	go func() {
		zl.Info("server listening", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	if cfg.Server.OpenBrowser && !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Println("\n正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown failed", zap.Error(err))
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Report ReportConfig `toml:"report"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int  `toml:"port"`
	DevMode     bool `toml:"dev_mode"`
	OpenBrowser bool `toml:"open_browser"`
}

// DataConfig 数据文件配置
//
// DataDir 为空或文件缺失时使用内置样例数据。
type DataConfig struct {
	DataDir            string `toml:"data_dir"`
	SalesInventoryFile string `toml:"sales_inventory_file"`
	FinancialFile      string `toml:"financial_file"`
	ItemSalesFile      string `toml:"item_sales_file"`
}

// ReportConfig 报表展示配置
type ReportConfig struct {
	Title string `toml:"title"`
	Unit  string `toml:"unit"`
	// Notes 固定文案（促销说明等），页面上标记为 HARDCODED
	Notes []string `toml:"notes"`
	// StoreProfitOverrides 门店直接利润的手工值（门店名 → 金额），同样标记为 HARDCODED
	StoreProfitOverrides map[string]float64 `toml:"store_profit_overrides"`
	ExportTTLMinutes     int                `toml:"export_ttl_minutes"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

const configFileName = "config.toml"

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        20262,
			DevMode:     false,
			OpenBrowser: true,
		},
		Data: DataConfig{
			DataDir:            "data",
			SalesInventoryFile: "sales_inventory.json",
			FinancialFile:      "financial.json",
			ItemSalesFile:      "item_sales.json",
		},
		Report: ReportConfig{
			Title:            "HK/MC 월간 경영실적",
			Unit:             "HKD 천",
			ExportTTLMinutes: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从可执行文件目录的 config.toml 加载配置
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadConfigFrom(filepath.Join(exeDir, configFileName))
}

// LoadConfigFrom 从指定路径加载配置；文件不存在时返回默认配置。
// 加载顺序：默认值 → config.toml → .env / 环境变量。
func LoadConfigFrom(configPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: configPath}
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, info, fmt.Errorf("parse %s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// 配置文件不存在，使用默认配置
	default:
		return nil, info, err
	}

	// .env 不存在是正常情况
	_ = godotenv.Load(filepath.Join(filepath.Dir(configPath), ".env"))

	if err := applyEnv(cfg, &info); err != nil {
		return nil, info, err
	}
	return cfg, info, nil
}

func applyEnv(cfg *AppConfig, info *LoadConfigInfo) error {
	if v := os.Getenv("FNFHK_DATA_DIR"); v != "" {
		cfg.Data.DataDir = v
	}
	if v := os.Getenv("FNFHK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FNFHK_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FNFHK_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
		info.PortSpecified = true
	}
	return nil
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(cfg *AppConfig, configPath string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// ResolveDataDir 解析数据目录：相对路径基于可执行文件目录
func ResolveDataDir(cfg *AppConfig) string {
	dir := cfg.Data.DataDir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	exeDir, err := GetExeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(exeDir, dir)
}

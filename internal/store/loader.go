package store

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
)

//go:embed data/*.json
var embeddedData embed.FS

// SourceEmbedded 表示记录来自内置样例数据
const SourceEmbedded = "embedded"

// FileNames 三份记录的文件名
type FileNames struct {
	SalesInventory string
	Financial      string
	ItemSales      string
}

// DefaultFileNames 默认文件名（与内置样例一致）
func DefaultFileNames() FileNames {
	return FileNames{
		SalesInventory: "sales_inventory.json",
		Financial:      "financial.json",
		ItemSales:      "item_sales.json",
	}
}

// Loader 从数据目录读取 JSON 记录，缺失的文件使用内置样例
type Loader struct {
	dir   string
	files FileNames
}

// NewLoader 创建加载器；dir 为空时全部使用内置数据
func NewLoader(dir string, files FileNames) *Loader {
	def := DefaultFileNames()
	if files.SalesInventory == "" {
		files.SalesInventory = def.SalesInventory
	}
	if files.Financial == "" {
		files.Financial = def.Financial
	}
	if files.ItemSales == "" {
		files.ItemSales = def.ItemSales
	}
	return &Loader{dir: dir, files: files}
}

// Load 读取并解析三份记录
func (l *Loader) Load() (*model.Records, map[string]string, error) {
	records := &model.Records{}
	sources := make(map[string]string, 3)

	targets := []struct {
		name     string
		embedded string
		into     any
	}{
		{l.files.SalesInventory, "sales_inventory.json", &records.SalesInventory},
		{l.files.Financial, "financial.json", &records.Financial},
		{l.files.ItemSales, "item_sales.json", &records.ItemSales},
	}

	for _, t := range targets {
		data, source, err := l.read(t.name, t.embedded)
		if err != nil {
			return nil, nil, err
		}
		if err := json.Unmarshal(data, t.into); err != nil {
			return nil, nil, fmt.Errorf("decode %s (%s): %w", t.name, source, err)
		}
		sources[t.name] = source
	}

	return records, sources, nil
}

func (l *Loader) read(name, embeddedName string) ([]byte, string, error) {
	if l.dir != "" {
		path := filepath.Join(l.dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, l.dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
	}

	data, err := embeddedData.ReadFile("data/" + embeddedName)
	if err != nil {
		return nil, "", fmt.Errorf("read embedded %s: %w", embeddedName, err)
	}
	return data, SourceEmbedded, nil
}

package store

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
)

// ErrNotLoaded 尚未加载任何记录
var ErrNotLoaded = errors.New("records not loaded")

// Snapshot 一次加载的只读快照
type Snapshot struct {
	Records  *model.Records
	Sources  map[string]string // 文件名 → 来源（目录路径或 "embedded"）
	LoadedAt time.Time
}

// MemoryStore 内存记录存储
//
// 记录加载后不再修改；Reload 整体替换快照。
type MemoryStore struct {
	mu     sync.RWMutex
	loader *Loader
	snap   *Snapshot
	logger *zap.Logger
}

// NewMemoryStore 创建内存存储
func NewMemoryStore(loader *Loader, logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{
		loader: loader,
		logger: logger,
	}
}

// Load 首次加载（与 Reload 相同）
func (s *MemoryStore) Load() error {
	return s.Reload()
}

// Reload 重新读取数据文件并替换快照
func (s *MemoryStore) Reload() error {
	records, sources, err := s.loader.Load()
	if err != nil {
		return err
	}

	snap := &Snapshot{
		Records:  records,
		Sources:  sources,
		LoadedAt: time.Now(),
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	s.logger.Info("records loaded",
		zap.String("baseMonth", records.SalesInventory.BaseMonth),
		zap.Any("sources", sources))
	return nil
}

// Set 直接替换为给定记录，不经过加载器
func (s *MemoryStore) Set(records *model.Records) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = &Snapshot{
		Records:  records,
		Sources:  map[string]string{},
		LoadedAt: time.Now(),
	}
}

// Snapshot 获取当前快照
func (s *MemoryStore) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}
	return s.snap, nil
}

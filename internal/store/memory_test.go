package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_EmbeddedFallback(t *testing.T) {
	st := NewMemoryStore(NewLoader("", FileNames{}), nil)

	_, err := st.Snapshot()
	require.ErrorIs(t, err, ErrNotLoaded)

	require.NoError(t, st.Load())
	snap, err := st.Snapshot()
	require.NoError(t, err)

	rec := snap.Records
	assert.Equal(t, "2025-10", rec.SalesInventory.BaseMonth)
	assert.Len(t, rec.SalesInventory.Channels, 5)
	assert.Len(t, rec.ItemSales.Net["당시즌S"], 10)
	assert.NotEmpty(t, rec.Financial.OperatingExpense.Month)
	for _, src := range snap.Sources {
		assert.Equal(t, SourceEmbedded, src)
	}
}

func TestMemoryStore_DirectoryOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	content := `{"실판매출": {"모자": [1,2,3,4,5,6,7,8,9,10]}, "TAG매출": {}, "YOY": {}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "item_sales.json"), []byte(content), 0644))

	st := NewMemoryStore(NewLoader(dir, FileNames{}), nil)
	require.NoError(t, st.Load())

	snap, err := st.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, dir, snap.Sources["item_sales.json"])
	assert.Equal(t, SourceEmbedded, snap.Sources["financial.json"])
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, snap.Records.ItemSales.Net["모자"])
}

func TestMemoryStore_MalformedFileKeepsPreviousSnapshot(t *testing.T) {
	dir := t.TempDir()
	st := NewMemoryStore(NewLoader(dir, FileNames{}), nil)
	require.NoError(t, st.Load())

	before, err := st.Snapshot()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "financial.json"), []byte("{broken"), 0644))
	require.Error(t, st.Reload())

	after, err := st.Snapshot()
	require.NoError(t, err)
	assert.Same(t, before, after)
}

package shaping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
)

func yoyArr(base float64) []*float64 {
	arr := make([]*float64, len(model.Months))
	for i := range arr {
		arr[i] = fp(base + float64(i))
	}
	return arr
}

func testRecords() *model.Records {
	rec := &model.Records{}
	rec.ItemSales.YOY = map[string][]*float64{}
	for i, c := range model.SalesCategories {
		rec.ItemSales.YOY[c.Key] = yoyArr(90 + float64(i*10))
	}
	// 1–6 月当季主品类无数据
	for i := 0; i < 6; i++ {
		rec.ItemSales.YOY["당시즌F"][i] = nil
	}
	rec.SalesInventory.ChannelYOY = map[string][]*float64{}
	for _, c := range model.Channels {
		rec.SalesInventory.ChannelYOY[c.Aliases[0]] = yoyArr(95)
	}
	rec.SalesInventory.StockYOY = map[string][]*float64{}
	for _, c := range model.StockItems {
		rec.SalesInventory.StockYOY[c.Key] = yoyArr(80)
	}
	return rec
}

func strp(s string) *string { return &s }

func TestSelectYOY_Selection(t *testing.T) {
	rec := testRecords()

	tests := []struct {
		table     string
		selection *string
		prompt    bool
		rows      int
		chart     bool
	}{
		{TableCategory, nil, true, 0, false},
		{TableCategory, strp(model.All), false, 6, true},
		{TableChannel, strp(model.All), false, 5, true},
		{TableStock, strp(model.All), false, 5, true},
		{TableCategory, strp("모자"), false, 1, true},
		{TableChannel, strp("HK 온라인"), false, 1, true},
		{TableCategory, strp("없는키"), false, 0, false},
	}
	for _, tt := range tests {
		name := tt.table + "/nil"
		if tt.selection != nil {
			name = tt.table + "/" + *tt.selection
		}
		t.Run(name, func(t *testing.T) {
			table, err := YOYTableByName(rec, tt.table)
			require.NoError(t, err)

			view := SelectYOY(table, tt.selection)
			assert.Equal(t, tt.prompt, view.Prompt)
			assert.Len(t, view.Rows, tt.rows)
			assert.Equal(t, tt.chart, view.Chart != nil)
			for _, r := range view.Rows {
				assert.Len(t, r.Cells, len(model.Months))
			}
		})
	}
}

func TestSelectYOY_SingleSeasonUsesRemap(t *testing.T) {
	table, err := YOYTableByName(testRecords(), TableCategory)
	require.NoError(t, err)

	view := SelectYOY(table, strp("당시즌F"))
	require.Len(t, view.Rows, 1)
	cells := view.Rows[0].Cells

	for i := 0; i < 6; i++ {
		require.NotNil(t, cells[i].Value, "month %d", i)
		assert.Equal(t, 100+float64(i), *cells[i].Value)
	}
	require.NotNil(t, cells[6].Value)
	assert.Equal(t, 96.0, *cells[6].Value)

	require.NotNil(t, view.Chart)
	assert.Equal(t, 0.0, *view.Chart.YMin)
	assert.Equal(t, 200.0, *view.Chart.YMax)
}

func TestSelectYOY_AllKeepsRawValues(t *testing.T) {
	table, err := YOYTableByName(testRecords(), TableCategory)
	require.NoError(t, err)

	view := SelectYOY(table, strp(model.All))
	require.Len(t, view.Rows, 6)
	first := view.Rows[0]
	assert.Equal(t, "당시즌F", first.Key)
	assert.Nil(t, first.Cells[0].Value)
	assert.Equal(t, Placeholder, first.Cells[0].Text)
	assert.Equal(t, ClassNeutral, first.Cells[0].Class)
}

func TestYOYTableByName_Unknown(t *testing.T) {
	_, err := YOYTableByName(testRecords(), "region")
	assert.True(t, errors.Is(err, ErrUnknownTable))
}

func TestYOYClassAndText(t *testing.T) {
	tests := []struct {
		v     *float64
		class string
		text  string
	}{
		{nil, ClassNeutral, "-"},
		{fp(100), ClassImproved, "100.0%"},
		{fp(99.9), ClassDeclined, "99.9%"},
		{fp(150.26), ClassImproved, "150.3%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.class, YOYClass(tt.v))
		assert.Equal(t, tt.text, YOYText(tt.v))
	}
}

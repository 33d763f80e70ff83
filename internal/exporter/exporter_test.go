package exporter

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/uistate"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/store"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/view"
)

func testPage(t *testing.T) (*model.Records, *view.Page) {
	t.Helper()
	rec, _, err := store.NewLoader("", store.FileNames{}).Load()
	require.NoError(t, err)
	return rec, view.BuildPage(rec, uistate.Initial(), view.Options{Unit: "HKD 천"})
}

func TestExcelExport_Sheets(t *testing.T) {
	rec, page := testPage(t)

	var events []ProgressEvent
	f, err := NewExcelExporter().Export(ExportOptions{
		Records:  rec,
		Page:     page,
		Progress: func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	re, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = re.Close() })

	assert.Equal(t,
		[]string{SheetNet, SheetGross, SheetDiscount, SheetCategoryYOY, SheetChannelYOY, SheetFinance},
		re.GetSheetList())

	// 表头 + 10 个月
	rows, err := re.GetRows(SheetNet)
	require.NoError(t, err)
	assert.Len(t, rows, 1+len(model.Months))
	assert.Equal(t, "월", rows[0][0])
	assert.Equal(t, "1월", rows[1][0])

	// 3월 모자 来自兜底数组
	capCol := 0
	for i, h := range rows[0] {
		if h == "모자" {
			capCol = i + 1
		}
	}
	require.NotZero(t, capCol)
	cell, err := excelize.CoordinatesToCellName(capCol, 4)
	require.NoError(t, err)
	v, err := getCellFloat(re, SheetNet, cell)
	require.NoError(t, err)
	assert.Equal(t, rec.ItemSales.Net["모자"][2], v)

	yoyRows, err := re.GetRows(SheetCategoryYOY)
	require.NoError(t, err)
	assert.Len(t, yoyRows, 1+len(model.SalesCategories))
	assert.Equal(t, "-", yoyRows[1][1], "null YOY written as placeholder")

	chRows, err := re.GetRows(SheetChannelYOY)
	require.NoError(t, err)
	assert.Len(t, chRows, 1+len(model.Channels))

	require.NotEmpty(t, events)
	assert.Equal(t, 0, events[0].Percent)
	assert.Equal(t, 100, events[len(events)-1].Percent)
}

func TestExcelExport_MissingInput(t *testing.T) {
	_, err := NewExcelExporter().Export(ExportOptions{})
	assert.Error(t, err)
}

func TestPDFExport(t *testing.T) {
	_, page := testPage(t)

	data, err := NewPDFExporter().Export(page)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, err = NewPDFExporter().Export(nil)
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "월간실적-2025-10.xlsx", FileName("2025-10", "xlsx"))
	assert.Equal(t, "월간실적-report.pdf", FileName(" ", "pdf"))
}

func getCellFloat(f *excelize.File, sheet, cell string) (float64, error) {
	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return 0, err
	}
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

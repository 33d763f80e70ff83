package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/shaping"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/view"
)

// 工作表名
const (
	SheetNet         = "실판매출"
	SheetGross       = "TAG매출"
	SheetDiscount    = "할인율"
	SheetCategoryYOY = "카테고리YOY"
	SheetChannelYOY  = "채널YOY"
	SheetFinance     = "손익"
)

// ExcelExporter 月报 Excel 导出器
type ExcelExporter struct{}

// NewExcelExporter 创建导出器
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// ExportOptions 导出选项
type ExportOptions struct {
	Records  *model.Records
	Page     *view.Page
	Progress func(ProgressEvent)
}

// FileName 导出文件名
func FileName(baseMonth, ext string) string {
	if strings.TrimSpace(baseMonth) == "" {
		baseMonth = "report"
	}
	return fmt.Sprintf("월간실적-%s.%s", baseMonth, ext)
}

// Export 导出 Excel
func (e *ExcelExporter) Export(opts ExportOptions) (*excelize.File, error) {
	if opts.Records == nil || opts.Page == nil {
		return nil, fmt.Errorf("导出缺少数据")
	}

	f := excelize.NewFile()
	header, err := headerStyle(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	steps := []struct {
		stage string
		fn    func() error
	}{
		{SheetNet, func() error { return writeSeriesSheet(f, SheetNet, opts.Page.NetSeries, header) }},
		{SheetGross, func() error { return writeSeriesSheet(f, SheetGross, opts.Page.GrossSeries, header) }},
		{SheetDiscount, func() error { return writeSeriesSheet(f, SheetDiscount, opts.Page.DiscountSeries, header) }},
		{SheetCategoryYOY, func() error { return writeYOYSheet(f, SheetCategoryYOY, opts.Records, shaping.TableCategory, header) }},
		{SheetChannelYOY, func() error { return writeYOYSheet(f, SheetChannelYOY, opts.Records, shaping.TableChannel, header) }},
		{SheetFinance, func() error { return writeFinanceSheet(f, opts.Page, header) }},
	}

	for i, step := range steps {
		reportProgress(opts.Progress, i*100/len(steps), step.stage)
		if err := step.fn(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("写入 %s 失败: %w", step.stage, err)
		}
	}

	// NewFile 自带的 Sheet1 不需要
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	reportProgress(opts.Progress, 100, "완료")
	return f, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
}

func ensureSheet(f *excelize.File, sheet string) error {
	_, err := f.NewSheet(sheet)
	return err
}

func writeHeader(f *excelize.File, sheet string, row int, labels []string, style int) error {
	for i, label := range labels {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := setCellValue(f, sheet, cell, label); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(labels), row)
	return f.SetCellStyle(sheet, first, last, style)
}

// writeSeriesSheet 行为月份，列为品类
func writeSeriesSheet(f *excelize.File, sheet string, s shaping.Series, style int) error {
	if err := ensureSheet(f, sheet); err != nil {
		return err
	}
	labels := []string{"월"}
	for _, c := range s.Categories {
		labels = append(labels, c.Key)
	}
	if err := writeHeader(f, sheet, 1, labels, style); err != nil {
		return err
	}

	for r, p := range s.Points {
		row := r + 2
		if err := setCellValue(f, sheet, fmt.Sprintf("A%d", row), p.Month); err != nil {
			return err
		}
		for c, cat := range s.Categories {
			cell, err := excelize.CoordinatesToCellName(c+2, row)
			if err != nil {
				return err
			}
			if err := setCellValue(f, sheet, cell, p.Values[cat.Key]); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(sheet, "A", "A", 8)
}

// writeYOYSheet 导出全部维度的 YOY；空值写占位符
func writeYOYSheet(f *excelize.File, sheet string, rec *model.Records, table string, style int) error {
	t, err := shaping.YOYTableByName(rec, table)
	if err != nil {
		return err
	}
	all := model.All
	v := shaping.SelectYOY(t, &all)

	if err := ensureSheet(f, sheet); err != nil {
		return err
	}
	labels := append([]string{"구분"}, model.Months...)
	if err := writeHeader(f, sheet, 1, labels, style); err != nil {
		return err
	}

	for r, row := range v.Rows {
		rowNum := r + 2
		if err := setCellValue(f, sheet, fmt.Sprintf("A%d", rowNum), row.Key); err != nil {
			return err
		}
		for c, cell := range row.Cells {
			name, err := excelize.CoordinatesToCellName(c+2, rowNum)
			if err != nil {
				return err
			}
			var value interface{} = shaping.Placeholder
			if cell.Value != nil {
				value = *cell.Value
			}
			if err := setCellValue(f, sheet, name, value); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(sheet, "A", "A", 14)
}

// writeFinanceSheet 按页面当前期间导出财务明细与直接利润
func writeFinanceSheet(f *excelize.File, page *view.Page, style int) error {
	if err := ensureSheet(f, SheetFinance); err != nil {
		return err
	}
	row := 1
	labels := []string{"구분", "항목", "당년", "전년", "증감", "YOY"}
	if err := writeHeader(f, SheetFinance, row, labels, style); err != nil {
		return err
	}
	row++

	writeLine := func(section string, r shaping.FinanceRow) error {
		values := []interface{}{section, r.Name, r.Current, r.LastYear, r.Diff, r.YOYText}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := setCellValue(f, SheetFinance, cell, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	for _, t := range page.Finance {
		for _, r := range t.Rows {
			if err := writeLine(t.Title, r); err != nil {
				return err
			}
		}
		if t.Total != nil {
			if err := writeLine(t.Title, *t.Total); err != nil {
				return err
			}
		}
	}

	row++
	dp := page.DirectProfit
	if err := writeHeader(f, SheetFinance, row, []string{"직접이익", "매출", "매출원가", "매출총이익", "직접비", "직접이익", "이익률(%)"}, style); err != nil {
		return err
	}
	row++
	values := []interface{}{dp.Year, dp.Sales, dp.COGS, dp.GrossProfit, dp.DirectCost, dp.DirectProfit, dp.Margin}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := setCellValue(f, SheetFinance, cell, v); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetFinance, "A", "B", 14)
}

// ---------- 通用工具函数 ----------

func setCellValue(f *excelize.File, sheet, cell string, value interface{}) error {
	return f.SetCellValue(sheet, cell, value)
}

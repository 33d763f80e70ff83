package exporter

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/shaping"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/util"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/view"
)

var (
	colorPrimary  = &props.Color{Red: 31, Green: 78, Blue: 121}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorImproved = &props.Color{Red: 0, Green: 128, Blue: 0}
	colorDeclined = &props.Color{Red: 192, Green: 0, Blue: 0}
)

// 内置字体不含韩文，KPI 名称换成英文
var kpiLabels = map[string]string{
	"실판매출":    "Net sales",
	"TAG매출":   "Gross (TAG) sales",
	"직접이익":    "Direct profit",
	"영업이익":    "Operating profit",
	"기말재고TAG": "Ending stock (TAG)",
}

// PDFExporter 月报摘要 PDF 导出器
type PDFExporter struct{}

// NewPDFExporter 创建导出器
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export 生成 PDF：KPI、品类折扣表、渠道表
func (e *PDFExporter) Export(page *view.Page) ([]byte, error) {
	if page == nil {
		return nil, fmt.Errorf("导出缺少数据")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("HK/MC Monthly Report "+page.BaseMonth, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(page.BaseMonth))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("Key figures (HKD k)"))
	for i, k := range page.KPIs {
		m.AddRows(kpiRow(i, k))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow("Category sales and discount"))
	m.AddRows(breakdownHeaderRow())
	for _, r := range page.Categories.Rows {
		m.AddRows(breakdownRow(r))
	}
	m.AddRows(breakdownRow(page.Categories.Total))

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow("Channel sales"))
	m.AddRows(breakdownHeaderRow())
	for _, r := range page.Channels.Rows {
		m.AddRows(breakdownRow(r))
	}
	m.AddRows(breakdownRow(page.Channels.Total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("生成 PDF 失败: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(baseMonth string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New("HK/MC Monthly Business Report", props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Base month: "+baseMonth, props.Text{
			Size: 9, Align: align.Right, Color: colorGray, Top: 4,
		})),
	)
}

func sectionRow(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
	})))
}

func yoyColor(class string) *props.Color {
	switch class {
	case shaping.ClassImproved:
		return colorImproved
	case shaping.ClassDeclined:
		return colorDeclined
	default:
		return colorGray
	}
}

func kpiRow(i int, k shaping.KPICard) core.Row {
	label, ok := kpiLabels[k.Name]
	if !ok {
		label = fmt.Sprintf("KPI %d", i+1)
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 9, Left: 1})),
		col.New(3).Add(text.New(util.FormatAmount(k.Value), props.Text{Size: 9, Align: align.Right})),
		col.New(3).Add(text.New("YOY "+k.YOYText, props.Text{Size: 9, Align: align.Right, Color: yoyColor(k.Class)})),
	)
}

func breakdownHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Code", 3, align.Left),
		h("Net", 2, align.Right),
		h("TAG", 2, align.Right),
		h("Discount %", 2, align.Right),
		h("YOY", 3, align.Right),
	)
}

func breakdownRow(r shaping.BreakdownRow) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(r.Code, 3, align.Left),
		cell(util.FormatAmount(r.Net), 2, align.Right),
		cell(util.FormatAmount(r.Gross), 2, align.Right),
		cell(fmt.Sprintf("%.1f", r.DiscountRate), 2, align.Right),
		col.New(3).Add(text.New(r.YOYText, props.Text{Size: 8, Align: align.Right, Top: 1, Color: yoyColor(r.Class)})),
	)
}

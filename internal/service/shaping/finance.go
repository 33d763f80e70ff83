package shaping

import (
	"errors"
	"fmt"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
)

// ErrUnknownSection 未知的财务分组
var ErrUnknownSection = errors.New("unknown finance section")

// Period 财务期间
type Period string

const (
	PeriodMonth Period = "month" // 당월
	PeriodYTD   Period = "ytd"   // 누계
)

// 财务分组
const (
	SectionOpex   = "opex"
	SectionProfit = "profit"
	SectionCost   = "cost"
	SectionDirect = "direct"
)

// FinanceSections 展示顺序
var FinanceSections = []string{SectionOpex, SectionProfit, SectionCost, SectionDirect}

var financeTitles = map[string]string{
	SectionOpex:   "영업비",
	SectionProfit: "이익",
	SectionCost:   "비용",
	SectionDirect: "직접비",
}

// FinanceRow 财务行
type FinanceRow struct {
	Name     string   `json:"name"`
	Current  float64  `json:"current"`
	LastYear float64  `json:"lastYear"`
	Diff     float64  `json:"diff"`
	YOY      *float64 `json:"yoy"`
	YOYText  string   `json:"yoyText"`
}

// FinanceTable 某分组某期间的明细
type FinanceTable struct {
	Section string       `json:"section"`
	Title   string       `json:"title"`
	Period  Period       `json:"period"`
	Rows    []FinanceRow `json:"rows"`
	Total   *FinanceRow  `json:"total,omitempty"`
}

func newFinanceRow(name string, cur, ly float64) FinanceRow {
	yoy := YOYPercent(cur, ly)
	return FinanceRow{
		Name:     name,
		Current:  cur,
		LastYear: ly,
		Diff:     Round1(cur - ly),
		YOY:      yoy,
		YOYText:  YOYText(yoy),
	}
}

func sectionOf(rec *model.FinancialRecord, section string) (model.FinanceSection, error) {
	switch section {
	case SectionOpex:
		return rec.OperatingExpense, nil
	case SectionProfit:
		return rec.Profit, nil
	case SectionCost:
		return rec.Cost, nil
	case SectionDirect:
		return rec.DirectCost, nil
	default:
		return model.FinanceSection{}, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
}

// BuildFinanceTable 生成财务明细；利润分组的行不可相加，不出合计
func BuildFinanceTable(rec *model.FinancialRecord, section string, period Period) (FinanceTable, error) {
	sec, err := sectionOf(rec, section)
	if err != nil {
		return FinanceTable{}, err
	}

	lines := sec.Month
	if period == PeriodYTD {
		lines = sec.YTD
	} else {
		period = PeriodMonth
	}

	table := FinanceTable{
		Section: section,
		Title:   financeTitles[section],
		Period:  period,
		Rows:    make([]FinanceRow, 0, len(lines)),
	}
	var cur, ly float64
	for _, l := range lines {
		table.Rows = append(table.Rows, newFinanceRow(l.Name, l.Current, l.LastYear))
		cur += l.Current
		ly += l.LastYear
	}
	if section != SectionProfit {
		total := newFinanceRow("합계", Round1(cur), Round1(ly))
		table.Total = &total
	}
	return table, nil
}

// DirectProfitView 直接利润计算
type DirectProfitView struct {
	Year         string  `json:"year"` // this / last
	Sales        float64 `json:"sales"`
	COGS         float64 `json:"cogs"`
	GrossProfit  float64 `json:"grossProfit"`
	DirectCost   float64 `json:"directCost"`
	DirectProfit float64 `json:"directProfit"`
	Margin       float64 `json:"margin"` // 直接利润率 %
}

// BuildDirectProfit 直接利润 = 销售 − 销售成本 − 直接费用
func BuildDirectProfit(rec *model.FinancialRecord, lastYear bool) DirectProfitView {
	in, year := rec.DirectProfit.ThisYear, "this"
	if lastYear {
		in, year = rec.DirectProfit.LastYear, "last"
	}
	gp := Round1(in.Sales - in.COGS)
	dp := Round1(in.Sales - in.COGS - in.DirectCost)
	margin := 0.0
	if in.Sales != 0 {
		margin = Round1(dp / in.Sales * 100)
	}
	return DirectProfitView{
		Year:         year,
		Sales:        in.Sales,
		COGS:         in.COGS,
		GrossProfit:  gp,
		DirectCost:   in.DirectCost,
		DirectProfit: dp,
		Margin:       margin,
	}
}

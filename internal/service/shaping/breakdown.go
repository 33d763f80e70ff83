package shaping

import (
	"sort"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
)

// 数据来源标记
const (
	SourceConnected = "CONNECTED"
	SourceHardcoded = "HARDCODED"
)

// BreakdownRow 渠道 / 品类汇总行
type BreakdownRow struct {
	Name         string   `json:"name"`
	Code         string   `json:"code"`
	Net          float64  `json:"net"`
	Gross        float64  `json:"gross"`
	DiscountRate float64  `json:"discountRate"`
	NetLastYear  float64  `json:"netLastYear"`
	YOY          *float64 `json:"yoy"`
	YOYText      string   `json:"yoyText"`
	Class        string   `json:"class"`
}

// BreakdownTable 汇总表（含合计行）
type BreakdownTable struct {
	Rows  []BreakdownRow `json:"rows"`
	Total BreakdownRow   `json:"total"`
}

func newBreakdownRow(name, code string, net, gross, ly float64) BreakdownRow {
	yoy := YOYPercent(net, ly)
	return BreakdownRow{
		Name:         name,
		Code:         code,
		Net:          net,
		Gross:        gross,
		DiscountRate: DiscountRate(net, gross),
		NetLastYear:  ly,
		YOY:          yoy,
		YOYText:      YOYText(yoy),
		Class:        YOYClass(yoy),
	}
}

// BuildBreakdownRows 按固定维度顺序生成汇总表；未知名称排在最后
func BuildBreakdownRows(items []model.Breakdown, order []model.Category) BreakdownTable {
	type ranked struct {
		rank int
		row  BreakdownRow
	}
	rankedRows := make([]ranked, 0, len(items))
	var net, gross, ly float64

	for _, it := range items {
		rank := len(order)
		name, code := it.Name, it.Name
		for i, c := range order {
			if cat, ok := model.FindCategory([]model.Category{c}, it.Name); ok {
				rank, name, code = i, cat.Key, cat.Code
				break
			}
		}
		rankedRows = append(rankedRows, ranked{rank: rank, row: newBreakdownRow(name, code, it.Net, it.Gross, it.NetLastYear)})
		net += it.Net
		gross += it.Gross
		ly += it.NetLastYear
	}

	sort.SliceStable(rankedRows, func(i, j int) bool { return rankedRows[i].rank < rankedRows[j].rank })

	table := BreakdownTable{Rows: make([]BreakdownRow, 0, len(rankedRows))}
	for _, r := range rankedRows {
		table.Rows = append(table.Rows, r.row)
	}
	table.Total = newBreakdownRow("합계", "TOTAL", net, gross, ly)
	return table
}

// KPICard 汇总卡片
type KPICard struct {
	Name    string   `json:"name"`
	Value   float64  `json:"value"`
	Unit    string   `json:"unit"`
	YOY     *float64 `json:"yoy"`
	YOYText string   `json:"yoyText"`
	Class   string   `json:"class"`
}

// BuildKPICards 汇总卡片；上年缺失时 YOY 为占位
func BuildKPICards(items []model.KPI) []KPICard {
	cards := make([]KPICard, 0, len(items))
	for _, it := range items {
		var yoy *float64
		if it.LastYear != nil {
			yoy = YOYPercent(it.Current, *it.LastYear)
		}
		cards = append(cards, KPICard{
			Name:    it.Name,
			Value:   it.Current,
			Unit:    it.Unit,
			YOY:     yoy,
			YOYText: YOYText(yoy),
			Class:   YOYClass(yoy),
		})
	}
	return cards
}

// StoreRow 门店行
type StoreRow struct {
	Name         string   `json:"name"`
	Region       string   `json:"region"`
	Channel      string   `json:"channel"`
	Net          float64  `json:"net"`
	NetLastYear  float64  `json:"netLastYear"`
	YOY          *float64 `json:"yoy"`
	YOYText      string   `json:"yoyText"`
	Class        string   `json:"class"`
	DirectProfit *float64 `json:"directProfit"`
	ProfitClass  string   `json:"profitClass"`
	ProfitSource string   `json:"profitSource"`
}

// BuildStoreRows 门店列表；overrides 中的直接利润是人工填写的固定值
func BuildStoreRows(stores []model.Store, overrides map[string]float64) []StoreRow {
	rows := make([]StoreRow, 0, len(stores))
	for _, s := range stores {
		yoy := YOYPercent(s.Net, s.NetLastYear)
		row := StoreRow{
			Name:         s.Name,
			Region:       s.Region,
			Channel:      s.Channel,
			Net:          s.Net,
			NetLastYear:  s.NetLastYear,
			YOY:          yoy,
			YOYText:      YOYText(yoy),
			Class:        YOYClass(yoy),
			DirectProfit: s.DirectProfit,
			ProfitSource: SourceConnected,
		}
		if v, ok := overrides[s.Name]; ok {
			v := v
			row.DirectProfit = &v
			row.ProfitSource = SourceHardcoded
		}
		row.ProfitClass = profitClass(row.DirectProfit)
		rows = append(rows, row)
	}
	return rows
}

func profitClass(v *float64) string {
	switch {
	case v == nil || *v == 0:
		return ClassNeutral
	case *v > 0:
		return ClassImproved
	default:
		return ClassDeclined
	}
}

// SeasonStockRow 季节库存行
type SeasonStockRow struct {
	Season        string   `json:"season"`
	StockTag      float64  `json:"stockTag"`
	StockTagLY    float64  `json:"stockTagLastYear"`
	YOY           *float64 `json:"yoy"`
	YOYText       string   `json:"yoyText"`
	WeeksOfSupply float64  `json:"weeksOfSupply"`
}

// BuildSeasonStockRows 季节库存表；库存的 YOY 不着色（增加不代表改善）
func BuildSeasonStockRows(items []model.SeasonStock) []SeasonStockRow {
	rows := make([]SeasonStockRow, 0, len(items))
	for _, it := range items {
		yoy := YOYPercent(it.StockTag, it.StockTagLY)
		rows = append(rows, SeasonStockRow{
			Season:        it.Season,
			StockTag:      it.StockTag,
			StockTagLY:    it.StockTagLY,
			YOY:           yoy,
			YOYText:       YOYText(yoy),
			WeeksOfSupply: it.WeeksOfSupply,
		})
	}
	return rows
}

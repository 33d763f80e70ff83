package shaping

import "github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"

// Point 一个月的数据点：品类主键 → 数值
type Point struct {
	Month  string             `json:"month"`
	Values map[string]float64 `json:"values"`
}

// Gap 没有任何来源命中、按 0 处理的 (月份, 品类)
type Gap struct {
	Month    string `json:"month"`
	Category string `json:"category"`
}

// Series 月度序列，每个月每个品类都有值
type Series struct {
	Categories []model.Category `json:"-"`
	Points     []Point          `json:"points"`
	Gaps       []Gap            `json:"gaps,omitempty"`
}

// SeriesInput 月度序列的输入
type SeriesInput struct {
	Months     []string
	Overrides  []model.MonthlyValues // 可选：月度数组
	Fallback   map[string][]float64  // 可选：静态 10 元素数组
	Categories []model.Category
	Remap      map[int]Remap // 可选：月份位置 → 品类别名
}

// BuildMonthlySeries 生成月度序列
//
// 每个 (月份, 品类) 按 月度主键 → 月度别名 → 静态数组 的顺序取值，
// 都未命中时为 0 并记入 Gaps。Remap 中的月份最后覆盖目标品类。
func BuildMonthlySeries(in SeriesInput) Series {
	overrides := newMonthIndex(in.Months, in.Overrides)

	lookups := make(map[string]LookupStrategy, len(in.Categories))
	for _, c := range in.Categories {
		lookups[c.Key] = strategiesFor(c, overrides, in.Fallback)
	}

	out := Series{
		Categories: in.Categories,
		Points:     make([]Point, 0, len(in.Months)),
	}

	for i, month := range in.Months {
		resolved := make(map[string]float64, len(in.Categories))
		found := make(map[string]bool, len(in.Categories))
		for _, c := range in.Categories {
			v, ok := lookups[c.Key](i)
			resolved[c.Key] = v
			found[c.Key] = ok
		}

		p := Point{Month: month, Values: make(map[string]float64, len(in.Categories))}
		for _, c := range in.Categories {
			src := remapSource(in.Remap, i, c.Key)
			if _, known := resolved[src]; !known {
				src = c.Key
			}
			p.Values[c.Key] = resolved[src]
			if !found[src] {
				out.Gaps = append(out.Gaps, Gap{Month: month, Category: c.Key})
			}
		}
		out.Points = append(out.Points, p)
	}

	return out
}

// Value 取某月某品类的值
func (s Series) Value(monthIdx int, key string) float64 {
	if monthIdx < 0 || monthIdx >= len(s.Points) {
		return 0
	}
	return s.Points[monthIdx].Values[key]
}

// Column 取某品类的全部月份值
func (s Series) Column(key string) []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Values[key]
	}
	return out
}

// Rows 转成图表库使用的扁平行：{"month": "1월", "<品类>": value}
func (s Series) Rows() []map[string]any {
	rows := make([]map[string]any, 0, len(s.Points))
	for _, p := range s.Points {
		row := make(map[string]any, len(p.Values)+1)
		row["month"] = p.Month
		for k, v := range p.Values {
			row[k] = v
		}
		rows = append(rows, row)
	}
	return rows
}

// NetSalesSeries 品类实际销售月度序列
func NetSalesSeries(rec *model.Records) Series {
	return BuildMonthlySeries(SeriesInput{
		Months:     model.Months,
		Overrides:  rec.SalesInventory.MonthlyItemNet,
		Fallback:   rec.ItemSales.Net,
		Categories: model.SalesCategories,
		Remap:      SeasonRemap,
	})
}

// GrossSalesSeries 品类吊牌额月度序列
func GrossSalesSeries(rec *model.Records) Series {
	return BuildMonthlySeries(SeriesInput{
		Months:     model.Months,
		Overrides:  rec.SalesInventory.MonthlyItemGross,
		Fallback:   rec.ItemSales.Gross,
		Categories: model.SalesCategories,
		Remap:      SeasonRemap,
	})
}

// ChannelSalesSeries 渠道月度销售序列（无兜底、无季节映射）
func ChannelSalesSeries(rec *model.Records) Series {
	return BuildMonthlySeries(SeriesInput{
		Months:     model.Months,
		Overrides:  rec.SalesInventory.MonthlyChannelSales,
		Categories: model.Channels,
	})
}

// StockSeries 品项月度库存序列
func StockSeries(rec *model.Records) Series {
	return BuildMonthlySeries(SeriesInput{
		Months:     model.Months,
		Overrides:  rec.SalesInventory.MonthlyItemStock,
		Categories: model.StockItems,
	})
}

package shaping

import "github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"

// ChartKind 图表类型
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// SeriesSpec 一条图表系列
type SeriesSpec struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// ChartConfig 交给前端图表库的声明式配置
type ChartConfig struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Kind    ChartKind        `json:"kind"`
	Stacked bool             `json:"stacked"`
	XKey    string           `json:"xKey"`
	Series  []SeriesSpec     `json:"series"`
	YMin    *float64         `json:"yMin,omitempty"`
	YMax    *float64         `json:"yMax,omitempty"`
	Unit    string           `json:"unit,omitempty"`
	Data    []map[string]any `json:"data"`
}

// 固定坐标轴范围
var (
	discountAxis = [2]float64{0, 100}
	yoyAxis      = [2]float64{0, 200}
)

func specsFor(cats []model.Category) []SeriesSpec {
	out := make([]SeriesSpec, 0, len(cats))
	for _, c := range cats {
		out = append(out, SeriesSpec{Key: c.Key, Label: c.Key, Color: c.Color})
	}
	return out
}

func withAxis(cfg ChartConfig, axis [2]float64) ChartConfig {
	lo, hi := axis[0], axis[1]
	cfg.YMin = &lo
	cfg.YMax = &hi
	return cfg
}

// SeriesChart 月度序列的柱状图 / 折线图
func SeriesChart(id, title string, kind ChartKind, s Series, unit string) ChartConfig {
	return ChartConfig{
		ID:      id,
		Title:   title,
		Kind:    kind,
		Stacked: kind == ChartBar,
		XKey:    "month",
		Series:  specsFor(s.Categories),
		Unit:    unit,
		Data:    s.Rows(),
	}
}

// DiscountChart 折扣率折线图，纵轴固定 0–100
func DiscountChart(id string, s Series) ChartConfig {
	cfg := SeriesChart(id, "할인율", ChartLine, s, "%")
	return withAxis(cfg, discountAxis)
}

package shaping

import (
	"errors"
	"fmt"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
)

// ErrUnknownTable 未知的 YOY 表名
var ErrUnknownTable = errors.New("unknown yoy table")

// YOY 单元格样式
const (
	ClassImproved = "improved"
	ClassDeclined = "declined"
	ClassNeutral  = "neutral"
)

// Placeholder 空值显示
const Placeholder = "-"

// YOY 表名
const (
	TableCategory = "category"
	TableChannel  = "channel"
	TableStock    = "stock"
)

// YOYTable 按维度的月度 YOY 数据
type YOYTable struct {
	Name       string
	Title      string
	Categories []model.Category
	Values     map[string][]*float64
}

// Cell YOY 单元格
type Cell struct {
	Month string   `json:"month"`
	Value *float64 `json:"value"`
	Text  string   `json:"text"`
	Class string   `json:"class"`
}

// Row YOY 表的一行
type Row struct {
	Key   string `json:"key"`
	Code  string `json:"code"`
	Color string `json:"color"`
	Cells []Cell `json:"cells"`
}

// YOYView YOY 选择器的结果
type YOYView struct {
	Table     string       `json:"table"`
	Title     string       `json:"title"`
	Selection string       `json:"selection,omitempty"`
	Prompt    bool         `json:"prompt"` // 未选择时显示提示，不出图
	Rows      []Row        `json:"rows"`
	Chart     *ChartConfig `json:"chart,omitempty"`
}

// YOYClass v ≥ 100 为 improved，v < 100 为 declined，nil 为 neutral
func YOYClass(v *float64) string {
	switch {
	case v == nil:
		return ClassNeutral
	case *v >= 100:
		return ClassImproved
	default:
		return ClassDeclined
	}
}

// YOYText YOY 显示文本
func YOYText(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.1f%%", *v)
}

// YOYTableByName 按表名取 YOY 表
func YOYTableByName(rec *model.Records, name string) (YOYTable, error) {
	switch name {
	case TableCategory:
		return YOYTable{Name: name, Title: "카테고리별 YOY", Categories: model.SalesCategories, Values: rec.ItemSales.YOY}, nil
	case TableChannel:
		return YOYTable{Name: name, Title: "채널별 YOY", Categories: model.Channels, Values: rec.SalesInventory.ChannelYOY}, nil
	case TableStock:
		return YOYTable{Name: name, Title: "아이템별 재고 YOY", Categories: model.StockItems, Values: rec.SalesInventory.StockYOY}, nil
	default:
		return YOYTable{}, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
}

// values 按主键或别名取该维度的数组
func (t YOYTable) values(c model.Category) []*float64 {
	for _, k := range c.Keys() {
		if arr, ok := t.Values[k]; ok {
			return arr
		}
	}
	return nil
}

func (t YOYTable) row(c model.Category, remap map[int]Remap) Row {
	own := t.values(c)
	row := Row{Key: c.Key, Code: c.Code, Color: c.Color, Cells: make([]Cell, 0, len(model.Months))}
	for i, month := range model.Months {
		arr := own
		if src := remapSource(remap, i, c.Key); src != c.Key {
			if from, ok := model.FindCategory(t.Categories, src); ok {
				arr = t.values(from)
			}
		}
		var v *float64
		if i < len(arr) {
			v = arr[i]
		}
		row.Cells = append(row.Cells, Cell{Month: month, Value: v, Text: YOYText(v), Class: YOYClass(v)})
	}
	return row
}

// SelectYOY 按选择生成 YOY 行和折线图
//
// selection 为 nil 时只返回提示；"전체" 返回全部维度；
// 单选当季主品类时 1–6 月取副品类的值。
func SelectYOY(t YOYTable, selection *string) YOYView {
	view := YOYView{Table: t.Name, Title: t.Title}
	if selection == nil {
		view.Prompt = true
		return view
	}
	view.Selection = *selection

	var cats []model.Category
	if *selection == model.All {
		for _, c := range t.Categories {
			view.Rows = append(view.Rows, t.row(c, nil))
			cats = append(cats, c)
		}
	} else if c, ok := model.FindCategory(t.Categories, *selection); ok {
		view.Rows = append(view.Rows, t.row(c, SeasonRemap))
		cats = append(cats, c)
	}

	if len(view.Rows) == 0 {
		return view
	}

	chart := withAxis(ChartConfig{
		ID:     "yoy-" + t.Name,
		Title:  t.Title,
		Kind:   ChartLine,
		XKey:   "month",
		Series: specsFor(cats),
		Unit:   "%",
		Data:   yoyRows(view.Rows),
	}, yoyAxis)
	view.Chart = &chart
	return view
}

func yoyRows(rows []Row) []map[string]any {
	out := make([]map[string]any, len(model.Months))
	for i, month := range model.Months {
		out[i] = map[string]any{"month": month}
	}
	for _, r := range rows {
		for i, c := range r.Cells {
			if c.Value == nil {
				out[i][r.Key] = nil
				continue
			}
			out[i][r.Key] = *c.Value
		}
	}
	return out
}

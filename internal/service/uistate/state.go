package uistate

import (
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/shaping"
)

// PriceType 主图的价格口径
type PriceType string

const (
	PriceNet      PriceType = "net"
	PriceGross    PriceType = "gross"
	PriceDiscount PriceType = "discount"
)

// Valid 是否为已知口径
func (p PriceType) Valid() bool {
	return p == PriceNet || p == PriceGross || p == PriceDiscount
}

// CalcYear 直接利润计算的年度视图
type CalcYear string

const (
	YearThis CalcYear = "this"
	YearLast CalcYear = "last"
)

// Valid 是否为已知年度
func (y CalcYear) Valid() bool {
	return y == YearThis || y == YearLast
}

func validPeriod(p shaping.Period) bool {
	return p == shaping.PeriodMonth || p == shaping.PeriodYTD
}

// State 页面交互状态，随 URL 传递，不持久化
type State struct {
	Open          map[Panel]bool `json:"open"`
	PriceType     PriceType      `json:"priceType"`
	ExpensePeriod shaping.Period `json:"expensePeriod"`
	CalcYear      CalcYear       `json:"calcYear"`
	CategoryYOY   *string        `json:"categoryYoy"`
	ChannelYOY    *string        `json:"channelYoy"`
	StockYOY      *string        `json:"stockYoy"`
}

// Initial 初始状态：面板全部收起，各选项取默认值
func Initial() State {
	return State{
		Open:          map[Panel]bool{},
		PriceType:     PriceNet,
		ExpensePeriod: shaping.PeriodMonth,
		CalcYear:      YearThis,
	}
}

// IsOpen 面板是否展开
func (s State) IsOpen(p Panel) bool {
	return s.Open[p]
}

// Selection 取 YOY 表的当前选择
func (s State) Selection(table string) *string {
	switch table {
	case shaping.TableCategory:
		return s.CategoryYOY
	case shaping.TableChannel:
		return s.ChannelYOY
	case shaping.TableStock:
		return s.StockYOY
	}
	return nil
}

// clone 复制一份，reducer 不修改入参
func (s State) clone() State {
	out := s
	out.Open = make(map[Panel]bool, len(s.Open))
	for k, v := range s.Open {
		if v {
			out.Open[k] = true
		}
	}
	out.CategoryYOY = copyStr(s.CategoryYOY)
	out.ChannelYOY = copyStr(s.ChannelYOY)
	out.StockYOY = copyStr(s.StockYOY)
	return out
}

func copyStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// normalize 修正非法取值，零值状态等同于初始状态
func (s State) normalize() State {
	out := s.clone()
	if !out.PriceType.Valid() {
		out.PriceType = PriceNet
	}
	if !validPeriod(out.ExpensePeriod) {
		out.ExpensePeriod = shaping.PeriodMonth
	}
	if !out.CalcYear.Valid() {
		out.CalcYear = YearThis
	}
	for p := range out.Open {
		if !p.Valid() {
			delete(out.Open, p)
		}
	}
	return out
}

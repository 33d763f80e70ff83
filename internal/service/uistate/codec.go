package uistate

import (
	"net/url"
	"strings"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/shaping"
)

// 查询参数名
const (
	QueryOpen    = "open"
	QueryPrice   = "price"
	QueryPeriod  = "period"
	QueryYear    = "year"
	QueryCatYOY  = "cat"
	QueryChYOY   = "ch"
	QueryStkYOY  = "stk"
	QueryDoParam = "do"
)

var yoyQueryKeys = map[string]string{
	shaping.TableCategory: QueryCatYOY,
	shaping.TableChannel:  QueryChYOY,
	shaping.TableStock:    QueryStkYOY,
}

// Encode 序列化为查询参数；默认值不输出，初始状态得到空集合
func (s State) Encode() url.Values {
	s = s.normalize()
	q := url.Values{}

	var open []string
	for _, p := range Panels {
		if s.Open[p] {
			open = append(open, string(p))
		}
	}
	if len(open) > 0 {
		q.Set(QueryOpen, strings.Join(open, ","))
	}
	if s.PriceType != PriceNet {
		q.Set(QueryPrice, string(s.PriceType))
	}
	if s.ExpensePeriod != shaping.PeriodMonth {
		q.Set(QueryPeriod, string(s.ExpensePeriod))
	}
	if s.CalcYear != YearThis {
		q.Set(QueryYear, string(s.CalcYear))
	}
	for table, key := range yoyQueryKeys {
		if sel := s.Selection(table); sel != nil {
			q.Set(key, *sel)
		}
	}
	return q
}

// Decode 从查询参数恢复状态；无法识别的取值被忽略
func Decode(q url.Values) State {
	s := Initial()

	for _, raw := range strings.Split(q.Get(QueryOpen), ",") {
		if p := Panel(strings.TrimSpace(raw)); p.Valid() {
			s.Open[p] = true
		}
	}
	if q.Has(QueryPrice) {
		s = SelectPriceType(s, PriceType(q.Get(QueryPrice)))
	}
	if q.Has(QueryPeriod) {
		s = SelectExpensePeriod(s, shaping.Period(q.Get(QueryPeriod)))
	}
	if q.Has(QueryYear) {
		s = SelectCalcYear(s, CalcYear(q.Get(QueryYear)))
	}
	for table, key := range yoyQueryKeys {
		if q.Has(key) {
			v := q.Get(key)
			s = SelectYOY(s, table, &v)
		}
	}
	return s
}

// Link 应用动作后的查询串（不含 "?"）
func (s State) Link(a Action) string {
	return Reduce(s, a).Encode().Encode()
}

package shaping

import "github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"

// LookupStrategy 一种取值方式：给定月份位置，返回 (值, 是否命中)
type LookupStrategy func(monthIdx int) (float64, bool)

// FirstOf 依次尝试，第一个命中的生效
func FirstOf(strategies ...LookupStrategy) LookupStrategy {
	return func(monthIdx int) (float64, bool) {
		for _, s := range strategies {
			if s == nil {
				continue
			}
			if v, ok := s(monthIdx); ok {
				return v, true
			}
		}
		return 0, false
	}
}

// monthIndex 按月份标签索引的月度数组
type monthIndex struct {
	months []string
	byName map[string]model.MonthlyValues
}

func newMonthIndex(months []string, items []model.MonthlyValues) *monthIndex {
	idx := &monthIndex{
		months: months,
		byName: make(map[string]model.MonthlyValues, len(items)),
	}
	for _, it := range items {
		// 同一月份出现多次时以第一条为准
		if _, dup := idx.byName[it.Month]; !dup {
			idx.byName[it.Month] = it
		}
	}
	return idx
}

// OverrideKey 从月度数组中按字段名取值
func (mi *monthIndex) OverrideKey(key string) LookupStrategy {
	return func(monthIdx int) (float64, bool) {
		if monthIdx < 0 || monthIdx >= len(mi.months) {
			return 0, false
		}
		it, ok := mi.byName[mi.months[monthIdx]]
		if !ok {
			return 0, false
		}
		return it.Get(key)
	}
}

// FallbackIndex 从静态记录的 10 元素数组中按月份位置取值
func FallbackIndex(fallback map[string][]float64, key string) LookupStrategy {
	return func(monthIdx int) (float64, bool) {
		arr, ok := fallback[key]
		if !ok || monthIdx < 0 || monthIdx >= len(arr) {
			return 0, false
		}
		return arr[monthIdx], true
	}
}

// strategiesFor 单个品类的查找链：月度主键 → 月度别名 → 静态兜底
func strategiesFor(cat model.Category, overrides *monthIndex, fallback map[string][]float64) LookupStrategy {
	chain := make([]LookupStrategy, 0, len(cat.Aliases)+2)
	for _, key := range cat.Keys() {
		chain = append(chain, overrides.OverrideKey(key))
	}
	if fallback != nil {
		chain = append(chain, FallbackIndex(fallback, cat.Key))
	}
	return FirstOf(chain...)
}

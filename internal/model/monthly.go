package model

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// MonthKey 月度数组元素中的月份字段
const MonthKey = "월"

// Months 报表固定的 10 个月份标签
var Months = []string{"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월"}

// MonthIndex 返回月份标签在 Months 中的下标，未知标签返回 -1
func MonthIndex(label string) int {
	for i, m := range Months {
		if m == label {
			return i
		}
	}
	return -1
}

// MonthlyValues 月度数组的一个元素：{"월": "1월", "<key>": value, ...}
//
// 非数值字段被忽略；null 保留为 nil。键名统一为 NFC（macOS 导出的文件常为 NFD）。
type MonthlyValues struct {
	Month  string
	Values map[string]*float64
}

// UnmarshalJSON 解析松散结构的月度元素
func (m *MonthlyValues) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("monthly values: %w", err)
	}

	m.Month = ""
	m.Values = make(map[string]*float64, len(raw))
	for k, v := range raw {
		k = norm.NFC.String(k)
		if k == MonthKey {
			if err := json.Unmarshal(v, &m.Month); err != nil {
				return fmt.Errorf("monthly values: month label: %w", err)
			}
			m.Month = norm.NFC.String(m.Month)
			continue
		}
		var f *float64
		if err := json.Unmarshal(v, &f); err != nil {
			continue
		}
		m.Values[k] = f
	}
	return nil
}

// MarshalJSON 输出与输入相同的扁平结构
func (m MonthlyValues) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Values)+1)
	for k, v := range m.Values {
		out[k] = v
	}
	out[MonthKey] = m.Month
	return json.Marshal(out)
}

// Get 取指定字段的值；字段缺失或为 null 时 ok=false
func (m MonthlyValues) Get(key string) (float64, bool) {
	v, ok := m.Values[key]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// FindMonth 在月度数组中查找月份元素
func FindMonth(items []MonthlyValues, month string) (MonthlyValues, bool) {
	for _, it := range items {
		if it.Month == month {
			return it, true
		}
	}
	return MonthlyValues{}, false
}

// SeriesMap 品类 → 10 个月数值，键名统一为 NFC
type SeriesMap map[string][]float64

// UnmarshalJSON 解析并规范化键名
func (m *SeriesMap) UnmarshalJSON(data []byte) error {
	var raw map[string][]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("series map: %w", err)
	}
	*m = normalizeKeys(raw)
	return nil
}

// NullableSeriesMap 同 SeriesMap，数组元素可为 null（YOY）
type NullableSeriesMap map[string][]*float64

// UnmarshalJSON 解析并规范化键名
func (m *NullableSeriesMap) UnmarshalJSON(data []byte) error {
	var raw map[string][]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("nullable series map: %w", err)
	}
	*m = normalizeKeys(raw)
	return nil
}

func normalizeKeys[V any](raw map[string]V) map[string]V {
	if raw == nil {
		return nil
	}
	out := make(map[string]V, len(raw))
	for k, v := range raw {
		out[norm.NFC.String(k)] = v
	}
	return out
}

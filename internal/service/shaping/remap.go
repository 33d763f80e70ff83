package shaping

import "github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"

// Remap 某月中 To 品类直接沿用 From 品类的数值
type Remap struct {
	From string
	To   string
}

// SeasonRemap 上半年（1–6 月）沿用旧季节命名：当季主品类取副品类的值
var SeasonRemap = func() map[int]Remap {
	m := make(map[int]Remap, 6)
	for i := 0; i < 6; i++ {
		m[i] = Remap{From: model.SeasonSecondary.Key, To: model.SeasonPrimary.Key}
	}
	return m
}()

// remapSource 返回 key 在该月应取值的品类；无映射时返回 key 本身
func remapSource(remap map[int]Remap, monthIdx int, key string) string {
	if r, ok := remap[monthIdx]; ok && r.To == key {
		return r.From
	}
	return key
}

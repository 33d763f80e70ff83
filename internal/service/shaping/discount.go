package shaping

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// Round1 四舍五入到 1 位小数（.5 向正无穷方向进位）
func Round1(v float64) float64 {
	return round1(decimal.NewFromFloat(v))
}

func round1(d decimal.Decimal) float64 {
	f, _ := d.Shift(1).Add(half).Floor().Shift(-1).Float64()
	return f
}

// DiscountRate 折扣率 = (TAG - 实际销售) / TAG × 100，TAG 不大于 0 时为 0
//
// 按输入的十进制值精确计算后四舍五入。
func DiscountRate(net, gross float64) float64 {
	if gross <= 0 {
		return 0
	}
	g := decimal.NewFromFloat(gross)
	rate := g.Sub(decimal.NewFromFloat(net)).Div(g).Mul(hundred)
	return round1(rate)
}

// DeriveDiscountRates 按月、按品类计算折扣率序列
//
// 两个序列形状应一致；gross 缺少的点按 0 处理。
func DeriveDiscountRates(net, gross Series) Series {
	out := Series{
		Categories: net.Categories,
		Points:     make([]Point, 0, len(net.Points)),
	}
	for i, p := range net.Points {
		rp := Point{Month: p.Month, Values: make(map[string]float64, len(p.Values))}
		for key, n := range p.Values {
			rp.Values[key] = DiscountRate(n, gross.Value(i, key))
		}
		out.Points = append(out.Points, rp)
	}
	return out
}

// YOYPercent 当年 / 上年 × 100，上年为 0 时为 nil
func YOYPercent(current, lastYear float64) *float64 {
	if lastYear == 0 {
		return nil
	}
	c := decimal.NewFromFloat(current)
	v := round1(c.Div(decimal.NewFromFloat(lastYear)).Mul(hundred))
	return &v
}

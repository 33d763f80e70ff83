package model

import "golang.org/x/text/unicode/norm"

// All YOY 选择器中表示“全部”的取值
const All = "전체"

// Category 报表中的固定维度（品类 / 渠道 / 库存品项）
type Category struct {
	Key     string   // 主键名（JSON 中的标准写法）
	Aliases []string // 其他可接受的写法，按顺序尝试
	Code    string   // ASCII 代码，用于 PDF 等不支持韩文的输出
	Color   string   // 图表颜色
}

// Keys 返回主键名 + 别名，按查找顺序
func (c Category) Keys() []string {
	keys := make([]string, 0, 1+len(c.Aliases))
	keys = append(keys, c.Key)
	return append(keys, c.Aliases...)
}

// 销售品类
var (
	CatSeasonF = Category{Key: "당시즌F", Aliases: []string{"F당시즌"}, Code: "CUR-F", Color: "#1f4e79"}
	CatSeasonS = Category{Key: "당시즌S", Aliases: []string{"S당시즌"}, Code: "CUR-S", Color: "#5b9bd5"}
	CatPast    = Category{Key: "과시즌의류", Aliases: []string{"의류과시즌"}, Code: "PAST", Color: "#a5a5a5"}
	CatCap     = Category{Key: "모자", Aliases: []string{"CAP"}, Code: "CAP", Color: "#ed7d31"}
	CatShoes   = Category{Key: "신발", Aliases: []string{"SHOES"}, Code: "SHOES", Color: "#70ad47"}
	CatBag     = Category{Key: "가방외", Aliases: []string{"가방 외"}, Code: "BAG-ETC", Color: "#ffc000"}
)

// SalesCategories 销售品类（顺序即展示顺序）
var SalesCategories = []Category{CatSeasonF, CatSeasonS, CatPast, CatCap, CatShoes, CatBag}

// SeasonPrimary / SeasonSecondary 1–6 月当季主品类沿用副品类的数值
var (
	SeasonPrimary   = CatSeasonF
	SeasonSecondary = CatSeasonS
)

// 销售渠道
var Channels = []Category{
	{Key: "HK리테일", Aliases: []string{"HK 리테일"}, Code: "HK-RETAIL", Color: "#1f4e79"},
	{Key: "HK아울렛", Aliases: []string{"HK 아울렛"}, Code: "HK-OUTLET", Color: "#5b9bd5"},
	{Key: "HK온라인", Aliases: []string{"HK 온라인"}, Code: "HK-ONLINE", Color: "#70ad47"},
	{Key: "MC리테일", Aliases: []string{"MC 리테일"}, Code: "MC-RETAIL", Color: "#ed7d31"},
	{Key: "MC아울렛", Aliases: []string{"MC 아울렛"}, Code: "MC-OUTLET", Color: "#ffc000"},
}

// 库存品项
var StockItems = []Category{
	{Key: "당시즌", Code: "CUR", Color: "#1f4e79"},
	{Key: "과시즌", Code: "PAST", Color: "#a5a5a5"},
	{Key: "모자", Aliases: []string{"CAP"}, Code: "CAP", Color: "#ed7d31"},
	{Key: "신발", Aliases: []string{"SHOES"}, Code: "SHOES", Color: "#70ad47"},
	{Key: "가방외", Aliases: []string{"가방 외"}, Code: "BAG-ETC", Color: "#ffc000"},
}

// FindCategory 按主键名或别名查找
func FindCategory(cats []Category, key string) (Category, bool) {
	key = norm.NFC.String(key)
	for _, c := range cats {
		for _, k := range c.Keys() {
			if k == key {
				return c, true
			}
		}
	}
	return Category{}, false
}

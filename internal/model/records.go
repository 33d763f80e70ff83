package model

// KPI 首页汇总卡片
type KPI struct {
	Name     string   `json:"항목"`
	Current  float64  `json:"당년"`
	LastYear *float64 `json:"전년"`
	Unit     string   `json:"단위"`
}

// Breakdown 渠道 / 品类汇总行
type Breakdown struct {
	Name        string  `json:"이름"`
	Net         float64 `json:"실판"`
	Gross       float64 `json:"TAG"`
	NetLastYear float64 `json:"전년실판"`
}

// SeasonStock 按季节的库存
type SeasonStock struct {
	Season        string  `json:"시즌"`
	StockTag      float64 `json:"재고TAG"`
	StockTagLY    float64 `json:"전년재고TAG"`
	WeeksOfSupply float64 `json:"재고주수"`
}

// Store 门店
type Store struct {
	Name         string   `json:"매장명"`
	Region       string   `json:"지역"`
	Channel      string   `json:"채널"`
	Net          float64  `json:"실판"`
	NetLastYear  float64  `json:"전년실판"`
	DirectProfit *float64 `json:"직접이익"`
}

// SalesInventoryRecord 销售与库存汇总记录（sales_inventory.json）
type SalesInventoryRecord struct {
	BaseMonth           string            `json:"기준월"`
	Summary             []KPI             `json:"요약"`
	Channels            []Breakdown       `json:"채널별"`
	Categories          []Breakdown       `json:"카테고리별"`
	ChannelYOY          NullableSeriesMap `json:"채널별월별YOY"`
	MonthlyChannelSales []MonthlyValues   `json:"월별채널매출"`
	MonthlyItemNet      []MonthlyValues   `json:"월별아이템매출"`
	MonthlyItemGross    []MonthlyValues   `json:"월별아이템TAG매출"`
	MonthlyItemStock    []MonthlyValues   `json:"월별아이템재고"`
	StockYOY            NullableSeriesMap `json:"월별아이템재고YOY"`
	StockBySeason       []SeasonStock     `json:"시즌별재고"`
	Stores              []Store           `json:"매장"`
}

// FinanceLine 财务明细行
type FinanceLine struct {
	Name     string  `json:"항목"`
	Current  float64 `json:"당년"`
	LastYear float64 `json:"전년"`
}

// FinanceSection 当月 / 累计两组明细
type FinanceSection struct {
	Month []FinanceLine `json:"당월"`
	YTD   []FinanceLine `json:"누계"`
}

// DirectProfitInput 直接利润计算输入
type DirectProfitInput struct {
	Sales      float64 `json:"매출"`
	COGS       float64 `json:"매출원가"`
	DirectCost float64 `json:"직접비"`
}

// DirectProfitCalc 当年 / 上年两个视图
type DirectProfitCalc struct {
	ThisYear DirectProfitInput `json:"당년"`
	LastYear DirectProfitInput `json:"전년"`
}

// FinancialRecord 财务记录（financial.json），全部为人工整理的数值
type FinancialRecord struct {
	OperatingExpense FinanceSection   `json:"영업비"`
	Profit           FinanceSection   `json:"이익"`
	Cost             FinanceSection   `json:"비용"`
	DirectCost       FinanceSection   `json:"직접비"`
	DirectProfit     DirectProfitCalc `json:"직접이익계산"`
}

// ItemSalesRecord 品类月度销售（item_sales.json），作为月度数组缺失时的兜底
type ItemSalesRecord struct {
	Net   SeriesMap         `json:"실판매출"`
	Gross SeriesMap         `json:"TAG매출"`
	YOY   NullableSeriesMap `json:"YOY"`
}

// Records 一次加载得到的三份记录
type Records struct {
	SalesInventory SalesInventoryRecord
	Financial      FinancialRecord
	ItemSales      ItemSalesRecord
}

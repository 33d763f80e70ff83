package uistate

// Panel 可折叠的明细面板
type Panel string

// 销售
const (
	PanelSalesChannel  Panel = "sales-channel"
	PanelSalesCategory Panel = "sales-category"
	PanelSalesMonthly  Panel = "sales-monthly"
	PanelDiscount      Panel = "discount"
	PanelCategoryYOY   Panel = "category-yoy"
	PanelChannelYOY    Panel = "channel-yoy"
)

// 库存
const (
	PanelStockSeason  Panel = "stock-season"
	PanelStockMonthly Panel = "stock-monthly"
	PanelStockYOY     Panel = "stock-yoy"
)

// 门店
const (
	PanelStoreHK     Panel = "store-hk"
	PanelStoreMC     Panel = "store-mc"
	PanelStoreProfit Panel = "store-profit"
)

// 损益
const (
	PanelFinanceOpex   Panel = "finance-opex"
	PanelFinanceProfit Panel = "finance-profit"
	PanelFinanceCost   Panel = "finance-cost"
	PanelFinanceDirect Panel = "finance-direct"
	PanelDirectProfit  Panel = "direct-profit"
)

// 其他
const (
	PanelKPIDetail  Panel = "kpi-detail"
	PanelNotes      Panel = "notes"
	PanelDataStatus Panel = "data-status"
)

// Panels 全部面板，顺序即页面顺序
var Panels = []Panel{
	PanelKPIDetail,
	PanelSalesChannel, PanelSalesCategory, PanelSalesMonthly, PanelDiscount, PanelCategoryYOY, PanelChannelYOY,
	PanelStockSeason, PanelStockMonthly, PanelStockYOY,
	PanelStoreHK, PanelStoreMC, PanelStoreProfit,
	PanelFinanceOpex, PanelFinanceProfit, PanelFinanceCost, PanelFinanceDirect, PanelDirectProfit,
	PanelNotes, PanelDataStatus,
}

// PrimaryPanel “全部展开/收起”以它的当前状态为准
const PrimaryPanel = PanelSalesChannel

// ToggleAllPanels “全部展开/收起”影响的面板
var ToggleAllPanels = []Panel{
	PanelSalesChannel, PanelSalesCategory, PanelSalesMonthly, PanelDiscount, PanelCategoryYOY, PanelChannelYOY,
	PanelStockSeason, PanelStockMonthly, PanelStockYOY,
}

// Valid 是否为已知面板
func (p Panel) Valid() bool {
	for _, known := range Panels {
		if p == known {
			return true
		}
	}
	return false
}

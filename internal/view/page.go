package view

import (
	"time"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/config"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/shaping"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/uistate"
)

// Options 页面参数（来自配置与数据快照）
type Options struct {
	Title                string
	Unit                 string
	Notes                []string
	StoreProfitOverrides map[string]float64
	Sources              map[string]string
	LoadedAt             time.Time
}

// OptionsFrom 由报表配置和数据来源生成页面参数
func OptionsFrom(cfg config.ReportConfig, sources map[string]string, loadedAt time.Time) Options {
	return Options{
		Title:                cfg.Title,
		Unit:                 cfg.Unit,
		Notes:                cfg.Notes,
		StoreProfitOverrides: cfg.StoreProfitOverrides,
		Sources:              sources,
		LoadedAt:             loadedAt,
	}
}

// PanelView 面板的展示信息
type PanelView struct {
	ID     uistate.Panel
	Title  string
	Open   bool
	Toggle string // 切换后的查询串
	Source string // CONNECTED / HARDCODED
}

// Tab 单选标签
type Tab struct {
	Label  string
	Value  string
	Active bool
	Link   string
}

// YOYSection YOY 选择器 + 结果
type YOYSection struct {
	View    shaping.YOYView
	Options []Tab
}

// Page 报表页面的全部数据
type Page struct {
	Title     string
	Unit      string
	BaseMonth string
	LoadedAt  time.Time
	State     uistate.State
	Query     string

	KPIs           []shaping.KPICard
	ToggleAllLink  string
	ToggleAllLabel string

	Channels   shaping.BreakdownTable
	Categories shaping.BreakdownTable

	PriceTabs      []Tab
	PriceSeries    shaping.Series
	PriceChart     shaping.ChartConfig
	NetSeries      shaping.Series
	GrossSeries    shaping.Series
	DiscountSeries shaping.Series
	DiscountChart  shaping.ChartConfig
	ChannelChart   shaping.ChartConfig

	CategoryYOY YOYSection
	ChannelYOY  YOYSection
	StockYOY    YOYSection

	StockSeason []shaping.SeasonStockRow
	StockChart  shaping.ChartConfig

	StoresHK []shaping.StoreRow
	StoresMC []shaping.StoreRow

	PeriodTabs   []Tab
	Finance      []shaping.FinanceTable
	YearTabs     []Tab
	DirectProfit shaping.DirectProfitView

	Notes   []string
	Sources map[string]string
	Gaps    []shaping.Gap

	panels map[uistate.Panel]PanelView
}

var panelTitles = map[uistate.Panel]string{
	uistate.PanelKPIDetail:     "주요 지표",
	uistate.PanelSalesChannel:  "채널별 매출",
	uistate.PanelSalesCategory: "카테고리별 매출",
	uistate.PanelSalesMonthly:  "월별 아이템 매출",
	uistate.PanelDiscount:      "월별 할인율",
	uistate.PanelCategoryYOY:   "카테고리별 YOY",
	uistate.PanelChannelYOY:    "채널별 YOY",
	uistate.PanelStockSeason:   "시즌별 재고",
	uistate.PanelStockMonthly:  "월별 아이템 재고",
	uistate.PanelStockYOY:      "아이템별 재고 YOY",
	uistate.PanelStoreHK:       "HK 매장",
	uistate.PanelStoreMC:       "MC 매장",
	uistate.PanelStoreProfit:   "매장 직접이익",
	uistate.PanelFinanceOpex:   "영업비",
	uistate.PanelFinanceProfit: "이익",
	uistate.PanelFinanceCost:   "비용",
	uistate.PanelFinanceDirect: "직접비",
	uistate.PanelDirectProfit:  "직접이익 계산",
	uistate.PanelNotes:         "참고 사항",
	uistate.PanelDataStatus:    "데이터 상태",
}

// PanelTitle 面板标题
func PanelTitle(p uistate.Panel) string {
	return panelTitles[p]
}

var priceLabels = []struct {
	value uistate.PriceType
	label string
}{
	{uistate.PriceNet, "실판매출"},
	{uistate.PriceGross, "TAG매출"},
	{uistate.PriceDiscount, "할인율"},
}

// BuildPage 根据记录和当前状态组装页面
func BuildPage(rec *model.Records, state uistate.State, opts Options) *Page {
	si := &rec.SalesInventory
	p := &Page{
		Title:     opts.Title,
		Unit:      opts.Unit,
		BaseMonth: si.BaseMonth,
		LoadedAt:  opts.LoadedAt,
		State:     state,
		Query:     state.Encode().Encode(),
		Notes:     opts.Notes,
		Sources:   opts.Sources,
	}

	p.buildPanels(opts)
	p.KPIs = shaping.BuildKPICards(si.Summary)
	p.Channels = shaping.BuildBreakdownRows(si.Channels, model.Channels)
	p.Categories = shaping.BuildBreakdownRows(si.Categories, model.SalesCategories)

	p.NetSeries = shaping.NetSalesSeries(rec)
	p.GrossSeries = shaping.GrossSalesSeries(rec)
	p.DiscountSeries = shaping.DeriveDiscountRates(p.NetSeries, p.GrossSeries)
	p.DiscountChart = shaping.DiscountChart("discount", p.DiscountSeries)
	p.ChannelChart = shaping.SeriesChart("channel-sales", "월별 채널 매출", shaping.ChartBar, shaping.ChannelSalesSeries(rec), opts.Unit)
	p.Gaps = append(append([]shaping.Gap{}, p.NetSeries.Gaps...), p.GrossSeries.Gaps...)
	p.buildPrice(state, opts.Unit)

	p.CategoryYOY = p.yoySection(rec, shaping.TableCategory)
	p.ChannelYOY = p.yoySection(rec, shaping.TableChannel)
	p.StockYOY = p.yoySection(rec, shaping.TableStock)

	p.StockSeason = shaping.BuildSeasonStockRows(si.StockBySeason)
	p.StockChart = shaping.SeriesChart("stock", "월별 아이템 재고", shaping.ChartBar, shaping.StockSeries(rec), opts.Unit)

	for _, row := range shaping.BuildStoreRows(si.Stores, opts.StoreProfitOverrides) {
		switch row.Region {
		case "MC":
			p.StoresMC = append(p.StoresMC, row)
		default:
			p.StoresHK = append(p.StoresHK, row)
		}
	}

	p.buildFinance(rec, state)
	return p
}

func (p *Page) buildPanels(opts Options) {
	p.panels = make(map[uistate.Panel]PanelView, len(uistate.Panels))
	for _, id := range uistate.Panels {
		source := shaping.SourceConnected
		if id == uistate.PanelNotes || (id == uistate.PanelStoreProfit && len(opts.StoreProfitOverrides) > 0) {
			source = shaping.SourceHardcoded
		}
		p.panels[id] = PanelView{
			ID:     id,
			Title:  panelTitles[id],
			Open:   p.State.IsOpen(id),
			Toggle: p.Link(uistate.Action{Kind: uistate.ActToggle, Panel: id}),
			Source: source,
		}
	}

	p.ToggleAllLink = p.Link(uistate.Action{Kind: uistate.ActToggleAll})
	p.ToggleAllLabel = "전체 펼치기"
	if p.State.IsOpen(uistate.PrimaryPanel) {
		p.ToggleAllLabel = "전체 접기"
	}
}

func (p *Page) buildPrice(state uistate.State, unit string) {
	for _, pl := range priceLabels {
		p.PriceTabs = append(p.PriceTabs, Tab{
			Label:  pl.label,
			Value:  string(pl.value),
			Active: state.PriceType == pl.value,
			Link:   p.Link(uistate.Action{Kind: uistate.ActPrice, Value: string(pl.value)}),
		})
	}

	switch state.PriceType {
	case uistate.PriceGross:
		p.PriceSeries = p.GrossSeries
		p.PriceChart = shaping.SeriesChart("price", "월별 TAG매출", shaping.ChartBar, p.GrossSeries, unit)
	case uistate.PriceDiscount:
		p.PriceSeries = p.DiscountSeries
		p.PriceChart = shaping.DiscountChart("price", p.DiscountSeries)
	default:
		p.PriceSeries = p.NetSeries
		p.PriceChart = shaping.SeriesChart("price", "월별 실판매출", shaping.ChartBar, p.NetSeries, unit)
	}
}

func (p *Page) yoySection(rec *model.Records, table string) YOYSection {
	t, err := shaping.YOYTableByName(rec, table)
	if err != nil {
		return YOYSection{}
	}
	current := p.State.Selection(table)
	sec := YOYSection{View: shaping.SelectYOY(t, current)}

	keys := []string{model.All}
	for _, c := range t.Categories {
		keys = append(keys, c.Key)
	}
	for _, k := range keys {
		active := false
		if current != nil {
			if c, ok := model.FindCategory(t.Categories, *current); ok {
				active = c.Key == k
			} else {
				active = *current == k
			}
		}
		sec.Options = append(sec.Options, Tab{
			Label:  k,
			Value:  k,
			Active: active,
			Link:   p.Link(uistate.Action{Kind: uistate.ActYOY, Table: table, Value: k}),
		})
	}
	return sec
}

func (p *Page) buildFinance(rec *model.Records, state uistate.State) {
	for _, v := range []struct {
		value shaping.Period
		label string
	}{{shaping.PeriodMonth, "당월"}, {shaping.PeriodYTD, "누계"}} {
		p.PeriodTabs = append(p.PeriodTabs, Tab{
			Label:  v.label,
			Value:  string(v.value),
			Active: state.ExpensePeriod == v.value,
			Link:   p.Link(uistate.Action{Kind: uistate.ActPeriod, Value: string(v.value)}),
		})
	}
	for _, section := range shaping.FinanceSections {
		table, err := shaping.BuildFinanceTable(&rec.Financial, section, state.ExpensePeriod)
		if err != nil {
			continue
		}
		p.Finance = append(p.Finance, table)
	}

	for _, v := range []struct {
		value uistate.CalcYear
		label string
	}{{uistate.YearThis, "당년"}, {uistate.YearLast, "전년"}} {
		p.YearTabs = append(p.YearTabs, Tab{
			Label:  v.label,
			Value:  string(v.value),
			Active: state.CalcYear == v.value,
			Link:   p.Link(uistate.Action{Kind: uistate.ActYear, Value: string(v.value)}),
		})
	}
	p.DirectProfit = shaping.BuildDirectProfit(&rec.Financial, state.CalcYear == uistate.YearLast)
}

// Link 应用动作后的页面地址
func (p *Page) Link(a uistate.Action) string {
	q := p.State.Link(a)
	if q == "" {
		return "?"
	}
	return "?" + q
}

// Panel 按 ID 取面板（模板使用）
func (p *Page) Panel(id string) PanelView {
	return p.panels[uistate.Panel(id)]
}

// FinanceTable 按分组取财务表（模板使用）
func (p *Page) FinanceTable(section string) *shaping.FinanceTable {
	for i := range p.Finance {
		if p.Finance[i].Section == section {
			return &p.Finance[i]
		}
	}
	return nil
}

// Charts 已展开面板中需要绘制的图表
func (p *Page) Charts() []shaping.ChartConfig {
	var charts []shaping.ChartConfig
	if p.State.IsOpen(uistate.PanelSalesMonthly) {
		charts = append(charts, p.PriceChart)
	}
	if p.State.IsOpen(uistate.PanelDiscount) {
		charts = append(charts, p.DiscountChart)
	}
	if p.State.IsOpen(uistate.PanelSalesChannel) {
		charts = append(charts, p.ChannelChart)
	}
	if p.State.IsOpen(uistate.PanelStockMonthly) {
		charts = append(charts, p.StockChart)
	}
	for _, sec := range []struct {
		panel uistate.Panel
		yoy   YOYSection
	}{
		{uistate.PanelCategoryYOY, p.CategoryYOY},
		{uistate.PanelChannelYOY, p.ChannelYOY},
		{uistate.PanelStockYOY, p.StockYOY},
	} {
		if p.State.IsOpen(sec.panel) && sec.yoy.View.Chart != nil {
			charts = append(charts, *sec.yoy.View.Chart)
		}
	}
	return charts
}

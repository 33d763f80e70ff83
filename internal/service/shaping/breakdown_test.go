package shaping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
)

func TestBuildBreakdownRows_OrderAndTotal(t *testing.T) {
	items := []model.Breakdown{
		{Name: "기타", Net: 10, Gross: 10, NetLastYear: 0},
		{Name: "MC 아울렛", Net: 50, Gross: 100, NetLastYear: 50},
		{Name: "HK리테일", Net: 100, Gross: 120, NetLastYear: 80},
	}

	table := BuildBreakdownRows(items, model.Channels)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, "HK리테일", table.Rows[0].Name)
	assert.Equal(t, "HK-RETAIL", table.Rows[0].Code)
	assert.Equal(t, 16.7, table.Rows[0].DiscountRate)
	require.NotNil(t, table.Rows[0].YOY)
	assert.Equal(t, 125.0, *table.Rows[0].YOY)
	assert.Equal(t, ClassImproved, table.Rows[0].Class)

	assert.Equal(t, "MC아울렛", table.Rows[1].Name)
	assert.Equal(t, 50.0, table.Rows[1].DiscountRate)

	assert.Equal(t, "기타", table.Rows[2].Name)
	assert.Nil(t, table.Rows[2].YOY)
	assert.Equal(t, Placeholder, table.Rows[2].YOYText)

	assert.Equal(t, 160.0, table.Total.Net)
	assert.Equal(t, 230.0, table.Total.Gross)
	assert.Equal(t, 130.0, table.Total.NetLastYear)
}

func TestBuildKPICards(t *testing.T) {
	cards := BuildKPICards([]model.KPI{
		{Name: "실판매출", Current: 90, LastYear: fp(100), Unit: "HKD 천"},
		{Name: "영업이익", Current: 5},
	})
	require.Len(t, cards, 2)
	assert.Equal(t, "90.0%", cards[0].YOYText)
	assert.Equal(t, ClassDeclined, cards[0].Class)
	assert.Nil(t, cards[1].YOY)
	assert.Equal(t, ClassNeutral, cards[1].Class)
}

func TestBuildStoreRows_Overrides(t *testing.T) {
	stores := []model.Store{
		{Name: "A", Net: 10, NetLastYear: 10, DirectProfit: fp(3)},
		{Name: "B", Net: 10, NetLastYear: 20, DirectProfit: fp(-1)},
		{Name: "C", Net: 10, NetLastYear: 5},
	}

	rows := BuildStoreRows(stores, map[string]float64{"C": -2.5})
	require.Len(t, rows, 3)

	assert.Equal(t, SourceConnected, rows[0].ProfitSource)
	assert.Equal(t, ClassImproved, rows[0].ProfitClass)
	assert.Equal(t, ClassDeclined, rows[1].ProfitClass)

	require.NotNil(t, rows[2].DirectProfit)
	assert.Equal(t, -2.5, *rows[2].DirectProfit)
	assert.Equal(t, SourceHardcoded, rows[2].ProfitSource)
	assert.Equal(t, ClassDeclined, rows[2].ProfitClass)

	noProfit := BuildStoreRows([]model.Store{{Name: "D"}}, nil)
	assert.Equal(t, ClassNeutral, noProfit[0].ProfitClass)
}

func TestBuildSeasonStockRows(t *testing.T) {
	rows := BuildSeasonStockRows([]model.SeasonStock{{Season: "25F", StockTag: 110, StockTagLY: 100, WeeksOfSupply: 12}})
	require.Len(t, rows, 1)
	assert.Equal(t, "110.0%", rows[0].YOYText)
}

func testFinancial() *model.FinancialRecord {
	return &model.FinancialRecord{
		OperatingExpense: model.FinanceSection{
			Month: []model.FinanceLine{{Name: "인건비", Current: 30, LastYear: 25}, {Name: "임차료", Current: 20, LastYear: 25}},
			YTD:   []model.FinanceLine{{Name: "인건비", Current: 300, LastYear: 250}},
		},
		Profit: model.FinanceSection{
			Month: []model.FinanceLine{{Name: "영업이익", Current: 12, LastYear: 0}},
		},
		DirectProfit: model.DirectProfitCalc{
			ThisYear: model.DirectProfitInput{Sales: 200, COGS: 80, DirectCost: 70},
			LastYear: model.DirectProfitInput{Sales: 0, COGS: 0, DirectCost: 10},
		},
	}
}

func TestBuildFinanceTable(t *testing.T) {
	rec := testFinancial()

	month, err := BuildFinanceTable(rec, SectionOpex, PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, "영업비", month.Title)
	require.Len(t, month.Rows, 2)
	assert.Equal(t, 5.0, month.Rows[0].Diff)
	require.NotNil(t, month.Total)
	assert.Equal(t, 50.0, month.Total.Current)
	assert.Equal(t, "100.0%", month.Total.YOYText)

	ytd, err := BuildFinanceTable(rec, SectionOpex, PeriodYTD)
	require.NoError(t, err)
	assert.Equal(t, PeriodYTD, ytd.Period)
	require.Len(t, ytd.Rows, 1)
	assert.Equal(t, 300.0, ytd.Rows[0].Current)

	fallback, err := BuildFinanceTable(rec, SectionOpex, Period("week"))
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, fallback.Period)

	profit, err := BuildFinanceTable(rec, SectionProfit, PeriodMonth)
	require.NoError(t, err)
	assert.Nil(t, profit.Total)
	assert.Nil(t, profit.Rows[0].YOY)

	_, err = BuildFinanceTable(rec, "tax", PeriodMonth)
	assert.True(t, errors.Is(err, ErrUnknownSection))
}

func TestBuildDirectProfit(t *testing.T) {
	rec := testFinancial()

	this := BuildDirectProfit(rec, false)
	assert.Equal(t, "this", this.Year)
	assert.Equal(t, 120.0, this.GrossProfit)
	assert.Equal(t, 50.0, this.DirectProfit)
	assert.Equal(t, 25.0, this.Margin)

	last := BuildDirectProfit(rec, true)
	assert.Equal(t, "last", last.Year)
	assert.Equal(t, -10.0, last.DirectProfit)
	assert.Equal(t, 0.0, last.Margin)
}

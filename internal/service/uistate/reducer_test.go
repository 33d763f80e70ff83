package uistate

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/shaping"
)

func TestInitial(t *testing.T) {
	s := Initial()
	for _, p := range Panels {
		assert.False(t, s.IsOpen(p), string(p))
	}
	assert.Equal(t, PriceNet, s.PriceType)
	assert.Equal(t, shaping.PeriodMonth, s.ExpensePeriod)
	assert.Equal(t, YearThis, s.CalcYear)
	assert.Nil(t, s.CategoryYOY)
	assert.Len(t, Panels, 20)
}

func TestTogglePanel_TwiceIsIdentity(t *testing.T) {
	for _, p := range Panels {
		s := Initial()
		once := TogglePanel(s, p)
		assert.True(t, once.IsOpen(p))
		assert.False(t, s.IsOpen(p), "input must not change")

		twice := TogglePanel(once, p)
		assert.Equal(t, s, twice)
	}
}

func TestTogglePanel_Unknown(t *testing.T) {
	s := TogglePanel(Initial(), Panel("nope"))
	assert.Empty(t, s.Open)
}

func TestToggleAll(t *testing.T) {
	s := TogglePanel(Initial(), PanelNotes)
	s = TogglePanel(s, PanelStockYOY)

	opened := ToggleAll(s)
	for _, p := range ToggleAllPanels {
		assert.True(t, opened.IsOpen(p), string(p))
	}
	assert.True(t, opened.IsOpen(PanelNotes))

	closed := ToggleAll(opened)
	for _, p := range ToggleAllPanels {
		assert.False(t, closed.IsOpen(p), string(p))
	}
	assert.True(t, closed.IsOpen(PanelNotes))
}

func TestToggleAll_FollowsPrimary(t *testing.T) {
	// 主面板已展开时，其他面板即使收起也被统一收起
	s := TogglePanel(Initial(), PrimaryPanel)
	out := ToggleAll(s)
	assert.False(t, out.IsOpen(PrimaryPanel))
	assert.False(t, out.IsOpen(PanelDiscount))
}

func TestSelectors(t *testing.T) {
	tests := []struct {
		name   string
		action string
		check  func(t *testing.T, s State)
	}{
		{"price gross", "price:gross", func(t *testing.T, s State) { assert.Equal(t, PriceGross, s.PriceType) }},
		{"price invalid", "price:cost", func(t *testing.T, s State) { assert.Equal(t, PriceNet, s.PriceType) }},
		{"period ytd", "period:ytd", func(t *testing.T, s State) { assert.Equal(t, shaping.PeriodYTD, s.ExpensePeriod) }},
		{"period invalid", "period:week", func(t *testing.T, s State) { assert.Equal(t, shaping.PeriodMonth, s.ExpensePeriod) }},
		{"year last", "year:last", func(t *testing.T, s State) { assert.Equal(t, YearLast, s.CalcYear) }},
		{"yoy all", "yoy:category:전체", func(t *testing.T, s State) {
			require.NotNil(t, s.CategoryYOY)
			assert.Equal(t, model.All, *s.CategoryYOY)
		}},
		{"yoy channel alias", "yoy:channel:HK 온라인", func(t *testing.T, s State) {
			require.NotNil(t, s.ChannelYOY)
			assert.Equal(t, "HK 온라인", *s.ChannelYOY)
		}},
		{"yoy unknown key", "yoy:stock:없음", func(t *testing.T, s State) { assert.Nil(t, s.StockYOY) }},
		{"toggle", "toggle:notes", func(t *testing.T, s State) { assert.True(t, s.IsOpen(PanelNotes)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAction(tt.action)
			require.NoError(t, err)
			tt.check(t, Reduce(Initial(), a))
		})
	}
}

func TestSelectYOY_Clear(t *testing.T) {
	all := model.All
	s := SelectYOY(Initial(), shaping.TableStock, &all)
	require.NotNil(t, s.StockYOY)

	a, err := ParseAction("yoy:stock:none")
	require.NoError(t, err)
	assert.Nil(t, Reduce(s, a).StockYOY)
}

func TestParseAction(t *testing.T) {
	valid := []string{"toggle:notes", "price:discount", "period:ytd", "year:last", "yoy:category:모자", "toggle-all"}
	for _, s := range valid {
		a, err := ParseAction(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, a.String())
	}

	invalid := []string{"", "toggle", "toggle:", "zoom:in", "yoy:category", "yoy::x"}
	for _, s := range invalid {
		_, err := ParseAction(s)
		assert.True(t, errors.Is(err, ErrUnknownAction), s)
	}
}

func TestEncodeDecode(t *testing.T) {
	assert.Empty(t, Initial().Encode())

	capKey := "모자"
	s := Initial()
	s = TogglePanel(s, PanelDiscount)
	s = TogglePanel(s, PanelKPIDetail)
	s = SelectPriceType(s, PriceDiscount)
	s = SelectExpensePeriod(s, shaping.PeriodYTD)
	s = SelectCalcYear(s, YearLast)
	s = SelectYOY(s, shaping.TableCategory, &capKey)

	q := s.Encode()
	assert.Equal(t, "kpi-detail,discount", q.Get(QueryOpen))
	assert.Equal(t, s, Decode(q))
}

func TestDecode_IgnoresGarbage(t *testing.T) {
	q := url.Values{}
	q.Set(QueryOpen, "notes,,bogus")
	q.Set(QueryPrice, "free")
	q.Set(QueryChYOY, "XX")

	s := Decode(q)
	assert.Equal(t, map[Panel]bool{PanelNotes: true}, s.Open)
	assert.Equal(t, PriceNet, s.PriceType)
	assert.Nil(t, s.ChannelYOY)
}

func TestLink(t *testing.T) {
	a, err := ParseAction("toggle:notes")
	require.NoError(t, err)
	link := Initial().Link(a)
	assert.Equal(t, "open=notes", link)
}

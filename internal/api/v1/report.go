package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/shaping"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/uistate"
)

// SeriesResponse 月度序列响应
type SeriesResponse struct {
	Price  uistate.PriceType   `json:"price"`
	Series shaping.Series      `json:"series"`
	Chart  shaping.ChartConfig `json:"chart"`
}

// GetSeries 月度品类序列
// GET /api/series?price=net|gross|discount
func (h *Handler) GetSeries(c *gin.Context) {
	price := uistate.PriceType(c.Query("price"))
	if price == "" {
		price = uistate.PriceNet
	}
	if !price.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price 参数无效"})
		return
	}

	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	state := uistate.SelectPriceType(uistate.Initial(), price)
	page := h.page(snap, state)

	c.JSON(http.StatusOK, SeriesResponse{
		Price:  price,
		Series: page.PriceSeries,
		Chart:  page.PriceChart,
	})
}

// GetYOY YOY 表
// GET /api/yoy/:table?select=<key|전체>
func (h *Handler) GetYOY(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	table, err := shaping.YOYTableByName(snap.Records, c.Param("table"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var selection *string
	if v, ok := c.GetQuery("select"); ok && v != "" {
		selection = &v
	}
	c.JSON(http.StatusOK, shaping.SelectYOY(table, selection))
}

// GetFinance 财务明细
// GET /api/finance/:section?period=month|ytd
func (h *Handler) GetFinance(c *gin.Context) {
	period := shaping.Period(c.Query("period"))
	if period == "" {
		period = shaping.PeriodMonth
	}
	if period != shaping.PeriodMonth && period != shaping.PeriodYTD {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period 参数无效"})
		return
	}

	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	table, err := shaping.BuildFinanceTable(&snap.Records.Financial, c.Param("section"), period)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, shaping.ErrUnknownSection) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, table)
}

package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/uistate"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/view"
)

// handleReport 报表页面
//
// 查询串即页面状态；带 do=<action> 时应用动作后 303 跳转到新状态地址。
func (s *Server) handleReport(c *gin.Context) {
	q := c.Request.URL.Query()
	state := uistate.Decode(q)

	if do := q.Get(uistate.QueryDoParam); do != "" {
		action, err := uistate.ParseAction(do)
		if err != nil {
			s.logger.Debug("ignore action", zap.String("do", do), zap.Error(err))
		} else {
			state = uistate.Reduce(state, action)
		}
		c.Redirect(http.StatusSeeOther, stateURL(state))
		return
	}

	snap, err := s.store.Snapshot()
	if err != nil {
		c.Data(http.StatusServiceUnavailable, "text/html; charset=utf-8", []byte("<p>데이터를 불러오는 중입니다.</p>"))
		return
	}

	page := view.BuildPage(snap.Records, state, view.OptionsFrom(s.report, snap.Sources, snap.LoadedAt))

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "report.html", page); err != nil {
		s.logger.Error("render report failed", zap.Error(err))
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte("<p>페이지를 표시할 수 없습니다.</p>"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func stateURL(s uistate.State) string {
	if q := s.Encode().Encode(); q != "" {
		return "/?" + q
	}
	return "/"
}

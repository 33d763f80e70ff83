package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/uistate"
)

type reduceRequest struct {
	State  *uistate.State `json:"state"`
	Action string         `json:"action" binding:"required"`
}

type reduceResponse struct {
	State uistate.State `json:"state"`
	Query string        `json:"query"`
}

// ReduceState 对页面状态应用一个动作
// POST /api/state/reduce
func (h *Handler) ReduceState(c *gin.Context) {
	var req reduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	action, err := uistate.ParseAction(req.Action)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := uistate.Initial()
	if req.State != nil {
		// 经过一次编解码，丢弃非法取值
		state = uistate.Decode(req.State.Encode())
	}

	next := uistate.Reduce(state, action)
	c.JSON(http.StatusOK, reduceResponse{
		State: next,
		Query: next.Encode().Encode(),
	})
}

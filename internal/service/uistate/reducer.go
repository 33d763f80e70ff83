package uistate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/model"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/shaping"
)

// ErrUnknownAction 无法解析的动作
var ErrUnknownAction = errors.New("unknown action")

// ActionKind 动作类型
type ActionKind string

const (
	ActToggle    ActionKind = "toggle"
	ActPrice     ActionKind = "price"
	ActPeriod    ActionKind = "period"
	ActYear      ActionKind = "year"
	ActYOY       ActionKind = "yoy"
	ActToggleAll ActionKind = "toggle-all"
)

// SelectionNone 清空 YOY 选择
const SelectionNone = "none"

// Action 一次用户操作
type Action struct {
	Kind  ActionKind
	Panel Panel
	Value string
	Table string
}

// String 与 ParseAction 互逆
func (a Action) String() string {
	switch a.Kind {
	case ActToggle:
		return string(ActToggle) + ":" + string(a.Panel)
	case ActYOY:
		return string(ActYOY) + ":" + a.Table + ":" + a.Value
	case ActToggleAll:
		return string(ActToggleAll)
	default:
		return string(a.Kind) + ":" + a.Value
	}
}

// ParseAction 解析 toggle:<panel>、price:<v>、period:<v>、year:<v>、
// yoy:<table>:<key|전체|none>、toggle-all
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	if s == string(ActToggleAll) {
		return Action{Kind: ActToggleAll}, nil
	}

	kind, rest, ok := strings.Cut(s, ":")
	if !ok || rest == "" {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}

	switch ActionKind(kind) {
	case ActToggle:
		return Action{Kind: ActToggle, Panel: Panel(rest)}, nil
	case ActPrice, ActPeriod, ActYear:
		return Action{Kind: ActionKind(kind), Value: rest}, nil
	case ActYOY:
		table, value, ok := strings.Cut(rest, ":")
		if !ok || table == "" || value == "" {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
		}
		return Action{Kind: ActYOY, Table: table, Value: value}, nil
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Reduce 应用一个动作；非法取值时返回原状态
func Reduce(s State, a Action) State {
	switch a.Kind {
	case ActToggle:
		return TogglePanel(s, a.Panel)
	case ActPrice:
		return SelectPriceType(s, PriceType(a.Value))
	case ActPeriod:
		return SelectExpensePeriod(s, shaping.Period(a.Value))
	case ActYear:
		return SelectCalcYear(s, CalcYear(a.Value))
	case ActYOY:
		if a.Value == SelectionNone {
			return SelectYOY(s, a.Table, nil)
		}
		v := a.Value
		return SelectYOY(s, a.Table, &v)
	case ActToggleAll:
		return ToggleAll(s)
	default:
		return s.clone()
	}
}

// TogglePanel 切换单个面板
func TogglePanel(s State, p Panel) State {
	out := s.clone()
	if !p.Valid() {
		return out
	}
	if out.Open[p] {
		delete(out.Open, p)
	} else {
		out.Open[p] = true
	}
	return out
}

// ToggleAll 把一组面板统一设为主面板当前状态的反面
func ToggleAll(s State) State {
	out := s.clone()
	target := !s.Open[PrimaryPanel]
	for _, p := range ToggleAllPanels {
		if target {
			out.Open[p] = true
		} else {
			delete(out.Open, p)
		}
	}
	return out
}

// SelectPriceType 切换价格口径
func SelectPriceType(s State, v PriceType) State {
	out := s.clone()
	if v.Valid() {
		out.PriceType = v
	}
	return out
}

// SelectExpensePeriod 切换费用期间
func SelectExpensePeriod(s State, v shaping.Period) State {
	out := s.clone()
	if validPeriod(v) {
		out.ExpensePeriod = v
	}
	return out
}

// SelectCalcYear 切换直接利润年度
func SelectCalcYear(s State, v CalcYear) State {
	out := s.clone()
	if v.Valid() {
		out.CalcYear = v
	}
	return out
}

// SelectYOY 设置 YOY 表的选择；nil 表示清空
func SelectYOY(s State, table string, selection *string) State {
	out := s.clone()
	if selection != nil && *selection != model.All && !knownKey(table, *selection) {
		return out
	}
	sel := copyStr(selection)
	switch table {
	case shaping.TableCategory:
		out.CategoryYOY = sel
	case shaping.TableChannel:
		out.ChannelYOY = sel
	case shaping.TableStock:
		out.StockYOY = sel
	}
	return out
}

func knownKey(table, key string) bool {
	var cats []model.Category
	switch table {
	case shaping.TableCategory:
		cats = model.SalesCategories
	case shaping.TableChannel:
		cats = model.Channels
	case shaping.TableStock:
		cats = model.StockItems
	default:
		return false
	}
	_, ok := model.FindCategory(cats, key)
	return ok
}

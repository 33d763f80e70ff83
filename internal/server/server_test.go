package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/config"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/service/uistate"
	"github.com/zbwbabe-source/FNFHK-dash-sub005/internal/store"
)

func newTestServer(t *testing.T, load bool) *Server {
	t.Helper()
	st := store.NewMemoryStore(store.NewLoader("", store.FileNames{}), nil)
	if load {
		require.NoError(t, st.Load())
	}
	s, err := NewServer(config.DefaultConfig(), st, nil)
	require.NoError(t, err)
	return s
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestReportPage(t *testing.T) {
	s := newTestServer(t, true)

	w := get(s, "/")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "HK/MC 월간 경영실적")
	assert.Contains(t, body, "2025-10")
	assert.Contains(t, body, "전체 펼치기")
	assert.NotContains(t, body, `id="chart-`)
}

func TestReportPageAllPanelsOpen(t *testing.T) {
	s := newTestServer(t, true)

	state := uistate.Initial()
	for _, p := range uistate.Panels {
		state = uistate.Reduce(state, uistate.Action{Kind: uistate.ActToggle, Panel: p})
	}
	state = uistate.Reduce(state, uistate.Action{Kind: uistate.ActYOY, Table: "category", Value: "전체"})

	w := get(s, "/?"+state.Encode().Encode())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := w.Body.String()
	assert.Contains(t, body, "전체 접기")
	assert.Contains(t, body, `id="chart-discount"`)
	assert.Contains(t, body, "영업비")
	assert.Contains(t, body, "누락된 월별 데이터가 없습니다")
}

func TestReportActionRedirect(t *testing.T) {
	s := newTestServer(t, true)

	tests := []struct {
		name     string
		target   string
		location string
	}{
		{"toggle", "/?do=toggle:notes", "/?open=notes"},
		{"toggle back", "/?open=notes&do=toggle:notes", "/"},
		{"price", "/?do=price:gross", "/?price=gross"},
		{"invalid action", "/?do=explode", "/"},
		{"unknown panel", "/?do=toggle:nope", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(s, tt.target)
			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}
}

func TestReportNotLoaded(t *testing.T) {
	s := newTestServer(t, false)

	w := get(s, "/")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, false)

	w := get(s, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAPIMounted(t *testing.T) {
	s := newTestServer(t, true)

	w := get(s, "/api/status")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"loaded":true`)
}

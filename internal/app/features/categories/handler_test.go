package categories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/dalemusser/liftadmin/internal/app/features/categories/views"

	"github.com/dalemusser/liftadmin/internal/app/system/apiclient"
	"github.com/dalemusser/liftadmin/internal/app/system/fetchstate"
	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/domain/models"
	"github.com/dalemusser/liftadmin/internal/testutil"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	testutil.RunWithTemplates(m)
}

func TestServeState_JSON(t *testing.T) {
	fb := exampleBackend().Fail(elevatorsPath, &apiclient.Error{Kind: apiclient.KindServer, StatusCode: 500})
	h := NewHandler(newLoader(fb), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body struct {
		State struct {
			Status string               `json:"status"`
			Data   models.CategoryStats `json:"data"`
			Failed []string             `json:"failed"`
		} `json:"state"`
		Transitions []string `json:"transitions"`
		Toasts      []struct {
			Level string `json:"level"`
		} `json:"toasts"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.State.Status != "partialSuccess" {
		t.Errorf("status = %q", body.State.Status)
	}
	if body.State.Data.TotalManagement != 3 {
		t.Errorf("total = %d, want 3", body.State.Data.TotalManagement)
	}
	if len(body.Transitions) != 3 || body.Transitions[0] != "loading" {
		t.Errorf("transitions = %v", body.Transitions)
	}
	if len(body.Toasts) != 1 || body.Toasts[0].Level != "warning" {
		t.Errorf("toasts = %+v", body.Toasts)
	}
}

func TestServeState_RetryStartsIdle(t *testing.T) {
	h := NewHandler(newLoader(exampleBackend()), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/state?retry=1", nil)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	var body struct {
		Transitions []string `json:"transitions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Transitions) != 4 || body.Transitions[0] != "idle" || body.Transitions[3] != "success" {
		t.Errorf("transitions = %v", body.Transitions)
	}
}

func TestServePage_Renders(t *testing.T) {
	h := NewHandler(newLoader(exampleBackend()), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	h.ServePage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`dir="rtl"`,
		`data-status="success"`,
		i18n.T(i18n.MsgPartsCategories),
		`<div class="card__value">` + i18n.Number(3) + `</div>`,
		i18n.T(i18n.MsgAPIAvailable),
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "card--failed") || strings.Contains(body, `class="banner`) {
		t.Error("healthy page shows failure markup")
	}
}

func TestServePage_NetworkBannerWhenAPIDown(t *testing.T) {
	fb := exampleBackend()
	fb.Available = false
	h := NewHandler(newLoader(fb), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServePage(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `class="banner banner--network"`) {
		t.Error("network banner not rendered")
	}
	if !strings.Contains(body, i18n.T(i18n.MsgNetworkError)) {
		t.Error("banner text missing")
	}
	if !strings.Contains(body, "api-status--down") || !strings.Contains(body, i18n.T(i18n.MsgAPIUnavailable)) {
		t.Error("API status badge should read unavailable")
	}
}

func TestServePage_BannerDismissed(t *testing.T) {
	fb := exampleBackend()
	fb.Available = false
	h := NewHandler(newLoader(fb), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServePage(rec, httptest.NewRequest(http.MethodGet, "/categories?banner=off", nil))

	if strings.Contains(rec.Body.String(), i18n.T(i18n.MsgNetworkError)) {
		t.Error("dismissed banner still rendered")
	}
}

func TestServePage_PartialFailureCards(t *testing.T) {
	fb := exampleBackend().Fail(elevatorsPath, &apiclient.Error{Kind: apiclient.KindServer, StatusCode: 503})
	h := NewHandler(newLoader(fb), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServePage(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`data-status="partialSuccess"`,
		`<div class="card card--failed" data-key="elevatorTypes">`,
		`<div class="card" data-key="partsCategories">`,
		`class="toast toast--warning"`,
		`action="/categories/retry"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestBuildPageData(t *testing.T) {
	down := false
	s := State{
		Status:       fetchstate.StatusPartialSuccess,
		Data:         models.CategoryStats{PartsCategories: 3, ActiveItems: 2, TotalManagement: 3},
		APIAvailable: &down,
		Banner:       &fetchstate.Banner{Kind: apiclient.KindNetwork, Message: "x"},
		Failed:       []string{"elevator_types"},
	}

	data := buildPageData(s)

	if !data.Partial || data.AllFailed {
		t.Errorf("Partial/AllFailed = %v/%v", data.Partial, data.AllFailed)
	}
	if len(data.Cards) != 4 {
		t.Fatalf("cards = %d, want 4", len(data.Cards))
	}
	if data.Cards[0].Value != i18n.Number(3) || data.Cards[0].Failed {
		t.Errorf("parts card = %+v", data.Cards[0])
	}
	if !data.Cards[1].Failed {
		t.Error("elevator card should be marked failed")
	}
	if !data.APIKnown || data.APIUp || data.APILabel != i18n.T(i18n.MsgAPIUnavailable) {
		t.Errorf("api = %v/%v/%q", data.APIKnown, data.APIUp, data.APILabel)
	}
	if data.Banner == nil {
		t.Error("banner dropped")
	}
}

// internal/app/features/apidocs/handler.go
package apidocs

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/liftadmin/internal/app/system/apiclient"
	"github.com/dalemusser/liftadmin/internal/app/system/fetchstate"
	"github.com/dalemusser/liftadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Tabs, in display order. Unknown ?tab= values fall back to TabOverview.
const (
	TabOverview  = "overview"
	TabEndpoints = "endpoints"
	TabErrors    = "errors"
	TabSamples   = "samples"
)

// tabLabels pairs each tab with its catalog key, in display order.
var tabLabels = []struct{ Key, Label string }{
	{TabOverview, i18n.MsgTabOverview},
	{TabEndpoints, i18n.MsgTabEndpoints},
	{TabErrors, i18n.MsgTabErrors},
	{TabSamples, i18n.MsgTabSamples},
}

type Handler struct {
	Doc     *Document
	Raw     []byte
	BaseURL string
	Log     *zap.Logger
}

// NewHandler parses the embedded document. Samples call baseURL; when it is
// empty the document's first server is used.
func NewHandler(baseURL string, logger *zap.Logger) (*Handler, error) {
	doc, raw, err := Embedded()
	if err != nil {
		return nil, err
	}
	if baseURL == "" && len(doc.Servers) > 0 {
		baseURL = doc.Servers[0].URL
	}
	return &Handler{Doc: doc, Raw: raw, BaseURL: baseURL, Log: logger}, nil
}

type tabLink struct {
	Key    string
	Label  string
	Href   string
	Active bool
}

type endpointView struct {
	Endpoint
	DescriptionHTML template.HTML
	Samples         []Sample
}

type errorKindRow struct {
	Kind     string
	Statuses string
	Message  string
}

type pageData struct {
	viewdata.BaseVM

	Tab             string
	Tabs            []tabLink
	Info            Info
	InfoHTML        template.HTML
	Servers         []Server
	BaseURL         string
	Endpoints       []endpointView
	ErrorKinds      []errorKindRow
	ValidationJSON  string
	SpecDownloadURL string
}

// SelectTab normalises the ?tab= value.
func SelectTab(raw string) string {
	for _, t := range tabLabels {
		if t.Key == raw {
			return raw
		}
	}
	return TabOverview
}

// ServeDocs handles GET /api-docs.
func (h *Handler) ServeDocs(w http.ResponseWriter, r *http.Request) {
	data := h.buildPageData(SelectTab(r.URL.Query().Get("tab")))
	data.BaseVM = viewdata.NewBaseVM(w, r, i18n.T(i18n.MsgNavAPIDocs), "/dashboard")

	templates.Render(w, r, "apidocs_page", data)
}

// ServeOpenAPI handles GET /api-docs/openapi.yaml.
func (h *Handler) ServeOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	if _, err := w.Write(h.Raw); err != nil {
		h.Log.Warn("api docs: write openapi document failed", zap.Error(err))
	}
}

func (h *Handler) buildPageData(tab string) pageData {
	data := pageData{
		Tab:             tab,
		Info:            h.Doc.Info,
		InfoHTML:        htmlsanitize.PrepareForDisplay(h.Doc.Info.Description),
		Servers:         h.Doc.Servers,
		BaseURL:         h.BaseURL,
		SpecDownloadURL: "/api-docs/openapi.yaml",
	}
	for _, t := range tabLabels {
		data.Tabs = append(data.Tabs, tabLink{
			Key:    t.Key,
			Label:  i18n.T(t.Label),
			Href:   "/api-docs?tab=" + t.Key,
			Active: t.Key == tab,
		})
	}

	switch tab {
	case TabEndpoints, TabSamples:
		for _, ep := range h.Doc.Endpoints() {
			v := endpointView{
				Endpoint:        ep,
				DescriptionHTML: htmlsanitize.PrepareForDisplay(ep.Description),
			}
			if tab == TabSamples {
				v.Samples = CodeSamples(h.BaseURL, ep)
			}
			data.Endpoints = append(data.Endpoints, v)
		}
	case TabErrors:
		data.ErrorKinds = ErrorKinds()
		data.ValidationJSON = h.Doc.ValidationExample()
	}
	return data
}

// ErrorKinds describes the client-side error taxonomy for the errors tab.
func ErrorKinds() []errorKindRow {
	rows := []struct {
		kind     apiclient.Kind
		statuses string
	}{
		{apiclient.KindNetwork, "—"},
		{apiclient.KindAuth, "401, 403"},
		{apiclient.KindValidation, "400, 422"},
		{apiclient.KindServer, "5xx"},
		{apiclient.KindOther, "*"},
	}
	out := make([]errorKindRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, errorKindRow{
			Kind:     string(r.kind),
			Statuses: r.statuses,
			Message:  fetchstate.BannerMessage(r.kind),
		})
	}
	return out
}

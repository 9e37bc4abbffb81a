// internal/app/features/apidocs/doc.go
package apidocs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// The embedded document is illustrative only; the real backend schema is
// not defined anywhere this app can see.
//
//go:embed openapi.yaml
var specYAML []byte

// Document is the subset of OpenAPI 3 the viewer renders.
type Document struct {
	OpenAPI string              `yaml:"openapi"`
	Info    Info                `yaml:"info"`
	Servers []Server            `yaml:"servers"`
	Tags    []Tag               `yaml:"tags"`
	Paths   map[string]PathItem `yaml:"paths"`

	// ValidationError is the sample error body shown on the errors tab.
	ValidationError any `yaml:"x-validation-error-example"`
}

type Info struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

type Server struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

type Tag struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// PathItem maps lower-case HTTP methods to operations.
type PathItem map[string]Operation

type Operation struct {
	Tags        []string            `yaml:"tags"`
	Summary     string              `yaml:"summary"`
	Description string              `yaml:"description"`
	RequestBody *RequestBody        `yaml:"requestBody"`
	Responses   map[string]Response `yaml:"responses"`
}

type RequestBody struct {
	Description string `yaml:"description"`
	Example     any    `yaml:"example"`
}

type Response struct {
	Description string `yaml:"description"`
	Example     any    `yaml:"example"`
}

// Endpoint is one flattened path + method, ready for the view.
type Endpoint struct {
	Method      string
	Path        string
	Tag         string
	Summary     string
	Description string
	RequestJSON string
	Responses   []ResponseView
}

type ResponseView struct {
	Code        string
	Description string
	ExampleJSON string
}

var methodOrder = map[string]int{"get": 0, "post": 1, "put": 2, "patch": 3, "delete": 4}

// Parse decodes an OpenAPI YAML document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi: %w", err)
	}
	if doc.Info.Title == "" {
		return nil, fmt.Errorf("parse openapi: info.title is missing")
	}
	return &doc, nil
}

// Embedded returns the bundled document and its raw bytes.
func Embedded() (*Document, []byte, error) {
	doc, err := Parse(specYAML)
	return doc, specYAML, err
}

// Endpoints flattens Paths, sorted by path then method.
func (d *Document) Endpoints() []Endpoint {
	var out []Endpoint
	for path, item := range d.Paths {
		for method, op := range item {
			ep := Endpoint{
				Method:      strings.ToUpper(method),
				Path:        path,
				Summary:     op.Summary,
				Description: op.Description,
			}
			if len(op.Tags) > 0 {
				ep.Tag = op.Tags[0]
			}
			if op.RequestBody != nil && op.RequestBody.Example != nil {
				ep.RequestJSON = prettyJSON(op.RequestBody.Example)
			}
			codes := make([]string, 0, len(op.Responses))
			for code := range op.Responses {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				r := op.Responses[code]
				ep.Responses = append(ep.Responses, ResponseView{
					Code:        code,
					Description: r.Description,
					ExampleJSON: prettyJSON(r.Example),
				})
			}
			out = append(out, ep)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return methodOrder[strings.ToLower(out[i].Method)] < methodOrder[strings.ToLower(out[j].Method)]
	})
	return out
}

// ValidationExample returns the document's sample validation error body as
// indented JSON, or "" when the document has none.
func (d *Document) ValidationExample() string {
	return prettyJSON(d.ValidationError)
}

func prettyJSON(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

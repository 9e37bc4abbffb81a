// internal/app/features/apidocs/samples.go
package apidocs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Sample is one generated code snippet.
type Sample struct {
	Lang  string
	Label string
	Code  string
}

// CodeSamples builds curl, Go and JavaScript snippets calling ep on baseURL.
// Authenticated endpoints carry a placeholder bearer token.
func CodeSamples(baseURL string, ep Endpoint) []Sample {
	url := strings.TrimRight(baseURL, "/") + ep.Path
	auth := ep.Path != "/health"
	return []Sample{
		{Lang: "bash", Label: "cURL", Code: curlSample(url, ep, auth)},
		{Lang: "go", Label: "Go", Code: goSample(url, ep, auth)},
		{Lang: "javascript", Label: "JavaScript", Code: jsSample(url, ep, auth)},
	}
}

func curlSample(url string, ep Endpoint, auth bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "curl -X %s '%s' \\\n  -H 'Accept: application/json'", ep.Method, url)
	if auth {
		b.WriteString(" \\\n  -H 'Authorization: Bearer $TOKEN'")
	}
	if ep.RequestJSON != "" {
		b.WriteString(" \\\n  -H 'Content-Type: application/json'")
		fmt.Fprintf(&b, " \\\n  -d '%s'", compact(ep.RequestJSON))
	}
	return b.String()
}

func goSample(url string, ep Endpoint, auth bool) string {
	var b strings.Builder
	if ep.RequestJSON != "" {
		fmt.Fprintf(&b, "body := strings.NewReader(`%s`)\n", ep.RequestJSON)
		fmt.Fprintf(&b, "req, err := http.NewRequestWithContext(ctx, http.Method%s, %q, body)\n", methodConst(ep.Method), url)
	} else {
		fmt.Fprintf(&b, "req, err := http.NewRequestWithContext(ctx, http.Method%s, %q, nil)\n", methodConst(ep.Method), url)
	}
	b.WriteString("if err != nil {\n\treturn err\n}\n")
	b.WriteString("req.Header.Set(\"Accept\", \"application/json\")\n")
	if ep.RequestJSON != "" {
		b.WriteString("req.Header.Set(\"Content-Type\", \"application/json\")\n")
	}
	if auth {
		b.WriteString("req.Header.Set(\"Authorization\", \"Bearer \"+token)\n")
	}
	b.WriteString("resp, err := http.DefaultClient.Do(req)\n")
	b.WriteString("if err != nil {\n\treturn err\n}\n")
	b.WriteString("defer resp.Body.Close()")
	return b.String()
}

func jsSample(url string, ep Endpoint, auth bool) string {
	var headers []string
	headers = append(headers, `"Accept": "application/json"`)
	if ep.RequestJSON != "" {
		headers = append(headers, `"Content-Type": "application/json"`)
	}
	if auth {
		headers = append(headers, "\"Authorization\": `Bearer ${token}`")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "const res = await fetch(%q, {\n", url)
	fmt.Fprintf(&b, "  method: %q,\n", ep.Method)
	fmt.Fprintf(&b, "  headers: { %s },\n", strings.Join(headers, ", "))
	if ep.RequestJSON != "" {
		fmt.Fprintf(&b, "  body: JSON.stringify(%s),\n", compact(ep.RequestJSON))
	}
	b.WriteString("});\nconst data = await res.json();")
	return b.String()
}

// methodConst maps "POST" to "Post" for the net/http constant name.
func methodConst(m string) string {
	if m == "" {
		return "Get"
	}
	m = strings.ToLower(m)
	return strings.ToUpper(m[:1]) + m[1:]
}

// compact collapses indented JSON onto one line.
func compact(s string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

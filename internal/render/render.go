// Package render turns a roster into cards appended to a container node.
//
// Rendering is a single synchronous pass: one card per record, appended in
// record order. There are no retries and no partial-failure paths; the only
// guarded condition is an absent container, which skips the pass entirely.
package render

import (
	"golang.org/x/net/html"

	"cardwall/internal/card"
	"cardwall/internal/locale"
	"cardwall/internal/model"
)

// TokenGenerator produces run tokens for render reports.
// Swap in a deterministic generator for golden tests.
type TokenGenerator func() string

// Renderer renders records into a container under a fixed display locale.
type Renderer struct {
	formatter *locale.Formatter
	tokens    TokenGenerator
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFormatter sets the display-locale formatter. Default is English.
func WithFormatter(f *locale.Formatter) Option {
	return func(r *Renderer) { r.formatter = f }
}

// WithTokenGenerator sets the run-token generator. Default is NewRunToken.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(r *Renderer) { r.tokens = g }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		formatter: locale.Default(),
		tokens:    NewRunToken,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report describes one render pass.
type Report struct {
	// RunToken identifies this pass. Assigned even when the pass is
	// skipped, so diagnostics can still refer to it.
	RunToken string `json:"run_token"`

	// Cards is the number of fragments appended.
	Cards int `json:"cards"`

	// Skipped is true when the container was absent and nothing rendered.
	Skipped bool `json:"skipped,omitempty"`
}

// Render appends one card per record to container, preserving record order
// as display order.
//
// A nil container makes the whole pass a no-op: no fragments are produced
// and no error is raised. Render never validates records; see model.Validate.
func (r *Renderer) Render(records []model.Record, container *html.Node) *Report {
	report := &Report{RunToken: r.tokens()}

	if container == nil {
		report.Skipped = true
		return report
	}

	for _, rec := range records {
		container.AppendChild(card.Build(rec, r.formatter))
		report.Cards++
	}

	return report
}

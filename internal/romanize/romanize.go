// Package romanize is the public face of the engine: one call per
// rendering of a text, plus a bundled before/after result and a
// concurrent batch helper.
package romanize

import (
	"context"
	"runtime"

	"github.com/jusunglee/jamoro/internal/hangul"
	"github.com/jusunglee/jamoro/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Roman returns the romanization of text without rule application.
func Roman(text string) string {
	return hangul.New(text).Roman()
}

// Jamo returns the bracketed standalone-jamo rendering of text.
func Jamo(text string) string {
	return hangul.New(text).Jamo()
}

// HangulString returns the identity rendering of text, with decoded
// jamo recombined into precomposed syllables.
func HangulString(text string) string {
	return hangul.New(text).HangulString()
}

// ApplyRules parses text and returns a rule-applied copy of the
// sentence for further rendering.
func ApplyRules(text string) (*hangul.Sentence, error) {
	return hangul.New(text).ApplyRules()
}

// Result bundles the three renderings of a text before and after the
// phonological rule pass.
type Result struct {
	Input string `json:"input"`

	Roman  string `json:"roman"`
	Jamo   string `json:"jamo"`
	Hangul string `json:"hangul"`

	AppliedRoman  string `json:"applied_roman"`
	AppliedJamo   string `json:"applied_jamo"`
	AppliedHangul string `json:"applied_hangul"`
}

// Romanize renders text in all three formats before and after rule
// application.
func Romanize(text string) (Result, error) {
	s := hangul.New(text)
	out, err := s.ApplyRules()
	if err != nil {
		metrics.RomanizeRequests.WithLabelValues("error").Inc()
		return Result{}, err
	}

	metrics.RomanizeRequests.WithLabelValues("success").Inc()
	return Result{
		Input:         text,
		Roman:         s.Roman(),
		Jamo:          s.Jamo(),
		Hangul:        s.HangulString(),
		AppliedRoman:  out.Roman(),
		AppliedJamo:   out.Jamo(),
		AppliedHangul: out.HangulString(),
	}, nil
}

// Batch romanizes texts concurrently. Results keep input order: each
// goroutine owns one output slot. Rule application inside a single
// sentence stays sequential.
func Batch(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Romanize(text)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

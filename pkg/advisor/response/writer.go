package response

import (
	"context"
	"log"
	"strings"
	"time"

	"paint-advisor-be/pkg/catalog"
)

// Writer is the optional language model that rewrites a deterministic draft
// into something warmer. It may only rephrase; the facts are fixed.
type Writer interface {
	Rewrite(ctx context.Context, draft string, products []catalog.ProductRef) (string, error)
}

// Enhancer runs the writer under a hard deadline and falls back to the
// draft on any failure, timeout or fabrication.
type Enhancer struct {
	writer  Writer
	timeout time.Duration
	logger  *log.Logger
}

func NewEnhancer(writer Writer, timeout time.Duration, logger *log.Logger) *Enhancer {
	return &Enhancer{writer: writer, timeout: timeout, logger: logger}
}

// Enhance returns the rewritten reply, or the draft unchanged when no
// writer is configured or the rewrite cannot be trusted. The bool reports
// whether the enhanced path was used.
func (e *Enhancer) Enhance(ctx context.Context, draft string, products []catalog.ProductRef) (string, bool) {
	if e == nil || e.writer == nil {
		return draft, false
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	rewritten, err := e.writer.Rewrite(ctx, draft, products)
	if err != nil {
		if e.logger != nil {
			e.logger.Printf("writer rewrite failed, using draft: %v", err)
		}
		return draft, false
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" || !mentionsAll(rewritten, products) {
		if e.logger != nil {
			e.logger.Printf("writer output dropped product facts, using draft")
		}
		return draft, false
	}
	return rewritten, true
}

// mentionsAll checks the rewrite still names every presented product. A
// rewrite that loses or invents products is discarded wholesale.
func mentionsAll(text string, products []catalog.ProductRef) bool {
	lower := strings.ToLower(text)
	for _, p := range products {
		if !strings.Contains(lower, strings.ToLower(p.Name)) {
			return false
		}
	}
	return true
}

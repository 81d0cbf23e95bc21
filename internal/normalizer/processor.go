// Package normalizer turns conversion-service feed responses into canonical articles.
package normalizer

import (
	"fmt"
	"time"

	"foxfeed/internal/models"
)

// Processor validates a feed response and transforms its items.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// NewProcessorWithClock creates a processor whose transformer uses now() for undated items.
func NewProcessorWithClock(now func() time.Time) *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformerWithClock(now),
	}
}

// Process decodes a feed response body into articles. No partial results are
// returned: on error the article slice is nil.
func (p *Processor) Process(body []byte) ([]models.Article, error) {
	// 1. Validate the envelope
	items, err := p.validator.Validate(body)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// 2. Transform every item
	return p.transformer.TransformAll(items), nil
}

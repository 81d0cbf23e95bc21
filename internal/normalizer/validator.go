package normalizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyBody     = errors.New("feed response body is empty")
	ErrMalformedFeed = errors.New("feed response is not a JSON object")
	ErrMissingItems  = errors.New("feed response has no items array")
	ErrUpstream      = errors.New("conversion service reported an error")
)

// envelope is the outer shape returned by the conversion service.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Items   json.RawMessage `json:"items"`
}

// Validator checks that a conversion response carries an item list.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate decodes the response envelope and returns its raw items.
// Elements that are not JSON objects are returned as empty items.
func (v *Validator) Validate(body []byte) ([]map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFeed, err)
	}

	trimmed := bytes.TrimSpace(env.Items)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		if env.Status == "error" {
			return nil, fmt.Errorf("%w: %s", ErrUpstream, env.Message)
		}

		return nil, ErrMissingItems
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(trimmed, &rawItems); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingItems, err)
	}

	items := make([]map[string]any, 0, len(rawItems))

	for _, raw := range rawItems {
		var item map[string]any
		if err := json.Unmarshal(raw, &item); err != nil || item == nil {
			item = map[string]any{}
		}

		items = append(items, item)
	}

	return items, nil
}

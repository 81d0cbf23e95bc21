package models

import "encoding/json"

// Topic is a curated feed source served by the local topic backend.
type Topic struct {
	BackgroundImg *string `json:"backgroundImg,omitempty"`
	LastPolledAt  *string `json:"lastPolledAt,omitempty"`
	ID            string  `json:"id"`
	URL           string  `json:"url"`
	Title         string  `json:"title"`
}

// TopicEnvelope is the response body of the topic listing endpoint.
type TopicEnvelope struct {
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
}

package gemini

import (
	pkghttp "estimate-srv/pkg/http"
)

const (
	// BaseURL is the Gemini generateContent endpoint root.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when config leaves the model empty.
	DefaultModel = "gemini-2.0-flash"
)

// GeminiConfig holds Gemini configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// geminiImpl implements IGemini.
type geminiImpl struct {
	apiKey     string
	model      string
	httpClient pkghttp.IClient
}

// Part is a piece of generated or prompted content.
type Part struct {
	Text string `json:"text"`
}

// Content groups parts for a single role.
type Content struct {
	Parts []Part `json:"parts"`
}

// Request is the generateContent request body.
type Request struct {
	Contents          []Content `json:"contents"`
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content Content `json:"content"`
}

// Response is the generateContent response body.
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

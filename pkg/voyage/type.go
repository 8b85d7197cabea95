package voyage

import (
	pkghttp "estimate-srv/pkg/http"
)

const (
	// BaseURL is the Voyage embeddings endpoint.
	BaseURL = "https://api.voyageai.com/v1/embeddings"
	// DefaultModel is used when config leaves the model empty.
	DefaultModel = "voyage-3-lite"
)

// VoyageConfig holds Voyage configuration.
type VoyageConfig struct {
	APIKey string
	Model  string
}

// voyageImpl implements IVoyage.
type voyageImpl struct {
	apiKey     string
	model      string
	httpClient pkghttp.IClient
}

// Request defines the request body for the Embedding API.
type Request struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// Response defines the response body from the Embedding API.
type Response struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

// Embedding represents a single embedding object.
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// Usage represents token usage.
type Usage struct {
	TotalTokens int `json:"total_tokens"`
}

package voyage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// Embed returns one embedding vector per input text, in input order.
func (v *voyageImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if v.apiKey == "" {
		return nil, fmt.Errorf("voyage: API key is required")
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("voyage: no input texts")
	}

	req := Request{
		Input: texts,
		Model: v.model,
	}
	headers := map[string]string{
		"Authorization": "Bearer " + v.apiKey,
	}

	body, statusCode, err := v.httpClient.Post(ctx, BaseURL, req, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call Voyage API: %w", err)
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("Voyage API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Voyage response: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("Voyage returned %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	// Response entries are keyed by index, not input order.
	sort.Slice(resp.Data, func(i, j int) bool { return resp.Data[i].Index < resp.Data[j].Index })

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

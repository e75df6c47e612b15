// Package embedding provides dense sentence embeddings for the semantic
// scorer. The production encoder calls an OpenAI-compatible embeddings
// endpoint; scoring depends only on the Encoder interface so tests can
// substitute a deterministic fake.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Encoder turns text into a fixed-dimension dense vector.
// Implementations must be safe for concurrent use.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

const (
	defaultEndpoint = "https://api.openai.com/v1/embeddings"
	defaultModel    = "text-embedding-3-small"
)

// OpenAIEncoder encodes text with the OpenAI embeddings API. Construct one
// per process at startup and share it; it holds only an HTTP client and is
// read-only after construction.
type OpenAIEncoder struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
}

// NewOpenAIEncoder returns an encoder using the default endpoint and model.
func NewOpenAIEncoder(apiKey string) *OpenAIEncoder {
	return &OpenAIEncoder{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		model:    defaultModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewOpenAIEncoderAt points the encoder at a custom endpoint. Used by tests
// and OpenAI-compatible local servers.
func NewOpenAIEncoderAt(endpoint, apiKey, model string) *OpenAIEncoder {
	enc := NewOpenAIEncoder(apiKey)
	if endpoint != "" {
		enc.endpoint = endpoint
	}
	if model != "" {
		enc.model = model
	}
	return enc
}

func (e *OpenAIEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	requestBody := map[string]interface{}{
		"input": text,
		"model": e.model,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", e.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embedding API error: %d - %s", resp.StatusCode, string(body))
	}

	var result struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return result.Data[0].Embedding, nil
}

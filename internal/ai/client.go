package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var (
	ErrNoApiKey     = errors.New("scouting api key not configured")
	ErrEmptyChoices = errors.New("scouting response contained no choices")
)

// Client talks to a Perplexity-compatible chat/completions endpoint.
// Failures are returned to the caller; the registry decides whether to
// degrade to fallback text.
type Client struct {
	httpClient *http.Client
	cfg        config
}

type config struct {
	ApiKey  string
	BaseUrl string
	Model   string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        loadConfig(),
	}
}

// NewClientWithBase is used by tests to point the client at a stub server.
func NewClientWithBase(baseUrl, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg: config{
			ApiKey:  apiKey,
			BaseUrl: baseUrl,
			Model:   model,
		},
	}
}

func loadConfig() config {
	cfg := config{
		BaseUrl: "https://api.perplexity.ai",
		Model:   "sonar",
	}
	if v, ok := os.LookupEnv("PERPLEXITY_API_KEY"); ok {
		cfg.ApiKey = v
	}
	if v, ok := os.LookupEnv("PERPLEXITY_API_BASE"); ok {
		cfg.BaseUrl = v
	}
	if v, ok := os.LookupEnv("PERPLEXITY_MODEL"); ok {
		cfg.Model = v
	}
	return cfg
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete sends one user prompt and returns the raw completion text.
func (client *Client) complete(ctx context.Context, prompt string) (string, error) {
	if client.cfg.ApiKey == "" {
		return "", ErrNoApiKey
	}
	reqBody, err := json.Marshal(chatRequest{
		Model: client.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		client.cfg.BaseUrl+"/chat/completions",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+client.cfg.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("scouting request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scouting api status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", ErrEmptyChoices
	}
	return chatResp.Choices[0].Message.Content, nil
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider invokes any OpenAI-compatible chat-completions endpoint
// (OpenAI itself, OpenRouter, local gateways). It decodes the response
// envelope defensively: usage counters go through UsageFromMap because
// compatible backends do not agree on field names.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *http.Client
}

func NewOpenAIProvider(apiKey, baseURL, model string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 120 * time.Second,
		IdleConnTimeout:       90 * time.Second,
	}

	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		httpc:   &http.Client{Transport: tr},
	}
}

// WithHTTPClient overrides the internal HTTP client (e.g. for tests).
func (p *OpenAIProvider) WithHTTPClient(c *http.Client) *OpenAIProvider {
	if c != nil {
		p.httpc = c
	}
	return p
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	payload := map[string]any{
		"model": p.model,
		"messages": []map[string]string{
			{"role": "system", "content": req.System},
			{"role": "user", "content": req.User},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &CallError{Message: err.Error(), Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, &CallError{Message: err.Error(), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	res, err := p.httpc.Do(httpReq)
	if err != nil {
		return nil, &CallError{Code: networkCode(err), Message: err.Error(), Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &CallError{Code: networkCode(err), Message: err.Error(), Err: err}
	}

	if res.StatusCode != http.StatusOK {
		return nil, &CallError{
			Status:  res.StatusCode,
			Message: truncateBytes(raw, 300),
		}
	}

	var env struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage map[string]any `json:"usage"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &CallError{Message: fmt.Sprintf("undecodable response body: %v", err), Err: err}
	}
	if len(env.Choices) == 0 {
		return nil, &CallError{Message: "response contained no choices"}
	}

	return &Response{
		Content: env.Choices[0].Message.Content,
		Usage:   UsageFromMap(env.Usage),
	}, nil
}

func (p *OpenAIProvider) ModelID() string { return p.model }

func truncateBytes(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}

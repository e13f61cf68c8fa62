package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Message is a single entry in the chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response is the decoded chat-completion body. Only the fields this tool
// reads are modelled; everything else is ignored.
type Response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Reply returns the text of the first choice. ok is false when the response
// carries no choices and should be treated as "no valid response".
func (r *Response) Reply() (text string, ok bool) {
	if r == nil || len(r.Choices) == 0 {
		return "", false
	}
	return r.Choices[0].Message.Content, true
}

// StatusError reports a non-2xx HTTP response from the endpoint. The caller
// is expected to surface the status and body to the user and stop the
// pipeline without treating it as a crash.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm endpoint returned HTTP %d: %s", e.Code, e.Body)
}

// Client issues chat-completion requests against an OpenAI-compatible
// endpoint.
type Client struct {
	apiURL string
	apiKey string
	http   *http.Client
}

// New creates a Client for the given endpoint URL and bearer token. No
// request timeout is configured; pass a context to Chat for cancellation.
func New(apiURL, apiKey string) *Client {
	return &Client{apiURL: apiURL, apiKey: apiKey, http: &http.Client{}}
}

// Chat sends a two-message conversation (system, then user) and returns the
// decoded response. A non-2xx status yields a *StatusError; transport
// failures are returned as-is.
func (c *Client) Chat(ctx context.Context, model, systemPrompt, userPrompt string) (*Response, error) {
	reqBody := map[string]any{
		"model": model,
		"messages": []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		data, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Body: string(data)}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

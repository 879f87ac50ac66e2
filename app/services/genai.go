package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	genAIBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	genAIModel   = "gemini-2.5-flash"
)

// GenAIClient calls the Generative Language API. The call is read-only with
// respect to the domain store and fire-and-forget: a failure surfaces as an
// error the chat handler turns into a fallback reply.
type GenAIClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewGenAIClient(apiKey string) *GenAIClient {
	return &GenAIClient{
		apiKey:  apiKey,
		baseURL: genAIBaseURL,
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type genAIPart struct {
	Text string `json:"text"`
}

type genAIContent struct {
	Role  string      `json:"role,omitempty"`
	Parts []genAIPart `json:"parts"`
}

type genAIRequest struct {
	Contents []genAIContent `json:"contents"`
}

type genAIResponse struct {
	Candidates []struct {
		Content genAIContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateContent sends the prompt to the model and returns the first
// candidate's text.
func (c *GenAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("missing gemini api key")
	}

	body, err := json.Marshal(genAIRequest{
		Contents: []genAIContent{
			{Role: "user", Parts: []genAIPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, genAIModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed genAIResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode gemini response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("gemini api error %d: %s", parsed.Error.Code, parsed.Error.Message)
		}
		return "", fmt.Errorf("gemini api returned status %d", resp.StatusCode)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini response contained no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

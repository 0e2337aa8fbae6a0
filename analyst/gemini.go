package analyst

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"alpha-terminal/config"
	"alpha-terminal/models"
)

var (
	ErrMissingAPIKey = errors.New("gemini api key is missing")
	ErrEmptyResponse = errors.New("gemini returned no text")
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema"`
}

type generateContentRequest struct {
	SystemInstruction content          `json:"systemInstruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r generateContentResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// GeminiClient classifies intel text with the Gemini generateContent API.
type GeminiClient struct {
	client *resty.Client
	model  string
}

func NewGeminiClient(cfg config.GeminiConfig) *GeminiClient {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	client.SetHeader("Content-Type", "application/json")

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiClient{client: client, model: model}
}

func (g *GeminiClient) Analyze(ctx context.Context, text, apiKey string) (*models.AnalysisResult, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body := generateContentRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: userPrompt(text)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   signalSchema(),
		},
	}

	var out generateContentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", apiKey).
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gemini api error: status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	raw := strings.TrimSpace(out.text())
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	var result *models.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("decode gemini analysis: %w", err)
	}
	// A literal null decodes without error and carries nothing usable.
	if result == nil {
		return nil, ErrEmptyResponse
	}
	return result, nil
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"compogen/internal/entity"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

var errGeminiNotConfigured = errors.New("gemini generator not configured")

// GeminiGenerator calls the Gemini generateContent endpoint. One request
// per operation; errors are returned to the caller, which falls back to
// the mock.
type GeminiGenerator struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Clock      Clock
}

func NewGeminiGenerator(apiKey string, model string) *GeminiGenerator {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	return &GeminiGenerator{
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Clock:      RealClock{},
	}
}

func (g *GeminiGenerator) GenerateComponent(ctx context.Context, prompt string, promptContext string) (*GenerateResult, error) {
	fullPrompt := prompt
	if strings.TrimSpace(promptContext) != "" {
		fullPrompt = promptContext + "\n\n" + prompt
	}

	text, err := g.generateContent(ctx, fullPrompt)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		JSX: text,
		CSS: "",
		Metadata: GenerationMetadata{
			ComponentType:   "functional",
			Dependencies:    []string{"react"},
			EstimatedTokens: len(strings.Fields(text)),
			Prompt:          prompt,
		},
	}, nil
}

func (g *GeminiGenerator) Chat(ctx context.Context, message string, history []entity.ChatMessage) (*ChatReply, error) {
	var transcript strings.Builder
	for _, msg := range history {
		speaker := "AI"
		if msg.Role == entity.ChatRoleUser {
			speaker = "User"
		}
		fmt.Fprintf(&transcript, "%s: %s\n", speaker, msg.Content)
	}
	fmt.Fprintf(&transcript, "User: %s\nAI:", message)

	text, err := g.generateContent(ctx, transcript.String())
	if err != nil {
		return nil, err
	}

	return &ChatReply{
		Role:      entity.ChatRoleAssistant,
		Content:   text,
		Timestamp: g.now(),
	}, nil
}

// RefineCode is not served by the hosted model; the caller degrades to the
// mock's keyword refinements.
func (g *GeminiGenerator) RefineCode(_ context.Context, _ entity.GeneratedCode, _ string) (*RefineResult, error) {
	return nil, errors.New("refine not implemented for gemini")
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiGenerator) generateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || strings.TrimSpace(g.APIKey) == "" {
		return "", errGeminiNotConfigured
	}

	base := g.BaseURL
	if base == "" {
		base = defaultGeminiBaseURL
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", strings.TrimRight(base, "/"), g.Model, g.APIKey)

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")

	client := g.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		return "", fmt.Errorf("gemini request failed with status %d", response.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiGenerator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}

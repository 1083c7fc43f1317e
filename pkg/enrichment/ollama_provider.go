package enrichment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// OllamaProvider extracts product features with a local Ollama chat model.
type OllamaProvider struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

var _ Provider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if modelName == "" {
		modelName = "llama3"
	}
	return &OllamaProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

type extractionPayload struct {
	CoreFeatures []ExtractedFeature `json:"core_features"`
	TotalCount   int                `json:"total_count"`
}

var jsonBlobPattern = regexp.MustCompile(`\{[\s\S]*\}`)

func (p *OllamaProvider) ExtractFeatures(ctx context.Context, softwareName, vendor, description string) ([]ExtractedFeature, error) {
	prompt := buildExtractionPrompt(softwareName, vendor, description)

	reqBody := ollamaChatRequest{
		Model:    p.ModelName,
		Messages: []ollamaMessage{{Role: "user", Content: prompt}},
		Stream:   false,
		Options:  &ollamaOptions{Temperature: 0},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/chat", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama chat error: %s", string(bodyBytes))
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, err
	}

	return parseExtraction(chatResp.Message.Content)
}

// parseExtraction pulls the JSON blob out of the model's reply. Models wrap
// output in prose or code fences often enough that strict parsing fails.
func parseExtraction(content string) ([]ExtractedFeature, error) {
	blob := jsonBlobPattern.FindString(content)
	if blob == "" {
		return nil, fmt.Errorf("no valid JSON found in model response")
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(blob), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse extraction payload: %w", err)
	}

	features := make([]ExtractedFeature, 0, len(payload.CoreFeatures))
	for _, f := range payload.CoreFeatures {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			continue
		}
		f.Name = name
		f.Category = NormalizeCategory(strings.TrimSpace(f.Category))
		features = append(features, f)
	}
	return features, nil
}

func buildExtractionPrompt(softwareName, vendor, description string) string {
	var sb strings.Builder
	sb.WriteString("You are a software feature extraction expert. Analyze this software product and extract ALL features it offers.\n\n")
	fmt.Fprintf(&sb, "Software: %s\nVendor: %s\n", softwareName, vendor)
	if description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", description)
	}
	sb.WriteString(`
Extract features in this JSON format:
{
  "core_features": [
    {
      "feature_name": "Task Management",
      "category": "Task Management",
      "description": "Create, assign, and track tasks with due dates and priorities",
      "is_core": true,
      "requires_premium": false
    }
  ],
  "total_count": 45
}

Available Categories (use EXACTLY these names):
`)
	for _, c := range FeatureCategories {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	sb.WriteString(`
Instructions:
1. Be comprehensive - include ALL features you know about this product
2. Use the exact category names from the list above
3. Mark is_core as false for add-ons or premium-only features
4. Mark requires_premium as true for features that need paid upgrades
5. Provide clear, concise descriptions
6. Return ONLY valid JSON, no additional text

Return the JSON now:`)
	return sb.String()
}

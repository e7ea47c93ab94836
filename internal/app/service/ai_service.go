package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/etimad/showroom-backend/config"
	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/metrics"
	"github.com/etimad/showroom-backend/pkg/logger"
)

// Fallback texts returned instead of errors
const (
	DescriptionKeyMissing = "API Key missing. Please configure your API key."
	DescriptionFailed     = "Failed to generate description. Please try again."
	DescriptionEmpty      = "No description generated."

	EmailKeyMissing = "API Key missing."
	EmailFailed     = "Failed to generate email."
	EmailEmpty      = "No email generated."
)

const (
	listingImageWidth  = 800
	listingImageHeight = 600
	maxResponseBytes   = 20 << 20
)

// AIService drafts listing copy, follow-up emails and listing images.
// It never returns an error: failures become fixed fallback texts or nil.
type AIService interface {
	Enabled() bool
	GenerateText(ctx context.Context, kind model.PromptKind, args model.PromptArgs) string
	GenerateImage(ctx context.Context, prompt string) *string
}

type aiService struct {
	config config.GenAIConfig
	client *http.Client
}

// NewAIService builds the Gemini client. A nil client gets one with the configured timeout.
func NewAIService(cfg config.GenAIConfig, client *http.Client) AIService {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &aiService{
		config: cfg,
		client: client,
	}
}

// Gemini generateContent request/response
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func (s *aiService) Enabled() bool {
	return s.config.Enabled()
}

type textFallbacks struct {
	keyMissing, failed, empty string
}

func fallbacksFor(kind model.PromptKind) textFallbacks {
	if kind == model.PromptLeadEmail {
		return textFallbacks{EmailKeyMissing, EmailFailed, EmailEmpty}
	}
	return textFallbacks{DescriptionKeyMissing, DescriptionFailed, DescriptionEmpty}
}

func (s *aiService) GenerateText(ctx context.Context, kind model.PromptKind, args model.PromptArgs) string {
	fb := fallbacksFor(kind)
	if !s.Enabled() {
		metrics.GenerativeCalls.WithLabelValues(string(kind), metrics.OutcomeNoKey).Inc()
		return fb.keyMissing
	}

	resp, err := s.generate(ctx, s.config.TextModel, BuildPrompt(kind, args))
	if err != nil {
		logger.Error("Text generation failed", err, map[string]interface{}{
			"kind": kind,
		})
		metrics.GenerativeCalls.WithLabelValues(string(kind), metrics.OutcomeFailed).Inc()
		return fb.failed
	}

	var text strings.Builder
	if len(resp.Candidates) > 0 {
		for _, p := range resp.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		metrics.GenerativeCalls.WithLabelValues(string(kind), metrics.OutcomeEmpty).Inc()
		return fb.empty
	}

	metrics.GenerativeCalls.WithLabelValues(string(kind), metrics.OutcomeOK).Inc()
	return text.String()
}

// GenerateImage returns a PNG data URI fitted to the listing frame, or nil
func (s *aiService) GenerateImage(ctx context.Context, prompt string) *string {
	const kind = "car_image"
	if !s.Enabled() {
		metrics.GenerativeCalls.WithLabelValues(kind, metrics.OutcomeNoKey).Inc()
		return nil
	}

	full := fmt.Sprintf("A realistic, high-quality photo of a car: %s. Photorealistic, showroom lighting, 4k.", prompt)
	resp, err := s.generate(ctx, s.config.ImageModel, full)
	if err != nil {
		logger.Error("Image generation failed", err, nil)
		metrics.GenerativeCalls.WithLabelValues(kind, metrics.OutcomeFailed).Inc()
		return nil
	}

	if len(resp.Candidates) > 0 {
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			uri := "data:image/png;base64," + fitListingImage(p.InlineData.Data)
			metrics.GenerativeCalls.WithLabelValues(kind, metrics.OutcomeOK).Inc()
			return &uri
		}
	}

	metrics.GenerativeCalls.WithLabelValues(kind, metrics.OutcomeEmpty).Inc()
	return nil
}

// fitListingImage crops and scales to 800x600 PNG. Undecodable payloads pass through.
func fitListingImage(b64 string) string {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return b64
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		logger.Debug("Generated image not decodable, keeping provider bytes", map[string]interface{}{
			"error": err.Error(),
		})
		return b64
	}

	var fitted image.Image = imaging.Fill(img, listingImageWidth, listingImageHeight, imaging.Center, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		return b64
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func (s *aiService) generate(ctx context.Context, modelName, prompt string) (*geminiResponse, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(s.config.BaseURL, "/"), modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call generative API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out geminiResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("generative API error %d %s: %s", out.Error.Code, out.Error.Status, out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("generative API returned status " + resp.Status)
	}
	return &out, nil
}

// BuildPrompt renders the fixed template for kind
func BuildPrompt(kind model.PromptKind, args model.PromptArgs) string {
	var prompt strings.Builder

	switch kind {
	case model.PromptLeadEmail:
		prompt.WriteString("Draft a professional and polite email from a car dealership sales agent to a customer.\n")
		prompt.WriteString(fmt.Sprintf("Customer Name: %s\n", args.LeadName))
		prompt.WriteString(fmt.Sprintf("Context: They are interested in: %s.\n", args.CarDetails))
		prompt.WriteString(fmt.Sprintf("Current Status: %s.\n", args.Status))
		prompt.WriteString("Goal: Encourage them to book a test drive or finalize the deal. Keep it under 150 words.")

	default:
		prompt.WriteString("Write a compelling, professional, and exciting sales description (max 80 words) for a used car showroom listing.\n")
		prompt.WriteString(fmt.Sprintf("Car: %d %s %s.\n", args.Year, args.Make, args.Model))
		prompt.WriteString(fmt.Sprintf("Key Features/Notes: %s.\n", args.Features))
		prompt.WriteString("Focus on value, driving experience, and condition.")
	}

	return prompt.String()
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/lshigami/Shiksha/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiModel adapts the Gemini API to ContentModel.
type GeminiModel struct {
	client    *genai.Client
	modelName string
}

func NewGeminiModel(cfg *config.Config) (*GeminiModel, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Content generation will fail until it is configured.")
		return &GeminiModel{modelName: cfg.Gemini.Model}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &GeminiModel{client: client, modelName: cfg.Gemini.Model}, nil
}

func (m *GeminiModel) Close() error {
	if m.client == nil {
		return nil
	}
	return m.client.Close()
}

func (m *GeminiModel) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if m.client == nil {
		return "", &GenerationError{Kind: ErrService, Detail: "gemini client not initialized"}
	}

	// GenerativeModel carries per-call config, so build a fresh one for every request.
	model := m.client.GenerativeModel(m.modelName)
	if schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = schema
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Interface("geminiResponse", resp).Msg("Gemini response was empty or malformed")
		return "", malformed("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

func classifyGeminiError(err error) error {
	var (
		blocked *genai.BlockedError
		apiErr  *apierror.APIError
		httpErr *googleapi.Error
	)
	switch {
	case errors.As(err, &blocked):
		return &GenerationError{Kind: ErrService, Detail: "content blocked", Err: err}
	case errors.As(err, &apiErr):
		return &GenerationError{Kind: ErrService, Detail: fmt.Sprintf("api status %d", apiErr.HTTPCode()), Err: err}
	case errors.As(err, &httpErr):
		return &GenerationError{Kind: ErrService, Detail: fmt.Sprintf("http status %d", httpErr.Code), Err: err}
	default:
		return &GenerationError{Kind: ErrTransport, Err: err}
	}
}

package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"recipehub/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

var ErrAINotConfigured = errors.New("GEMINI_API_KEY is not set")

const chefInstruction = "You are an expert chef inside a recipe website. The user sends a list of ingredients " +
	"and you answer with one detailed, tasty recipe that uses them: an ingredient list followed by preparation steps. " +
	"Write in English and use no markup except commas and periods. " +
	"If the input contains no ingredients, whatever it asks, reply that you need ingredients to prepare a recipe. " +
	"Example of a valid input: \"chicken, rice, carrot, onion\". Example of an invalid input: \"how do I bake a cake?\". " +
	"The user's input: "

// GeminiClient calls the Gemini generateContent REST endpoint.
type GeminiClient struct {
	apiKey string
	model  string
	http   *resty.Client
}

func NewGeminiClient(cfg *config.Config) *GeminiClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.GeminiAPIURL, "/")).
		SetTimeout(60 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err == nil && r.StatusCode() >= 500
		})

	return &GeminiClient{apiKey: cfg.GeminiAPIKey, model: cfg.GeminiModel, http: client}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateRecipe asks the model for a recipe built from ingredients.
func (g *GeminiClient) GenerateRecipe(ctx context.Context, ingredients string) (string, error) {
	if g.apiKey == "" {
		return "", ErrAINotConfigured
	}

	requestID := uuid.NewString()
	log.Printf("[AI] request %s: %d chars", requestID, len(ingredients))

	var out geminiResponse
	var apiErr geminiError
	resp, err := g.http.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", g.apiKey).
		SetHeader("X-Request-Id", requestID).
		SetBody(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: chefInstruction + ingredients}}}}}).
		SetResult(&out).
		SetError(&apiErr).
		SetPathParam("model", g.model).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}

	var b strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			b.WriteString(p.Text)
		}
	}
	recipe := strings.TrimSpace(b.String())
	if recipe == "" {
		return "", errors.New("gemini returned no text")
	}

	log.Printf("[AI] request %s: %d chars back", requestID, len(recipe))
	return recipe, nil
}

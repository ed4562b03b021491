// Package gemini wraps the Gemini API for single-shot text generation.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Error is returned for every generation failure: network errors, API
// errors and empty payloads alike. The caller treats any of them as
// terminal for the current conversation.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("gemini: %s", e.Reason)
	}
	return fmt.Sprintf("gemini: %s: %v", e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// contentGenerator is the minimal genai surface required by Client.
// *genai.Models satisfies this interface. Defined here for testability.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client is a focused Gemini client for natal reading generation.
type Client struct {
	api   contentGenerator
	model string
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: api key must not be empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("gemini: model must not be empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{api: client.Models, model: model}, nil
}

// newFromAPI wires an arbitrary contentGenerator; used by tests.
func newFromAPI(api contentGenerator, model string) *Client {
	return &Client{api: api, model: model}
}

// safetySettings disables blocking for all four harm categories. Readings
// must never be withheld on safety grounds; this is a fixed product
// contract, not a tunable.
func safetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
	}
}

// Generate sends one prompt and returns the generated text. No retries;
// every failure comes back as a *Error carrying the cause.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", &Error{Reason: "prompt must not be empty"}
	}

	res, err := c.api.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SafetySettings: safetySettings(),
	})
	if err != nil {
		return "", &Error{Reason: "generate content", Err: err}
	}

	text := res.Text()
	if text == "" {
		return "", &Error{Reason: "empty response text"}
	}
	return text, nil
}

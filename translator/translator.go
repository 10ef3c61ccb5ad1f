// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"google.golang.org/genai"
)

// MaxLanguageLen bounds the target_language value
const MaxLanguageLen = 64

var (
	ErrNotConfigured   = errors.New("translation is not configured")
	ErrInvalidLanguage = errors.New("invalid target language")
	ErrEmptyResult     = errors.New("translation returned no text")
)

// Translator turns text into another natural language before encoding
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// contentGenerator is the subset of *genai.Models used here
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini translates with a Gemini model
type Gemini struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// NewGemini creates a Gemini-backed translator
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newGemini(client.Models, model, timeout), nil
}

func newGemini(models contentGenerator, model string, timeout time.Duration) *Gemini {
	return &Gemini{models: models, model: model, timeout: timeout}
}

const systemPrompt = "You are a translation engine. Translate the user's text into the requested language. " +
	"Reply with the translation only: no quotes, notes or explanations."

// Translate returns text translated into targetLanguage
func (g *Gemini) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	lang, err := NormalizeLanguage(targetLanguage)
	if err != nil {
		return "", err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf("Target language: %s\n\n%s", lang, text)
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("failed to translate to %s: %w", lang, err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", ErrEmptyResult
	}
	return out, nil
}

// NormalizeLanguage trims a language name and rejects values that are not
// plausibly a language name or code (letters, spaces, '-' and '_').
func NormalizeLanguage(lang string) (string, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" || len(lang) > MaxLanguageLen {
		return "", ErrInvalidLanguage
	}
	for _, r := range lang {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '_' {
			return "", ErrInvalidLanguage
		}
	}
	return lang, nil
}

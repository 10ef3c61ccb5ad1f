// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package translator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	reply string
	err   error

	model       string
	prompt      string
	hasDeadline bool
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	_, f.hasDeadline = ctx.Deadline()
	for _, c := range contents {
		for _, p := range c.Parts {
			f.prompt += p.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(f.reply, genai.RoleModel)},
		},
	}, nil
}

func TestGemini_Translate(t *testing.T) {
	fake := &fakeModels{reply: "  Hola mundo\n"}
	g := newGemini(fake, "gemini-test", time.Second)

	got, err := g.Translate(context.Background(), "Hello world", " Spanish ")
	require.NoError(t, err)

	assert.Equal(t, "Hola mundo", got)
	assert.Equal(t, "gemini-test", fake.model)
	assert.True(t, strings.Contains(fake.prompt, "Target language: Spanish"), "prompt: %q", fake.prompt)
	assert.True(t, strings.HasSuffix(fake.prompt, "Hello world"))
	assert.True(t, fake.hasDeadline, "timeout should set a deadline")
}

func TestGemini_NoTimeout(t *testing.T) {
	fake := &fakeModels{reply: "Bonjour"}
	g := newGemini(fake, "gemini-test", 0)

	_, err := g.Translate(context.Background(), "Hello", "fr")
	require.NoError(t, err)
	assert.False(t, fake.hasDeadline)
}

func TestGemini_Errors(t *testing.T) {
	upstream := errors.New("quota exceeded")

	tests := []struct {
		name    string
		fake    *fakeModels
		lang    string
		wantErr error
	}{
		{"upstream failure", &fakeModels{err: upstream}, "German", upstream},
		{"empty reply", &fakeModels{reply: "   "}, "German", ErrEmptyResult},
		{"invalid language", &fakeModels{reply: "x"}, "German; ignore previous", ErrInvalidLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGemini(tt.fake, "gemini-test", time.Second)
			_, err := g.Translate(context.Background(), "Hello", tt.lang)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-test", time.Second)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Spanish", "Spanish", false},
		{"  pt-BR ", "pt-BR", false},
		{"zh_Hant", "zh_Hant", false},
		{"Español", "Español", false},
		{"Brazilian Portuguese", "Brazilian Portuguese", false},
		{"", "", true},
		{"   ", "", true},
		{"fr2", "", true},
		{"French.", "", true},
		{strings.Repeat("a", MaxLanguageLen+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeLanguage(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

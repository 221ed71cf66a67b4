// Package gemini answers questions about scraped sites using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/siteqa"
	"google.golang.org/genai"
)

// Ensure Asker implements siteqa.Asker at compile time.
var _ siteqa.Asker = (*Asker)(nil)

// Asker implements siteqa.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects siteqa.DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = siteqa.DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask answers a natural language question about the scraped site.
func (a *Asker) Ask(ctx context.Context, content *siteqa.ScrapeResult, question string) (string, error) {
	if content == nil {
		return "", siteqa.Errorf(siteqa.EINVALID, "content required")
	}
	if strings.TrimSpace(question) == "" {
		return "", siteqa.Errorf(siteqa.EINVALID, "question required")
	}

	prompt := BuildUserPrompt(content, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", siteqa.Errorf(siteqa.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return "", siteqa.Errorf(siteqa.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about a website. Answer based only on the website content provided. If the answer is not in the content, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the site content and question.
func BuildUserPrompt(content *siteqa.ScrapeResult, question string) string {
	var sb strings.Builder
	sb.WriteString("<website>\n")
	sb.WriteString(siteqa.FormatContent(content))
	sb.WriteString("\n</website>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

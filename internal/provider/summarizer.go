package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/scottidler/obsidian-bookmark/internal/apperr"
)

const (
	chatCompletionsURL = "https://api.openai.com/v1/chat/completions"
	defaultChatModel   = "gpt-3.5-turbo"
	chatTimeout        = 120 * time.Second
)

// Summarizer refines scraped webpage signals into note metadata through a
// chat-completions API that replies with a structured JSON object.
type Summarizer struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	pages      *Webpage
}

// SummarizerOption allows configuring the client.
type SummarizerOption func(*Summarizer)

// WithSummarizerHTTPClient sets a custom HTTP client.
func WithSummarizerHTTPClient(client *http.Client) SummarizerOption {
	return func(s *Summarizer) {
		s.httpClient = client
	}
}

// WithSummarizerModel sets a custom model.
func WithSummarizerModel(model string) SummarizerOption {
	return func(s *Summarizer) {
		if model != "" {
			s.model = model
		}
	}
}

// WithSummarizerBaseURL sets a custom endpoint URL (for testing).
func WithSummarizerBaseURL(url string) SummarizerOption {
	return func(s *Summarizer) {
		if url != "" {
			s.baseURL = url
		}
	}
}

// NewSummarizer creates a summarizer client. An empty apiKey falls back to the
// CHATGPT_API_KEY environment variable.
func NewSummarizer(apiKey string, opts ...SummarizerOption) (*Summarizer, error) {
	if apiKey == "" {
		apiKey = os.Getenv("CHATGPT_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("CHATGPT_API_KEY not set")
	}

	s := &Summarizer{
		apiKey:     apiKey,
		model:      defaultChatModel,
		baseURL:    chatCompletionsURL,
		httpClient: &http.Client{Timeout: chatTimeout},
		pages:      NewWebpage(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

const summaryPrompt = `Please provide a JSON object with the following details about the URL: %[1]s.
- Title: %[2]s
- Summary: %[3]s
- Author: %[4]s
- Published: %[5]s
- Main Image URL: %[6]s
- Tags: %[7]v

The JSON object should include:
- 'title': The title of the article
- 'summary': A detailed summary of the article (at least 100 words)
- 'author': The author of the article
- 'published': The date of the publication
- 'main_image_url': The main image URL of the article
- 'tags': Relevant tags for the article

URL: %[1]s`

// Summarize fetches the page, scrapes its signals, and asks the model for a
// refined structured description. A single blocking call, no retries.
func (s *Summarizer) Summarize(ctx context.Context, pageURL string) (*Metadata, error) {
	content, err := s.pages.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	sig, err := ExtractSignals(content, pageURL)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(summaryPrompt,
		pageURL, sig.Title, sig.Summary, sig.Author, sig.Published, sig.Image, sig.Tags)

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful assistant."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrMetadataFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: summarizer: %v", apperr.ErrMetadataFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: summarizer status %d: %s", apperr.ErrMetadataFetch, resp.StatusCode, text)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("%w: decode summarizer response: %v", apperr.ErrContentParse, err)
	}
	if chatResp.Error != nil {
		return nil, fmt.Errorf("%w: summarizer: %s", apperr.ErrMetadataFetch, chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: summarizer returned no choices", apperr.ErrContentParse)
	}

	return parseSummaryReply(chatResp.Choices[0].Message.Content)
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// parseSummaryReply decodes the model's JSON object reply, tolerating a
// surrounding Markdown code fence.
func parseSummaryReply(content string) (*Metadata, error) {
	jsonStr := strings.TrimSpace(content)
	if m := codeFenceRe.FindStringSubmatch(jsonStr); len(m) > 1 {
		jsonStr = strings.TrimSpace(m[1])
	}

	var parsed struct {
		Title        string   `json:"title"`
		Summary      string   `json:"summary"`
		Author       string   `json:"author"`
		Published    string   `json:"published"`
		MainImageURL string   `json:"main_image_url"`
		Tags         []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("%w: summarizer reply: %v", apperr.ErrContentParse, err)
	}

	return &Metadata{
		Title:       parsed.Title,
		Description: parsed.Summary,
		Author:      parsed.Author,
		PublishedAt: parsed.Published,
		ImageURL:    parsed.MainImageURL,
		Tags:        parsed.Tags,
	}, nil
}

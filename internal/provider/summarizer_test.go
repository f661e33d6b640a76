package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/scottidler/obsidian-bookmark/internal/apperr"
)

func TestParseSummaryReply_Plain(t *testing.T) {
	meta, err := parseSummaryReply(`{"title":"T","summary":"S","author":"A","published":"2023-01-02","main_image_url":"https://img.test/x.png","tags":["a","b"]}`)
	if err != nil {
		t.Fatalf("parseSummaryReply: %v", err)
	}
	if meta.Title != "T" || meta.Description != "S" || meta.Author != "A" {
		t.Errorf("meta = %+v", meta)
	}
	if meta.PublishedAt != "2023-01-02" || meta.ImageURL != "https://img.test/x.png" {
		t.Errorf("meta = %+v", meta)
	}
	if !reflect.DeepEqual(meta.Tags, []string{"a", "b"}) {
		t.Errorf("tags = %v", meta.Tags)
	}
}

func TestParseSummaryReply_CodeFence(t *testing.T) {
	reply := "Here you go:\n```json\n{\"title\":\"Fenced\",\"summary\":\"S\"}\n```\n"
	meta, err := parseSummaryReply(reply)
	if err != nil {
		t.Fatalf("parseSummaryReply: %v", err)
	}
	if meta.Title != "Fenced" {
		t.Errorf("title = %q", meta.Title)
	}
}

func TestParseSummaryReply_BareFence(t *testing.T) {
	meta, err := parseSummaryReply("```\n{\"title\":\"Bare\"}\n```")
	if err != nil {
		t.Fatalf("parseSummaryReply: %v", err)
	}
	if meta.Title != "Bare" {
		t.Errorf("title = %q", meta.Title)
	}
}

func TestParseSummaryReply_Malformed(t *testing.T) {
	_, err := parseSummaryReply("the article is about cats")
	if !errors.Is(err, apperr.ErrContentParse) {
		t.Errorf("error = %v, want ErrContentParse", err)
	}
}

func TestSummarize(t *testing.T) {
	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer pageSrv.Close()

	var gotAuth string
	var gotReq chatRequest
	chatSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode chat request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{
					"role":    "assistant",
					"content": "```json\n{\"title\":\"Refined Title\",\"summary\":\"Long summary.\",\"author\":\"Jordan Writer\",\"published\":\"2023-05-01\",\"main_image_url\":\"https://img.test/cover.png\",\"tags\":[\"go\",\"web\"]}\n```",
				}},
			},
		})
	}))
	defer chatSrv.Close()

	s, err := NewSummarizer("test-key", WithSummarizerBaseURL(chatSrv.URL))
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}

	meta, err := s.Summarize(context.Background(), pageSrv.URL)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if meta.Title != "Refined Title" || meta.Description != "Long summary." {
		t.Errorf("meta = %+v", meta)
	}
	if meta.Author != "Jordan Writer" || meta.PublishedAt != "2023-05-01" {
		t.Errorf("meta = %+v", meta)
	}
	if !reflect.DeepEqual(meta.Tags, []string{"go", "web"}) {
		t.Errorf("tags = %v", meta.Tags)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotReq.Model != "gpt-3.5-turbo" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestSummarize_APIError(t *testing.T) {
	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer pageSrv.Close()

	chatSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key", "type": "auth"},
		})
	}))
	defer chatSrv.Close()

	s, err := NewSummarizer("bad-key", WithSummarizerBaseURL(chatSrv.URL))
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if _, err := s.Summarize(context.Background(), pageSrv.URL); !errors.Is(err, apperr.ErrMetadataFetch) {
		t.Errorf("error = %v, want ErrMetadataFetch", err)
	}
}

func TestSummarize_PageFetchFails(t *testing.T) {
	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer pageSrv.Close()

	s, err := NewSummarizer("test-key", WithSummarizerBaseURL("http://unused.test"))
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if _, err := s.Summarize(context.Background(), pageSrv.URL); !errors.Is(err, apperr.ErrMetadataFetch) {
		t.Errorf("error = %v, want ErrMetadataFetch", err)
	}
}

func TestNewSummarizer_NoKey(t *testing.T) {
	t.Setenv("CHATGPT_API_KEY", "")
	if _, err := NewSummarizer(""); err == nil {
		t.Error("expected error without api key")
	}
}

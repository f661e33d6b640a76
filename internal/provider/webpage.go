package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/scottidler/obsidian-bookmark/internal/apperr"
)

const fetchTimeout = 30 * time.Second

// PageSignals holds the raw values scraped from a fetched page before the
// summarizer refines them.
type PageSignals struct {
	Title     string
	Summary   string
	Author    string
	Published string
	Image     string
	Tags      []string
}

// Webpage fetches raw page markup.
type Webpage struct {
	client *http.Client
}

// NewWebpage creates a webpage fetcher with a request timeout.
func NewWebpage() *Webpage {
	return &Webpage{client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch downloads the page markup for a URL.
func (w *Webpage) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", apperr.ErrMetadataFetch, pageURL, err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", apperr.ErrMetadataFetch, pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: %s: status %d", apperr.ErrMetadataFetch, pageURL, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", apperr.ErrMetadataFetch, pageURL, err)
	}
	return string(body), nil
}

var authorSelectors = []string{
	"meta[name='author']",
	"meta[property='article:author']",
	".author",
	"[itemprop='author']",
}

var publishedSelectors = []string{
	"meta[property='article:published_time']",
	"meta[name='publication_date']",
	"time[datetime]",
	"[itemprop='datePublished']",
}

var tagSelectors = []string{
	"meta[name='keywords']",
	".tags",
	".tag",
	".keywords",
	"[itemprop='keywords']",
}

// ExtractSignals pulls title, summary, author, published date, main image, and
// tags from page markup using known selector patterns. When the selectors come
// up empty for summary, author, or image, a readability pass over the same
// markup fills the gaps.
func ExtractSignals(content, pageURL string) (*PageSignals, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse page: %v", apperr.ErrContentParse, err)
	}

	sig := &PageSignals{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Summary: doc.Find("meta[name='description']").First().AttrOr("content", ""),
		Image:   doc.Find("meta[property='og:image']").First().AttrOr("content", ""),
	}

	sig.Author = firstSelectorValue(doc, authorSelectors)
	sig.Published = firstSelectorValue(doc, publishedSelectors)

	for _, sel := range tagSelectors {
		el := doc.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		if attr, ok := el.Attr("content"); ok {
			for _, tag := range strings.Split(attr, ",") {
				sig.Tags = append(sig.Tags, strings.TrimSpace(tag))
			}
		} else {
			sig.Tags = append(sig.Tags, strings.TrimSpace(el.Text()))
		}
	}
	sig.Tags = dedupSorted(sig.Tags)

	fillFromReadability(sig, content, pageURL)
	return sig, nil
}

// firstSelectorValue returns the first non-empty value among the selectors,
// preferring a content attribute over element text.
func firstSelectorValue(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		el := doc.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		if v, ok := el.Attr("content"); ok && v != "" {
			return v
		}
		if v, ok := el.Attr("datetime"); ok && v != "" {
			return v
		}
		if v := strings.TrimSpace(el.Text()); v != "" {
			return v
		}
	}
	return ""
}

// fillFromReadability is best-effort: extraction failures leave sig unchanged.
func fillFromReadability(sig *PageSignals, content, pageURL string) {
	if sig.Summary != "" && sig.Author != "" && sig.Image != "" {
		return
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return
	}
	article, err := readability.FromReader(strings.NewReader(content), u)
	if err != nil {
		return
	}
	if sig.Summary == "" {
		sig.Summary = strings.TrimSpace(article.Excerpt)
	}
	if sig.Author == "" {
		sig.Author = strings.TrimSpace(article.Byline)
	}
	if sig.Image == "" {
		sig.Image = article.Image
	}
}

func dedupSorted(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Package images enriches prompts with real stock photo URLs from the
// Pexels search API.
package images

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.pexels.com/v1"

// requestTimeout bounds each per-keyword search call.
const requestTimeout = 5 * time.Second

// Image is one search result consumed by the prompt composer.
type Image struct {
	URL          string `json:"url"`
	Keyword      string `json:"keyword"`
	Photographer string `json:"photographer"`
}

// Client queries the Pexels API. A missing API key is not an error at
// construction time: every search simply yields zero results.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(apiKey string, log *zap.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		log:        log,
	}
}

// pexelsResponse mirrors the slice of the search payload we care about.
type pexelsResponse struct {
	Photos []struct {
		Photographer string `json:"photographer"`
		Src          struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// FetchImages issues one search per keyword, sequentially, and collects the
// results. Failures are swallowed at keyword granularity: a keyword that
// errors (missing key, network failure, non-200) contributes zero images and
// processing continues. Partial results are acceptable; no retries.
func (c *Client) FetchImages(keywords []string, perKeyword int) []Image {
	if c.apiKey == "" {
		c.log.Warn("no Pexels API key configured, skipping image search")
		return nil
	}

	var out []Image
	for _, keyword := range keywords {
		photos, err := c.search(keyword, perKeyword)
		if err != nil {
			c.log.Warn("image search failed for keyword",
				zap.String("keyword", keyword), zap.Error(err))
			continue
		}
		out = append(out, photos...)
	}
	return out
}

func (c *Client) search(keyword string, perPage int) ([]Image, error) {
	q := url.Values{}
	q.Set("query", keyword)
	q.Set("per_page", fmt.Sprintf("%d", perPage))
	q.Set("orientation", "landscape")

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("pexels returned status %d", resp.StatusCode)
	}

	var payload pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode pexels response: %w", err)
	}

	images := make([]Image, 0, len(payload.Photos))
	for _, p := range payload.Photos {
		images = append(images, Image{
			URL:          p.Src.Large,
			Keyword:      keyword,
			Photographer: p.Photographer,
		})
	}
	return images, nil
}

package video

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"courseforge/internal/domain"
)

// HTTPTranscriptFetcher implements domain.TranscriptFetcher against a
// transcript service (an instance of the youtube-transcript-api style HTTP
// frontends). The service is expected to answer
// GET {base}/transcript?video_id={id} with {"transcript": [{"text": "..."}]}.
type HTTPTranscriptFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPTranscriptFetcher creates a new instance of HTTPTranscriptFetcher
func NewHTTPTranscriptFetcher(baseURL string, timeout time.Duration) (domain.TranscriptFetcher, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("transcript base url cannot be empty")
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &HTTPTranscriptFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// FetchTranscript implements domain.TranscriptFetcher
func (f *HTTPTranscriptFetcher) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	if videoID == "" {
		return "", fmt.Errorf("video id cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/transcript?video_id=%s", f.baseURL, url.QueryEscape(videoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build transcript request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcript request failed for video %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", domain.NewNotFoundError(fmt.Sprintf("no transcript available for video: %s", videoID))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcript service returned status %d for video %s", resp.StatusCode, videoID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript response: %w", err)
	}

	var parsed struct {
		Transcript []struct {
			Text string `json:"text"`
		} `json:"transcript"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse transcript response: %w", err)
	}

	if len(parsed.Transcript) == 0 {
		return "", domain.NewNotFoundError(fmt.Sprintf("no transcript available for video: %s", videoID))
	}

	parts := make([]string, 0, len(parsed.Transcript))
	for _, seg := range parsed.Transcript {
		if seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}
	return strings.Join(parts, " "), nil
}

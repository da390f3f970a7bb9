package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mrxiaozhuox/karaty/internal/config"
)

// Fetcher retrieves page content and directory listings from the remote
// content host configured in a Config.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a default HTTP client.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewFetcherWithClient creates a Fetcher using the given HTTP client.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// stringField reads a required string field from a data_source.data table.
func stringField(data map[string]any, key string) (string, error) {
	v, ok := data[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: data.%s must be a string", ErrMalformedSource, key)
	}
	return v, nil
}

// sourceTable asserts that data_source.data is a table.
func sourceTable(data any) (map[string]any, error) {
	table, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: data must be a {service, name, branch} table", ErrMalformedSource)
	}
	return table, nil
}

// rawTarget resolves the full raw-content URL for a content sub-path
// according to the configured sourcing mode.
func rawTarget(cfg *config.Config, subPath string) (string, error) {
	switch mode := strings.ToLower(cfg.DataSource.Mode); mode {
	case config.ModeIndependentRepository:
		data, err := sourceTable(cfg.DataSource.Data)
		if err != nil {
			return "", err
		}
		service, err := stringField(data, "service")
		if err != nil {
			return "", err
		}
		name, err := stringField(data, "name")
		if err != nil {
			return "", err
		}
		branch, err := stringField(data, "branch")
		if err != nil {
			return "", err
		}
		base, err := RawBaseURL(service, name, branch)
		if err != nil {
			return "", err
		}
		return base + subPath, nil

	case config.ModeSubPath:
		folder, ok := cfg.DataSource.Data.(string)
		if !ok {
			return "", fmt.Errorf("%w: data must be a sub-folder name", ErrMalformedSource)
		}
		repo := cfg.Repository
		base, err := RawBaseURL(repo.Service, repo.Name, repo.Branch)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s/%s/%s", base, folder, subPath), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSourceMode, mode)
	}
}

// listTarget resolves the directory-listing metadata URL for a content
// sub-path. The GitHub contents API is used for both modes.
func listTarget(cfg *config.Config, subPath string) (string, error) {
	switch mode := strings.ToLower(cfg.DataSource.Mode); mode {
	case config.ModeIndependentRepository:
		data, err := sourceTable(cfg.DataSource.Data)
		if err != nil {
			return "", err
		}
		name, err := stringField(data, "name")
		if err != nil {
			return "", err
		}
		branch, err := stringField(data, "branch")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("https://api.github.com/repos/%s/contents/%s?ref=%s", name, subPath, branch), nil

	case config.ModeSubPath:
		folder, ok := cfg.DataSource.Data.(string)
		if !ok {
			return "", fmt.Errorf("%w: data must be a sub-folder name", ErrMalformedSource)
		}
		repo := cfg.Repository
		return fmt.Sprintf("https://api.github.com/repos/%s/contents/%s/%s?ref=%s", repo.Name, folder, subPath, repo.Branch), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSourceMode, mode)
	}
}

// FetchText performs a single GET against the resolved raw-content URL and
// returns the response body as text. There is no retry; any transport error
// or non-2xx status is returned as-is.
func (f *Fetcher) FetchText(ctx context.Context, cfg *config.Config, subPath string) (string, error) {
	target, err := rawTarget(cfg, subPath)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: status %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", target, err)
	}
	return string(body), nil
}

// listEntry is one entry of the contents metadata API response.
type listEntry struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// ListFiles queries the directory-listing API for the given content sub-path
// and returns the names of the file-type entries. Any failure (resolution,
// transport, non-200, shape mismatch) degrades to an empty list so that
// callers never block on a flaky listing call.
func (f *Fetcher) ListFiles(ctx context.Context, cfg *config.Config, subPath string) []string {
	target, err := listTarget(cfg, subPath)
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var entries []listEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.Type == "file" {
			names = append(names, e.Name)
		}
	}
	return names
}

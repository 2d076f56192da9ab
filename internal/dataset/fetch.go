package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const maxDatasetBytes = 32 << 20

// Fetch loads the dataset over HTTP. The resource is fetched exactly once;
// callers treat failure as fatal at startup.
func Fetch(ctx context.Context, url string) (*Store, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("fetch dataset %s: status %d: %s", url, resp.StatusCode, string(body))
	}

	s, err := Load(io.LimitReader(resp.Body, maxDatasetBytes))
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", url, err)
	}
	return s, nil
}

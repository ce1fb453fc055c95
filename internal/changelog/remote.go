package changelog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultRemoteTimeout is the default timeout for remote changelog fetches.
const DefaultRemoteTimeout = 10 * time.Second

// maxRemoteSize caps how much of a remote document we are willing to read.
const maxRemoteSize = 8 << 20

// FetchRemote fetches a raw changelog document from url. The context
// controls timeout and cancellation; the body is returned as-is for the
// markdown layer to tokenize.
func FetchRemote(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return body, nil
}

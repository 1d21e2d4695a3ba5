package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Error kinds for source failures. Handlers match with errors.Is and
// render an inline message in the affected widget only; other widgets on
// the page keep working.
var (
	// ErrNetwork covers transport failures and non-2xx responses.
	ErrNetwork = errors.New("source unreachable")
	// ErrMalformedData covers responses that are not the expected JSON array.
	ErrMalformedData = errors.New("source data malformed")
)

// Fetcher loads a JSON array from an http(s) URL or a local file path.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: 15 * time.Second}}
}

// FetchJSON reads the source and decodes it into v, which must be a
// pointer to a slice; any other JSON shape is classified malformed.
func (f *Fetcher) FetchJSON(ctx context.Context, src string, v any) error {
	body, err := f.read(ctx, src)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedData, src, err)
	}
	return nil
}

func (f *Fetcher) read(ctx context.Context, src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, src, err)
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, src, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("%w: %s: HTTP %d", ErrNetwork, src, resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, src, err)
		}
		return body, nil
	}

	body, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, src, err)
	}
	return body, nil
}

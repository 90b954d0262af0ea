package congressimport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-yaml"
	"golang.org/x/time/rate"
)

// DocumentSource resolves a URL to the parsed list of person records. Any
// failure here is fatal for the whole run; retry policy belongs to whoever
// owns the source, not to the pipeline.
type DocumentSource interface {
	Fetch(ctx context.Context, url string) ([]Person, error)
}

// HTTPSource fetches the legislators YAML over HTTP. Requests are rate
// limited so back-to-back era imports stay polite to the upstream host.
type HTTPSource struct {
	client  *http.Client
	limiter *rate.Limiter
}

func NewHTTPSource() *HTTPSource {
	return &HTTPSource{
		client: &http.Client{
			// The historical document is ~10MB of YAML.
			Timeout: 2 * time.Minute,
		},
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Fetch downloads and decodes one document. Partial documents are never
// returned.
func (s *HTTPSource) Fetch(ctx context.Context, url string) ([]Person, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	var persons []Person
	if err := yaml.NewDecoder(resp.Body).Decode(&persons); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return persons, nil
}

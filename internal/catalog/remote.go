package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/content"
)

// maxResponseSize bounds how much of a catalog response is read.
const maxResponseSize = 32 << 20

// RemoteLoader fetches the catalog from a content API returning either a
// JSON array or an object with a "posts" list.
type RemoteLoader struct {
	URL    string
	Token  string
	Client *http.Client
	Log    *zap.Logger
}

// NewRemoteLoader creates a loader with its own client and timeout.
func NewRemoteLoader(rawURL, token string, timeout time.Duration, log *zap.Logger) *RemoteLoader {
	return &RemoteLoader{
		URL:    rawURL,
		Token:  token,
		Client: &http.Client{Timeout: timeout},
		Log:    log,
	}
}

// Load implements Loader.
func (r *RemoteLoader) Load(ctx context.Context) ([]content.Item, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	base, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request failed: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	records, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	items := toItems(records, urlResolver(base), log)
	log.Debug("catalog fetched",
		zap.String("url", base.Redacted()),
		zap.Int("items", len(items)),
		zap.Duration("took", time.Since(start)),
	)
	return items, nil
}

package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder for catalog images
	_ "image/jpeg" // JPEG decoder for catalog images
	"image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nfnt/resize"
	"go.uber.org/zap"
)

const (
	maxImageSize = 32 << 20
	fetchTimeout = 20 * time.Second

	// Terminal cells are roughly 8x16 pixels.
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

// ErrNoLocator is returned when an item has no image to show.
var ErrNoLocator = errors.New("no image locator")

// Loader turns an image locator into PNG data scaled for a cell area.
type Loader struct {
	Client *http.Client
	Cache  *Cache
	Log    *zap.Logger
}

// NewLoader creates a loader. cache may be nil.
func NewLoader(cache *Cache, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		Client: &http.Client{Timeout: fetchTimeout},
		Cache:  cache,
		Log:    log.Named("preview"),
	}
}

// Load returns PNG data for locator fitted inside cols x rows cells.
// Locators are local paths or http(s) URLs.
func (l *Loader) Load(ctx context.Context, locator string, cols, rows int) ([]byte, error) {
	if locator == "" {
		return nil, ErrNoLocator
	}
	if data := l.Cache.Get(locator, cols, rows); data != nil {
		return data, nil
	}

	raw, err := l.read(ctx, locator)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", locator, err)
	}

	//nolint:gosec // cell counts are small
	scaled := resize.Thumbnail(uint(max(cols, 1)*cellPixelWidth), uint(max(rows, 1)*cellPixelHeight), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	data := buf.Bytes()
	if err := l.Cache.Put(locator, cols, rows, data); err != nil {
		l.Log.Warn("cache preview", zap.String("locator", locator), zap.Error(err))
	}
	return data, nil
}

func (l *Loader) read(ctx context.Context, locator string) ([]byte, error) {
	if !strings.HasPrefix(locator, "http://") && !strings.HasPrefix(locator, "https://") {
		path := strings.TrimPrefix(locator, "file://")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return data, nil
}

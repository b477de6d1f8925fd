package player

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"

	// maxRemoteSize bounds how much of a remote track is buffered.
	maxRemoteSize = 256 << 20
	fetchTimeout  = 30 * time.Second
)

var contentTypeExt = map[string]string{
	"audio/mpeg":   extMP3,
	"audio/mp3":    extMP3,
	"audio/flac":   extFLAC,
	"audio/x-flac": extFLAC,
	"audio/wav":    extWAV,
	"audio/x-wav":  extWAV,
	"audio/wave":   extWAV,
}

// source is an opened media resource, seekable so decoders can jump around.
type source struct {
	io.ReadSeeker
	io.Closer
	ext string
}

func isRemote(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

// openSource opens a local file, or downloads a remote one into memory.
func openSource(ctx context.Context, client *http.Client, locator string) (*source, error) {
	if !isRemote(locator) {
		f, err := os.Open(locator)
		if err != nil {
			return nil, err
		}
		return &source{ReadSeeker: f, Closer: f, ext: strings.ToLower(filepath.Ext(locator))}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch media: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize))
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}

	return &source{
		ReadSeeker: bytes.NewReader(data),
		Closer:     io.NopCloser(nil),
		ext:        remoteExt(locator, resp.Header.Get("Content-Type")),
	}, nil
}

// remoteExt prefers the URL path extension and falls back to Content-Type.
func remoteExt(locator, contentType string) string {
	if u, err := url.Parse(locator); err == nil {
		if ext := strings.ToLower(path.Ext(u.Path)); ext != "" {
			return ext
		}
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return contentTypeExt[mediaType]
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the stream.
// Some taggers prepend one to FLAC files, which the FLAC decoder rejects.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if n < 10 || string(header[0:3]) != "ID3" {
		_, serr := r.Seek(0, io.SeekStart)
		if err != nil && n == 0 {
			return err
		}
		return serr
	}

	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

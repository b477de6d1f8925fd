package player

import (
	"bytes"
	"io"
	"testing"
)

func TestRemoteExt(t *testing.T) {
	tests := []struct {
		name        string
		locator     string
		contentType string
		want        string
	}{
		{"path extension", "https://cdn.example.org/a/loop.MP3?sig=1", "", ".mp3"},
		{"content type", "https://cdn.example.org/stream/42", "audio/flac", ".flac"},
		{"content type params", "https://cdn.example.org/stream/42", "audio/mpeg; charset=binary", ".mp3"},
		{"unknown", "https://cdn.example.org/stream/42", "application/octet-stream", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := remoteExt(tt.locator, tt.contentType); got != tt.want {
				t.Errorf("remoteExt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSkipID3v2(t *testing.T) {
	t.Run("with tag", func(t *testing.T) {
		// 10-byte header declaring a 4-byte body, then the payload.
		data := append([]byte("ID3\x04\x00\x00\x00\x00\x00\x04"), []byte("TAGSfLaC")...)
		r := bytes.NewReader(data)
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2: %v", err)
		}
		rest, _ := io.ReadAll(r)
		if string(rest) != "fLaC" {
			t.Errorf("remaining = %q, want fLaC", rest)
		}
	})

	t.Run("without tag", func(t *testing.T) {
		r := bytes.NewReader([]byte("fLaC\x00\x00\x00\x22rest-of-stream"))
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2: %v", err)
		}
		rest, _ := io.ReadAll(r)
		if !bytes.HasPrefix(rest, []byte("fLaC")) {
			t.Errorf("stream not rewound: %q", rest)
		}
	})

	t.Run("short stream", func(t *testing.T) {
		r := bytes.NewReader([]byte("fLaC"))
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2: %v", err)
		}
		rest, _ := io.ReadAll(r)
		if string(rest) != "fLaC" {
			t.Errorf("remaining = %q", rest)
		}
	})
}
